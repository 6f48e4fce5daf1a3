package config_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bootstrap/core/config"
)

func TestEnvProvider(t *testing.T) {
	t.Run("reads SERVER_ variables", func(t *testing.T) {
		t.Setenv("SERVER_PROTOCOL", "HTTPS")
		t.Setenv("SERVER_HOST", "0.0.0.0")
		t.Setenv("SERVER_PORT", "8443")
		t.Setenv("SERVER_TLS_CLIENT_AUTH", "mandatory")

		cfg, err := config.NewBuilder().
			FromProvider(config.EnvProvider()).
			Build()
		require.NoError(t, err)

		protocol, err := cfg.Protocol()
		require.NoError(t, err)
		assert.Equal(t, "HTTPS", protocol)

		host, err := cfg.Host()
		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0", host)

		port, err := cfg.Port()
		require.NoError(t, err)
		assert.Equal(t, 8443, port)

		auth, err := cfg.TLSClientAuth()
		require.NoError(t, err)
		assert.Equal(t, config.ClientAuthMandatory, auth)
	})

	t.Run("unset variables leave defaults", func(t *testing.T) {
		t.Setenv("SERVER_HOST", "0.0.0.0")

		cfg, err := config.NewBuilder().
			FromProvider(config.EnvProvider()).
			Build()
		require.NoError(t, err)

		protocol, err := cfg.Protocol()
		require.NoError(t, err)
		assert.Equal(t, "HTTP", protocol)

		port, err := cfg.Port()
		require.NoError(t, err)
		assert.Equal(t, config.DefaultPort, port)
	})

	t.Run("explicit set still wins", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "8888")

		cfg, err := config.NewBuilder().
			FromProvider(config.EnvProvider()).
			Port(9999).
			Build()
		require.NoError(t, err)

		port, err := cfg.Port()
		require.NoError(t, err)
		assert.Equal(t, 9999, port)
	})
}

func TestFromViper(t *testing.T) {
	t.Parallel()

	t.Run("imports well-known keys", func(t *testing.T) {
		t.Parallel()

		v := viper.New()
		v.Set(config.KeyProtocol, "HTTPS")
		v.Set(config.KeyPort, 8443)
		v.Set(config.KeyTLSClientAuth, "OPTIONAL")

		cfg, err := config.NewBuilder().From(v).Build()
		require.NoError(t, err)

		protocol, err := cfg.Protocol()
		require.NoError(t, err)
		assert.Equal(t, "HTTPS", protocol)

		port, err := cfg.Port()
		require.NoError(t, err)
		assert.Equal(t, 8443, port)

		auth, err := cfg.TLSClientAuth()
		require.NoError(t, err)
		assert.Equal(t, config.ClientAuthOptional, auth)
	})

	t.Run("skips malformed values", func(t *testing.T) {
		t.Parallel()

		v := viper.New()
		v.Set(config.KeyPort, "not-a-number")

		cfg, err := config.NewBuilder().From(v).Build()
		require.NoError(t, err)

		port, err := cfg.Port()
		require.NoError(t, err)
		assert.Equal(t, config.DefaultPort, port)
	})

	t.Run("nil viper is a no-op", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.NewBuilder().From((*viper.Viper)(nil)).Build()
		require.NoError(t, err)

		host, err := cfg.Host()
		require.NoError(t, err)
		assert.Equal(t, "localhost", host)
	})
}

func TestFromMap(t *testing.T) {
	t.Parallel()

	cfg, err := config.NewBuilder().
		From(map[string]any{
			config.KeyHost: "10.1.2.3",
			config.KeyPort: 8080,
		}).
		Build()
	require.NoError(t, err)

	host, err := cfg.Host()
	require.NoError(t, err)
	assert.Equal(t, "10.1.2.3", host)

	port, err := cfg.Port()
	require.NoError(t, err)
	assert.Equal(t, 8080, port)
}

func TestFromUnsupportedSource(t *testing.T) {
	t.Parallel()

	// Unrecognized sources are silently ignored, never an error.
	cfg, err := config.NewBuilder().
		From(42).
		From(struct{ Port int }{Port: 9000}).
		From(nil).
		Build()
	require.NoError(t, err)

	port, err := cfg.Port()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPort, port)
}
