package bootstrap_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bootstrap"
	"github.com/dmitrymomot/bootstrap/core/config"
	"github.com/dmitrymomot/bootstrap/core/lifecycle"
)

func TestStart(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	cfg, err := config.NewBuilder().Build()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	inst, err := bootstrap.Start(lifecycle.App(handler), cfg).Wait(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { inst.Stop() })

	port, err := inst.Configuration().Port()
	require.NoError(t, err)

	resp, err := http.Get(fmt.Sprintf("http://localhost:%d/", port))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestRunStopsOnContextCancellation(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	cfg, err := config.NewBuilder().Build()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- bootstrap.Run(ctx, lifecycle.App(handler), cfg)
	}()

	// Give the server a moment to come up, then cancel.
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestRunReportsStartupFailure(t *testing.T) {
	t.Parallel()

	cfg, err := config.NewBuilder().Protocol("GOPHER").Build()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = bootstrap.Run(ctx, lifecycle.App(http.NotFoundHandler()), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, lifecycle.ErrStartup)
}
