package config

import "errors"

var (
	// ErrTypeMismatch is returned by typed accessors when the stored value's
	// actual type does not match the type documented for the key.
	ErrTypeMismatch = errors.New("configuration value has unexpected type")

	// ErrInvalidConfiguration is returned by Build for values that are
	// semantically unusable, such as an explicitly set empty root path.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
