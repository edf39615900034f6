package config

import "errors"

// Package-specific errors
var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrInvalidConfigType is returned when trying to access a config with an invalid type
	ErrInvalidConfigType = errors.New("invalid config type")

	// ErrConfigNotLoaded is returned when attempting to access a config that hasn't been loaded
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	// ErrNilPointer is returned when a nil pointer is provided to Load
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrInvalidConfig is returned when a loaded config fails its own Validate method
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownKey is returned when a settings file contains a key that names no field
	ErrUnknownKey = errors.New("unknown configuration key")

	// ErrReadingFile is returned when a settings file cannot be opened or read
	ErrReadingFile = errors.New("failed to read configuration file")
)
