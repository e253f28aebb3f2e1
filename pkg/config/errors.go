package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables or a config file cannot be parsed into the struct
	ErrParsingConfig = errors.New("failed to parse config")

	// ErrConfigNotLoaded is returned when a config was parsed but could not be read back from the cache
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	// ErrNilPointer is returned when a nil pointer is provided to a loader
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrLoadingEnvFile is returned when a .env file cannot be read
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrReadingConfigFile is returned when a YAML config file cannot be read
	ErrReadingConfigFile = errors.New("failed to read config file")
)
