// Package config loads configuration structs from environment variables,
// .env files and YAML files.
//
// It wraps github.com/caarlos0/env/v11 for tag-driven environment parsing,
// github.com/joho/godotenv for .env files and gopkg.in/yaml.v3 for config
// files.
//
// Load parses a struct once per type and caches the result for the life of
// the process; ForceReload and ResetCache exist for tests. LoadFile layers a
// YAML file over the environment without caching, for command line tools that
// take a --config flag.
//
// # Usage
//
//	type Config struct {
//	    Joiner    string `env:"MEMID_JOINER" yaml:"joiner"`
//	    MaxLength int    `env:"MEMID_MAX_LENGTH" yaml:"max_length"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
//	// or, with a file
//	err := config.LoadFile("memid.yaml", &cfg)
//
// # Errors
//
// Failures are reported with package sentinels (ErrParsingConfig,
// ErrReadingConfigFile, ...) joined with the underlying error, so errors.Is
// works on both.
package config
