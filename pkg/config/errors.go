package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("config: failed to parse environment variables")

	// ErrNilPointer is returned when a nil pointer is provided to a loader.
	ErrNilPointer = errors.New("config: nil pointer provided to config loader")

	// ErrLoadingEnvFile is returned when a .env file cannot be read.
	ErrLoadingEnvFile = errors.New("config: failed to load env file")

	// ErrSectionNotFound is returned when a YAML document has no such top-level section.
	ErrSectionNotFound = errors.New("config: section not found")

	// ErrParsingSection is returned when a YAML section cannot be decoded.
	ErrParsingSection = errors.New("config: failed to parse section")
)
