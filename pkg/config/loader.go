package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadEnv loads variables from the given .env files into the process
// environment. Later files override earlier ones. Without arguments the
// default ".env" in the working directory is loaded if it exists.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		// The default file is optional.
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// Load parses environment variables into v based on its `env` field tags.
// Every variable name is looked up with prefix prepended, so a field tagged
// `env:"DEFAULT_LOCALE"` loaded with prefix "BABEL_" reads BABEL_DEFAULT_LOCALE.
// Fields whose variables are unset keep their current values unless they
// carry an envDefault tag.
//
// Example:
//
//	type Settings struct {
//		DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"en"`
//	}
//
//	var s Settings
//	if err := config.Load(&s, "BABEL_"); err != nil {
//		// handle error
//	}
func Load[T any](v *T, prefix string) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.ParseWithOptions(v, env.Options{Prefix: prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, prefix string) {
	if err := Load(v, prefix); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
