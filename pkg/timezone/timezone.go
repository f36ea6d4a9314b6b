package timezone

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	// Bundles the IANA database so System resolves names on hosts without zoneinfo.
	_ "time/tzdata"
)

// ErrUnknown is returned when a timezone identifier is not in the database.
var ErrUnknown = errors.New("timezone: unknown timezone identifier")

// Resolver resolves IANA timezone identifiers such as "Europe/Vienna".
type Resolver interface {
	Location(name string) (*time.Location, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(name string) (*time.Location, error)

// Location calls f(name).
func (f ResolverFunc) Location(name string) (*time.Location, error) {
	return f(name)
}

// System returns a Resolver backed by time.LoadLocation: the host zoneinfo
// database, the ZONEINFO environment variable, then the bundled copy.
func System() Resolver {
	return ResolverFunc(func(name string) (*time.Location, error) {
		if err := validate(name); err != nil {
			return nil, err
		}
		loc, err := time.LoadLocation(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrUnknown, name, err)
		}
		return loc, nil
	})
}

// Dir returns a Resolver that reads TZif files from a zoneinfo directory,
// e.g. "/usr/share/zoneinfo". "UTC" always resolves to time.UTC.
func Dir(dir string) Resolver {
	return ResolverFunc(func(name string) (*time.Location, error) {
		if err := validate(name); err != nil {
			return nil, err
		}
		if name == "UTC" {
			return time.UTC, nil
		}
		data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrUnknown, name, err)
		}
		loc, err := time.LoadLocationFromTZData(name, data)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrUnknown, name, err)
		}
		return loc, nil
	})
}

// New returns Dir(dir) when dir is set, System otherwise.
func New(dir string) Resolver {
	if dir == "" {
		return System()
	}
	return Dir(dir)
}

// validate rejects names that time.LoadLocation would silently map to UTC or
// Local, and names that escape the database root.
func validate(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty identifier", ErrUnknown)
	case strings.HasPrefix(name, "/"), strings.Contains(name, ".."), strings.Contains(name, `\`):
		return fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return nil
}
