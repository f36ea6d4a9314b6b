package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadSection decodes the top-level section of a YAML document into v.
// Fields absent from the section keep their current values, so v can be
// pre-filled with defaults.
//
//	babel_i18n:
//	  default_locale: de
//	  default_timezone: Europe/Vienna
func LoadSection(data []byte, section string, v any) error {
	if v == nil {
		return ErrNilPointer
	}

	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.Join(ErrParsingSection, err)
	}

	node, ok := doc[section]
	if !ok {
		return fmt.Errorf("%w: %q", ErrSectionNotFound, section)
	}
	if err := node.Decode(v); err != nil {
		return errors.Join(ErrParsingSection, fmt.Errorf("section %q: %w", section, err))
	}
	return nil
}

// LoadSectionFile reads a YAML file and decodes one of its sections into v.
func LoadSectionFile(path, section string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return LoadSection(data, section, v)
}
