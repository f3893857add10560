package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a profile file. Fields absent from the file
// keep their defaults.
func Load(_ context.Context, path string) (*Profile, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided profile path is expected
	if err != nil {
		return nil, fmt.Errorf("reading profile file: %w", err)
	}

	profile := DefaultProfile()
	if err := yaml.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("parsing profile file: %w", err)
	}

	profile.applyEnvironmentOverrides()

	if err := Validate(profile); err != nil {
		return nil, fmt.Errorf("validating profile: %w", err)
	}

	return profile, nil
}

// Validate checks a profile for errors.
func Validate(p *Profile) error {
	if p.StartMarker == "" {
		return errors.New("start_marker is required")
	}

	if p.EndMarker == "" {
		return errors.New("end_marker is required")
	}

	if p.FieldCount < 1 {
		return fmt.Errorf("field_count must be >= 1, got %d", p.FieldCount)
	}

	if p.FieldIndex < 0 || p.FieldIndex >= p.FieldCount {
		return fmt.Errorf("field_index must be in [0, %d), got %d", p.FieldCount, p.FieldIndex)
	}

	return nil
}
