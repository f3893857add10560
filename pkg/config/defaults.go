package config

import (
	"os"
	"strconv"
)

// Default values for scan profiles. These reproduce the behavior of the
// benchmark harness's own post-processing scripts.
const (
	DefaultStartMarker = "OVERALL BEST:"
	DefaultEndMarker   = "Timings By Test Type:"
	DefaultFieldCount  = 7
	DefaultFieldIndex  = 2
	DefaultThreshold   = 6
)

// Environment variable names.
const (
	EnvThreshold = "BENCHSIFT_THRESHOLD"
)

// DefaultProfile returns a profile with the harness defaults.
func DefaultProfile() *Profile {
	return &Profile{
		StartMarker: DefaultStartMarker,
		EndMarker:   DefaultEndMarker,
		FieldCount:  DefaultFieldCount,
		FieldIndex:  DefaultFieldIndex,
		Threshold:   DefaultThreshold,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the profile.
func (p *Profile) applyEnvironmentOverrides() {
	if v := os.Getenv(EnvThreshold); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.Threshold = n
		}
	}
}
