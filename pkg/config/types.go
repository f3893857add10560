// Package config provides scan profile loading and validation for benchsift.
package config

// Profile describes how the locate command interprets a benchmark output file.
// The zero value is not usable; start from DefaultProfile.
type Profile struct {
	// StartMarker is the literal substring that opens the scan region.
	// The line containing it is excluded from the region.
	StartMarker string `yaml:"start_marker"`

	// EndMarker is the literal substring that closes the scan region.
	// The line containing it is excluded from the region.
	EndMarker string `yaml:"end_marker"`

	// FieldCount is the exact number of whitespace-separated fields a
	// line must have to count as a record.
	FieldCount int `yaml:"field_count"`

	// FieldIndex is the 0-based index of the field compared against
	// Threshold. Must be less than FieldCount.
	FieldIndex int `yaml:"field_index"`

	// Threshold is the exclusive upper bound a record's field value must
	// be strictly below to qualify.
	Threshold int `yaml:"threshold"`
}
