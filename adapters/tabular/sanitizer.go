package tabular

import (
	"strconv"
	"strings"

	"ashby/domain/material"
)

// SanitizerConfig defines the cell normalization rules
type SanitizerConfig struct {
	ApproxMarkers []string `json:"approx_markers"` // leading markers stripped before parsing, e.g. "~"
}

// DefaultSanitizerConfig returns sensible defaults
func DefaultSanitizerConfig() SanitizerConfig {
	return SanitizerConfig{
		ApproxMarkers: []string{"~"},
	}
}

// Sanitizer handles deterministic normalization of raw cells into
// numeric-or-missing values. Sanitization never fails: anything that
// does not parse as a number degrades to missing.
type Sanitizer struct {
	config SanitizerConfig
}

// NewSanitizer creates a sanitizer with the given config
func NewSanitizer(config SanitizerConfig) *Sanitizer {
	return &Sanitizer{config: config}
}

// Sanitize deterministically converts one raw cell into a Value. A
// leading approximation marker is stripped and the remainder parsed as
// a number; blank and non-numeric cells become missing. Re-sanitizing
// an already-clean number yields the same number.
func (s *Sanitizer) Sanitize(raw string) material.Value {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return material.NewMissing()
	}

	for _, marker := range s.config.ApproxMarkers {
		if strings.HasPrefix(cleaned, marker) {
			cleaned = strings.TrimSpace(strings.TrimPrefix(cleaned, marker))
			break
		}
	}

	num, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return material.NewMissing()
	}
	return material.NewNumber(num)
}

// HasNumeric reports whether at least one of the raw cells sanitizes
// to a number. Used to decide axis eligibility for a column.
func (s *Sanitizer) HasNumeric(cells []string) bool {
	for _, cell := range cells {
		if s.Sanitize(cell).IsNumber() {
			return true
		}
	}
	return false
}
