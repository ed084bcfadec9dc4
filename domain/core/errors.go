package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Load-time contract violations
	ErrEmptyTable            = errors.New("table must have a header row and at least one data row")
	ErrCategoryColumnMissing = errors.New("category column missing")
	ErrUnsupportedFileType   = errors.New("unsupported file type")

	// Plot-request contract violations
	ErrNoDatasetLoaded  = errors.New("no dataset loaded")
	ErrPropertyNotFound = errors.New("property has no column descriptor")
)

// Error constructors with context
func NewPropertyNotFoundError(property string) error {
	return fmt.Errorf("%w: %q", ErrPropertyNotFound, property)
}

func NewCategoryColumnMissingError(column string) error {
	return fmt.Errorf("%w: expected column %q", ErrCategoryColumnMissing, column)
}

// Error checking helpers
func IsLoadError(err error) bool {
	return errors.Is(err, ErrEmptyTable) ||
		errors.Is(err, ErrCategoryColumnMissing) ||
		errors.Is(err, ErrUnsupportedFileType)
}

func IsRequestError(err error) bool {
	return errors.Is(err, ErrNoDatasetLoaded) ||
		errors.Is(err, ErrPropertyNotFound)
}
