package material

import "fmt"

// Value represents a sanitized cell: either a usable number or missing.
// Unparseable input always degrades to missing, never to an error.
type Value struct {
	Num       float64 `json:"num,omitempty"`
	IsMissing bool    `json:"is_missing"`
}

// NewNumber creates a numeric value
func NewNumber(n float64) Value {
	return Value{Num: n}
}

// NewMissing creates a missing value
func NewMissing() Value {
	return Value{IsMissing: true}
}

// IsNumber reports whether the value carries a usable number
func (v Value) IsNumber() bool {
	return !v.IsMissing
}

// String returns the string representation of the value
func (v Value) String() string {
	if v.IsMissing {
		return "<missing>"
	}
	return fmt.Sprintf("%g", v.Num)
}
