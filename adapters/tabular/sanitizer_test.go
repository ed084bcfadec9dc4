package tabular

import "testing"

func TestSanitizeNumericForms(t *testing.T) {
	sanitizer := NewSanitizer(DefaultSanitizerConfig())

	tests := []struct {
		name     string
		raw      string
		expected float64
	}{
		{name: "plain integer", raw: "6", expected: 6},
		{name: "approximate integer", raw: "~6", expected: 6},
		{name: "approximate with inner space", raw: "~ 6", expected: 6},
		{name: "surrounding whitespace", raw: "  6.5  ", expected: 6.5},
		{name: "scientific notation", raw: "0.124E-3", expected: 0.124e-3},
		{name: "negative", raw: "-12.5", expected: -12.5},
		{name: "approximate negative", raw: "~-3", expected: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := sanitizer.Sanitize(tt.raw)
			if !v.IsNumber() {
				t.Fatalf("Sanitize(%q) = missing, want %g", tt.raw, tt.expected)
			}
			if v.Num != tt.expected {
				t.Errorf("Sanitize(%q) = %g, want %g", tt.raw, v.Num, tt.expected)
			}
		})
	}
}

func TestSanitizeDegradesToMissing(t *testing.T) {
	sanitizer := NewSanitizer(DefaultSanitizerConfig())

	tests := []struct {
		name string
		raw  string
	}{
		{name: "blank cell", raw: ""},
		{name: "whitespace only", raw: "   "},
		{name: "text", raw: "brittle"},
		{name: "marker only", raw: "~"},
		{name: "marker with text", raw: "~soft"},
		{name: "mixed", raw: "6 GPa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if v := sanitizer.Sanitize(tt.raw); !v.IsMissing {
				t.Errorf("Sanitize(%q) = %v, want missing", tt.raw, v)
			}
		})
	}
}

func TestSanitizeIsIdempotent(t *testing.T) {
	sanitizer := NewSanitizer(DefaultSanitizerConfig())

	inputs := []string{"6", "~6", "  3.14 ", "1e3"}
	for _, raw := range inputs {
		first := sanitizer.Sanitize(raw)
		if !first.IsNumber() {
			t.Fatalf("Sanitize(%q) unexpectedly missing", raw)
		}
		second := sanitizer.Sanitize(first.String())
		if !second.IsNumber() || second.Num != first.Num {
			t.Errorf("re-sanitizing %q changed value: %v -> %v", raw, first, second)
		}
	}
}

func TestHasNumeric(t *testing.T) {
	sanitizer := NewSanitizer(DefaultSanitizerConfig())

	if !sanitizer.HasNumeric([]string{"n/a", "", "~7"}) {
		t.Error("expected column with one approximate number to count as numeric")
	}
	if sanitizer.HasNumeric([]string{"soft", "hard", ""}) {
		t.Error("expected purely textual column to have no numerics")
	}
	if sanitizer.HasNumeric(nil) {
		t.Error("expected empty column to have no numerics")
	}
}
