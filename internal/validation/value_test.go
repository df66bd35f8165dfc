package validation

import (
	"errors"
	"testing"
)

func TestValue_Truthy(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{``, false},
		{`null`, false},
		{`false`, false},
		{`0`, false},
		{`-0`, false},
		{`0.0`, false},
		{`0e10`, false},
		{`""`, false},
		{`true`, true},
		{`1`, true},
		{`-1.5`, true},
		{`" "`, true},
		{`"0"`, true},
		{`"false"`, true},
		{`[]`, true},
		{`{}`, true},
	}

	for _, tt := range tests {
		if got := Value(tt.raw).Truthy(); got != tt.want {
			t.Errorf("Value(%s).Truthy() = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestValue_AsString(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`"Dune"`, "Dune"},
		{`"Sci Fi"`, "Sci Fi"},
		{`123`, "123"},
		{`1965.50`, "1965.5"},
		{`1e3`, "1000"},
		{`1e21`, "1e+21"},
		{`true`, "true"},
		{`false`, "false"},
	}

	for _, tt := range tests {
		got, err := Value(tt.raw).AsString()
		if err != nil {
			t.Errorf("Value(%s).AsString() returned error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Value(%s).AsString() = %q, want %q", tt.raw, got, tt.want)
		}
	}

	for _, raw := range []string{`{}`, `["Dune"]`, `null`, ``} {
		if _, err := Value(raw).AsString(); !errors.Is(err, ErrCast) {
			t.Errorf("Value(%s).AsString() error = %v, want ErrCast", raw, err)
		}
	}
}

func TestValue_AsNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{`1965`, 1965},
		{`1965.5`, 1965.5},
		{`"1965"`, 1965},
		{`" 4.5 "`, 4.5},
		{`"1e3"`, 1000},
		{`" "`, 0},
		{`true`, 1},
		{`false`, 0},
	}

	for _, tt := range tests {
		got, err := Value(tt.raw).AsNumber()
		if err != nil {
			t.Errorf("Value(%s).AsNumber() returned error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Value(%s).AsNumber() = %v, want %v", tt.raw, got, tt.want)
		}
	}

	for _, raw := range []string{`"abc"`, `"NaN"`, `"Infinity"`, `"inf"`, `1e400`, `[1965]`, `{}`, `null`} {
		if _, err := Value(raw).AsNumber(); !errors.Is(err, ErrCast) {
			t.Errorf("Value(%s).AsNumber() error = %v, want ErrCast", raw, err)
		}
	}
}

func TestParseNumber(t *testing.T) {
	for s, want := range map[string]float64{"1965": 1965, "1965.0": 1965, " 4.5": 4.5, "-2": -2, "": 0} {
		got, err := ParseNumber(s)
		if err != nil || got != want {
			t.Errorf("ParseNumber(%q) = %v, %v; want %v", s, got, err, want)
		}
	}

	if _, err := ParseNumber("1965a"); !errors.Is(err, ErrCast) {
		t.Errorf("expected ErrCast, got %v", err)
	}
}
