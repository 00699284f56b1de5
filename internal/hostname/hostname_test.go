package hostname

import (
	"errors"
	"testing"
)

func TestLookupWith(t *testing.T) {
	tests := []struct {
		name     string
		get      func() (string, error)
		expected string
	}{
		{
			name:     "reported name",
			get:      func() (string, error) { return "workstation", nil },
			expected: "workstation",
		},
		{
			name:     "error falls back",
			get:      func() (string, error) { return "", errors.New("no uname") },
			expected: Fallback,
		},
		{
			name:     "empty name falls back",
			get:      func() (string, error) { return "", nil },
			expected: Fallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lookupWith(tt.get); got != tt.expected {
				t.Errorf("lookupWith() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	if Lookup() == "" {
		t.Error("Lookup() returned an empty hostname")
	}
}
