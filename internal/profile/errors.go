package profile

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigDirUnavailable is returned when no profile path was given and
	// the user configuration directory cannot be determined.
	ErrConfigDirUnavailable = errors.New("cannot find user configuration directory")

	// ErrKeyNotFound is returned when a key is absent from both tiers.
	ErrKeyNotFound = errors.New("key not found")

	// ErrNotAString is returned when a key resolves to a non-string value.
	ErrNotAString = errors.New("value is not a string")
)

// ParseError reports malformed TOML in a profile file.
type ParseError struct {
	Path string
	// Line is the 1-based line reported by the parser, or 0 if unknown.
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to parse profile: %v", e.Err)
	}
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError reports a profile section or mappings entry that is not a table.
type SchemaError struct {
	Section string
	Key     string
	// Type is the TOML type name found instead of a table.
	Type string
}

func (e *SchemaError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("section %q is a %s, not a table", e.Section, e.Type)
	}
	return fmt.Sprintf("%s.%s is a %s, not a table", e.Section, e.Key, e.Type)
}

// LookupError wraps ErrKeyNotFound or ErrNotAString with the offending key.
type LookupError struct {
	Key   string
	Value any
	Err   error
}

func (e *LookupError) Error() string {
	if errors.Is(e.Err, ErrNotAString) {
		return fmt.Sprintf("value %v (%s) for key %q is not a string", e.Value, typeName(e.Value), e.Key)
	}
	return fmt.Sprintf("key %q not found", e.Key)
}

func (e *LookupError) Unwrap() error { return e.Err }
