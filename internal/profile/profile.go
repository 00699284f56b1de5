package profile

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultHost names the section holding fallback mappings for every host.
	DefaultHost = "localhost"

	// MappingsKey is the sub-table of a host section holding the lookup entries.
	MappingsKey = "mappings"

	// FileName is the profile file name inside the user configuration directory.
	FileName = "my.toml"

	// DirName is the subdirectory of the user configuration directory.
	DirName = "funixtools"
)

// Source locates and reads a profile file. See the Load method.
type Source struct {
	// Path is used verbatim when set.
	Path string
	// ConfigDir returns the user configuration directory. Defaults to
	// os.UserConfigDir when nil.
	ConfigDir func() (string, error)
}

// Resolve returns the path of the profile file.
func (s *Source) Resolve() (string, error) {
	if s.Path != "" {
		return s.Path, nil
	}
	configDir := s.ConfigDir
	if configDir == nil {
		configDir = os.UserConfigDir
	}
	dir, err := configDir()
	if err != nil || dir == "" {
		if err == nil {
			err = errors.New("empty directory")
		}
		return "", fmt.Errorf("%w: %v", ErrConfigDirUnavailable, err)
	}
	return filepath.Join(dir, DirName, FileName), nil
}

// Load reads the profile file and derives the effective profile for host.
func (s *Source) Load(host string) (*Profile, error) {
	path, err := s.Resolve()
	if err != nil {
		return nil, err
	}
	slog.Debug("loading profile", "path", path, "host", host)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	doc, perr := parseDocument(string(data))
	if perr != nil {
		perr.Path = path
		return nil, perr
	}

	return FromDocument(doc, host)
}

// Parse derives the effective profile for host from TOML text.
func Parse(data string, host string) (*Profile, error) {
	doc, perr := parseDocument(data)
	if perr != nil {
		return nil, perr
	}
	return FromDocument(doc, host)
}

// parseDocument parses TOML text into a generic document.
func parseDocument(data string) (map[string]any, *ParseError) {
	doc := map[string]any{}
	if err := toml.Unmarshal([]byte(data), &doc); err != nil {
		perr := &ParseError{Err: err}
		var tomlErr toml.ParseError
		if errors.As(err, &tomlErr) {
			perr.Line = tomlErr.Position.Line
		}
		return nil, perr
	}
	return doc, nil
}

// Profile is the two-tier view answering lookups: mappings of the current
// host first, then those of DefaultHost.
type Profile struct {
	current  map[string]any
	fallback map[string]any
}

// FromDocument extracts the current and default tiers from doc. The document
// is consumed: extracted sections are deleted from it. When host is
// DefaultHost the default tier stays empty, since its section has already
// been taken as the current tier.
func FromDocument(doc map[string]any, host string) (*Profile, error) {
	current, err := takeMappings(doc, host)
	if err != nil {
		return nil, err
	}
	fallback, err := takeMappings(doc, DefaultHost)
	if err != nil {
		return nil, err
	}
	slog.Debug("profile tiers extracted",
		"host", host,
		"current", len(current),
		"default", len(fallback))
	return &Profile{current: current, fallback: fallback}, nil
}

// takeMappings removes section from doc and returns its mappings table.
// A missing section or a section without mappings yields nil.
func takeMappings(doc map[string]any, section string) (map[string]any, error) {
	raw, ok := doc[section]
	if !ok {
		return nil, nil
	}
	delete(doc, section)

	table, ok := raw.(map[string]any)
	if !ok {
		return nil, &SchemaError{Section: section, Type: typeName(raw)}
	}
	raw, ok = table[MappingsKey]
	if !ok {
		return nil, nil
	}
	delete(table, MappingsKey)

	mappings, ok := raw.(map[string]any)
	if !ok {
		return nil, &SchemaError{Section: section, Key: MappingsKey, Type: typeName(raw)}
	}
	return mappings, nil
}

// Get returns the value of key from the current tier, falling back to the
// default tier. The boolean is false when neither tier has the key.
func (p *Profile) Get(key string) (any, bool) {
	if v, ok := p.current[key]; ok {
		return v, true
	}
	v, ok := p.fallback[key]
	return v, ok
}

// GetString is like Get but requires the value to be a TOML string.
func (p *Profile) GetString(key string) (string, error) {
	v, ok := p.Get(key)
	if !ok {
		return "", &LookupError{Key: key, Err: ErrKeyNotFound}
	}
	s, ok := v.(string)
	if !ok {
		return "", &LookupError{Key: key, Value: v, Err: ErrNotAString}
	}
	return s, nil
}

// Resolve looks up every key as a string, stopping at the first failure.
func (p *Profile) Resolve(keys []string) ([]string, error) {
	values := make([]string, 0, len(keys))
	for _, key := range keys {
		v, err := p.GetString(key)
		if err != nil {
			return nil, err
		}
		slog.Debug("resolved key", "key", key)
		values = append(values, v)
	}
	return values, nil
}

// typeName returns the TOML type name of a decoded value.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "nothing"
	case string:
		return "string"
	case int64:
		return "integer"
	case float64:
		return "float"
	case bool:
		return "boolean"
	case time.Time:
		return "datetime"
	case []any, []map[string]any:
		return "array"
	case map[string]any:
		return "table"
	default:
		return fmt.Sprintf("%T", v)
	}
}
