package vectors

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Format is a vector file encoding.
type Format string

const (
	// FormatJSON is the JSON encoding.
	FormatJSON Format = "json"
	// FormatYAML is the YAML encoding.
	FormatYAML Format = "yaml"
)

// ParseFormat parses a vector file format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("vectors: unsupported format '%s'", s)
	}
}

// Marshal encodes the set in the given format.
func (s *Set) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(s, "", "  ")
	case FormatYAML:
		return yaml.Marshal(s)
	default:
		return nil, fmt.Errorf("vectors: unsupported format '%s'", format)
	}
}

// Unmarshal decodes a set in the given format.
func Unmarshal(format Format, data []byte) (*Set, error) {
	var (
		s   Set
		err error
	)
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &s)
	case FormatYAML:
		err = yaml.Unmarshal(data, &s)
	default:
		return nil, fmt.Errorf("vectors: unsupported format '%s'", format)
	}
	if err != nil {
		return nil, fmt.Errorf("vectors: malformed %s: %w", format, err)
	}
	return &s, nil
}
