package level

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a level document. name is used when the document
// does not carry its own.
func ParseYAML(data []byte, name string) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("level: parse %s: %w", name, err)
	}
	if lvl.Name == "" {
		lvl.Name = name
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// MarshalYAML encodes a level in the same format ParseYAML reads.
func MarshalYAML(l *Level) ([]byte, error) {
	data, err := yaml.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("level: encode %s: %w", l.Name, err)
	}
	return data, nil
}
