package integrity

import (
	"fmt"
	"os"

	"asset-bridge/core/resources"

	"go.yaml.in/yaml/v3"
)

// Manifest lists the assets an installation must provide.
type Manifest struct {
	Audio  []string `yaml:"audio" json:"audio"`
	Models []string `yaml:"models" json:"models"`
}

// Entry is one manifest line.
type Entry struct {
	Category resources.Category
	Name     string
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- operator supplied path
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return m, nil
}

// ParseManifest parses manifest YAML.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Entries flattens the manifest, audio first, preserving file order.
func (m *Manifest) Entries() []Entry {
	entries := make([]Entry, 0, len(m.Audio)+len(m.Models))
	for _, name := range m.Audio {
		entries = append(entries, Entry{Category: resources.Audio, Name: name})
	}
	for _, name := range m.Models {
		entries = append(entries, Entry{Category: resources.Models, Name: name})
	}
	return entries
}
