package niche

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a niche definition from a YAML file, for markets not covered
// by the built-in catalog.
func LoadFile(path string) (*Niche, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading niche file: %w", err)
	}

	var n Niche
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("parsing niche file %s: %w", path, err)
	}

	if n.Tracking == "" {
		n.Tracking = TrackingStatus
	}

	if err := n.Validate(); err != nil {
		return nil, err
	}

	return &n, nil
}
