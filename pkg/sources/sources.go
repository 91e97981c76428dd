// Package sources reads the sensors/locations list that drives scheduled syncs.
package sources

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sources lists what a `sources sync` run should fetch.
type Sources struct {
	// Sensors are synced directly.
	Sensors []int `yaml:"sensors"`

	// Locations are resolved to their sensors first.
	Locations []int `yaml:"locations"`

	// DatetimeFrom/DatetimeTo override the configured sync window.
	DatetimeFrom string `yaml:"datetime_from"`
	DatetimeTo   string `yaml:"datetime_to"`
}

// Load reads and validates a sources file.
func Load(path string) (*Sources, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file %s: %w", path, err)
	}

	var s Sources
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse sources file %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sources file %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks that the sources list is usable.
func (s *Sources) Validate() error {
	if len(s.Sensors) == 0 && len(s.Locations) == 0 {
		return fmt.Errorf("no sensors or locations listed")
	}
	for _, id := range s.Sensors {
		if id <= 0 {
			return fmt.Errorf("invalid sensor id: %d", id)
		}
	}
	for _, id := range s.Locations {
		if id <= 0 {
			return fmt.Errorf("invalid location id: %d", id)
		}
	}
	return nil
}
