package seed

import (
	_ "embed"
	"fmt"
	"log"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yml
var presetsYAML []byte

// Preset is a named seeding plan.
type Preset struct {
	Users      int `yaml:"users"`
	Moodboards int `yaml:"moodboards"`
}

type presetFile struct {
	Presets map[string]Preset `yaml:"presets"`
}

// LoadPresets parses the embedded preset definitions.
func LoadPresets() (map[string]Preset, error) {
	var file presetFile
	if err := yaml.Unmarshal(presetsYAML, &file); err != nil {
		return nil, fmt.Errorf("parse seed presets: %w", err)
	}
	if len(file.Presets) == 0 {
		return nil, fmt.Errorf("no seed presets defined")
	}
	return file.Presets, nil
}

// ApplyPreset runs the full seeding pipeline for the named preset.
func (s *Seeder) ApplyPreset(name string) error {
	presets, err := LoadPresets()
	if err != nil {
		return err
	}
	preset, ok := presets[name]
	if !ok {
		names := make([]string, 0, len(presets))
		for n := range presets {
			names = append(names, n)
		}
		return fmt.Errorf("unknown preset %q, available: %v", name, names)
	}

	log.Printf("Applying preset %q: %d users, %d moodboards", name, preset.Users, preset.Moodboards)

	users, err := s.SeedUsers(preset.Users)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	boards, err := s.SeedMoodboards(users, preset.Moodboards)
	if err != nil {
		return fmt.Errorf("seed moodboards: %w", err)
	}
	if err := s.SeedEngagement(users, boards); err != nil {
		return fmt.Errorf("seed engagement: %w", err)
	}
	return nil
}
