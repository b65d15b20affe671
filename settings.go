package nubik

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// WindowSettings configures the game window.
type WindowSettings struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	VSync  bool `yaml:"vsync"`
}

// Settings is the on-disk game configuration.
type Settings struct {
	Window      WindowSettings `yaml:"window"`
	MSAASamples int            `yaml:"msaaSamples"`
}

// DefaultSettings returns the configuration used when no settings file
// exists.
func DefaultSettings() Settings {
	return Settings{
		Window: WindowSettings{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		MSAASamples: 4,
	}
}

// LoadSettings reads a YAML settings file, falling back to defaults when
// the file does not exist. A malformed file is an error rather than a
// silent fallback.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("load settings: %w", err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("load settings %s: %w", path, err)
	}

	return settings, nil
}

// SaveSettings writes the configuration as YAML.
func SaveSettings(path string, settings Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	return nil
}
