package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is checked relative to the working directory.
const LocalConfigPath = "configs/ladders.yaml"

// LoadLadders loads the game configuration.
// Search order: customPath -> ~/.ladders/configs/ladders.yaml -> ./configs/ladders.yaml -> embedded default
func LoadLadders(customPath string) (LaddersConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("ladders.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(LocalConfigPath); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultLaddersYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultLaddersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so a file only needs
// the keys it changes. A shortcuts block replaces the default set entirely.
func Parse(data []byte) (LaddersConfig, error) {
	cfg := DefaultLaddersConfig()
	var raw struct {
		Board struct {
			Size      *int        `yaml:"size"`
			Terminal  *int        `yaml:"terminal"`
			Shortcuts map[int]int `yaml:"shortcuts"`
		} `yaml:"board"`
		Computer struct {
			DelayMS *int `yaml:"delay_ms"`
		} `yaml:"computer"`
		Display struct {
			Columns *int `yaml:"columns"`
		} `yaml:"display"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, err
	}

	if raw.Board.Size != nil {
		cfg.Board.Size = *raw.Board.Size
		// Terminal follows size unless set explicitly.
		cfg.Board.Terminal = *raw.Board.Size
	}
	if raw.Board.Terminal != nil {
		cfg.Board.Terminal = *raw.Board.Terminal
	}
	if raw.Board.Shortcuts != nil {
		cfg.Board.Shortcuts = raw.Board.Shortcuts
	}
	if raw.Computer.DelayMS != nil {
		cfg.Computer.DelayMS = *raw.Computer.DelayMS
	}
	if raw.Display.Columns != nil {
		cfg.Display.Columns = *raw.Display.Columns
	}
	return cfg, nil
}

func loadFile(path string) (LaddersConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LaddersConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ladders", "configs", filename)
}
