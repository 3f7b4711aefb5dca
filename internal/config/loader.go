package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRush loads Rush configuration.
// Search order: customPath -> ~/.arcade/configs/rush.yaml -> ./configs/rush.yaml -> embedded default
//
// Files are decoded on top of DefaultRushConfig, so a file only needs the
// keys it changes.
func LoadRush(customPath string) (RushConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RushConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseRush(data)
		if err != nil {
			return RushConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("rush.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseRush(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "rush.yaml")); err == nil {
		if cfg, err := parseRush(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseRush(defaultRushYAML)
	if err != nil {
		return DefaultRushConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseRush(data []byte) (RushConfig, error) {
	cfg := DefaultRushConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RushConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RushConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyRushPreset modifies the config based on a difficulty preset.
func ApplyRushPreset(cfg *RushConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Hard runs also hurt more
	if preset == DifficultyHard {
		cfg.Damage.Shuriken += cfg.Damage.Shuriken / 2
		cfg.Damage.RedArrow += cfg.Damage.RedArrow / 2
	}
}
