package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "dandaka.yaml"

// Load loads the Dandaka configuration.
// Search order: customPath -> ~/.dandaka/configs/dandaka.yaml -> ./configs/dandaka.yaml -> embedded default.
// Files are applied on top of the defaults, so a partial file only overrides
// the keys it names. A custom path that cannot be read, parsed or validated is
// an error; the other locations are skipped silently when unusable.
func Load(customPath string) (DandakaConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DandakaConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DandakaConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultDandakaYAML)
	if err != nil {
		return DefaultDandakaConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultDandakaConfig and validates the result.
func Parse(data []byte) (DandakaConfig, error) {
	cfg := DefaultDandakaConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DandakaConfig{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DandakaConfig{}, err
	}
	return cfg, nil
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks the values the simulation cannot run without.
func (c DandakaConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive", ErrInvalid)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalid)
	case c.Player.MaxHealth <= 0:
		return fmt.Errorf("%w: player.max_health must be positive", ErrInvalid)
	case c.Boss.Health <= 0:
		return fmt.Errorf("%w: boss.health must be positive", ErrInvalid)
	case c.Boss.PhaseThreshold <= 0 || c.Boss.PhaseThreshold >= 1:
		return fmt.Errorf("%w: boss.phase_threshold must be in (0, 1)", ErrInvalid)
	case c.Progression.KillTarget <= 0:
		return fmt.Errorf("%w: progression.kill_target must be positive", ErrInvalid)
	case c.Progression.SpawnInterval <= 0:
		return fmt.Errorf("%w: progression.spawn_interval must be positive", ErrInvalid)
	case c.World.Width-2*c.Progression.SpawnMargin <= 0:
		return fmt.Errorf("%w: progression.spawn_margin leaves no room to spawn", ErrInvalid)
	case len(c.Level.Platforms) == 0:
		return fmt.Errorf("%w: level needs at least one platform", ErrInvalid)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dandaka", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *DandakaConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust combat based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Minion.ContactDamage = 10
		cfg.Deer.ContactDamage = 10
		cfg.Boss.ContactDamage = 35
		cfg.Progression.SpawnInterval = 2.5
	case DifficultyHard:
		cfg.Minion.ContactDamage = 25
		cfg.Deer.ContactDamage = 25
		cfg.Boss.ContactDamage = 60
		cfg.Progression.SpawnInterval = 1.5
	}
}
