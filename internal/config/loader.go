package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory name under $HOME.
const AppDir = ".jigsawdrop"

// LoadJigsaw loads the jigsaw drop configuration.
// Search order: customPath -> ~/.jigsawdrop/configs/jigsaw.yaml ->
// ./configs/jigsaw.yaml -> embedded default.
// Missing fields keep their default values.
func LoadJigsaw(customPath string) (JigsawConfig, error) {
	cfg := DefaultJigsawConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Normalize()
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("jigsaw.yaml"), filepath.Join("configs", "jigsaw.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultJigsawConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			candidate.Normalize()
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultJigsawYAML, &cfg); err != nil {
		return DefaultJigsawConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Normalize()
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

// DefaultDBPath returns the default score database location.
func DefaultDBPath() string {
	return filepath.Join("~", AppDir, "scores.db")
}
