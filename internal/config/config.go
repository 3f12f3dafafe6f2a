package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration. Every value can also be
// supplied on the command line; flags win over the file.
type Config struct {
	Photos struct {
		Folders    []string `yaml:"folders"`
		Include    []string `yaml:"include"`
		Exclude    []string `yaml:"exclude"`
		Extensions []string `yaml:"extensions"`
	} `yaml:"photos"`
	Quiz struct {
		Questions int `yaml:"questions"`
	} `yaml:"quiz"`
	Results struct {
		Previous   string `yaml:"previous"`
		SaveTable  string `yaml:"save_table"`
		SaveFigure string `yaml:"save_figure"`
	} `yaml:"results"`
	Render struct {
		Font string `yaml:"font"`
	} `yaml:"render"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional reads the config when the file exists and returns the
// zero config otherwise; only parse failures are errors.
func LoadOptional(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	cfg, err := Load(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	return cfg, err
}

// Questions picks the flag value when set, then the config, then the
// fallback.
func Questions(flag, configured, fallback int) int {
	if flag > 0 {
		return flag
	}
	if configured > 0 {
		return configured
	}
	return fallback
}

// Strings picks the flag values when any were given, else the config's.
func Strings(flag, configured []string) []string {
	if len(flag) > 0 {
		return flag
	}
	return configured
}

// String picks the flag value when non-empty, else the config's.
func String(flag, configured string) string {
	if flag != "" {
		return flag
	}
	return configured
}
