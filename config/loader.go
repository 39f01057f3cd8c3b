package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/hookline/hookline/errors"
)

// Config file names, in lookup order.
var configFileNames = []string{
	".hookline.yaml",
	".hookline.yml",
	".hookline.toml",
}

// FindConfigFile walks up from startDir looking for a hookline config file.
func FindConfigFile(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.ConfigNotFound(startDir)
		}
		dir = parent
	}
}

// Load reads and parses the config file at path. The format is selected by
// the file extension: .toml parses as TOML, anything else as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "read config file")
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return LoadTOMLBytes(data)
	}
	return LoadFromBytes(data)
}

// LoadDefault locates and loads the config starting from the working directory.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	path, err := FindConfigFile(cwd)
	if err != nil {
		return nil, err
	}

	return Load(path)
}

// LoadFromBytes parses YAML config data.
func LoadFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "parse YAML config")
	}
	return &cfg, nil
}

// LoadTOMLBytes parses TOML config data.
func LoadTOMLBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "parse TOML config")
	}
	return &cfg, nil
}
