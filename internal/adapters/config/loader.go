// Package config provides the configuration loader for footing.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/wesleykendall/footing/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up in the working
// directory.
const DefaultFilename = "footing.yaml"

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// NewLoader creates a loader for the default configuration filename.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{Filename: DefaultFilename}
}

// Load reads the configuration from the given working directory.
func (l *FileConfigLoader) Load(cwd string) (*domain.Config, error) {
	path := filepath.Join(cwd, l.Filename)
	return Load(path)
}

// Load reads and validates a configuration file.
func Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is provided by the user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *domain.Config) error {
	if strings.TrimSpace(cfg.Project.Key) == "" {
		return zerr.New("config is missing project.key")
	}

	keys := make(map[string]bool, len(cfg.Toolkits))
	for _, def := range cfg.Toolkits {
		if strings.TrimSpace(def.Key) == "" {
			return zerr.New("toolkit is missing a key")
		}
		if keys[def.Key] {
			return zerr.With(zerr.New("duplicate toolkit key"), "key", def.Key)
		}
		keys[def.Key] = true
	}

	for _, def := range cfg.Toolkits {
		if def.Base != "" && !keys[def.Base] {
			return zerr.With(zerr.With(zerr.New("toolkit base is not declared"),
				"key", def.Key),
				"base", def.Base,
			)
		}
	}
	return nil
}
