package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads and validates the configuration from the directory.
func Load(path string) (*Configuration, error) {
	return LoadFs(afero.NewOsFs(), path)
}

// LoadFs is Load over an explicit filesystem.
func LoadFs(fsys afero.Fs, path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	contents, err := afero.ReadFile(fsys, filepath.Join(path, ConfigurationName))
	if err != nil {
		return nil, err
	}

	var out Configuration
	if err := yaml.UnmarshalStrict(contents, &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Initialize writes the default configuration into the directory. It refuses
// to overwrite an existing file.
func Initialize(fsys afero.Fs, path string, logger *log.Logger) error {
	if err := fsys.MkdirAll(path, 0700); err != nil {
		return err
	}

	configPath := filepath.Join(path, ConfigurationName)
	if exists, err := afero.Exists(fsys, configPath); err != nil {
		return err
	} else if exists {
		return fmt.Errorf("%s already exists", configPath)
	}

	if err := afero.WriteFile(fsys, configPath, defaultConfigData, 0644); err != nil {
		return err
	}

	logger.Printf("Wrote %s", configPath)
	return nil
}
