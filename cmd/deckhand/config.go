// ABOUTME: Optional YAML config file support for the deckhand CLI.
// ABOUTME: Looks for .deckhand.yaml in the current directory then the home directory; environment always wins.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".deckhand.yaml"

// fileConfig is the shape of the optional .deckhand.yaml config file. It holds
// defaults the environment and flags can override.
type fileConfig struct {
	Token   string `yaml:"token"`
	BaseURL string `yaml:"baseUrl"`
	Verbose bool   `yaml:"verbose"`
}

// loadFileConfig reads the first .deckhand.yaml found in the current directory
// or the home directory. A missing file yields a zero config and no error.
func loadFileConfig() (fileConfig, error) {
	var paths []string
	if wd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(wd, configFileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, configFileName))
	}

	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		var cfg fileConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fileConfig{}, fmt.Errorf("parse %s: %w", p, err)
		}
		return cfg, nil
	}
	return fileConfig{}, nil
}
