package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultOutputPath = "output"

type Config struct {
	Version     int          `yaml:"version"`
	Definitions []Definition `yaml:"definitions"`
	Migrations  []Migration  `yaml:"migrations"`
	Output      Output       `yaml:"output"`
	Package     Package      `yaml:"package"`
}

// Definition selects case class definition files using a glob pattern.
type Definition struct {
	Path string `yaml:"path"`
}

// Migration selects sql migration files using a glob pattern.
type Migration struct {
	Path string `yaml:"path"`
}

type Output struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
}

// Package configures the optional Go model generation. Generation is
// skipped when the path is empty.
type Package struct {
	Path string `yaml:"path"`
}

func Read(configPath string) (*Config, error) {
	fileData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf(`failed to read config file "%s": %w`, configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(fileData, &config); err != nil {
		return nil, fmt.Errorf(`failed to unmarshal config file "%s": %w`, configPath, err)
	}

	if len(config.Output.Path) == 0 {
		config.Output.Path = defaultOutputPath
	}

	return &config, nil
}
