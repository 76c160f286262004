package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds the input and output file paths for one batch run.
type Config struct {
	FurnitureFile string `yaml:"furniture_file"`
	StoreFile     string `yaml:"store_file"`
	OrderFile     string `yaml:"order_file"`
	ReportFile    string `yaml:"report_file"`
}

// Default returns the built-in file names used when no config file exists.
func Default() *Config {
	return &Config{
		FurnitureFile: "furniture.txt",
		StoreFile:     "store.txt",
		OrderFile:     "order.txt",
		ReportFile:    "overdue_report.xlsx",
	}
}

// Load reads the YAML config at path, falling back to Default when the
// file does not exist. Keys absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
