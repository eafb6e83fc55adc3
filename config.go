package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Config struct {
	SaveDirectory string `yaml:"save_directory"`
	StartMenu     bool   `yaml:"start_menu"`
	Confirmations bool   `yaml:"confirmations"`
	DefaultFigure Size   `yaml:"default_figure"`
	MinFigure     Size   `yaml:"min_figure"`
	LogFile       string `yaml:"log_file"`
	WatchFiles    bool   `yaml:"watch_files"`
}

func DefaultConfig() *Config {
	return &Config{
		StartMenu:     true,
		Confirmations: true,
		DefaultFigure: Size{Width: 12, Height: 5},
		MinFigure:     Size{Width: 3, Height: 3},
		WatchFiles:    true,
	}
}

func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "diagrammer", "config.yaml")
}

// LoadConfig reads the YAML config at path over the defaults. A missing file
// is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) normalize() {
	c.SaveDirectory = expandPath(c.SaveDirectory)
	c.LogFile = expandPath(c.LogFile)

	c.MinFigure.Width = max(c.MinFigure.Width, 1)
	c.MinFigure.Height = max(c.MinFigure.Height, 1)
	c.DefaultFigure.Width = max(c.DefaultFigure.Width, c.MinFigure.Width)
	c.DefaultFigure.Height = max(c.DefaultFigure.Height, c.MinFigure.Height)
}

func expandPath(value string) string {
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
		}
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" || filepath.IsAbs(filename) {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}

// listDirectory is where the open picker looks for saved diagrams.
func (c *Config) listDirectory() string {
	if c.SaveDirectory != "" {
		return c.SaveDirectory
	}
	if dir, err := os.Getwd(); err == nil {
		return dir
	}
	return "."
}
