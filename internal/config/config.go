// Package config provides release configuration management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up next to the working directory
// when --config is not given.
const DefaultFileName = ".fbrelease.yaml"

// Config represents the .fbrelease.yaml configuration file. Every field is
// optional; CLI flags take precedence over anything set here.
type Config struct {
	// Paths holds the default filesystem locations handed to the builder.
	Paths Paths `yaml:"paths"`

	// Carthage holds secondary packaging settings.
	Carthage CarthageConfig `yaml:"carthage,omitempty"`

	// PodRepos lists additional CocoaPods spec repositories to pull from.
	PodRepos []string `yaml:"pod_repos,omitempty"`
}

// Paths holds the filesystem locations consumed by the release build.
// An empty value disables the corresponding optional feature downstream:
// no logs dir means no log capture, no output dir means the archive is
// left in place and its location printed.
type Paths struct {
	TemplateDir       string `yaml:"template_dir"`
	AllSDKsDir        string `yaml:"all_sdks_dir,omitempty"`
	CurrentReleaseDir string `yaml:"current_release_dir,omitempty"`
	LogsDir           string `yaml:"logs_dir,omitempty"`
	OutputDir         string `yaml:"output_dir,omitempty"`
	CacheDir          string `yaml:"cache_dir,omitempty"`
}

// CarthageConfig holds Carthage distribution settings.
type CarthageConfig struct {
	Dir     string `yaml:"dir,omitempty"`
	JSONDir string `yaml:"json_dir,omitempty"`
}

// Load reads and parses a .fbrelease.yaml file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// LoadDefault loads .fbrelease.yaml from the current directory if present.
// A missing file is not an error; it yields an empty config.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(cwd, DefaultFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return Load(path)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	for _, repo := range c.PodRepos {
		if repo == "" {
			return fmt.Errorf("pod_repos entries must not be empty")
		}
	}
	if c.Carthage.JSONDir != "" && c.Carthage.Dir == "" {
		return fmt.Errorf("carthage.json_dir requires carthage.dir")
	}
	return nil
}
