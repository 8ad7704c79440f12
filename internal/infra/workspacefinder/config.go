package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/axzolotle/learning-intern/internal/domain"
)

// ConfigFile is the workspace marker and configuration file name.
const ConfigFile = "agegroup.yaml"

// LoadConfig loads agegroup.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.AgeGroup.Masking.Enabled != nil {
		cfg.Masking.Enabled = *y.AgeGroup.Masking.Enabled
	}
	if y.AgeGroup.Defaults.Dataset != "" {
		cfg.Defaults.Dataset = y.AgeGroup.Defaults.Dataset
	}
	if y.AgeGroup.Defaults.Format != "" {
		cfg.Defaults.Format = y.AgeGroup.Defaults.Format
	}
	if y.AgeGroup.Defaults.Workers != nil {
		cfg.Defaults.Workers = *y.AgeGroup.Defaults.Workers
	}
	if y.AgeGroup.Paths.DatasetsDir != "" {
		cfg.Paths.DatasetsDir = y.AgeGroup.Paths.DatasetsDir
	}
	if y.AgeGroup.Paths.ReportsDir != "" {
		cfg.Paths.ReportsDir = y.AgeGroup.Paths.ReportsDir
	}

	if err := validateConfig(cfg); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return cfg, nil
}

func validateConfig(cfg domain.Config) error {
	switch cfg.Defaults.Format {
	case "pretty", "json", "table":
	default:
		return fmt.Errorf("field defaults.format: unsupported format %q (expected pretty|json|table): %w", cfg.Defaults.Format, domain.ErrInvalidConfig)
	}
	if cfg.Defaults.Workers < 1 {
		return fmt.Errorf("field defaults.workers: must be at least 1, got %d: %w", cfg.Defaults.Workers, domain.ErrInvalidConfig)
	}
	return nil
}

type yamlConfig struct {
	AgeGroup struct {
		Masking struct {
			Enabled *bool `yaml:"enabled"`
		} `yaml:"masking"`

		Defaults struct {
			Dataset string `yaml:"dataset"`
			Format  string `yaml:"format"`
			Workers *int   `yaml:"workers"`
		} `yaml:"defaults"`

		Paths struct {
			DatasetsDir string `yaml:"datasets_dir"`
			ReportsDir  string `yaml:"reports_dir"`
		} `yaml:"paths"`
	} `yaml:"agegroup"`
}
