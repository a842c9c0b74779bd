package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level creditbook.yaml configuration. This is the
// CLI's own configuration; business values that appear on receipts live in
// the snapshot's settings, not here.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Storage  StorageConfig  `yaml:"storage"`
	Backup   BackupConfig   `yaml:"backup"`
	Git      GitConfig      `yaml:"git"`
}

// BusinessConfig identifies the business.
type BusinessConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"`
}

// StorageConfig locates the durable snapshot.
type StorageConfig struct {
	DataFile string `yaml:"data_file"`
}

// BackupConfig controls the cloud backup integration. The bearer token is
// never stored in the file; it is read from the named environment variable.
type BackupConfig struct {
	Filename string `yaml:"filename"`
	TokenEnv string `yaml:"token_env"`
}

// GitConfig controls snapshot history commits.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a creditbook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:     businessName,
			Currency: "DA",
		},
		Storage: StorageConfig{
			DataFile: "data/creditbook.json",
		},
		Backup: BackupConfig{
			Filename: "creditbook-backup.json",
			TokenEnv: "DRIVE_ACCESS_TOKEN",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Creditbook",
			AuthorEmail: "ledger@creditbook.dev",
		},
	}
}
