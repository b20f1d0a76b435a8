package bot

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coreconfig "github.com/m3rciful/shiftbot/core/config"
	coredatabase "github.com/m3rciful/shiftbot/core/database"
)

// Config extends the core configuration with the database section used by
// the postgres storage driver.
type Config struct {
	coreconfig.Config `yaml:",inline"`

	Database coredatabase.Config `yaml:"database"`
}

// CoreConfig exposes the embedded core configuration.
func (c *Config) CoreConfig() *coreconfig.Config {
	if c == nil {
		return nil
	}
	return &c.Config
}

// LoadConfig reads configuration from a YAML file and environment variables.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := coreconfig.Normalize(&cfg.Config); err != nil {
		return nil, err
	}
	if cfg.Storage.Driver == coreconfig.StoragePostgres {
		if cfg.Database.Host == "" || cfg.Database.Name == "" {
			return nil, fmt.Errorf("database section is required when storage.driver is 'postgres'")
		}
	}
	return &cfg, nil
}
