package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds seeding settings.
type Config struct {
	DemoUsername string `yaml:"demo_username" env:"SEEDER_DEMO_USERNAME" env-default:"demo"`
	DemoPassword string `yaml:"demo_password" env:"SEEDER_DEMO_PASSWORD" env-default:"yelpcamp-demo"`
	// Reset removes the demo user's existing campgrounds before seeding.
	Reset  bool `yaml:"reset"   env:"SEEDER_RESET"`
	DryRun bool `yaml:"dry_run" env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("seeder config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	return &cfg, nil
}
