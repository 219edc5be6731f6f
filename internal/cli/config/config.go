package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/conduit-lang/constlex/internal/compiler/repair"
)

// Config represents the constlex tool configuration.
type Config struct {
	Repair RepairConfig `mapstructure:"repair"`
	Output OutputConfig `mapstructure:"output"`
}

// RepairConfig configures the best-first repair engine.
type RepairConfig struct {
	MaxEdits int `mapstructure:"max_edits"`
}

// OutputConfig configures how diagnostics are rendered.
type OutputConfig struct {
	// Format is either "text" or "json".
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// Load loads configuration from constlex.yml or constlex.yaml, falling
// back to defaults if no file is present.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("repair.max_edits", repair.DefaultMaxEdits)
	v.SetDefault("output.format", "text")
	v.SetDefault("output.color", true)

	v.SetConfigName("constlex")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Repair.MaxEdits < 0 {
		return fmt.Errorf("repair.max_edits must be >= 0, got: %d", cfg.Repair.MaxEdits)
	}
	switch cfg.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("output.format must be 'text' or 'json', got: %s", cfg.Output.Format)
	}
	return nil
}
