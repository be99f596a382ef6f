package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Db       *DbConfig      `mapstructure:"db"`
	Staking  StakingConfig  `mapstructure:"staking"`
	Registry RegistryConfig `mapstructure:"registry"`
	Queue    *QueueConfig   `mapstructure:"queue"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Poller   PollerConfig   `mapstructure:"poller"`
}

func (cfg *Config) Validate() error {
	if err := cfg.Server.Validate(); err != nil {
		return err
	}

	// db is optional, without it changesets are kept in memory only
	if cfg.Db != nil {
		if err := cfg.Db.Validate(); err != nil {
			return err
		}
	}

	if err := cfg.Staking.Validate(); err != nil {
		return err
	}

	if err := cfg.Registry.Validate(); err != nil {
		return err
	}

	if cfg.Staking.DefaultSource != "" && !cfg.Registry.HasCollection(cfg.Staking.DefaultSource) {
		return fmt.Errorf("default source %q is not a configured collection", cfg.Staking.DefaultSource)
	}

	// queue is optional, without it ledger events are not published
	if cfg.Queue != nil {
		if err := cfg.Queue.Validate(); err != nil {
			return err
		}
	}

	if err := cfg.Metrics.Validate(); err != nil {
		return err
	}

	if err := cfg.Poller.Validate(); err != nil {
		return err
	}

	return nil
}

// New returns a fully parsed Config object from a given file path.
// Environment variables override file values, e.g. STAKING_MAX_BATCH_SIZE.
func New(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(cfgFile)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
