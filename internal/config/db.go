package config

import (
	"fmt"
	"time"
)

const (
	defaultDbMaxRetryTimes = 5
	defaultDbRetryInterval = 2 * time.Second
)

type DbConfig struct {
	Username      string        `mapstructure:"username"`
	Password      string        `mapstructure:"password"`
	DbName        string        `mapstructure:"db-name"`
	Address       string        `mapstructure:"address"`
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
}

func (cfg *DbConfig) Validate() error {
	if cfg.Username == "" {
		return fmt.Errorf("missing db username")
	}

	if cfg.Password == "" {
		return fmt.Errorf("missing db password")
	}

	if cfg.Address == "" {
		return fmt.Errorf("missing db address")
	}

	if cfg.DbName == "" {
		return fmt.Errorf("missing db name")
	}

	if cfg.MaxRetryTimes == 0 {
		cfg.MaxRetryTimes = defaultDbMaxRetryTimes
	}

	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = defaultDbRetryInterval
	}

	return nil
}
