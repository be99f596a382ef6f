package config

import (
	"errors"
	"time"
)

const defaultQueuePublishTimeout = 5 * time.Second

type QueueConfig struct {
	Url            string        `mapstructure:"url"`
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	QueueName      string        `mapstructure:"queue-name"`
	PublishTimeout time.Duration `mapstructure:"publish-timeout"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.Url == "" {
		return errors.New("queue url is required")
	}

	if cfg.QueueName == "" {
		return errors.New("queue name is required")
	}

	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = defaultQueuePublishTimeout
	}

	return nil
}
