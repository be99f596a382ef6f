package config

import (
	"errors"
	"fmt"
	"slices"
)

const RegistryBackendMemory = "memory"

type RegistryConfig struct {
	Backend            string   `mapstructure:"backend"`
	Collections        []string `mapstructure:"collections"`
	PlaceholderBaseURI string   `mapstructure:"placeholder-base-uri"`
	RewardBaseURI      string   `mapstructure:"reward-base-uri"`
}

func (cfg *RegistryConfig) Validate() error {
	if cfg.Backend == "" {
		cfg.Backend = RegistryBackendMemory
	}
	if cfg.Backend != RegistryBackendMemory {
		return fmt.Errorf("unsupported registry backend %q", cfg.Backend)
	}

	if len(cfg.Collections) == 0 {
		return errors.New("at least one staked collection is required")
	}

	seen := make(map[string]struct{}, len(cfg.Collections))
	for _, name := range cfg.Collections {
		if name == "" {
			return errors.New("collection name cannot be empty")
		}
		if name == "placeholder" || name == "reward" {
			return fmt.Errorf("collection name %q is reserved", name)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("duplicate collection %q", name)
		}
		seen[name] = struct{}{}
	}

	return nil
}

func (cfg *RegistryConfig) HasCollection(name string) bool {
	return slices.Contains(cfg.Collections, name)
}
