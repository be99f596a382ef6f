package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/babylonlabs-io/nft-staker/internal/eligibility"
	"github.com/babylonlabs-io/nft-staker/pkg"
)

const (
	defaultMaxBatchSize      = 10
	defaultValidationWorkers = 4
)

type StakingConfig struct {
	// CustodyAddress holds staked assets and is the operator stakers approve.
	CustodyAddress    string        `mapstructure:"custody-address"`
	RewardThreshold   time.Duration `mapstructure:"reward-threshold"`
	MaxBatchSize      int           `mapstructure:"max-batch-size"`
	DefaultSource     string        `mapstructure:"default-source"`
	ValidationWorkers int           `mapstructure:"validation-workers"`
}

func (cfg *StakingConfig) Validate() error {
	if _, err := pkg.ParseAddress(cfg.CustodyAddress); err != nil {
		return fmt.Errorf("invalid custody-address: %w", err)
	}

	if cfg.RewardThreshold < 0 {
		return errors.New("reward-threshold cannot be negative")
	}
	if cfg.RewardThreshold == 0 {
		cfg.RewardThreshold = eligibility.DefaultRewardThreshold
	}

	if cfg.MaxBatchSize < 0 {
		return errors.New("max-batch-size cannot be negative")
	}
	if cfg.MaxBatchSize == 0 {
		cfg.MaxBatchSize = defaultMaxBatchSize
	}

	if cfg.ValidationWorkers <= 0 {
		cfg.ValidationWorkers = defaultValidationWorkers
	}

	return nil
}

func (cfg *StakingConfig) Custody() common.Address {
	return common.HexToAddress(cfg.CustodyAddress)
}
