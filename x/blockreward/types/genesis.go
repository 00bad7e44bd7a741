package types

import (
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
)

type GenesisState struct {
	Params             Params             `json:"params"`
	DistributionConfig DistributionConfig `json:"distribution_config"`
	HardCap            math.Int           `json:"hard_cap"`
	BlockIssueReward   math.Int           `json:"block_issue_reward"`
}

// NewGenesisState creates a new GenesisState object
func NewGenesisState(params Params, config DistributionConfig, hardCap, blockIssueReward math.Int) *GenesisState {
	return &GenesisState{
		Params:             params,
		DistributionConfig: config,
		HardCap:            hardCap,
		BlockIssueReward:   blockIssueReward,
	}
}

// DefaultGenesisState creates a default GenesisState object
func DefaultGenesisState() *GenesisState {
	return NewGenesisState(DefaultParams(), DefaultDistributionConfig(), DefaultHardCap(), DefaultBlockIssueReward())
}

// ValidateGenesis validates the provided genesis state to ensure the
// expected invariants holds.
func ValidateGenesis(data GenesisState) error {
	if err := data.Params.Validate(); err != nil {
		return errors.Wrap(ErrInvalidParams, err.Error())
	}
	if err := data.DistributionConfig.Validate(); err != nil {
		return err
	}
	if err := validateAmount("hard cap", data.HardCap); err != nil {
		return err
	}
	return validateAmount("block issue reward", data.BlockIssueReward)
}

func validateAmount(name string, amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return errors.Wrapf(ErrInvalidAmount, "%s must be non-negative", name)
	}
	return nil
}
