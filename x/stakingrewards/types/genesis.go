package types

import (
	"fmt"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// AccountReward is a settled, unpaid reward balance.
type AccountReward struct {
	Account string   `json:"account"`
	Amount  math.Int `json:"amount"`
}

// AccountBlocks is the authored block count an account was last settled at.
type AccountBlocks struct {
	Account string `json:"account"`
	Blocks  uint64 `json:"blocks"`
}

type GenesisState struct {
	Params         Params          `json:"params"`
	RewardRate     RewardRateInfo  `json:"reward_rate"`
	Coefficient    uint64          `json:"coefficient"`
	LastBlockPool  math.Int        `json:"last_block_pool"`
	Rewards        []AccountReward `json:"rewards"`
	BlocksRewarded []AccountBlocks `json:"blocks_rewarded"`
}

// NewGenesisState creates a new GenesisState object
func NewGenesisState(params Params, rate RewardRateInfo, coefficient uint64) *GenesisState {
	return &GenesisState{
		Params:        params,
		RewardRate:    rate,
		Coefficient:   coefficient,
		LastBlockPool: math.ZeroInt(),
	}
}

// DefaultGenesisState creates a default GenesisState object
func DefaultGenesisState() *GenesisState {
	return NewGenesisState(DefaultParams(), DefaultRewardRateInfo(), DefaultCoefficient)
}

// ValidateGenesis validates the provided genesis state to ensure the
// expected invariants holds.
func ValidateGenesis(data GenesisState) error {
	if err := data.Params.Validate(); err != nil {
		return errors.Wrap(ErrInvalidParams, err.Error())
	}
	if err := data.RewardRate.Validate(); err != nil {
		return err
	}
	if err := ValidateCoefficient(data.Coefficient); err != nil {
		return err
	}
	if data.LastBlockPool.IsNil() || data.LastBlockPool.IsNegative() {
		return errors.Wrap(ErrInvalidRewardAmount, "last block pool must be non-negative")
	}

	seen := make(map[string]bool, len(data.Rewards))
	for _, r := range data.Rewards {
		if seen[r.Account] {
			return fmt.Errorf("duplicate reward entry for %s", r.Account)
		}
		seen[r.Account] = true
		if r.Amount.IsNil() || r.Amount.IsNegative() {
			return errors.Wrapf(ErrInvalidRewardAmount, "%s: %s", r.Account, r.Amount)
		}
	}
	seen = make(map[string]bool, len(data.BlocksRewarded))
	for _, b := range data.BlocksRewarded {
		if seen[b.Account] {
			return fmt.Errorf("duplicate blocks rewarded entry for %s", b.Account)
		}
		seen[b.Account] = true
	}
	return nil
}
