package types

import (
	"cosmossdk.io/errors"

	peaqMath "github.com/peaqnetwork/peaq-network-node-sub001/math"
)

// RewardRateInfo splits the collator pot between a collator and its
// delegators under the fixed percentage strategy.
type RewardRateInfo struct {
	CollatorRate  peaqMath.Perbill `json:"collator_rate"`
	DelegatorRate peaqMath.Perbill `json:"delegator_rate"`
}

func NewRewardRateInfo(collatorRate, delegatorRate peaqMath.Perbill) RewardRateInfo {
	return RewardRateInfo{CollatorRate: collatorRate, DelegatorRate: delegatorRate}
}

func DefaultRewardRateInfo() RewardRateInfo {
	return NewRewardRateInfo(peaqMath.PerbillFromPercent(30), peaqMath.PerbillFromPercent(70))
}

func (r RewardRateInfo) Validate() error {
	if !peaqMath.SumExactlyOne(r.CollatorRate, r.DelegatorRate) {
		return errors.Wrapf(ErrInvalidRateConfig, "collator %s, delegator %s", r.CollatorRate, r.DelegatorRate)
	}
	return nil
}

// DefaultCoefficient weighs a collator's own bond eight times a delegation.
const DefaultCoefficient uint64 = 8

func ValidateCoefficient(c uint64) error {
	if c == 0 {
		return errors.Wrap(ErrInvalidCoefficient, "coefficient must be at least one")
	}
	return nil
}

// RewardStrategy selects how the collator pot is split. It is fixed when the
// keeper is built.
type RewardStrategy int32

const (
	RewardStrategyFixedPercentage RewardStrategy = iota
	RewardStrategyCoefficient
)

func (s RewardStrategy) String() string {
	switch s {
	case RewardStrategyFixedPercentage:
		return "fixed_percentage"
	case RewardStrategyCoefficient:
		return "coefficient"
	default:
		return "unknown"
	}
}

func (s RewardStrategy) Validate() error {
	switch s {
	case RewardStrategyFixedPercentage, RewardStrategyCoefficient:
		return nil
	default:
		return errors.Wrapf(ErrUnknownStrategy, "%d", s)
	}
}
