// Package rewards splits a collator's per-block pot between the collator and
// the delegators backing it.
package rewards

import (
	"cosmossdk.io/math"

	"github.com/peaqnetwork/peaq-network-node-sub001/x/stakingrewards/types"
)

// DelegatorReward is one delegator's cut.
type DelegatorReward struct {
	Owner  string
	Amount math.Int
}

// RewardSplit is a collator's cut and its delegators' cuts, in candidate order.
type RewardSplit struct {
	Collator   math.Int
	Delegators []DelegatorReward
}

// Total is everything handed out. It never exceeds the amount split.
func (s RewardSplit) Total() math.Int {
	total := s.Collator
	for _, d := range s.Delegators {
		total = total.Add(d.Amount)
	}
	return total
}

// For returns the reward of owner, the collator or one of its delegators.
func (s RewardSplit) For(candidate types.Candidate, owner string) math.Int {
	if owner == candidate.Owner {
		return s.Collator
	}
	for _, d := range s.Delegators {
		if d.Owner == owner {
			return d.Amount
		}
	}
	return math.ZeroInt()
}

// Calculator is a reward split strategy.
type Calculator interface {
	// CollatorRewards splits issued between the collator and its delegators.
	CollatorRewards(candidate types.Candidate, issued math.Int) (RewardSplit, error)
	// DelegatorRewards returns only the delegators' cuts of issued.
	DelegatorRewards(candidate types.Candidate, issued math.Int) ([]DelegatorReward, error)
}

// New builds the calculator for strategy.
func New(strategy types.RewardStrategy, rate types.RewardRateInfo, coefficient uint64, minDelegatorStake math.Int) (Calculator, error) {
	switch strategy {
	case types.RewardStrategyFixedPercentage:
		calc, err := NewFixedPercentage(rate, minDelegatorStake)
		if err != nil {
			return nil, err
		}
		return calc, nil
	case types.RewardStrategyCoefficient:
		calc, err := NewCoefficient(coefficient, minDelegatorStake)
		if err != nil {
			return nil, err
		}
		return calc, nil
	default:
		return nil, strategy.Validate()
	}
}

// eligibleStake sums the delegations at or above min.
func eligibleStake(candidate types.Candidate, min math.Int) math.Int {
	sum := math.ZeroInt()
	for _, d := range candidate.Delegators {
		if isEligible(d, min) {
			sum = sum.Add(d.Amount)
		}
	}
	return sum
}

func isEligible(d types.Stake, min math.Int) bool {
	return d.Amount.IsPositive() && d.Amount.GTE(min)
}

// zeroSplit pays nobody, listing every delegator.
func zeroSplit(candidate types.Candidate) RewardSplit {
	out := RewardSplit{Collator: math.ZeroInt(), Delegators: make([]DelegatorReward, len(candidate.Delegators))}
	for i, d := range candidate.Delegators {
		out.Delegators[i] = DelegatorReward{Owner: d.Owner, Amount: math.ZeroInt()}
	}
	return out
}

// mulDiv returns floor(x * num / den). den must be positive.
func mulDiv(x, num, den math.Int) math.Int {
	return x.Mul(num).Quo(den)
}

func checkInputs(candidate types.Candidate, issued math.Int) error {
	if issued.IsNil() || issued.IsNegative() {
		return types.ErrInvalidRewardAmount.Wrapf("issued %s", issued)
	}
	return candidate.Validate()
}
