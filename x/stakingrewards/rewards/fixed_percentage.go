package rewards

import (
	"cosmossdk.io/math"

	"github.com/peaqnetwork/peaq-network-node-sub001/x/stakingrewards/types"
)

// FixedPercentage pays the collator a flat CollatorRate of the pot and shares
// DelegatorRate between eligible delegators pro rata to stake.
type FixedPercentage struct {
	rate              types.RewardRateInfo
	minDelegatorStake math.Int
}

var _ Calculator = FixedPercentage{}

func NewFixedPercentage(rate types.RewardRateInfo, minDelegatorStake math.Int) (FixedPercentage, error) {
	if err := rate.Validate(); err != nil {
		return FixedPercentage{}, err
	}
	if minDelegatorStake.IsNil() {
		minDelegatorStake = math.ZeroInt()
	}
	return FixedPercentage{rate: rate, minDelegatorStake: minDelegatorStake}, nil
}

func (f FixedPercentage) CollatorRewards(candidate types.Candidate, issued math.Int) (RewardSplit, error) {
	if err := checkInputs(candidate, issued); err != nil {
		return RewardSplit{}, err
	}

	eligible := eligibleStake(candidate, f.minDelegatorStake)
	if candidate.Stake.Add(eligible).IsZero() {
		return zeroSplit(candidate), nil
	}
	// nobody to share with, the collator keeps the whole pot
	if eligible.IsZero() {
		out := zeroSplit(candidate)
		out.Collator = issued
		return out, nil
	}

	delegators, err := f.DelegatorRewards(candidate, issued)
	if err != nil {
		return RewardSplit{}, err
	}
	return RewardSplit{
		Collator:   f.rate.CollatorRate.MulInt(issued),
		Delegators: delegators,
	}, nil
}

func (f FixedPercentage) DelegatorRewards(candidate types.Candidate, issued math.Int) ([]DelegatorReward, error) {
	if err := checkInputs(candidate, issued); err != nil {
		return nil, err
	}

	out := zeroSplit(candidate).Delegators
	eligible := eligibleStake(candidate, f.minDelegatorStake)
	if eligible.IsZero() {
		return out, nil
	}

	pool := f.rate.DelegatorRate.MulInt(issued)
	for i, d := range candidate.Delegators {
		if isEligible(d, f.minDelegatorStake) {
			out[i].Amount = mulDiv(pool, d.Amount, eligible)
		}
	}
	return out, nil
}
