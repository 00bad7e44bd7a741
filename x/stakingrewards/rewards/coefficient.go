package rewards

import (
	"cosmossdk.io/math"

	"github.com/peaqnetwork/peaq-network-node-sub001/x/stakingrewards/types"
)

// Coefficient weighs the collator's own bond c times against its eligible
// delegations and pays everyone pro rata to weighted stake:
//
//	collator  = issued * c*collator_stake / (delegator_sum + c*collator_stake)
//	delegator = issued * stake            / (delegator_sum + c*collator_stake)
type Coefficient struct {
	coefficient       math.Int
	minDelegatorStake math.Int
}

var _ Calculator = Coefficient{}

func NewCoefficient(coefficient uint64, minDelegatorStake math.Int) (Coefficient, error) {
	if err := types.ValidateCoefficient(coefficient); err != nil {
		return Coefficient{}, err
	}
	if minDelegatorStake.IsNil() {
		minDelegatorStake = math.ZeroInt()
	}
	return Coefficient{coefficient: math.NewIntFromUint64(coefficient), minDelegatorStake: minDelegatorStake}, nil
}

func (c Coefficient) weights(candidate types.Candidate) (collatorWeight, denominator math.Int) {
	collatorWeight = candidate.Stake.Mul(c.coefficient)
	denominator = eligibleStake(candidate, c.minDelegatorStake).Add(collatorWeight)
	return collatorWeight, denominator
}

func (c Coefficient) CollatorRewards(candidate types.Candidate, issued math.Int) (RewardSplit, error) {
	if err := checkInputs(candidate, issued); err != nil {
		return RewardSplit{}, err
	}

	collatorWeight, denominator := c.weights(candidate)
	if denominator.IsZero() {
		return zeroSplit(candidate), nil
	}

	delegators, err := c.DelegatorRewards(candidate, issued)
	if err != nil {
		return RewardSplit{}, err
	}
	return RewardSplit{
		Collator:   mulDiv(issued, collatorWeight, denominator),
		Delegators: delegators,
	}, nil
}

func (c Coefficient) DelegatorRewards(candidate types.Candidate, issued math.Int) ([]DelegatorReward, error) {
	if err := checkInputs(candidate, issued); err != nil {
		return nil, err
	}

	out := zeroSplit(candidate).Delegators
	_, denominator := c.weights(candidate)
	if denominator.IsZero() {
		return out, nil
	}
	for i, d := range candidate.Delegators {
		if isEligible(d, c.minDelegatorStake) {
			out[i].Amount = mulDiv(issued, d.Amount, denominator)
		}
	}
	return out, nil
}
