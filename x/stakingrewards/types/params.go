package types

import (
	"errors"
	"strings"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/peaqnetwork/peaq-network-node-sub001/app/params"
)

type Params struct {
	// delegations below this earn nothing and do not dilute the others
	MinDelegatorStake math.Int `json:"min_delegator_stake"`
	RewardDenom       string   `json:"reward_denom"`
}

func NewParams(minDelegatorStake math.Int, rewardDenom string) Params {
	return Params{MinDelegatorStake: minDelegatorStake, RewardDenom: rewardDenom}
}

// DefaultParams returns default x/stakingrewards module parameters.
func DefaultParams() Params {
	return NewParams(math.NewIntWithDecimal(100, params.CoinExponent), params.BaseCoinUnit)
}

// Validate does the sanity check on the params.
func (p Params) Validate() error {
	if p.MinDelegatorStake.IsNil() || p.MinDelegatorStake.IsNegative() {
		return errors.New("min delegator stake must be non-negative")
	}
	if strings.TrimSpace(p.RewardDenom) == "" {
		return errors.New("reward denom cannot be blank")
	}
	return sdk.ValidateDenom(p.RewardDenom)
}
