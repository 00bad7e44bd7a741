package types

import (
	"errors"
	"strings"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/peaqnetwork/peaq-network-node-sub001/app/params"
)

type Params struct {
	MintDenom string `json:"mint_denom"`
}

func NewParams(mintDenom string) Params {
	return Params{MintDenom: mintDenom}
}

// DefaultParams returns default x/blockreward module parameters.
func DefaultParams() Params {
	return NewParams(params.BaseCoinUnit)
}

// Validate does the sanity check on the params.
func (p Params) Validate() error {
	if strings.TrimSpace(p.MintDenom) == "" {
		return errors.New("mint denom cannot be blank")
	}
	return sdk.ValidateDenom(p.MintDenom)
}

// 10 billion peaq
func DefaultHardCap() math.Int {
	return math.NewIntWithDecimal(10_000_000_000, params.CoinExponent)
}

// ~79.1 peaq, the reward paid until the inflation schedule takes over
func DefaultBlockIssueReward() math.Int {
	reward, ok := math.NewIntFromString("79098670000000000000")
	if !ok {
		panic("failed to parse default block issue reward")
	}
	return reward
}
