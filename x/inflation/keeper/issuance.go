package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/peaqnetwork/peaq-network-node-sub001/inflation"
	peaqMath "github.com/peaqnetwork/peaq-network-node-sub001/math"
)

// IssueForBlock returns the amount to mint for one block: the live inflation
// rate applied to the total issuance, spread over a year of blocks, and the
// fixed pre-initialization reward while the schedule has not started.
func (k Keeper) IssueForBlock(ctx context.Context) (math.Int, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return math.Int{}, err
	}
	initialized, err := k.IsInitialized(ctx)
	if err != nil {
		return math.Int{}, err
	}
	if !initialized {
		return params.BlockRewardBeforeInitialize, nil
	}

	totalIssuance, err := k.TotalIssuanceNum.Get(ctx)
	if err != nil {
		return math.Int{}, err
	}
	live, err := k.InflationParameters.Get(ctx)
	if err != nil {
		return math.Int{}, err
	}
	return inflation.BlockIssuance(totalIssuance, live.InflationRate, params.BlocksPerYear), nil
}

// AnnualInflation is the cached block reward extrapolated over a year, as a
// percentage of the current supply.
func (k Keeper) AnnualInflation(ctx context.Context) (peaqMath.Dec, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return peaqMath.Dec{}, err
	}
	reward, err := k.BlockRewards.Get(ctx)
	if err != nil {
		return peaqMath.Dec{}, err
	}
	return inflation.AnnualInflationPercent(reward, params.BlocksPerYear, k.GetTotalSupply(ctx, params.MintDenom))
}
