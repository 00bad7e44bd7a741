package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/peaqnetwork/peaq-network-node-sub001/x/inflation/types"
)

// InitGenesis new inflation genesis
func (k Keeper) InitGenesis(ctx context.Context, data *types.GenesisState) error {
	if err := types.ValidateGenesis(*data); err != nil {
		return err
	}
	if err := k.Params.Set(ctx, data.Params); err != nil {
		return err
	}
	if err := k.InflationConfiguration.Set(ctx, data.InflationConfiguration); err != nil {
		return err
	}
	if err := k.InflationParameters.Set(ctx, data.InflationParameters); err != nil {
		return err
	}
	if err := k.CurrentYear.Set(ctx, data.CurrentYear); err != nil {
		return err
	}
	if err := k.DoRecalculationAt.Set(ctx, data.DoRecalculationAt); err != nil {
		return err
	}
	if err := k.DoInitializeAt.Set(ctx, data.DoInitializeAt); err != nil {
		return err
	}
	if err := k.TotalIssuanceNum.Set(ctx, data.TotalIssuanceNum); err != nil {
		return err
	}

	// the cache always reflects the state just written
	reward, err := k.IssueForBlock(ctx)
	if err != nil {
		return err
	}
	if err := k.BlockRewards.Set(ctx, reward); err != nil {
		return err
	}

	// a fresh chain starts on the latest storage layout
	return k.StorageVersion.Set(ctx, types.ConsensusVersion)
}

// ExportGenesis returns a GenesisState for a given context and keeper.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return nil, err
	}
	config, err := k.InflationConfiguration.Get(ctx)
	if err != nil {
		return nil, err
	}
	live, err := k.InflationParameters.Get(ctx)
	if err != nil {
		return nil, err
	}
	year, err := getOrZero(ctx, k.CurrentYear)
	if err != nil {
		return nil, err
	}
	doRecalculationAt, err := getOrZero(ctx, k.DoRecalculationAt)
	if err != nil {
		return nil, err
	}
	doInitializeAt, err := getOrZero(ctx, k.DoInitializeAt)
	if err != nil {
		return nil, err
	}
	totalIssuance, err := k.TotalIssuanceNum.Get(ctx)
	if err != nil {
		return nil, err
	}
	blockRewards, err := k.BlockRewards.Get(ctx)
	if err != nil {
		blockRewards = math.ZeroInt()
	}

	return &types.GenesisState{
		Params:                 params,
		InflationConfiguration: config,
		InflationParameters:    live,
		CurrentYear:            year,
		DoRecalculationAt:      doRecalculationAt,
		DoInitializeAt:         doInitializeAt,
		TotalIssuanceNum:       totalIssuance,
		BlockRewards:           blockRewards,
	}, nil
}
