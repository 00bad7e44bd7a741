package keeper

import (
	"context"

	"github.com/peaqnetwork/peaq-network-node-sub001/x/blockreward/types"
)

// InitGenesis new blockreward genesis
func (k Keeper) InitGenesis(ctx context.Context, data *types.GenesisState) error {
	if err := types.ValidateGenesis(*data); err != nil {
		return err
	}
	if err := k.Params.Set(ctx, data.Params); err != nil {
		return err
	}
	if err := k.DistributionConfig.Set(ctx, data.DistributionConfig); err != nil {
		return err
	}
	if err := k.HardCap.Set(ctx, data.HardCap); err != nil {
		return err
	}
	if err := k.BlockIssueReward.Set(ctx, data.BlockIssueReward); err != nil {
		return err
	}
	return k.StorageVersion.Set(ctx, types.ConsensusVersion)
}

// ExportGenesis returns a GenesisState for a given context and keeper.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return nil, err
	}
	config, err := k.DistributionConfig.Get(ctx)
	if err != nil {
		return nil, err
	}
	hardCap, err := k.HardCap.Get(ctx)
	if err != nil {
		return nil, err
	}
	reward, err := k.BlockIssueReward.Get(ctx)
	if err != nil {
		return nil, err
	}
	return types.NewGenesisState(params, config, hardCap, reward), nil
}
