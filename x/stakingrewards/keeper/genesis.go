package keeper

import (
	"context"

	"github.com/peaqnetwork/peaq-network-node-sub001/x/stakingrewards/types"
)

// InitGenesis new stakingrewards genesis
func (k Keeper) InitGenesis(ctx context.Context, data *types.GenesisState) error {
	if err := types.ValidateGenesis(*data); err != nil {
		return err
	}
	if err := k.Params.Set(ctx, data.Params); err != nil {
		return err
	}
	if err := k.RewardRate.Set(ctx, data.RewardRate); err != nil {
		return err
	}
	if err := k.Coefficient.Set(ctx, data.Coefficient); err != nil {
		return err
	}
	if err := k.LastBlockPool.Set(ctx, data.LastBlockPool); err != nil {
		return err
	}
	for _, r := range data.Rewards {
		if err := k.Rewards.Set(ctx, r.Account, r.Amount); err != nil {
			return err
		}
	}
	for _, b := range data.BlocksRewarded {
		if err := k.BlocksRewarded.Set(ctx, b.Account, b.Blocks); err != nil {
			return err
		}
	}
	return k.StorageVersion.Set(ctx, types.ConsensusVersion)
}

// ExportGenesis returns a GenesisState for a given context and keeper.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return nil, err
	}
	rate, err := k.RewardRate.Get(ctx)
	if err != nil {
		return nil, err
	}
	coefficient, err := k.Coefficient.Get(ctx)
	if err != nil {
		return nil, err
	}
	gs := types.NewGenesisState(params, rate, coefficient)
	if pool, err := k.LastBlockPool.Get(ctx); err == nil {
		gs.LastBlockPool = pool
	}

	iter, err := k.Rewards.Iterate(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		kv, err := iter.KeyValue()
		if err != nil {
			return nil, err
		}
		gs.Rewards = append(gs.Rewards, types.AccountReward{Account: kv.Key, Amount: kv.Value})
	}

	blocksIter, err := k.BlocksRewarded.Iterate(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer blocksIter.Close()
	for ; blocksIter.Valid(); blocksIter.Next() {
		kv, err := blocksIter.KeyValue()
		if err != nil {
			return nil, err
		}
		gs.BlocksRewarded = append(gs.BlocksRewarded, types.AccountBlocks{Account: kv.Key, Blocks: kv.Value})
	}
	return gs, nil
}
