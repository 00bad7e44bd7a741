package blockreward

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/peaqnetwork/peaq-network-node-sub001/x/blockreward/keeper"
)

// BeginBlocker upgrades the store if needed, then pays out this block's
// reward. The payout runs on a cache context so a failed transfer leaves
// no partial mint.
func BeginBlocker(ctx context.Context, k keeper.Keeper) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if _, err := keeper.NewMigrator(k).OnRuntimeUpgrade(sdkCtx); err != nil {
		return err
	}

	cacheCtx, write := sdkCtx.CacheContext()
	if _, err := k.DistributeBlockReward(cacheCtx); err != nil {
		return err
	}
	write()
	return nil
}
