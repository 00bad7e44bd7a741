package inflation

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/peaqnetwork/peaq-network-node-sub001/x/inflation/keeper"
)

func BeginBlocker(ctx context.Context, k keeper.Keeper) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	_, err := keeper.NewMigrator(k).OnRuntimeUpgrade(sdkCtx)
	return err
}

// EndBlocker runs the schedule on a cache context, so a failure part way
// leaves the store as it was.
func EndBlocker(ctx context.Context, k keeper.Keeper) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()
	if _, err := k.AdvanceSchedule(cacheCtx); err != nil {
		return err
	}
	write()
	return nil
}
