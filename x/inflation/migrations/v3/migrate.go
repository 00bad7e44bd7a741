package v3

import (
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"

	peaqMath "github.com/peaqnetwork/peaq-network-node-sub001/math"
	"github.com/peaqnetwork/peaq-network-node-sub001/x/inflation/types"
)

// MigrateStore migrates the x/inflation state from version 2 to version 3:
// the move from twelve to six second blocks. Every figure expressed in blocks
// is stretched by the ratio of the block times and every per-block amount is
// shrunk by it, so the yearly schedule keeps its shape.
//
// The step is guarded by the block time recorded in the params. Once it reads
// the target the step returns without writing.
func MigrateStore(ctx sdk.Context, storeService store.KVStoreService, blockRewardKeeper types.BlockRewardKeeper) error {
	ctx.Logger().Info("MIGRATION: Migrating x/inflation state from version 2 to version 3")

	st := runtime.KVStoreAdapter(storeService.OpenKVStore(ctx))
	paramsCodec := peaqMath.NewJSONValue[types.Params]()

	paramsBytes := st.Get(types.ParamsKey.Bytes())
	if paramsBytes == nil {
		return errors.Wrapf(types.ErrNotFound, "parameters not found")
	}
	params, err := paramsCodec.Decode(paramsBytes)
	if err != nil {
		return errors.Wrapf(err, "failed to unmarshal parameters")
	}

	oldBlockTime := params.EffectiveBlockTimeMs()
	if oldBlockTime == types.DefaultBlockTimeMs {
		ctx.Logger().Info("MIGRATION: x/inflation already on the target block time, skipping", "block_time_ms", oldBlockTime)
		return nil
	}
	if oldBlockTime%types.DefaultBlockTimeMs != 0 {
		return fmt.Errorf("block time %dms is not a multiple of %dms", oldBlockTime, types.DefaultBlockTimeMs)
	}
	factor := oldBlockTime / types.DefaultBlockTimeMs
	height := uint64(ctx.BlockHeight())

	params.BlocksPerYear *= factor
	params.BlockTimeMs = types.DefaultBlockTimeMs
	if !params.BlockRewardBeforeInitialize.IsNil() {
		params.BlockRewardBeforeInitialize = params.BlockRewardBeforeInitialize.QuoRaw(int64(factor))
	}
	bz, err := paramsCodec.Encode(params)
	if err != nil {
		return err
	}
	st.Set(types.ParamsKey.Bytes(), bz)

	if err := stretchBlock(st, types.DoRecalculationAtKey.Bytes(), height, factor); err != nil {
		return errors.Wrap(err, "do recalculation at")
	}
	if err := stretchBlock(st, types.DoInitializeAtKey.Bytes(), height, factor); err != nil {
		return errors.Wrap(err, "do initialize at")
	}

	reward, err := shrinkAmount(st, types.BlockRewardsKey.Bytes(), factor)
	if err != nil {
		return errors.Wrap(err, "block rewards")
	}
	if reward.IsNil() {
		return nil
	}
	// the block reward module mints this value before the schedule runs again
	return blockRewardKeeper.SetBlockIssueReward(ctx, reward)
}

// stretchBlock multiplies the distance between height and a future block by
// factor. Absent values and blocks already passed are left alone.
func stretchBlock(st storetypes.KVStore, key []byte, height, factor uint64) error {
	bz := st.Get(key)
	if bz == nil {
		return nil
	}
	at, err := collections.Uint64Value.Decode(bz)
	if err != nil {
		return err
	}
	if at <= height {
		return nil
	}
	stretched := height + (at-height)*factor
	out, err := collections.Uint64Value.Encode(stretched)
	if err != nil {
		return err
	}
	st.Set(key, out)
	return nil
}

// shrinkAmount divides a stored amount by factor and returns the new value,
// or a nil Int when nothing is stored.
func shrinkAmount(st storetypes.KVStore, key []byte, factor uint64) (math.Int, error) {
	bz := st.Get(key)
	if bz == nil {
		return math.Int{}, nil
	}
	amount, err := sdk.IntValue.Decode(bz)
	if err != nil {
		return math.Int{}, err
	}
	shrunk := amount.QuoRaw(int64(factor))
	out, err := sdk.IntValue.Encode(shrunk)
	if err != nil {
		return math.Int{}, err
	}
	st.Set(key, out)
	return shrunk, nil
}
