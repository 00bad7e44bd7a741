package v2

import (
	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"

	peaqMath "github.com/peaqnetwork/peaq-network-node-sub001/math"
	"github.com/peaqnetwork/peaq-network-node-sub001/x/stakingrewards/types"
)

// MigrateStore migrates the x/stakingrewards state from version 1 to version
// 2. Version 1 chains ran before the split records were on chain. Each record
// is written with its default only when absent.
func MigrateStore(ctx sdk.Context, storeService store.KVStoreService) error {
	ctx.Logger().Info("MIGRATION: Migrating x/stakingrewards state from version 1 to version 2")

	st := runtime.KVStoreAdapter(storeService.OpenKVStore(ctx))

	if key := types.CoefficientKey.Bytes(); !st.Has(key) {
		bz, err := collections.Uint64Value.Encode(types.DefaultCoefficient)
		if err != nil {
			return err
		}
		st.Set(key, bz)
	}

	if key := types.RewardRateKey.Bytes(); !st.Has(key) {
		bz, err := peaqMath.NewJSONValue[types.RewardRateInfo]().Encode(types.DefaultRewardRateInfo())
		if err != nil {
			return err
		}
		st.Set(key, bz)
	}
	return nil
}
