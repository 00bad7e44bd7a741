package v2

import (
	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"

	peaqMath "github.com/peaqnetwork/peaq-network-node-sub001/math"
	"github.com/peaqnetwork/peaq-network-node-sub001/x/inflation/types"
)

// MigrateStore migrates the x/inflation state from version 1 to version 2.
// Version 1 predates the delayed token generation event: it stored neither
// the issuance base nor the initialization block. Both are backfilled when
// absent, so running the step twice changes nothing.
func MigrateStore(ctx sdk.Context, storeService store.KVStoreService, bankKeeper types.BankKeeper) error {
	ctx.Logger().Info("MIGRATION: Migrating x/inflation state from version 1 to version 2")

	st := runtime.KVStoreAdapter(storeService.OpenKVStore(ctx))

	if err := migrateTotalIssuance(ctx, st, bankKeeper); err != nil {
		return err
	}
	return migrateDoInitializeAt(st)
}

func migrateTotalIssuance(ctx sdk.Context, st storetypes.KVStore, bankKeeper types.BankKeeper) error {
	key := types.TotalIssuanceNumKey.Bytes()
	if st.Has(key) {
		return nil
	}

	paramsBytes := st.Get(types.ParamsKey.Bytes())
	if paramsBytes == nil {
		return errors.Wrapf(types.ErrNotFound, "parameters not found")
	}
	params, err := peaqMath.NewJSONValue[types.Params]().Decode(paramsBytes)
	if err != nil {
		return errors.Wrapf(err, "failed to unmarshal parameters")
	}

	supply := bankKeeper.GetSupply(ctx, params.MintDenom).Amount
	bz, err := sdk.IntValue.Encode(supply)
	if err != nil {
		return err
	}
	st.Set(key, bz)
	return nil
}

// a chain on version 1 was live from genesis, so initialization is immediate
func migrateDoInitializeAt(st storetypes.KVStore) error {
	key := types.DoInitializeAtKey.Bytes()
	if st.Has(key) {
		return nil
	}
	bz, err := collections.Uint64Value.Encode(0)
	if err != nil {
		return err
	}
	st.Set(key, bz)
	return nil
}
