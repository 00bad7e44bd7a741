package v2

import (
	"encoding/json"

	"cosmossdk.io/core/store"
	"cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"

	peaqMath "github.com/peaqnetwork/peaq-network-node-sub001/math"
	"github.com/peaqnetwork/peaq-network-node-sub001/x/blockreward/types"
)

const leaseFundField = "parachain_lease_fund_percent"

// MigrateStore migrates the x/blockreward state from version 1 to version 2.
// Version 1 split rewards five ways. The stored split is rewritten with a
// zero lease fund share only when it lacks that share, so a split already in
// the new layout is left alone.
func MigrateStore(ctx sdk.Context, storeService store.KVStoreService) error {
	ctx.Logger().Info("MIGRATION: Migrating x/blockreward state from version 1 to version 2")

	st := runtime.KVStoreAdapter(storeService.OpenKVStore(ctx))
	key := types.DistributionConfigKey.Bytes()
	bz := st.Get(key)
	if bz == nil {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(bz, &fields); err != nil {
		return errors.Wrapf(err, "failed to read stored distribution config")
	}
	if _, ok := fields[leaseFundField]; ok {
		return nil
	}

	old, err := peaqMath.NewJSONValue[types.DistributionConfigV1]().Decode(bz)
	if err != nil {
		return err
	}
	config := old.Upgrade()
	if err := config.Validate(); err != nil {
		return err
	}
	out, err := peaqMath.NewJSONValue[types.DistributionConfig]().Encode(config)
	if err != nil {
		return err
	}
	st.Set(key, out)
	return nil
}
