package keeper

import (
	"context"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	storetypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	peaqMath "github.com/peaqnetwork/peaq-network-node-sub001/math"
	"github.com/peaqnetwork/peaq-network-node-sub001/x/blockreward/types"
)

// Keeper of the blockreward store
type Keeper struct {
	storeService  storetypes.KVStoreService
	addressCodec  address.Codec
	bankKeeper    types.BankKeeper
	beneficiaries types.Beneficiaries
	hooks         types.CollatorPotHooks

	// the address allowed to send privileged messages, usually the gov module account
	authority string

	Schema             collections.Schema
	Params             collections.Item[types.Params]
	DistributionConfig collections.Item[types.DistributionConfig]
	HardCap            collections.Item[math.Int]
	BlockIssueReward   collections.Item[math.Int]
	StorageVersion     collections.Item[uint64]
}

// NewKeeper creates a new blockreward Keeper instance
func NewKeeper(
	storeService storetypes.KVStoreService,
	addressCodec address.Codec,
	bk types.BankKeeper,
	beneficiaries types.Beneficiaries,
	authority string,
) Keeper {
	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		storeService:       storeService,
		addressCodec:       addressCodec,
		bankKeeper:         bk,
		beneficiaries:      beneficiaries,
		authority:          authority,
		Params:             collections.NewItem(sb, types.ParamsKey, "params", peaqMath.NewJSONValue[types.Params]()),
		DistributionConfig: collections.NewItem(sb, types.DistributionConfigKey, "distribution_config", peaqMath.NewJSONValue[types.DistributionConfig]()),
		HardCap:            collections.NewItem(sb, types.HardCapKey, "hard_cap", sdk.IntValue),
		BlockIssueReward:   collections.NewItem(sb, types.BlockIssueRewardKey, "block_issue_reward", sdk.IntValue),
		StorageVersion:     collections.NewItem(sb, types.StorageVersionKey, "storage_version", collections.Uint64Value),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema
	return k
}

// SetHooks sets the collator pot receiver. It can only be called once.
func (k *Keeper) SetHooks(h types.CollatorPotHooks) *Keeper {
	if k.hooks != nil {
		panic("cannot set blockreward hooks twice")
	}
	k.hooks = h
	return k
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}

func (k Keeper) GetStorageService() storetypes.KVStoreService {
	return k.storeService
}

func (k Keeper) GetAuthority() string {
	return k.authority
}

func (k Keeper) GetBeneficiaries() types.Beneficiaries {
	return k.beneficiaries
}

// Params getter
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	return k.Params.Get(ctx)
}
