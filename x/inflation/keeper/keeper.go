package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	storetypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	peaqMath "github.com/peaqnetwork/peaq-network-node-sub001/math"
	"github.com/peaqnetwork/peaq-network-node-sub001/x/inflation/types"
)

// Keeper of the inflation store
type Keeper struct {
	storeService      storetypes.KVStoreService
	bankKeeper        types.BankKeeper
	blockRewardKeeper types.BlockRewardKeeper

	// the address allowed to send privileged messages, usually the gov module account
	authority string

	Schema                 collections.Schema
	Params                 collections.Item[types.Params]
	InflationConfiguration collections.Item[types.InflationConfiguration]
	InflationParameters    collections.Item[types.InflationParameters]
	CurrentYear            collections.Item[uint64]
	DoRecalculationAt      collections.Item[uint64]
	DoInitializeAt         collections.Item[uint64]
	TotalIssuanceNum       collections.Item[math.Int]
	BlockRewards           collections.Item[math.Int]
	StorageVersion         collections.Item[uint64]
}

// NewKeeper creates a new inflation Keeper instance
func NewKeeper(
	storeService storetypes.KVStoreService,
	bk types.BankKeeper,
	brk types.BlockRewardKeeper,
	authority string,
) Keeper {
	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		storeService:           storeService,
		bankKeeper:             bk,
		blockRewardKeeper:      brk,
		authority:              authority,
		Params:                 collections.NewItem(sb, types.ParamsKey, "params", peaqMath.NewJSONValue[types.Params]()),
		InflationConfiguration: collections.NewItem(sb, types.InflationConfigurationKey, "inflation_configuration", peaqMath.NewJSONValue[types.InflationConfiguration]()),
		InflationParameters:    collections.NewItem(sb, types.InflationParametersKey, "inflation_parameters", peaqMath.NewJSONValue[types.InflationParameters]()),
		CurrentYear:            collections.NewItem(sb, types.CurrentYearKey, "current_year", collections.Uint64Value),
		DoRecalculationAt:      collections.NewItem(sb, types.DoRecalculationAtKey, "do_recalculation_at", collections.Uint64Value),
		DoInitializeAt:         collections.NewItem(sb, types.DoInitializeAtKey, "do_initialize_at", collections.Uint64Value),
		TotalIssuanceNum:       collections.NewItem(sb, types.TotalIssuanceNumKey, "total_issuance_num", sdk.IntValue),
		BlockRewards:           collections.NewItem(sb, types.BlockRewardsKey, "block_rewards", sdk.IntValue),
		StorageVersion:         collections.NewItem(sb, types.StorageVersionKey, "storage_version", collections.Uint64Value),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema
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

// Params getter
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	return k.Params.Get(ctx)
}

// GetTotalSupply returns the bank supply of the mint denom.
func (k Keeper) GetTotalSupply(ctx context.Context, mintDenom string) math.Int {
	return k.bankKeeper.GetSupply(ctx, mintDenom).Amount
}

// getOrZero reads a uint64 item, treating an absent value as zero.
func getOrZero(ctx context.Context, item collections.Item[uint64]) (uint64, error) {
	v, err := item.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return 0, nil
	}
	return v, err
}
