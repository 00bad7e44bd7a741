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
	"github.com/peaqnetwork/peaq-network-node-sub001/x/stakingrewards/rewards"
	"github.com/peaqnetwork/peaq-network-node-sub001/x/stakingrewards/types"
)

type Keeper struct {
	storeService storetypes.KVStoreService
	addressCodec address.Codec
	ledger       types.StakingLedger
	bankKeeper   types.BankKeeper
	strategy     types.RewardStrategy

	// the address allowed to send privileged messages, usually the gov module account
	authority string

	Schema      collections.Schema
	Params      collections.Item[types.Params]
	RewardRate  collections.Item[types.RewardRateInfo]
	Coefficient collections.Item[uint64]
	// collator pot funded in the latest block
	LastBlockPool collections.Item[math.Int]
	// settled, unpaid rewards per account
	Rewards collections.Map[string, math.Int]
	// authored block count each account was last settled at
	BlocksRewarded collections.Map[string, uint64]
	StorageVersion collections.Item[uint64]
}

// NewKeeper creates a new stakingrewards Keeper. The reward strategy cannot be
// changed afterwards.
func NewKeeper(
	storeService storetypes.KVStoreService,
	addressCodec address.Codec,
	ledger types.StakingLedger,
	bk types.BankKeeper,
	strategy types.RewardStrategy,
	authority string,
) Keeper {
	if err := strategy.Validate(); err != nil {
		panic(err)
	}

	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		storeService:   storeService,
		addressCodec:   addressCodec,
		ledger:         ledger,
		bankKeeper:     bk,
		strategy:       strategy,
		authority:      authority,
		Params:         collections.NewItem(sb, types.ParamsKey, "params", peaqMath.NewJSONValue[types.Params]()),
		RewardRate:     collections.NewItem(sb, types.RewardRateKey, "reward_rate", peaqMath.NewJSONValue[types.RewardRateInfo]()),
		Coefficient:    collections.NewItem(sb, types.CoefficientKey, "coefficient", collections.Uint64Value),
		LastBlockPool:  collections.NewItem(sb, types.LastBlockPoolKey, "last_block_pool", sdk.IntValue),
		Rewards:        collections.NewMap(sb, types.RewardsKey, "rewards", collections.StringKey, sdk.IntValue),
		BlocksRewarded: collections.NewMap(sb, types.BlocksRewardedKey, "blocks_rewarded", collections.StringKey, collections.Uint64Value),
		StorageVersion: collections.NewItem(sb, types.StorageVersionKey, "storage_version", collections.Uint64Value),
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

func (k Keeper) Strategy() types.RewardStrategy {
	return k.strategy
}

// Calculator builds the configured strategy from the stored rates.
func (k Keeper) Calculator(ctx context.Context) (rewards.Calculator, error) {
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
	return rewards.New(k.strategy, rate, coefficient, params.MinDelegatorStake)
}

func (k Keeper) SetRewardRate(ctx context.Context, rate types.RewardRateInfo) error {
	if err := rate.Validate(); err != nil {
		return err
	}
	if err := k.RewardRate.Set(ctx, rate); err != nil {
		return err
	}
	types.EmitRewardRateChangedEvent(sdk.UnwrapSDKContext(ctx), rate)
	return nil
}

func (k Keeper) SetCoefficient(ctx context.Context, coefficient uint64) error {
	if err := types.ValidateCoefficient(coefficient); err != nil {
		return err
	}
	if err := k.Coefficient.Set(ctx, coefficient); err != nil {
		return err
	}
	types.EmitCoefficientChangedEvent(sdk.UnwrapSDKContext(ctx), coefficient)
	return nil
}
