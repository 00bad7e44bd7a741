package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/peaqnetwork/peaq-network-node-sub001/metrics"
	"github.com/peaqnetwork/peaq-network-node-sub001/x/stakingrewards/types"
)

// accrual is what an account earns per authored block and how many authored
// blocks it has not been paid for.
type accrual struct {
	perBlock   math.Int
	authored   uint64
	rewarded   uint64
	unrewarded uint64
	earning    bool
}

func saturatingSub(a, b uint64) uint64 {
	if b >= a {
		return 0
	}
	return a - b
}

func getOr[V any](ctx context.Context, m collections.Map[string, V], key string, fallback V) (V, error) {
	v, err := m.Get(ctx, key)
	if errors.Is(err, collections.ErrNotFound) {
		return fallback, nil
	}
	return v, err
}

// earningCollator returns the candidate account earns through: the one it
// delegates to, or its own. found is false when account is neither.
func (k Keeper) earningCollator(ctx context.Context, account string) (string, bool, error) {
	delegatedTo, isDelegator, err := k.ledger.GetDelegatorCollator(ctx, account)
	if err != nil {
		return "", false, err
	}
	if isDelegator {
		return delegatedTo, true, nil
	}
	_, found, err := k.ledger.GetCandidate(ctx, account)
	if err != nil {
		return "", false, err
	}
	return account, found, nil
}

// accrualOf resolves the candidate account earns through, either its own or
// the one it delegates to. Accounts that are neither, and collators that are
// not active, do not earn.
func (k Keeper) accrualOf(ctx context.Context, account string) (accrual, error) {
	collator, found, err := k.earningCollator(ctx, account)
	if err != nil || !found {
		return accrual{}, err
	}
	candidate, found, err := k.ledger.GetCandidate(ctx, collator)
	if err != nil {
		return accrual{}, err
	}
	if !found || !candidate.IsActive() {
		return accrual{}, nil
	}

	authored, err := k.ledger.BlocksAuthored(ctx, collator)
	if err != nil {
		return accrual{}, err
	}
	rewarded, err := getOr(ctx, k.BlocksRewarded, account, 0)
	if err != nil {
		return accrual{}, err
	}

	pool, err := k.LastBlockPool.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		pool = math.ZeroInt()
	} else if err != nil {
		return accrual{}, err
	}

	calc, err := k.Calculator(ctx)
	if err != nil {
		return accrual{}, err
	}
	split, err := calc.CollatorRewards(candidate, pool)
	if err != nil {
		return accrual{}, err
	}

	return accrual{
		perBlock:   split.For(candidate, account),
		authored:   authored,
		rewarded:   rewarded,
		unrewarded: saturatingSub(authored, rewarded),
		earning:    true,
	}, nil
}

// UnclaimedRewards returns the settled balance of account plus what it
// accrued since it was last settled. It writes nothing.
func (k Keeper) UnclaimedRewards(ctx context.Context, account string) (math.Int, error) {
	owed, _, err := k.unclaimed(ctx, account)
	return owed, err
}

func (k Keeper) unclaimed(ctx context.Context, account string) (math.Int, accrual, error) {
	stored, err := getOr(ctx, k.Rewards, account, math.ZeroInt())
	if err != nil {
		return math.Int{}, accrual{}, err
	}
	acc, err := k.accrualOf(ctx, account)
	if err != nil {
		return math.Int{}, accrual{}, err
	}
	if !acc.earning || acc.unrewarded == 0 {
		return stored, acc, nil
	}
	return stored.Add(acc.perBlock.Mul(math.NewIntFromUint64(acc.unrewarded))), acc, nil
}

// SettleRewards folds accrued rewards into the stored balance and marks every
// block authored so far as rewarded. It returns the stored balance.
func (k Keeper) SettleRewards(ctx context.Context, account string) (math.Int, error) {
	owed, acc, err := k.unclaimed(ctx, account)
	if err != nil {
		return math.Int{}, err
	}
	if owed.IsZero() {
		err = k.Rewards.Remove(ctx, account)
	} else {
		err = k.Rewards.Set(ctx, account, owed)
	}
	if err != nil {
		return math.Int{}, err
	}
	// the counter never moves backwards
	blocks := acc.rewarded
	if acc.earning && acc.authored > acc.rewarded {
		if err := k.BlocksRewarded.Set(ctx, account, acc.authored); err != nil {
			return math.Int{}, err
		}
		blocks = acc.authored
	}
	types.EmitRewardsSettledEvent(sdk.UnwrapSDKContext(ctx), account, owed, blocks)
	return owed, nil
}

// ClaimRewards settles account and pays out its whole balance from the
// module account.
func (k Keeper) ClaimRewards(ctx context.Context, account string) (math.Int, error) {
	addr, err := k.addressCodec.StringToBytes(account)
	if err != nil {
		return math.Int{}, errorsmod.Wrapf(types.ErrInvalidAddress, "%s: %v", account, err)
	}

	owed, err := k.SettleRewards(ctx, account)
	if err != nil {
		return math.Int{}, err
	}
	if !owed.IsPositive() {
		return math.Int{}, errorsmod.Wrapf(types.ErrNoUnclaimedRewards, "account %s", account)
	}

	params, err := k.Params.Get(ctx)
	if err != nil {
		return math.Int{}, err
	}
	coins := sdk.NewCoins(sdk.NewCoin(params.RewardDenom, owed))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, sdk.AccAddress(addr), coins); err != nil {
		return math.Int{}, err
	}
	if err := k.Rewards.Remove(ctx, account); err != nil {
		return math.Int{}, err
	}

	metrics.IncrRewardClaim(k.strategy.String())
	k.Logger(ctx).Info("staking rewards claimed", "account", account, "amount", owed.String())
	types.EmitRewardsClaimedEvent(sdk.UnwrapSDKContext(ctx), account, owed)
	return owed, nil
}
