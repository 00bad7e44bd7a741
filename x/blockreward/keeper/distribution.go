package keeper

import (
	"context"
	"time"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/peaqnetwork/peaq-network-node-sub001/metrics"
	"github.com/peaqnetwork/peaq-network-node-sub001/x/blockreward/types"
)

// GetDistributionConfig returns the stored split.
func (k Keeper) GetDistributionConfig(ctx context.Context) (types.DistributionConfig, error) {
	return k.DistributionConfig.Get(ctx)
}

// SetDistributionConfig replaces the split as a whole. An inconsistent
// config is rejected and the stored one is kept.
func (k Keeper) SetDistributionConfig(ctx context.Context, config types.DistributionConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	if err := k.DistributionConfig.Set(ctx, config); err != nil {
		return err
	}
	types.EmitDistributionConfigChangedEvent(sdk.UnwrapSDKContext(ctx), config)
	return nil
}

// SetBlockIssueReward records the amount minted for every following block.
// The inflation schedule calls it each block; governance may call it directly
// on chains without a schedule.
func (k Keeper) SetBlockIssueReward(ctx context.Context, amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return errors.Wrapf(types.ErrInvalidAmount, "block issue reward %s", amount)
	}
	return k.BlockIssueReward.Set(ctx, amount)
}

func (k Keeper) SetHardCap(ctx context.Context, amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return errors.Wrapf(types.ErrInvalidAmount, "hard cap %s", amount)
	}
	return k.HardCap.Set(ctx, amount)
}

// MintableReward returns the block issue reward clamped so that the supply
// never exceeds the hard cap.
func (k Keeper) MintableReward(ctx context.Context, mintDenom string) (math.Int, error) {
	reward, err := k.BlockIssueReward.Get(ctx)
	if err != nil {
		return math.Int{}, err
	}
	hardCap, err := k.HardCap.Get(ctx)
	if err != nil {
		return math.Int{}, err
	}
	supply := k.bankKeeper.GetSupply(ctx, mintDenom).Amount
	if supply.GTE(hardCap) {
		return math.ZeroInt(), nil
	}
	return math.MinInt(reward, hardCap.Sub(supply)), nil
}

// DistributeBlockReward mints this block's reward into the pot, sends each
// beneficiary its share and reports the collator share to the hooks.
// Rounding dust stays in the pot.
func (k Keeper) DistributeBlockReward(ctx sdk.Context) (types.DistributionAmounts, error) {
	defer metrics.MeasureDistributionDuration(time.Now())

	params, err := k.Params.Get(ctx)
	if err != nil {
		return types.DistributionAmounts{}, err
	}
	config, err := k.DistributionConfig.Get(ctx)
	if err != nil {
		return types.DistributionAmounts{}, err
	}
	minted, err := k.MintableReward(ctx, params.MintDenom)
	if err != nil {
		return types.DistributionAmounts{}, err
	}

	amounts := config.Split(minted)
	if minted.IsPositive() {
		if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, sdk.NewCoins(sdk.NewCoin(params.MintDenom, minted))); err != nil {
			return types.DistributionAmounts{}, errors.Wrap(err, "minting block reward")
		}
		accounts := k.beneficiaries.Accounts()
		for i, share := range amounts.Shares() {
			if !share.IsPositive() {
				continue
			}
			coins := sdk.NewCoins(sdk.NewCoin(params.MintDenom, share))
			if err := k.bankKeeper.SendCoinsFromModuleToModule(ctx, types.ModuleName, accounts[i], coins); err != nil {
				return types.DistributionAmounts{}, errors.Wrapf(err, "paying %s share", types.ShareLabels[i])
			}
			metrics.SetDistributedAmount(types.ShareLabels[i], share)
		}
	}

	if k.hooks != nil {
		if err := k.hooks.AfterCollatorPotFunded(ctx, amounts.CollatorsDelegators); err != nil {
			return types.DistributionAmounts{}, errors.Wrap(err, "collator pot hook")
		}
	}

	types.EmitBlockRewardDistributedEvent(ctx, minted, amounts)
	return amounts, nil
}

// PotBalance returns what the pot account holds in the mint denom.
func (k Keeper) PotBalance(ctx context.Context, mintDenom string) math.Int {
	return k.bankKeeper.GetBalance(ctx, authtypes.NewModuleAddress(types.ModuleName), mintDenom).Amount
}

// TransferAllPot sends the whole pot balance to destination and returns the
// amount moved. An empty pot is not an error.
func (k Keeper) TransferAllPot(ctx context.Context, destination string) (math.Int, error) {
	addr, err := k.addressCodec.StringToBytes(destination)
	if err != nil {
		return math.Int{}, errors.Wrapf(types.ErrInvalidAddress, "%s: %v", destination, err)
	}
	params, err := k.Params.Get(ctx)
	if err != nil {
		return math.Int{}, err
	}

	balance := k.PotBalance(ctx, params.MintDenom)
	if balance.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(params.MintDenom, balance))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, sdk.AccAddress(addr), coins); err != nil {
			return math.Int{}, err
		}
	}

	k.Logger(ctx).Info("pot transferred", "destination", destination, "amount", balance.String())
	types.EmitPotTransferredEvent(sdk.UnwrapSDKContext(ctx), destination, balance)
	return balance, nil
}
