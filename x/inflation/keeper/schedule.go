package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/peaqnetwork/peaq-network-node-sub001/inflation"
	"github.com/peaqnetwork/peaq-network-node-sub001/metrics"
	"github.com/peaqnetwork/peaq-network-node-sub001/x/inflation/types"
)

// IsInitialized reports whether the schedule has started. A current year of
// zero means the token generation event is still pending.
func (k Keeper) IsInitialized(ctx context.Context) (bool, error) {
	year, err := getOrZero(ctx, k.CurrentYear)
	if err != nil {
		return false, err
	}
	return year > 0, nil
}

// AdvanceSchedule moves the schedule forward for the block being finalized
// and hands the issuance for the next block to the block reward module. The
// current block has already been paid at the previous rate, so a transition
// here only affects blocks that follow.
func (k Keeper) AdvanceSchedule(ctx sdk.Context) (math.Int, error) {
	height := uint64(ctx.BlockHeight())

	initialized, err := k.IsInitialized(ctx)
	if err != nil {
		return math.Int{}, err
	}
	if !initialized {
		doInitializeAt, err := getOrZero(ctx, k.DoInitializeAt)
		if err != nil {
			return math.Int{}, err
		}
		if height >= doInitializeAt {
			if err := k.initializeSchedule(ctx, height); err != nil {
				return math.Int{}, errorsmod.Wrap(err, "initializing inflation schedule")
			}
		}
	} else {
		doRecalculationAt, err := k.DoRecalculationAt.Get(ctx)
		if err != nil {
			return math.Int{}, err
		}
		if height >= doRecalculationAt {
			if err := k.rolloverYear(ctx); err != nil {
				return math.Int{}, errorsmod.Wrap(err, "rolling over inflation year")
			}
		}
	}

	reward, err := k.IssueForBlock(ctx)
	if err != nil {
		return math.Int{}, err
	}
	if err := k.BlockRewards.Set(ctx, reward); err != nil {
		return math.Int{}, err
	}
	if err := k.blockRewardKeeper.SetBlockIssueReward(ctx, reward); err != nil {
		return math.Int{}, errorsmod.Wrap(err, "pushing block issue reward")
	}
	metrics.SetBlockIssuance(reward)
	return reward, nil
}

// initializeSchedule starts year one at height. The issuance base is the one
// recorded by the token generation event, or the bank supply when none was set.
func (k Keeper) initializeSchedule(ctx sdk.Context, height uint64) error {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return err
	}
	config, err := k.InflationConfiguration.Get(ctx)
	if err != nil {
		return err
	}

	totalIssuance, err := k.TotalIssuanceNum.Get(ctx)
	if err != nil && !errors.Is(err, collections.ErrNotFound) {
		return err
	}
	if errors.Is(err, collections.ErrNotFound) || totalIssuance.IsNil() || totalIssuance.IsZero() {
		totalIssuance = k.GetTotalSupply(ctx, params.MintDenom)
	}

	doRecalculationAt := height + params.BlocksPerYear
	if err := k.InflationParameters.Set(ctx, config.InflationParameters); err != nil {
		return err
	}
	if err := k.CurrentYear.Set(ctx, 1); err != nil {
		return err
	}
	if err := k.DoRecalculationAt.Set(ctx, doRecalculationAt); err != nil {
		return err
	}
	if err := k.TotalIssuanceNum.Set(ctx, totalIssuance); err != nil {
		return err
	}

	k.Logger(ctx).Info("inflation schedule initialized",
		"height", height,
		"inflation_rate", config.InflationParameters.InflationRate.String(),
		"do_recalculation_at", doRecalculationAt,
		"total_issuance", totalIssuance.String(),
	)
	types.EmitScheduleInitializedEvent(ctx, config.InflationParameters, doRecalculationAt, totalIssuance)
	metrics.SetCurrentYear(1)
	return nil
}

func (k Keeper) rolloverYear(ctx sdk.Context) error {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return err
	}
	config, err := k.InflationConfiguration.Get(ctx)
	if err != nil {
		return err
	}
	live, err := k.InflationParameters.Get(ctx)
	if err != nil {
		return err
	}
	year, err := k.CurrentYear.Get(ctx)
	if err != nil {
		return err
	}
	doRecalculationAt, err := k.DoRecalculationAt.Get(ctx)
	if err != nil {
		return err
	}

	year++
	live = inflation.NextYearParameters(config, live, year)
	doRecalculationAt += params.BlocksPerYear
	totalIssuance := k.GetTotalSupply(ctx, params.MintDenom)

	if err := k.CurrentYear.Set(ctx, year); err != nil {
		return err
	}
	if err := k.InflationParameters.Set(ctx, live); err != nil {
		return err
	}
	if err := k.DoRecalculationAt.Set(ctx, doRecalculationAt); err != nil {
		return err
	}
	if err := k.TotalIssuanceNum.Set(ctx, totalIssuance); err != nil {
		return err
	}

	k.Logger(ctx).Info("inflation year rolled over",
		"year", year,
		"inflation_rate", live.InflationRate.String(),
		"disinflation_rate", live.DisinflationRate.String(),
		"do_recalculation_at", doRecalculationAt,
	)
	types.EmitYearRolloverEvent(ctx, year, live, doRecalculationAt, totalIssuance)
	metrics.SetCurrentYear(year)
	metrics.IncrYearRollover()
	return nil
}

// SetTge records the token generation event: the schedule initializes
// recalculationOffset blocks from now with totalIssuance as its base.
// It fails once the schedule has started.
func (k Keeper) SetTge(ctx sdk.Context, totalIssuance math.Int, recalculationOffset uint64) (uint64, error) {
	initialized, err := k.IsInitialized(ctx)
	if err != nil {
		return 0, err
	}
	if initialized {
		return 0, types.ErrTgeAlreadyActivated
	}
	if totalIssuance.IsNil() || totalIssuance.IsNegative() {
		return 0, errorsmod.Wrapf(types.ErrInvalidTotalIssuance, "%s", totalIssuance)
	}

	doInitializeAt := uint64(ctx.BlockHeight()) + recalculationOffset
	if err := k.TotalIssuanceNum.Set(ctx, totalIssuance); err != nil {
		return 0, err
	}
	if err := k.DoInitializeAt.Set(ctx, doInitializeAt); err != nil {
		return 0, err
	}

	k.Logger(ctx).Info("token generation event scheduled", "do_initialize_at", doInitializeAt, "total_issuance", totalIssuance.String())
	types.EmitTgeSetEvent(ctx, doInitializeAt, totalIssuance)
	return doInitializeAt, nil
}
