package types

import (
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeScheduleInitialized           = "inflation_schedule_initialized"
	EventTypeYearRollover                  = "inflation_year_rollover"
	EventTypeTgeSet                        = "inflation_tge_set"
	EventTypeInflationConfigurationChanged = "inflation_configuration_changed"
	EventTypeParamsChanged                 = "inflation_params_changed"

	AttributeKeyYear              = "year"
	AttributeKeyInflationRate     = "inflation_rate"
	AttributeKeyDisinflationRate  = "disinflation_rate"
	AttributeKeyDoRecalculationAt = "do_recalculation_at"
	AttributeKeyDoInitializeAt    = "do_initialize_at"
	AttributeKeyTotalIssuance     = "total_issuance"
	AttributeKeyBlockReward       = "block_reward"
)

func EmitScheduleInitializedEvent(ctx sdk.Context, params InflationParameters, doRecalculationAt uint64, totalIssuance math.Int) {
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		EventTypeScheduleInitialized,
		sdk.NewAttribute(AttributeKeyInflationRate, params.InflationRate.String()),
		sdk.NewAttribute(AttributeKeyDisinflationRate, params.DisinflationRate.String()),
		sdk.NewAttribute(AttributeKeyDoRecalculationAt, strconv.FormatUint(doRecalculationAt, 10)),
		sdk.NewAttribute(AttributeKeyTotalIssuance, totalIssuance.String()),
	))
}

func EmitYearRolloverEvent(ctx sdk.Context, year uint64, params InflationParameters, doRecalculationAt uint64, totalIssuance math.Int) {
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		EventTypeYearRollover,
		sdk.NewAttribute(AttributeKeyYear, strconv.FormatUint(year, 10)),
		sdk.NewAttribute(AttributeKeyInflationRate, params.InflationRate.String()),
		sdk.NewAttribute(AttributeKeyDisinflationRate, params.DisinflationRate.String()),
		sdk.NewAttribute(AttributeKeyDoRecalculationAt, strconv.FormatUint(doRecalculationAt, 10)),
		sdk.NewAttribute(AttributeKeyTotalIssuance, totalIssuance.String()),
	))
}

func EmitTgeSetEvent(ctx sdk.Context, doInitializeAt uint64, totalIssuance math.Int) {
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		EventTypeTgeSet,
		sdk.NewAttribute(AttributeKeyDoInitializeAt, strconv.FormatUint(doInitializeAt, 10)),
		sdk.NewAttribute(AttributeKeyTotalIssuance, totalIssuance.String()),
	))
}

func EmitInflationConfigurationChangedEvent(ctx sdk.Context, config InflationConfiguration) {
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		EventTypeInflationConfigurationChanged,
		sdk.NewAttribute(AttributeKeyInflationRate, config.InflationParameters.InflationRate.String()),
		sdk.NewAttribute(AttributeKeyDisinflationRate, config.InflationParameters.DisinflationRate.String()),
		sdk.NewAttribute("inflation_stagnation_rate", config.InflationStagnationRate.String()),
		sdk.NewAttribute("inflation_stagnation_year", strconv.FormatUint(config.InflationStagnationYear, 10)),
	))
}

func EmitParamsChangedEvent(ctx sdk.Context, params Params) {
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		EventTypeParamsChanged,
		sdk.NewAttribute("mint_denom", params.MintDenom),
		sdk.NewAttribute("blocks_per_year", strconv.FormatUint(params.BlocksPerYear, 10)),
		sdk.NewAttribute(AttributeKeyBlockReward, params.BlockRewardBeforeInitialize.String()),
	))
}
