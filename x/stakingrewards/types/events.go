package types

import (
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeRewardRateChanged  = "reward_rate_changed"
	EventTypeCoefficientChanged = "coefficient_changed"
	EventTypeRewardsSettled     = "rewards_settled"
	EventTypeRewardsClaimed     = "rewards_claimed"
	EventTypeParamsChanged      = "stakingrewards_params_changed"

	AttributeKeyAccount        = "account"
	AttributeKeyAmount         = "amount"
	AttributeKeyBlocksRewarded = "blocks_rewarded"
)

func EmitRewardRateChangedEvent(ctx sdk.Context, rate RewardRateInfo) {
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		EventTypeRewardRateChanged,
		sdk.NewAttribute("collator_rate", rate.CollatorRate.String()),
		sdk.NewAttribute("delegator_rate", rate.DelegatorRate.String()),
	))
}

func EmitCoefficientChangedEvent(ctx sdk.Context, coefficient uint64) {
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		EventTypeCoefficientChanged,
		sdk.NewAttribute("coefficient", strconv.FormatUint(coefficient, 10)),
	))
}

func EmitRewardsSettledEvent(ctx sdk.Context, account string, amount math.Int, blocksRewarded uint64) {
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		EventTypeRewardsSettled,
		sdk.NewAttribute(AttributeKeyAccount, account),
		sdk.NewAttribute(AttributeKeyAmount, amount.String()),
		sdk.NewAttribute(AttributeKeyBlocksRewarded, strconv.FormatUint(blocksRewarded, 10)),
	))
}

func EmitRewardsClaimedEvent(ctx sdk.Context, account string, amount math.Int) {
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		EventTypeRewardsClaimed,
		sdk.NewAttribute(AttributeKeyAccount, account),
		sdk.NewAttribute(AttributeKeyAmount, amount.String()),
	))
}

func EmitParamsChangedEvent(ctx sdk.Context, params Params) {
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		EventTypeParamsChanged,
		sdk.NewAttribute("min_delegator_stake", params.MinDelegatorStake.String()),
		sdk.NewAttribute("reward_denom", params.RewardDenom),
	))
}
