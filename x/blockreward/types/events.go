package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeDistributionConfigChanged = "distribution_config_changed"
	EventTypeBlockIssueRewardChanged   = "block_issue_reward_changed"
	EventTypeHardCapChanged            = "hard_cap_changed"
	EventTypeBlockRewardDistributed    = "block_reward_distributed"
	EventTypePotTransferred            = "pot_transferred"
	EventTypeParamsChanged             = "blockreward_params_changed"

	AttributeKeyAmount      = "amount"
	AttributeKeyMinted      = "minted"
	AttributeKeyDust        = "dust"
	AttributeKeyDestination = "destination"
)

func EmitDistributionConfigChangedEvent(ctx sdk.Context, config DistributionConfig) {
	attrs := make([]sdk.Attribute, 0, len(ShareLabels))
	for i, f := range config.Fractions() {
		attrs = append(attrs, sdk.NewAttribute(ShareLabels[i], f.String()))
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(EventTypeDistributionConfigChanged, attrs...))
}

func EmitBlockIssueRewardChangedEvent(ctx sdk.Context, amount math.Int) {
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		EventTypeBlockIssueRewardChanged,
		sdk.NewAttribute(AttributeKeyAmount, amount.String()),
	))
}

func EmitHardCapChangedEvent(ctx sdk.Context, amount math.Int) {
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		EventTypeHardCapChanged,
		sdk.NewAttribute(AttributeKeyAmount, amount.String()),
	))
}

func EmitBlockRewardDistributedEvent(ctx sdk.Context, minted math.Int, amounts DistributionAmounts) {
	attrs := []sdk.Attribute{sdk.NewAttribute(AttributeKeyMinted, minted.String())}
	for i, share := range amounts.Shares() {
		attrs = append(attrs, sdk.NewAttribute(ShareLabels[i], share.String()))
	}
	attrs = append(attrs, sdk.NewAttribute(AttributeKeyDust, amounts.Dust.String()))
	ctx.EventManager().EmitEvent(sdk.NewEvent(EventTypeBlockRewardDistributed, attrs...))
}

func EmitPotTransferredEvent(ctx sdk.Context, destination string, amount math.Int) {
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		EventTypePotTransferred,
		sdk.NewAttribute(AttributeKeyDestination, destination),
		sdk.NewAttribute(AttributeKeyAmount, amount.String()),
	))
}

func EmitParamsChangedEvent(ctx sdk.Context, params Params) {
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		EventTypeParamsChanged,
		sdk.NewAttribute("mint_denom", params.MintDenom),
	))
}
