package types // noalias

import (
	context "context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the supply lookup the schedule needs.
type BankKeeper interface {
	GetSupply(ctx context.Context, denom string) sdk.Coin
}

// BlockRewardKeeper receives the per-block issuance computed by the schedule.
type BlockRewardKeeper interface {
	SetBlockIssueReward(ctx context.Context, amount math.Int) error
}
