package types // noalias

import (
	context "context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// StakingLedger is the collator set and its block production counters. It is
// read only from this module.
type StakingLedger interface {
	GetCandidate(ctx context.Context, collator string) (Candidate, bool, error)
	// GetDelegatorCollator returns the collator a delegator backs.
	GetDelegatorCollator(ctx context.Context, delegator string) (string, bool, error)
	BlocksAuthored(ctx context.Context, collator string) (uint64, error)
}

// BankKeeper pays claimed rewards out of the module account.
type BankKeeper interface {
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}
