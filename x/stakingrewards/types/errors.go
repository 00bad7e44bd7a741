package types

import "cosmossdk.io/errors"

var (
	// ERROR 1 IS RESERVED BY COSMOS-SDK PACKAGE
	ErrUnauthorized        = errors.Register(ModuleName, 2, "unauthorized message signer")
	ErrInvalidRateConfig   = errors.Register(ModuleName, 3, "collator and delegator rates must sum to one")
	ErrInvalidCoefficient  = errors.Register(ModuleName, 4, "invalid reward coefficient")
	ErrInvalidParams       = errors.Register(ModuleName, 5, "invalid params")
	ErrNoUnclaimedRewards  = errors.Register(ModuleName, 6, "no unclaimed rewards")
	ErrInvalidStake        = errors.Register(ModuleName, 7, "invalid stake")
	ErrInvalidAddress      = errors.Register(ModuleName, 8, "invalid address")
	ErrUnknownStrategy     = errors.Register(ModuleName, 9, "unknown reward strategy")
	ErrInvalidRewardAmount = errors.Register(ModuleName, 10, "invalid reward amount")
)
