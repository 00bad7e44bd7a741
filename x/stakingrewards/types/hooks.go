package types

import "context"

// StakingHooks is called by the staking ledger around every bond change of
// account: join, delegate, undelegate, switch collator or leave.
type StakingHooks interface {
	// BeforeStakeChange runs while the old stakes still apply, so rewards
	// accrued under them are settled first. collator is the candidate whose
	// bonds change: the one joined, topped up, left or switched to.
	BeforeStakeChange(ctx context.Context, account, collator string) error
	// AfterStakeChange runs once the new bond is in place. Blocks authored
	// before account started earning through its collator are never owed to it.
	AfterStakeChange(ctx context.Context, account string) error
}
