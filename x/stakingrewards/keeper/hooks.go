package keeper

import (
	"context"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"

	blockrewardtypes "github.com/peaqnetwork/peaq-network-node-sub001/x/blockreward/types"
	"github.com/peaqnetwork/peaq-network-node-sub001/x/stakingrewards/types"
)

var (
	_ blockrewardtypes.CollatorPotHooks = Hooks{}
	_ types.StakingHooks                = Hooks{}
)

// Hooks wrapper struct for the stakingrewards keeper
type Hooks struct {
	k Keeper
}

// Hooks returns the receiver for the block reward and staking ledger hooks.
func (k Keeper) Hooks() Hooks {
	return Hooks{k}
}

// AfterCollatorPotFunded records the pot paid into this block. Accrual reads
// it lazily, nothing is iterated here.
func (h Hooks) AfterCollatorPotFunded(ctx context.Context, amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return errors.Wrapf(types.ErrInvalidRewardAmount, "collator pot %s", amount)
	}
	return h.k.LastBlockPool.Set(ctx, amount)
}

// BeforeStakeChange settles account, everyone earning through the candidate
// account is bonded to now, and everyone earning through collator, while the
// old stakes still apply. Any bond change moves every share of a candidate.
func (h Hooks) BeforeStakeChange(ctx context.Context, account, collator string) error {
	settled := map[string]bool{}
	settle := func(a string) error {
		if settled[a] {
			return nil
		}
		settled[a] = true
		if _, err := h.k.SettleRewards(ctx, a); err != nil {
			return errors.Wrapf(err, "settling %s", a)
		}
		return nil
	}

	if err := settle(account); err != nil {
		return err
	}
	current, found, err := h.k.earningCollator(ctx, account)
	if err != nil {
		return err
	}
	collators := []string{collator}
	if found && current != collator {
		collators = append([]string{current}, collators...)
	}
	for _, c := range collators {
		candidate, found, err := h.k.ledger.GetCandidate(ctx, c)
		if err != nil {
			return err
		}
		if !found {
			continue
		}
		if err := settle(candidate.Owner); err != nil {
			return err
		}
		for _, d := range candidate.Delegators {
			if err := settle(d.Owner); err != nil {
				return err
			}
		}
	}
	return nil
}

// AfterStakeChange starts account's accrual at the authored count of the
// candidate it now earns through. BeforeStakeChange has already settled it,
// so nothing owed is lost by moving the counter.
func (h Hooks) AfterStakeChange(ctx context.Context, account string) error {
	collator, found, err := h.k.earningCollator(ctx, account)
	if err != nil {
		return err
	}
	if !found {
		return h.k.BlocksRewarded.Remove(ctx, account)
	}
	authored, err := h.k.ledger.BlocksAuthored(ctx, collator)
	if err != nil {
		return err
	}
	return h.k.BlocksRewarded.Set(ctx, account, authored)
}
