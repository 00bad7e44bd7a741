package types

import (
	"context"

	"cosmossdk.io/math"
)

// CollatorPotHooks is notified of the amount set aside for block producers
// and their delegators every block.
type CollatorPotHooks interface {
	AfterCollatorPotFunded(ctx context.Context, amount math.Int) error
}

// MultiCollatorPotHooks combines multiple receivers; all are called in order.
type MultiCollatorPotHooks []CollatorPotHooks

func NewMultiCollatorPotHooks(hooks ...CollatorPotHooks) MultiCollatorPotHooks {
	return hooks
}

func (h MultiCollatorPotHooks) AfterCollatorPotFunded(ctx context.Context, amount math.Int) error {
	for _, hook := range h {
		if err := hook.AfterCollatorPotFunded(ctx, amount); err != nil {
			return err
		}
	}
	return nil
}
