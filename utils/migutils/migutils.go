package migutils

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/peaqnetwork/peaq-network-node-sub001/metrics"
)

// DefaultStorageVersion is the version of a module that never recorded one.
const DefaultStorageVersion uint64 = 1

// Step migrates one module store from FromVersion to ToVersion.
type Step struct {
	FromVersion uint64
	ToVersion   uint64
	Handler     func(ctx sdk.Context) error
}

// StoredVersion returns the storage version recorded for a module.
func StoredVersion(ctx context.Context, version collections.Item[uint64]) (uint64, error) {
	v, err := version.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return DefaultStorageVersion, nil
	}
	if err != nil {
		return 0, err
	}
	return v, nil
}

// Run applies every step whose ToVersion lies above the stored version and at
// or below target, in ascending order. Each step runs in its own cache
// context, and its writes and the new storage version are committed together
// only if the handler succeeds. The returned cost is the number of steps
// applied, zero when the store is already at target.
func Run(
	ctx sdk.Context,
	module string,
	version collections.Item[uint64],
	target uint64,
	steps []Step,
) (uint64, error) {
	stored, err := StoredVersion(ctx, version)
	if err != nil {
		return 0, errorsmod.Wrapf(err, "reading %s storage version", module)
	}
	if stored >= target {
		return 0, nil
	}

	ordered := make([]Step, len(steps))
	copy(ordered, steps)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].ToVersion < ordered[j].ToVersion })

	cost := uint64(0)
	current := stored
	for _, step := range ordered {
		if step.ToVersion <= current || step.ToVersion > target {
			continue
		}
		if step.FromVersion != current {
			return cost, fmt.Errorf("%s: no migration path from v%d, next step starts at v%d", module, current, step.FromVersion)
		}

		ctx.Logger().Info("MIGRATION: running module migration", "module", module, "from_version", step.FromVersion, "to_version", step.ToVersion)

		cacheCtx, write := ctx.CacheContext()
		if err := step.Handler(cacheCtx); err != nil {
			return cost, errorsmod.Wrapf(err, "%s migration v%d->v%d failed", module, step.FromVersion, step.ToVersion)
		}
		if err := version.Set(cacheCtx, step.ToVersion); err != nil {
			return cost, errorsmod.Wrapf(err, "recording %s storage version %d", module, step.ToVersion)
		}
		write()

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				"module_migration",
				sdk.NewAttribute("module", module),
				sdk.NewAttribute("from_version", strconv.FormatUint(step.FromVersion, 10)),
				sdk.NewAttribute("to_version", strconv.FormatUint(step.ToVersion, 10)),
			),
		)
		metrics.IncrMigrationStepApplied(module, step.ToVersion)

		current = step.ToVersion
		cost++
	}

	// steps may stop short of target when a version bump carried no store change
	if current < target {
		if err := version.Set(ctx, target); err != nil {
			return cost, errorsmod.Wrapf(err, "recording %s storage version %d", module, target)
		}
	}
	return cost, nil
}
