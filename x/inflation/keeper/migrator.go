package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/peaqnetwork/peaq-network-node-sub001/utils/migutils"
	v2 "github.com/peaqnetwork/peaq-network-node-sub001/x/inflation/migrations/v2"
	v3 "github.com/peaqnetwork/peaq-network-node-sub001/x/inflation/migrations/v3"
	"github.com/peaqnetwork/peaq-network-node-sub001/x/inflation/types"
)

// Migrator is a struct for handling in-place store migrations.
type Migrator struct {
	keeper Keeper
}

// NewMigrator returns a new Migrator.
func NewMigrator(keeper Keeper) Migrator {
	return Migrator{keeper: keeper}
}

// Migrate1to2 backfills the issuance base and the initialization block.
func (m Migrator) Migrate1to2(ctx sdk.Context) error {
	return v2.MigrateStore(ctx, m.keeper.storeService, m.keeper.bankKeeper)
}

// Migrate2to3 rescales the schedule for the six second block time.
func (m Migrator) Migrate2to3(ctx sdk.Context) error {
	return v3.MigrateStore(ctx, m.keeper.storeService, m.keeper.blockRewardKeeper)
}

func (m Migrator) Steps() []migutils.Step {
	return []migutils.Step{
		{FromVersion: 1, ToVersion: 2, Handler: m.Migrate1to2},
		{FromVersion: 2, ToVersion: 3, Handler: m.Migrate2to3},
	}
}

// MigrateTo runs the pending steps up to version. It is what the
// configurator handlers call, one version at a time.
func (m Migrator) MigrateTo(ctx sdk.Context, version uint64) error {
	_, err := migutils.Run(ctx, types.ModuleName, m.keeper.StorageVersion, version, m.Steps())
	return err
}

// OnRuntimeUpgrade brings the store up to ConsensusVersion and returns the
// number of steps applied.
func (m Migrator) OnRuntimeUpgrade(ctx sdk.Context) (uint64, error) {
	return migutils.Run(ctx, types.ModuleName, m.keeper.StorageVersion, types.ConsensusVersion, m.Steps())
}
