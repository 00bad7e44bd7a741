package keeper_test

import (
	"cosmossdk.io/math"
	"github.com/golang/mock/gomock"

	"github.com/peaqnetwork/peaq-network-node-sub001/x/inflation/keeper"
	"github.com/peaqnetwork/peaq-network-node-sub001/x/inflation/types"
)

// seedVersionOne writes the store as a version 1 chain on twelve second
// blocks left it: no issuance base, no initialization block, no block time.
func (s *KeeperTestSuite) seedVersionOne() {
	k := s.inflationKeeper
	params := types.Params{
		MintDenom:                   testDenom,
		BlocksPerYear:               100,
		BlockRewardBeforeInitialize: math.NewInt(80),
	}
	s.Require().NoError(k.Params.Set(s.ctx, params))
	s.Require().NoError(k.InflationConfiguration.Set(s.ctx, types.DefaultInflationConfiguration()))
	s.Require().NoError(k.InflationParameters.Set(s.ctx, types.DefaultInflationConfiguration().InflationParameters))
	s.Require().NoError(k.CurrentYear.Set(s.ctx, 3))
	s.Require().NoError(k.DoRecalculationAt.Set(s.ctx, 250))
	s.Require().NoError(k.BlockRewards.Set(s.ctx, math.NewInt(1_000)))
}

func (s *KeeperTestSuite) TestOnRuntimeUpgradeFromVersionOne() {
	s.seedVersionOne()
	s.ctx = s.ctx.WithBlockHeight(210)
	s.supplyIs(5_000_000)
	s.blockRewardKeeper.EXPECT().SetBlockIssueReward(gomock.Any(), math.NewInt(500)).Times(1)

	m := keeper.NewMigrator(s.inflationKeeper)
	cost, err := m.OnRuntimeUpgrade(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(uint64(2), cost)

	k := s.inflationKeeper
	total, err := k.TotalIssuanceNum.Get(s.ctx)
	s.Require().NoError(err)
	s.Require().True(total.Equal(math.NewInt(5_000_000)))

	params, err := k.Params.Get(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(uint64(200), params.BlocksPerYear)
	s.Require().Equal(types.DefaultBlockTimeMs, params.BlockTimeMs)
	s.Require().True(params.BlockRewardBeforeInitialize.Equal(math.NewInt(40)))

	// 40 blocks were left in the year, now 80
	doRecalculationAt, err := k.DoRecalculationAt.Get(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(uint64(290), doRecalculationAt)

	// already in the past, left alone
	doInitializeAt, err := k.DoInitializeAt.Get(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(uint64(0), doInitializeAt)

	reward, err := k.BlockRewards.Get(s.ctx)
	s.Require().NoError(err)
	s.Require().True(reward.Equal(math.NewInt(500)))

	version, err := k.StorageVersion.Get(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(uint64(types.ConsensusVersion), version)

	cost, err = m.OnRuntimeUpgrade(s.ctx)
	s.Require().NoError(err)
	s.Require().Zero(cost)
}

func (s *KeeperTestSuite) TestBlockTimeMigrationIsIdempotent() {
	s.seedVersionOne()
	s.Require().NoError(s.inflationKeeper.DoInitializeAt.Set(s.ctx, 0))
	s.Require().NoError(s.inflationKeeper.TotalIssuanceNum.Set(s.ctx, math.NewInt(1)))
	s.ctx = s.ctx.WithBlockHeight(200)
	s.blockRewardKeeper.EXPECT().SetBlockIssueReward(gomock.Any(), math.NewInt(500)).Times(1)

	m := keeper.NewMigrator(s.inflationKeeper)
	s.Require().NoError(m.Migrate2to3(s.ctx))
	first := s.snapshot()

	s.Require().NoError(m.Migrate2to3(s.ctx))
	s.Require().Equal(first, s.snapshot())

	s.Require().Equal(uint64(200), first.blocksPerYear)
	s.Require().Equal(uint64(300), first.doRecalculationAt)
	s.Require().Equal("500", first.blockRewards)
}

func (s *KeeperTestSuite) TestBlockTimeMigrationStretchesPendingTge() {
	k := s.inflationKeeper
	s.Require().NoError(k.Params.Set(s.ctx, types.Params{MintDenom: testDenom, BlocksPerYear: 100, BlockRewardBeforeInitialize: math.NewInt(80)}))
	s.Require().NoError(k.DoInitializeAt.Set(s.ctx, 130))
	s.ctx = s.ctx.WithBlockHeight(100)

	s.Require().NoError(keeper.NewMigrator(k).Migrate2to3(s.ctx))

	doInitializeAt, err := k.DoInitializeAt.Get(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(uint64(160), doInitializeAt)
}

func (s *KeeperTestSuite) TestMigrate1to2KeepsExistingValues() {
	s.seedVersionOne()
	s.Require().NoError(s.inflationKeeper.TotalIssuanceNum.Set(s.ctx, math.NewInt(42)))
	s.Require().NoError(s.inflationKeeper.DoInitializeAt.Set(s.ctx, 7))

	s.Require().NoError(keeper.NewMigrator(s.inflationKeeper).Migrate1to2(s.ctx))

	total, err := s.inflationKeeper.TotalIssuanceNum.Get(s.ctx)
	s.Require().NoError(err)
	s.Require().True(total.Equal(math.NewInt(42)))
	doInitializeAt, err := s.inflationKeeper.DoInitializeAt.Get(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(uint64(7), doInitializeAt)
}

type scheduleSnapshot struct {
	blocksPerYear          uint64
	blockTimeMs            uint64
	rewardBeforeInitialize string
	doRecalculationAt      uint64
	blockRewards           string
}

func (s *KeeperTestSuite) snapshot() scheduleSnapshot {
	k := s.inflationKeeper
	params, err := k.Params.Get(s.ctx)
	s.Require().NoError(err)
	doRecalculationAt, err := k.DoRecalculationAt.Get(s.ctx)
	s.Require().NoError(err)
	rewards, err := k.BlockRewards.Get(s.ctx)
	s.Require().NoError(err)
	return scheduleSnapshot{
		blocksPerYear:          params.BlocksPerYear,
		blockTimeMs:            params.BlockTimeMs,
		rewardBeforeInitialize: params.BlockRewardBeforeInitialize.String(),
		doRecalculationAt:      doRecalculationAt,
		blockRewards:           rewards.String(),
	}
}
