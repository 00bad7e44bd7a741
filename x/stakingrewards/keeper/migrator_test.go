package keeper_test

import (
	peaqMath "github.com/peaqnetwork/peaq-network-node-sub001/math"
	"github.com/peaqnetwork/peaq-network-node-sub001/x/stakingrewards/keeper"
	"github.com/peaqnetwork/peaq-network-node-sub001/x/stakingrewards/types"
)

func (s *KeeperTestSuite) TestOnRuntimeUpgradeBackfillsSplitRecords() {
	s.Require().NoError(s.keeper.Coefficient.Remove(s.ctx))
	s.Require().NoError(s.keeper.RewardRate.Remove(s.ctx))
	s.Require().NoError(s.keeper.StorageVersion.Remove(s.ctx))

	cost, err := keeper.NewMigrator(s.keeper).OnRuntimeUpgrade(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(uint64(1), cost)

	coefficient, err := s.keeper.Coefficient.Get(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(types.DefaultCoefficient, coefficient)
	rate, err := s.keeper.RewardRate.Get(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(types.DefaultRewardRateInfo(), rate)

	cost, err = keeper.NewMigrator(s.keeper).OnRuntimeUpgrade(s.ctx)
	s.Require().NoError(err)
	s.Require().Zero(cost)
}

func (s *KeeperTestSuite) TestMigrate1to2KeepsExistingRecords() {
	custom := types.NewRewardRateInfo(peaqMath.PerbillFromPercent(45), peaqMath.PerbillFromPercent(55))
	s.Require().NoError(s.keeper.RewardRate.Set(s.ctx, custom))
	s.Require().NoError(s.keeper.Coefficient.Set(s.ctx, 3))

	s.Require().NoError(keeper.NewMigrator(s.keeper).Migrate1to2(s.ctx))

	rate, err := s.keeper.RewardRate.Get(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(custom, rate)
	coefficient, err := s.keeper.Coefficient.Get(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(uint64(3), coefficient)
}
