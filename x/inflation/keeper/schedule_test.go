package keeper_test

import (
	"cosmossdk.io/math"
	"github.com/golang/mock/gomock"

	peaqMath "github.com/peaqnetwork/peaq-network-node-sub001/math"
	"github.com/peaqnetwork/peaq-network-node-sub001/x/inflation/types"
)

func (s *KeeperTestSuite) advanceTo(height int64) math.Int {
	s.ctx = s.ctx.WithBlockHeight(height)
	reward, err := s.inflationKeeper.AdvanceSchedule(s.ctx)
	s.Require().NoError(err)
	return reward
}

func (s *KeeperTestSuite) TestYearRollsOverAtRecalculationBlock() {
	s.initGenesis(testGenesis())
	s.blockRewardKeeper.EXPECT().SetBlockIssueReward(gomock.Any(), math.NewInt(1666)).Times(59)
	for h := int64(1); h < 60; h++ {
		reward := s.advanceTo(h)
		s.Require().True(reward.Equal(math.NewInt(1666)))
		s.Require().Equal(uint64(1), s.currentYear())
	}

	// the year ended with 59 blocks of 1666 minted on top of the base
	s.supplyIs(1_100_000)
	s.blockRewardKeeper.EXPECT().SetBlockIssueReward(gomock.Any(), math.NewInt(1650)).Times(1)
	reward := s.advanceTo(60)
	s.Require().True(reward.Equal(math.NewInt(1650)), reward.String())

	s.Require().Equal(uint64(2), s.currentYear())
	doRecalculationAt, err := s.inflationKeeper.DoRecalculationAt.Get(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(uint64(120), doRecalculationAt)

	live, err := s.inflationKeeper.InflationParameters.Get(s.ctx)
	s.Require().NoError(err)
	s.Require().True(live.InflationRate.Equal(peaqMath.PerbillFromPercent(9)))

	total, err := s.inflationKeeper.TotalIssuanceNum.Get(s.ctx)
	s.Require().NoError(err)
	s.Require().True(total.Equal(math.NewInt(1_100_000)))

	cached, err := s.inflationKeeper.BlockRewards.Get(s.ctx)
	s.Require().NoError(err)
	s.Require().True(cached.Equal(math.NewInt(1650)))
}

func (s *KeeperTestSuite) TestExactlyOneTransitionPerYear() {
	s.initGenesis(testGenesis())
	s.supplyIs(1_000_000)
	s.blockRewardKeeper.EXPECT().SetBlockIssueReward(gomock.Any(), gomock.Any()).AnyTimes()

	for h := int64(1); h <= 300; h++ {
		s.advanceTo(h)
		s.Require().Equal(uint64(h/60)+1, s.currentYear(), "height %d", h)
	}
}

func (s *KeeperTestSuite) TestScheduleStagnates() {
	s.initGenesis(testGenesis())
	s.supplyIs(1_000_000)
	s.blockRewardKeeper.EXPECT().SetBlockIssueReward(gomock.Any(), gomock.Any()).AnyTimes()

	expected := map[uint64]uint32{
		2: 90_000_000,
		3: 81_000_000,
		4: 20_000_000,
		5: 20_000_000,
	}
	for year := uint64(2); year <= 5; year++ {
		s.advanceTo(int64(60 * (year - 1)))
		s.Require().Equal(year, s.currentYear())
		live, err := s.inflationKeeper.InflationParameters.Get(s.ctx)
		s.Require().NoError(err)
		s.Require().Equal(expected[year], live.InflationRate.Parts(), "year %d", year)
		if year >= 4 {
			s.Require().True(live.DisinflationRate.IsZero())
		}
	}
}

func (s *KeeperTestSuite) TestDelayedTge() {
	gs := testGenesis()
	gs.CurrentYear = 0
	gs.DoRecalculationAt = 0
	gs.DoInitializeAt = 1_000
	s.initGenesis(gs)

	s.blockRewardKeeper.EXPECT().SetBlockIssueReward(gomock.Any(), math.NewInt(500)).Times(1)
	reward := s.advanceTo(10)
	s.Require().True(reward.Equal(math.NewInt(500)))
	s.Require().Equal(uint64(0), s.currentYear())

	resp, err := s.msgServer.SetTge(s.ctx, &types.MsgSetTge{
		Authority:           s.authority,
		TotalIssuance:       math.NewInt(2_000_000),
		RecalculationOffset: 5,
	})
	s.Require().NoError(err)
	s.Require().Equal(uint64(15), resp.DoInitializeAt)

	s.blockRewardKeeper.EXPECT().SetBlockIssueReward(gomock.Any(), math.NewInt(500)).Times(4)
	for h := int64(11); h < 15; h++ {
		s.advanceTo(h)
	}
	s.Require().Equal(uint64(0), s.currentYear())

	s.blockRewardKeeper.EXPECT().SetBlockIssueReward(gomock.Any(), math.NewInt(3333)).Times(1)
	reward = s.advanceTo(15)
	s.Require().True(reward.Equal(math.NewInt(3333)), reward.String())
	s.Require().Equal(uint64(1), s.currentYear())

	doRecalculationAt, err := s.inflationKeeper.DoRecalculationAt.Get(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(uint64(75), doRecalculationAt)

	_, err = s.msgServer.SetTge(s.ctx, &types.MsgSetTge{
		Authority:     s.authority,
		TotalIssuance: math.NewInt(1),
	})
	s.Require().ErrorIs(err, types.ErrTgeAlreadyActivated)
}

func (s *KeeperTestSuite) TestInitializeFallsBackToSupply() {
	gs := testGenesis()
	gs.CurrentYear = 0
	gs.DoRecalculationAt = 0
	gs.DoInitializeAt = 3
	gs.TotalIssuanceNum = math.ZeroInt()
	s.initGenesis(gs)

	s.supplyIs(600_000)
	s.blockRewardKeeper.EXPECT().SetBlockIssueReward(gomock.Any(), math.NewInt(1000)).Times(1)
	reward := s.advanceTo(3)
	s.Require().True(reward.Equal(math.NewInt(1000)), reward.String())

	total, err := s.inflationKeeper.TotalIssuanceNum.Get(s.ctx)
	s.Require().NoError(err)
	s.Require().True(total.Equal(math.NewInt(600_000)))
}
