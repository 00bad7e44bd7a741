package keeper_test

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/golang/mock/gomock"

	peaqtestutil "github.com/peaqnetwork/peaq-network-node-sub001/test/testutil"
	"github.com/peaqnetwork/peaq-network-node-sub001/x/stakingrewards/types"
)

func (s *KeeperTestSuite) TestUnclaimedRewardsAccrueLazily() {
	s.requireInt(0, s.unclaimed(s.collator))
	s.requireInt(0, s.unclaimed(s.delegator))

	s.state.authored[s.collator] = 5
	s.requireInt(4000, s.unclaimed(s.collator))
	s.requireInt(1000, s.unclaimed(s.delegator))
}

func (s *KeeperTestSuite) TestUnclaimedRewardsIncludeStoredBalance() {
	outsider := peaqtestutil.NewAccountAddress().String()
	s.Require().NoError(s.keeper.Rewards.Set(s.ctx, outsider, math.NewInt(7)))
	s.Require().NoError(s.keeper.Rewards.Set(s.ctx, s.delegator, math.NewInt(3)))
	s.state.authored[s.collator] = 2

	s.requireInt(7, s.unclaimed(outsider))
	s.requireInt(403, s.unclaimed(s.delegator))
}

func (s *KeeperTestSuite) TestUnclaimedRewardsWhenRewardedAheadOfAuthored() {
	s.state.authored[s.collator] = 3
	s.Require().NoError(s.keeper.BlocksRewarded.Set(s.ctx, s.collator, 10))
	s.Require().NoError(s.keeper.Rewards.Set(s.ctx, s.collator, math.NewInt(5)))

	owed := s.unclaimed(s.collator)
	s.requireInt(5, owed)
	s.Require().False(owed.IsNegative())
}

func (s *KeeperTestSuite) TestLeavingCollatorStopsAccruing() {
	c := s.state.candidates[s.collator]
	c.Status = types.CandidateStatusLeaving
	s.addCandidate(c)
	s.state.authored[s.collator] = 5

	s.requireInt(0, s.unclaimed(s.collator))
	s.requireInt(0, s.unclaimed(s.delegator))
}

func (s *KeeperTestSuite) TestDelegatorBelowMinimumEarnsNothing() {
	s.Require().NoError(s.keeper.Params.Set(s.ctx, types.NewParams(math.NewInt(2001), testDenom)))
	s.state.authored[s.collator] = 1

	s.requireInt(1000, s.unclaimed(s.collator))
	s.requireInt(0, s.unclaimed(s.delegator))
}

func (s *KeeperTestSuite) TestFixedPercentageStrategy() {
	k := s.newKeeper(types.RewardStrategyFixedPercentage)
	s.state.authored[s.collator] = 2

	collator, err := k.UnclaimedRewards(s.ctx, s.collator)
	s.Require().NoError(err)
	s.requireInt(600, collator)

	delegator, err := k.UnclaimedRewards(s.ctx, s.delegator)
	s.Require().NoError(err)
	s.requireInt(1400, delegator)
}

func (s *KeeperTestSuite) TestSettleRewards() {
	s.state.authored[s.collator] = 5

	settled, err := s.keeper.SettleRewards(s.ctx, s.collator)
	s.Require().NoError(err)
	s.requireInt(4000, settled)

	rewarded, err := s.keeper.BlocksRewarded.Get(s.ctx, s.collator)
	s.Require().NoError(err)
	s.Require().Equal(uint64(5), rewarded)

	// settling is invisible to readers
	s.requireInt(4000, s.unclaimed(s.collator))

	s.state.authored[s.collator] = 6
	s.requireInt(4800, s.unclaimed(s.collator))
}

func (s *KeeperTestSuite) TestSettleDoesNotRewindCounter() {
	s.state.authored[s.collator] = 3
	s.Require().NoError(s.keeper.BlocksRewarded.Set(s.ctx, s.collator, 10))

	_, err := s.keeper.SettleRewards(s.ctx, s.collator)
	s.Require().NoError(err)

	rewarded, err := s.keeper.BlocksRewarded.Get(s.ctx, s.collator)
	s.Require().NoError(err)
	s.Require().Equal(uint64(10), rewarded)
}

func (s *KeeperTestSuite) TestClaimRewards() {
	s.state.authored[s.collator] = 5
	addr, err := sdk.AccAddressFromBech32(s.delegator)
	s.Require().NoError(err)
	s.bankKeeper.EXPECT().SendCoinsFromModuleToAccount(gomock.Any(), types.ModuleName, addr, coinsEq(sdk.NewCoins(sdk.NewInt64Coin(testDenom, 1000)))).Return(nil)

	claimed, err := s.keeper.ClaimRewards(s.ctx, s.delegator)
	s.Require().NoError(err)
	s.requireInt(1000, claimed)
	s.requireInt(0, s.unclaimed(s.delegator))

	has, err := s.keeper.Rewards.Has(s.ctx, s.delegator)
	s.Require().NoError(err)
	s.Require().False(has)

	_, err = s.keeper.ClaimRewards(s.ctx, s.delegator)
	s.Require().ErrorIs(err, types.ErrNoUnclaimedRewards)
}

func (s *KeeperTestSuite) TestClaimRewardsRejectsBadAddress() {
	_, err := s.keeper.ClaimRewards(s.ctx, "nobody")
	s.Require().ErrorIs(err, types.ErrInvalidAddress)
}

func (s *KeeperTestSuite) TestBeforeStakeChangeSettlesWholeCandidate() {
	s.state.authored[s.collator] = 4

	s.Require().NoError(s.keeper.Hooks().BeforeStakeChange(s.ctx, s.delegator, s.collator))

	// the delegation doubles after settlement; earlier blocks keep the old split
	c := s.state.candidates[s.collator]
	c.Delegators = []types.Stake{{Owner: s.delegator, Amount: math.NewInt(4000)}}
	s.addCandidate(c)

	stored, err := s.keeper.Rewards.Get(s.ctx, s.collator)
	s.Require().NoError(err)
	s.requireInt(3200, stored)
	stored, err = s.keeper.Rewards.Get(s.ctx, s.delegator)
	s.Require().NoError(err)
	s.requireInt(800, stored)

	// 8000 / 12000 and 4000 / 12000 of 1000 for the next block
	s.state.authored[s.collator] = 5
	s.requireInt(3200+666, s.unclaimed(s.collator))
	s.requireInt(800+333, s.unclaimed(s.delegator))
}

func (s *KeeperTestSuite) TestAfterCollatorPotFunded() {
	s.Require().NoError(s.keeper.Hooks().AfterCollatorPotFunded(s.ctx, math.NewInt(50)))
	pool, err := s.keeper.LastBlockPool.Get(s.ctx)
	s.Require().NoError(err)
	s.requireInt(50, pool)

	err = s.keeper.Hooks().AfterCollatorPotFunded(s.ctx, math.NewInt(-1))
	s.Require().ErrorIs(err, types.ErrInvalidRewardAmount)
}

func (s *KeeperTestSuite) TestDelegatorJoiningLateEarnsOnlyNewBlocks() {
	s.state.authored[s.collator] = 100
	newcomer := peaqtestutil.NewAccountAddress().String()

	s.Require().NoError(s.keeper.Hooks().BeforeStakeChange(s.ctx, newcomer, s.collator))
	c := s.state.candidates[s.collator]
	c.Delegators = append(c.Delegators, types.Stake{Owner: newcomer, Amount: math.NewInt(2000)})
	s.addCandidate(c)
	s.Require().NoError(s.keeper.Hooks().AfterStakeChange(s.ctx, newcomer))

	s.requireInt(0, s.unclaimed(newcomer))
	s.requireInt(80000, s.unclaimed(s.collator))
	s.requireInt(20000, s.unclaimed(s.delegator))

	// 2000 / 12000 of 1000 for the first block after joining
	s.state.authored[s.collator] = 101
	s.requireInt(166, s.unclaimed(newcomer))
	s.requireInt(80000+666, s.unclaimed(s.collator))
	s.requireInt(20000+166, s.unclaimed(s.delegator))
}

func (s *KeeperTestSuite) TestSwitchingCollatorRestartsAccrual() {
	other := peaqtestutil.NewAccountAddress().String()
	s.addCandidate(types.Candidate{Owner: other, Stake: math.NewInt(1000)})
	s.state.authored[s.collator] = 100
	s.state.authored[other] = 300

	s.Require().NoError(s.keeper.Hooks().BeforeStakeChange(s.ctx, s.delegator, other))
	c := s.state.candidates[s.collator]
	c.Delegators = nil
	s.addCandidate(c)
	s.addCandidate(types.Candidate{
		Owner:      other,
		Stake:      math.NewInt(1000),
		Delegators: []types.Stake{{Owner: s.delegator, Amount: math.NewInt(2000)}},
	})
	s.Require().NoError(s.keeper.Hooks().AfterStakeChange(s.ctx, s.delegator))

	// only the 100 blocks behind the old collator
	s.requireInt(20000, s.unclaimed(s.delegator))
	rewarded, err := s.keeper.BlocksRewarded.Get(s.ctx, s.delegator)
	s.Require().NoError(err)
	s.Require().Equal(uint64(300), rewarded)

	s.state.authored[other] = 301
	s.requireInt(20000+200, s.unclaimed(s.delegator))
}

func (s *KeeperTestSuite) TestCollatorRejoiningEarnsOnlyNewBlocks() {
	returning := peaqtestutil.NewAccountAddress().String()
	s.state.authored[returning] = 50

	s.Require().NoError(s.keeper.Hooks().BeforeStakeChange(s.ctx, returning, returning))
	s.addCandidate(types.Candidate{Owner: returning, Stake: math.NewInt(1000)})
	s.Require().NoError(s.keeper.Hooks().AfterStakeChange(s.ctx, returning))
	s.requireInt(0, s.unclaimed(returning))

	// no delegators: the whole pool
	s.state.authored[returning] = 51
	s.requireInt(1000, s.unclaimed(returning))
}

func (s *KeeperTestSuite) TestLeavingKeepsSettledRewards() {
	s.state.authored[s.collator] = 3

	s.Require().NoError(s.keeper.Hooks().BeforeStakeChange(s.ctx, s.delegator, s.collator))
	c := s.state.candidates[s.collator]
	c.Delegators = nil
	s.addCandidate(c)
	delete(s.state.delegations, s.delegator)
	s.Require().NoError(s.keeper.Hooks().AfterStakeChange(s.ctx, s.delegator))

	has, err := s.keeper.BlocksRewarded.Has(s.ctx, s.delegator)
	s.Require().NoError(err)
	s.Require().False(has)

	s.state.authored[s.collator] = 10
	s.requireInt(600, s.unclaimed(s.delegator))
}
