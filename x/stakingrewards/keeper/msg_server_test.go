package keeper_test

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/golang/mock/gomock"

	peaqMath "github.com/peaqnetwork/peaq-network-node-sub001/math"
	"github.com/peaqnetwork/peaq-network-node-sub001/x/stakingrewards/types"
)

func (s *KeeperTestSuite) TestMsgsRejectNonAuthority() {
	_, err := s.msgServer.SetRewardRate(s.ctx, &types.MsgSetRewardRate{Authority: s.collator, RewardRate: types.DefaultRewardRateInfo()})
	s.Require().ErrorIs(err, types.ErrUnauthorized)
	_, err = s.msgServer.SetCoefficient(s.ctx, &types.MsgSetCoefficient{Authority: s.collator, Coefficient: 2})
	s.Require().ErrorIs(err, types.ErrUnauthorized)
	_, err = s.msgServer.UpdateParams(s.ctx, &types.MsgUpdateParams{Authority: s.collator, Params: types.DefaultParams()})
	s.Require().ErrorIs(err, types.ErrUnauthorized)
}

func (s *KeeperTestSuite) TestMsgSetRewardRate() {
	testCases := []struct {
		name      string
		rate      types.RewardRateInfo
		expectErr error
	}{
		{
			name: "all to delegators",
			rate: types.NewRewardRateInfo(peaqMath.ZeroPerbill(), peaqMath.OnePerbill()),
		},
		{
			name:      "below one",
			rate:      types.NewRewardRateInfo(peaqMath.PerbillFromPercent(20), peaqMath.PerbillFromPercent(70)),
			expectErr: types.ErrInvalidRateConfig,
		},
		{
			name:      "above one",
			rate:      types.NewRewardRateInfo(peaqMath.PerbillFromPercent(50), peaqMath.MustNewPerbill(500_000_001)),
			expectErr: types.ErrInvalidRateConfig,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			before, err := s.keeper.RewardRate.Get(s.ctx)
			s.Require().NoError(err)

			_, err = s.msgServer.SetRewardRate(s.ctx, &types.MsgSetRewardRate{Authority: s.authority, RewardRate: tc.rate})

			resp, qErr := s.queryServer.RewardRate(s.ctx, &types.QueryRewardRateRequest{})
			s.Require().NoError(qErr)
			s.Require().Equal(types.RewardStrategyCoefficient.String(), resp.Strategy)
			if tc.expectErr != nil {
				s.Require().ErrorIs(err, tc.expectErr)
				s.Require().Equal(before, resp.RewardRate)
				return
			}
			s.Require().NoError(err)
			s.Require().Equal(tc.rate, resp.RewardRate)
		})
	}
}

func (s *KeeperTestSuite) TestMsgSetCoefficient() {
	_, err := s.msgServer.SetCoefficient(s.ctx, &types.MsgSetCoefficient{Authority: s.authority, Coefficient: 0})
	s.Require().ErrorIs(err, types.ErrInvalidCoefficient)

	_, err = s.msgServer.SetCoefficient(s.ctx, &types.MsgSetCoefficient{Authority: s.authority, Coefficient: 1})
	s.Require().NoError(err)

	resp, err := s.queryServer.Coefficient(s.ctx, &types.QueryCoefficientRequest{})
	s.Require().NoError(err)
	s.Require().Equal(uint64(1), resp.Coefficient)

	// equal weights: 1000 / 3000 of the pot
	s.state.authored[s.collator] = 3
	s.requireInt(999, s.unclaimed(s.collator))

	events := s.ctx.EventManager().Events()
	s.Require().Equal(types.EventTypeCoefficientChanged, events[len(events)-1].Type)
}

func (s *KeeperTestSuite) TestMsgClaimRewards() {
	s.state.authored[s.collator] = 1
	s.bankKeeper.EXPECT().SendCoinsFromModuleToAccount(gomock.Any(), types.ModuleName, gomock.Any(), coinsEq(sdk.NewCoins(sdk.NewInt64Coin(testDenom, 800)))).Return(nil)

	resp, err := s.msgServer.ClaimRewards(s.ctx, &types.MsgClaimRewards{Sender: s.collator, Account: s.collator})
	s.Require().NoError(err)
	s.requireInt(800, resp.Amount)

	_, err = s.msgServer.ClaimRewards(s.ctx, &types.MsgClaimRewards{})
	s.Require().ErrorIs(err, types.ErrInvalidAddress)
}

func (s *KeeperTestSuite) TestMsgClaimRewardsForOtherAccount() {
	s.state.authored[s.collator] = 1

	_, err := s.msgServer.ClaimRewards(s.ctx, &types.MsgClaimRewards{Sender: s.delegator, Account: s.collator})
	s.Require().ErrorIs(err, types.ErrUnauthorized)

	owed, err := s.keeper.UnclaimedRewards(s.ctx, s.collator)
	s.Require().NoError(err)
	s.requireInt(800, owed)
}

func (s *KeeperTestSuite) TestQueryUnclaimedStakingRewards() {
	s.state.authored[s.collator] = 2

	resp, err := s.queryServer.UnclaimedStakingRewards(s.ctx, &types.QueryUnclaimedStakingRewardsRequest{Account: s.delegator})
	s.Require().NoError(err)
	s.requireInt(400, resp.Amount)
}

func (s *KeeperTestSuite) TestMsgUpdateParams() {
	_, err := s.msgServer.UpdateParams(s.ctx, &types.MsgUpdateParams{Authority: s.authority, Params: types.NewParams(math.NewInt(-1), testDenom)})
	s.Require().ErrorIs(err, types.ErrInvalidParams)

	_, err = s.msgServer.UpdateParams(s.ctx, &types.MsgUpdateParams{Authority: s.authority, Params: types.NewParams(math.NewInt(5), testDenom)})
	s.Require().NoError(err)

	resp, err := s.queryServer.Params(s.ctx, &types.QueryParamsRequest{})
	s.Require().NoError(err)
	s.requireInt(5, resp.Params.MinDelegatorStake)
}
