package keeper_test

import (
	"cosmossdk.io/math"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/golang/mock/gomock"

	peaqMath "github.com/peaqnetwork/peaq-network-node-sub001/math"
	peaqtestutil "github.com/peaqnetwork/peaq-network-node-sub001/test/testutil"
	"github.com/peaqnetwork/peaq-network-node-sub001/x/blockreward/types"
)

func (s *KeeperTestSuite) TestMsgsRejectNonAuthority() {
	intruder := peaqtestutil.NewAccountAddress().String()

	_, err := s.msgServer.SetDistributionConfig(s.ctx, &types.MsgSetDistributionConfig{Authority: intruder, DistributionConfig: types.DefaultDistributionConfig()})
	s.Require().ErrorIs(err, types.ErrUnauthorized)
	_, err = s.msgServer.SetBlockIssueReward(s.ctx, &types.MsgSetBlockIssueReward{Authority: intruder, BlockIssueReward: math.NewInt(1)})
	s.Require().ErrorIs(err, types.ErrUnauthorized)
	_, err = s.msgServer.SetHardCap(s.ctx, &types.MsgSetHardCap{Authority: intruder, HardCap: math.NewInt(1)})
	s.Require().ErrorIs(err, types.ErrUnauthorized)
	_, err = s.msgServer.TransferAllPot(s.ctx, &types.MsgTransferAllPot{Authority: intruder, Destination: intruder})
	s.Require().ErrorIs(err, types.ErrUnauthorized)
	_, err = s.msgServer.UpdateParams(s.ctx, &types.MsgUpdateParams{Authority: intruder, Params: types.DefaultParams()})
	s.Require().ErrorIs(err, types.ErrUnauthorized)
}

func (s *KeeperTestSuite) TestMsgSetDistributionConfig() {
	config := types.DistributionConfig{
		TreasuryPercent: peaqMath.PerbillFromPercent(40),
		DappsPercent:    peaqMath.PerbillFromPercent(60),
	}
	_, err := s.msgServer.SetDistributionConfig(s.ctx, &types.MsgSetDistributionConfig{Authority: s.authority, DistributionConfig: config})
	s.Require().NoError(err)

	resp, err := s.queryServer.DistributionConfig(s.ctx, &types.QueryDistributionConfigRequest{})
	s.Require().NoError(err)
	s.Require().Equal(config, resp.DistributionConfig)

	events := s.ctx.EventManager().Events()
	s.Require().Equal(types.EventTypeDistributionConfigChanged, events[len(events)-1].Type)
}

func (s *KeeperTestSuite) TestMsgSetBlockIssueRewardAndHardCap() {
	_, err := s.msgServer.SetBlockIssueReward(s.ctx, &types.MsgSetBlockIssueReward{Authority: s.authority, BlockIssueReward: math.NewInt(77)})
	s.Require().NoError(err)
	_, err = s.msgServer.SetHardCap(s.ctx, &types.MsgSetHardCap{Authority: s.authority, HardCap: math.NewInt(9_999)})
	s.Require().NoError(err)

	reward, err := s.queryServer.BlockIssueReward(s.ctx, &types.QueryBlockIssueRewardRequest{})
	s.Require().NoError(err)
	s.Require().True(reward.BlockIssueReward.Equal(math.NewInt(77)))

	hardCap, err := s.queryServer.HardCap(s.ctx, &types.QueryHardCapRequest{})
	s.Require().NoError(err)
	s.Require().True(hardCap.HardCap.Equal(math.NewInt(9_999)))

	_, err = s.msgServer.SetHardCap(s.ctx, &types.MsgSetHardCap{Authority: s.authority, HardCap: math.NewInt(-1)})
	s.Require().ErrorIs(err, types.ErrInvalidAmount)
}

func (s *KeeperTestSuite) TestMsgTransferAllPot() {
	dest := peaqtestutil.NewAccountAddress()
	s.bankKeeper.EXPECT().GetBalance(gomock.Any(), authtypes.NewModuleAddress(types.ModuleName), testDenom).Return(coins(5)[0])
	s.bankKeeper.EXPECT().SendCoinsFromModuleToAccount(gomock.Any(), types.ModuleName, dest, coinsEq(coins(5))).Return(nil)

	resp, err := s.msgServer.TransferAllPot(s.ctx, &types.MsgTransferAllPot{Authority: s.authority, Destination: dest.String()})
	s.Require().NoError(err)
	s.Require().True(resp.Amount.Equal(math.NewInt(5)))
}

func (s *KeeperTestSuite) TestMsgUpdateParams() {
	_, err := s.msgServer.UpdateParams(s.ctx, &types.MsgUpdateParams{Authority: s.authority, Params: types.NewParams("")})
	s.Require().ErrorIs(err, types.ErrInvalidParams)

	_, err = s.msgServer.UpdateParams(s.ctx, &types.MsgUpdateParams{Authority: s.authority, Params: types.NewParams("upeaq")})
	s.Require().NoError(err)

	resp, err := s.queryServer.Params(s.ctx, &types.QueryParamsRequest{})
	s.Require().NoError(err)
	s.Require().Equal("upeaq", resp.Params.MintDenom)
}
