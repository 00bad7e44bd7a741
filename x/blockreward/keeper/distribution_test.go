package keeper_test

import (
	"errors"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/golang/mock/gomock"

	peaqMath "github.com/peaqnetwork/peaq-network-node-sub001/math"
	peaqtestutil "github.com/peaqnetwork/peaq-network-node-sub001/test/testutil"
	"github.com/peaqnetwork/peaq-network-node-sub001/x/blockreward/types"
)

func (s *KeeperTestSuite) expectPayout(module string, amount int64) {
	s.bankKeeper.EXPECT().SendCoinsFromModuleToModule(gomock.Any(), types.ModuleName, module, coinsEq(coins(amount))).Return(nil)
}

func (s *KeeperTestSuite) TestDistributeBlockRewardDefaultSplit() {
	s.supplyIs(500)
	b := types.DefaultBeneficiaries()
	s.bankKeeper.EXPECT().MintCoins(gomock.Any(), types.ModuleName, coinsEq(coins(1000))).Return(nil)
	s.expectPayout(b.Treasury, 200)
	s.expectPayout(b.Dapps, 250)
	s.expectPayout(b.CollatorsDelegators, 100)
	s.expectPayout(b.Lp, 250)
	s.expectPayout(b.Machines, 100)
	s.expectPayout(b.ParachainLeaseFund, 100)
	s.hooks.EXPECT().AfterCollatorPotFunded(gomock.Any(), intEq(math.NewInt(100))).Return(nil)

	amounts, err := s.keeper.DistributeBlockReward(s.ctx)
	s.Require().NoError(err)
	s.Require().True(amounts.Total().Equal(math.NewInt(1000)))
	s.Require().True(amounts.Dust.IsZero())
}

func (s *KeeperTestSuite) TestDistributeBlockRewardKeepsDustInPot() {
	s.supplyIs(0)
	s.Require().NoError(s.keeper.SetBlockIssueReward(s.ctx, math.NewInt(7)))

	// 20% and 25% of 7 floor to 1, 10% floors to 0
	b := types.DefaultBeneficiaries()
	s.bankKeeper.EXPECT().MintCoins(gomock.Any(), types.ModuleName, coinsEq(coins(7))).Return(nil)
	s.expectPayout(b.Treasury, 1)
	s.expectPayout(b.Dapps, 1)
	s.expectPayout(b.Lp, 1)
	s.hooks.EXPECT().AfterCollatorPotFunded(gomock.Any(), intEq(math.ZeroInt())).Return(nil)

	amounts, err := s.keeper.DistributeBlockReward(s.ctx)
	s.Require().NoError(err)
	s.Require().True(amounts.Dust.Equal(math.NewInt(4)), amounts.Dust.String())
	s.Require().True(amounts.Total().Add(amounts.Dust).Equal(math.NewInt(7)))
}

func (s *KeeperTestSuite) TestDistributeBlockRewardClampedByHardCap() {
	s.supplyIs(1990)
	b := types.DefaultBeneficiaries()
	s.bankKeeper.EXPECT().MintCoins(gomock.Any(), types.ModuleName, coinsEq(coins(10))).Return(nil)
	s.expectPayout(b.Treasury, 2)
	s.expectPayout(b.Dapps, 2)
	s.expectPayout(b.CollatorsDelegators, 1)
	s.expectPayout(b.Lp, 2)
	s.expectPayout(b.Machines, 1)
	s.expectPayout(b.ParachainLeaseFund, 1)
	s.hooks.EXPECT().AfterCollatorPotFunded(gomock.Any(), intEq(math.NewInt(1))).Return(nil)

	amounts, err := s.keeper.DistributeBlockReward(s.ctx)
	s.Require().NoError(err)
	s.Require().True(amounts.Dust.Equal(math.NewInt(1)))
}

func (s *KeeperTestSuite) TestDistributeBlockRewardAtHardCapMintsNothing() {
	s.supplyIs(2500)
	s.hooks.EXPECT().AfterCollatorPotFunded(gomock.Any(), intEq(math.ZeroInt())).Return(nil)

	amounts, err := s.keeper.DistributeBlockReward(s.ctx)
	s.Require().NoError(err)
	s.Require().True(amounts.Total().IsZero())
}

func (s *KeeperTestSuite) TestDistributeBlockRewardSurfacesHookError() {
	s.supplyIs(0)
	s.bankKeeper.EXPECT().MintCoins(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.bankKeeper.EXPECT().SendCoinsFromModuleToModule(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(6)
	s.hooks.EXPECT().AfterCollatorPotFunded(gomock.Any(), gomock.Any()).Return(errors.New("ledger closed"))

	_, err := s.keeper.DistributeBlockReward(s.ctx)
	s.Require().ErrorContains(err, "ledger closed")
}

func (s *KeeperTestSuite) TestSetDistributionConfigInconsistentLeavesStateUntouched() {
	testCases := []struct {
		name   string
		config types.DistributionConfig
	}{
		{
			name: "sums below one",
			config: types.DistributionConfig{
				TreasuryPercent: peaqMath.PerbillFromPercent(50),
				DappsPercent:    peaqMath.PerbillFromPercent(49),
			},
		},
		{
			name: "overflows part way",
			config: types.DistributionConfig{
				TreasuryPercent:            peaqMath.PerbillFromPercent(60),
				DappsPercent:               peaqMath.PerbillFromPercent(60),
				CollatorsDelegatorsPercent: peaqMath.ZeroPerbill(),
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := s.keeper.SetDistributionConfig(s.ctx, tc.config)
			s.Require().ErrorIs(err, types.ErrInconsistentDistribution)

			stored, err := s.keeper.GetDistributionConfig(s.ctx)
			s.Require().NoError(err)
			s.Require().Equal(types.DefaultDistributionConfig(), stored)
		})
	}
}

func (s *KeeperTestSuite) TestSetDistributionConfigReplacesWhole() {
	config := types.DistributionConfig{
		TreasuryPercent:            peaqMath.MustNewPerbill(333_333_333),
		DappsPercent:               peaqMath.MustNewPerbill(333_333_333),
		CollatorsDelegatorsPercent: peaqMath.MustNewPerbill(333_333_334),
	}
	s.Require().NoError(s.keeper.SetDistributionConfig(s.ctx, config))

	stored, err := s.keeper.GetDistributionConfig(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(config, stored)
	s.Require().True(stored.MachinesPercent.IsZero())
}

func (s *KeeperTestSuite) TestTransferAllPot() {
	pot := authtypes.NewModuleAddress(types.ModuleName)
	dest := peaqtestutil.NewAccountAddress()
	s.bankKeeper.EXPECT().GetBalance(gomock.Any(), pot, testDenom).Return(coins(42)[0])
	s.bankKeeper.EXPECT().SendCoinsFromModuleToAccount(gomock.Any(), types.ModuleName, dest, coinsEq(coins(42))).Return(nil)

	amount, err := s.keeper.TransferAllPot(s.ctx, dest.String())
	s.Require().NoError(err)
	s.Require().True(amount.Equal(math.NewInt(42)))
}

func (s *KeeperTestSuite) TestTransferAllPotEmpty() {
	pot := authtypes.NewModuleAddress(types.ModuleName)
	s.bankKeeper.EXPECT().GetBalance(gomock.Any(), pot, testDenom).Return(sdk.NewInt64Coin(testDenom, 0))

	amount, err := s.keeper.TransferAllPot(s.ctx, peaqtestutil.NewAccountAddress().String())
	s.Require().NoError(err)
	s.Require().True(amount.IsZero())
}

func (s *KeeperTestSuite) TestTransferAllPotRejectsBadDestination() {
	_, err := s.keeper.TransferAllPot(s.ctx, "not-an-address")
	s.Require().ErrorIs(err, types.ErrInvalidAddress)
}
