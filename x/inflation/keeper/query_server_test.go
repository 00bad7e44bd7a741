package keeper_test

import (
	"cosmossdk.io/math"

	peaqMath "github.com/peaqnetwork/peaq-network-node-sub001/math"
	"github.com/peaqnetwork/peaq-network-node-sub001/x/inflation/types"
)

func (s *KeeperTestSuite) TestQueries() {
	gs := testGenesis()
	s.initGenesis(gs)

	params, err := s.queryServer.Params(s.ctx, &types.QueryParamsRequest{})
	s.Require().NoError(err)
	s.Require().Equal(uint64(60), params.Params.BlocksPerYear)

	config, err := s.queryServer.InflationConfiguration(s.ctx, &types.QueryInflationConfigurationRequest{})
	s.Require().NoError(err)
	s.Require().Equal(gs.InflationConfiguration, config.InflationConfiguration)

	live, err := s.queryServer.InflationParameters(s.ctx, &types.QueryInflationParametersRequest{})
	s.Require().NoError(err)
	s.Require().Equal(gs.InflationParameters, live.InflationParameters)

	doRecalculationAt, err := s.queryServer.DoRecalculationAt(s.ctx, &types.QueryDoRecalculationAtRequest{})
	s.Require().NoError(err)
	s.Require().Equal(uint64(60), doRecalculationAt.DoRecalculationAt)

	doInitializeAt, err := s.queryServer.DoInitializeAt(s.ctx, &types.QueryDoInitializeAtRequest{})
	s.Require().NoError(err)
	s.Require().Equal(uint64(0), doInitializeAt.DoInitializeAt)

	year, err := s.queryServer.CurrentYear(s.ctx, &types.QueryCurrentYearRequest{})
	s.Require().NoError(err)
	s.Require().Equal(uint64(1), year.CurrentYear)

	rewards, err := s.queryServer.BlockRewards(s.ctx, &types.QueryBlockRewardsRequest{})
	s.Require().NoError(err)
	s.Require().True(rewards.BlockRewards.Equal(math.NewInt(1666)))
}

func (s *KeeperTestSuite) TestQueryInflation() {
	s.initGenesis(testGenesis())
	s.supplyIs(1_000_000)

	resp, err := s.queryServer.Inflation(s.ctx, &types.QueryInflationRequest{})
	s.Require().NoError(err)
	// 1666 * 60 / 1_000_000
	s.Require().True(resp.Inflation.Equal(peaqMath.MustNewDecFromString("9.996")), resp.Inflation.String())
}

func (s *KeeperTestSuite) TestQueryInflationParametersBeforeInitialize() {
	gs := testGenesis()
	gs.CurrentYear = 0
	gs.DoInitializeAt = 100
	gs.InflationParameters = types.InflationParameters{}
	s.initGenesis(gs)

	live, err := s.queryServer.InflationParameters(s.ctx, &types.QueryInflationParametersRequest{})
	s.Require().NoError(err)
	s.Require().Equal(gs.InflationConfiguration.InflationParameters, live.InflationParameters)
}
