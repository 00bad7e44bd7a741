package keeper

import (
	"context"

	"github.com/peaqnetwork/peaq-network-node-sub001/x/inflation/types"
)

var _ types.QueryServer = queryServer{}

func NewQueryServerImpl(k Keeper) types.QueryServer {
	return queryServer{k}
}

type queryServer struct {
	k Keeper
}

// Params returns params of the inflation module.
func (q queryServer) Params(ctx context.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	params, err := q.k.Params.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryParamsResponse{Params: params}, nil
}

func (q queryServer) InflationConfiguration(ctx context.Context, _ *types.QueryInflationConfigurationRequest) (*types.QueryInflationConfigurationResponse, error) {
	config, err := q.k.InflationConfiguration.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryInflationConfigurationResponse{InflationConfiguration: config}, nil
}

// InflationParameters returns the rates live for the current year. Before the
// schedule starts these are the configured year one rates.
func (q queryServer) InflationParameters(ctx context.Context, _ *types.QueryInflationParametersRequest) (*types.QueryInflationParametersResponse, error) {
	initialized, err := q.k.IsInitialized(ctx)
	if err != nil {
		return nil, err
	}
	if !initialized {
		config, err := q.k.InflationConfiguration.Get(ctx)
		if err != nil {
			return nil, err
		}
		return &types.QueryInflationParametersResponse{InflationParameters: config.InflationParameters}, nil
	}
	live, err := q.k.InflationParameters.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryInflationParametersResponse{InflationParameters: live}, nil
}

func (q queryServer) DoRecalculationAt(ctx context.Context, _ *types.QueryDoRecalculationAtRequest) (*types.QueryDoRecalculationAtResponse, error) {
	at, err := getOrZero(ctx, q.k.DoRecalculationAt)
	if err != nil {
		return nil, err
	}
	return &types.QueryDoRecalculationAtResponse{DoRecalculationAt: at}, nil
}

func (q queryServer) DoInitializeAt(ctx context.Context, _ *types.QueryDoInitializeAtRequest) (*types.QueryDoInitializeAtResponse, error) {
	at, err := getOrZero(ctx, q.k.DoInitializeAt)
	if err != nil {
		return nil, err
	}
	return &types.QueryDoInitializeAtResponse{DoInitializeAt: at}, nil
}

func (q queryServer) CurrentYear(ctx context.Context, _ *types.QueryCurrentYearRequest) (*types.QueryCurrentYearResponse, error) {
	year, err := getOrZero(ctx, q.k.CurrentYear)
	if err != nil {
		return nil, err
	}
	return &types.QueryCurrentYearResponse{CurrentYear: year}, nil
}

func (q queryServer) BlockRewards(ctx context.Context, _ *types.QueryBlockRewardsRequest) (*types.QueryBlockRewardsResponse, error) {
	reward, err := q.k.BlockRewards.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryBlockRewardsResponse{BlockRewards: reward}, nil
}

// Inflation returns the annualized inflation in percent.
// note this follows the cached block reward, it moves at every year transition
func (q queryServer) Inflation(ctx context.Context, _ *types.QueryInflationRequest) (*types.QueryInflationResponse, error) {
	inflation, err := q.k.AnnualInflation(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryInflationResponse{Inflation: inflation}, nil
}
