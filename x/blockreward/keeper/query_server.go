package keeper

import (
	"context"

	"github.com/peaqnetwork/peaq-network-node-sub001/x/blockreward/types"
)

var _ types.QueryServer = queryServer{}

func NewQueryServerImpl(k Keeper) types.QueryServer {
	return queryServer{k}
}

type queryServer struct {
	k Keeper
}

// Params returns params of the blockreward module.
func (q queryServer) Params(ctx context.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	params, err := q.k.Params.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryParamsResponse{Params: params}, nil
}

func (q queryServer) DistributionConfig(ctx context.Context, _ *types.QueryDistributionConfigRequest) (*types.QueryDistributionConfigResponse, error) {
	config, err := q.k.GetDistributionConfig(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryDistributionConfigResponse{DistributionConfig: config}, nil
}

func (q queryServer) HardCap(ctx context.Context, _ *types.QueryHardCapRequest) (*types.QueryHardCapResponse, error) {
	hardCap, err := q.k.HardCap.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryHardCapResponse{HardCap: hardCap}, nil
}

func (q queryServer) BlockIssueReward(ctx context.Context, _ *types.QueryBlockIssueRewardRequest) (*types.QueryBlockIssueRewardResponse, error) {
	reward, err := q.k.BlockIssueReward.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryBlockIssueRewardResponse{BlockIssueReward: reward}, nil
}
