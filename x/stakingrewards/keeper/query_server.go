package keeper

import (
	"context"

	"github.com/peaqnetwork/peaq-network-node-sub001/x/stakingrewards/types"
)

var _ types.QueryServer = queryServer{}

func NewQueryServerImpl(k Keeper) types.QueryServer {
	return queryServer{k}
}

type queryServer struct {
	k Keeper
}

func (q queryServer) Params(ctx context.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	params, err := q.k.Params.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryParamsResponse{Params: params}, nil
}

func (q queryServer) RewardRate(ctx context.Context, _ *types.QueryRewardRateRequest) (*types.QueryRewardRateResponse, error) {
	rate, err := q.k.RewardRate.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryRewardRateResponse{RewardRate: rate, Strategy: q.k.strategy.String()}, nil
}

func (q queryServer) Coefficient(ctx context.Context, _ *types.QueryCoefficientRequest) (*types.QueryCoefficientResponse, error) {
	c, err := q.k.Coefficient.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryCoefficientResponse{Coefficient: c}, nil
}

// UnclaimedStakingRewards returns what account could claim right now.
func (q queryServer) UnclaimedStakingRewards(ctx context.Context, req *types.QueryUnclaimedStakingRewardsRequest) (*types.QueryUnclaimedStakingRewardsResponse, error) {
	amount, err := q.k.UnclaimedRewards(ctx, req.Account)
	if err != nil {
		return nil, err
	}
	return &types.QueryUnclaimedStakingRewardsResponse{Amount: amount}, nil
}
