package types

import (
	"context"

	"cosmossdk.io/math"
)

type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	RewardRate(context.Context, *QueryRewardRateRequest) (*QueryRewardRateResponse, error)
	Coefficient(context.Context, *QueryCoefficientRequest) (*QueryCoefficientResponse, error)
	UnclaimedStakingRewards(context.Context, *QueryUnclaimedStakingRewardsRequest) (*QueryUnclaimedStakingRewardsResponse, error)
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryRewardRateRequest struct{}

type QueryRewardRateResponse struct {
	RewardRate RewardRateInfo `json:"reward_rate"`
	Strategy   string         `json:"strategy"`
}

type QueryCoefficientRequest struct{}

type QueryCoefficientResponse struct {
	Coefficient uint64 `json:"coefficient"`
}

type QueryUnclaimedStakingRewardsRequest struct {
	Account string `json:"account"`
}

type QueryUnclaimedStakingRewardsResponse struct {
	Amount math.Int `json:"amount"`
}
