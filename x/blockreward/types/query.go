package types

import (
	"context"

	"cosmossdk.io/math"
)

// QueryServer is the read surface of x/blockreward.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	DistributionConfig(context.Context, *QueryDistributionConfigRequest) (*QueryDistributionConfigResponse, error)
	HardCap(context.Context, *QueryHardCapRequest) (*QueryHardCapResponse, error)
	BlockIssueReward(context.Context, *QueryBlockIssueRewardRequest) (*QueryBlockIssueRewardResponse, error)
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryDistributionConfigRequest struct{}

type QueryDistributionConfigResponse struct {
	DistributionConfig DistributionConfig `json:"distribution_config"`
}

type QueryHardCapRequest struct{}

type QueryHardCapResponse struct {
	HardCap math.Int `json:"hard_cap"`
}

type QueryBlockIssueRewardRequest struct{}

type QueryBlockIssueRewardResponse struct {
	BlockIssueReward math.Int `json:"block_issue_reward"`
}
