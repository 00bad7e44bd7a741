package types

import (
	"context"

	"cosmossdk.io/math"
	peaqMath "github.com/peaqnetwork/peaq-network-node-sub001/math"
)

// QueryServer is the read surface of x/inflation.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	InflationConfiguration(context.Context, *QueryInflationConfigurationRequest) (*QueryInflationConfigurationResponse, error)
	InflationParameters(context.Context, *QueryInflationParametersRequest) (*QueryInflationParametersResponse, error)
	DoRecalculationAt(context.Context, *QueryDoRecalculationAtRequest) (*QueryDoRecalculationAtResponse, error)
	DoInitializeAt(context.Context, *QueryDoInitializeAtRequest) (*QueryDoInitializeAtResponse, error)
	CurrentYear(context.Context, *QueryCurrentYearRequest) (*QueryCurrentYearResponse, error)
	BlockRewards(context.Context, *QueryBlockRewardsRequest) (*QueryBlockRewardsResponse, error)
	Inflation(context.Context, *QueryInflationRequest) (*QueryInflationResponse, error)
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryInflationConfigurationRequest struct{}

type QueryInflationConfigurationResponse struct {
	InflationConfiguration InflationConfiguration `json:"inflation_configuration"`
}

type QueryInflationParametersRequest struct{}

type QueryInflationParametersResponse struct {
	InflationParameters InflationParameters `json:"inflation_parameters"`
}

type QueryDoRecalculationAtRequest struct{}

type QueryDoRecalculationAtResponse struct {
	DoRecalculationAt uint64 `json:"do_recalculation_at"`
}

type QueryDoInitializeAtRequest struct{}

type QueryDoInitializeAtResponse struct {
	DoInitializeAt uint64 `json:"do_initialize_at"`
}

type QueryCurrentYearRequest struct{}

type QueryCurrentYearResponse struct {
	CurrentYear uint64 `json:"current_year"`
}

type QueryBlockRewardsRequest struct{}

type QueryBlockRewardsResponse struct {
	BlockRewards math.Int `json:"block_rewards"`
}

type QueryInflationRequest struct{}

// QueryInflationResponse carries the annualized issuance as a percentage of
// the current supply.
type QueryInflationResponse struct {
	Inflation peaqMath.Dec `json:"inflation"`
}
