package types

import (
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// GenesisState is the whole x/inflation state.
type GenesisState struct {
	Params                 Params                 `json:"params"`
	InflationConfiguration InflationConfiguration `json:"inflation_configuration"`
	InflationParameters    InflationParameters    `json:"inflation_parameters"`
	// CurrentYear is zero while the token generation event is still pending.
	CurrentYear       uint64   `json:"current_year"`
	DoRecalculationAt uint64   `json:"do_recalculation_at"`
	DoInitializeAt    uint64   `json:"do_initialize_at"`
	TotalIssuanceNum  math.Int `json:"total_issuance_num"`
	BlockRewards      math.Int `json:"block_rewards"`
}

// NewGenesisState creates a new GenesisState object
func NewGenesisState(params Params, config InflationConfiguration, totalIssuance math.Int) *GenesisState {
	return &GenesisState{
		Params:                 params,
		InflationConfiguration: config,
		InflationParameters:    config.InflationParameters,
		CurrentYear:            1,
		DoRecalculationAt:      params.BlocksPerYear,
		DoInitializeAt:         0,
		TotalIssuanceNum:       totalIssuance,
		BlockRewards:           math.ZeroInt(),
	}
}

// DefaultGenesisState starts the schedule at genesis: year one, first
// recalculation one year of blocks in.
func DefaultGenesisState() *GenesisState {
	return NewGenesisState(DefaultParams(), DefaultInflationConfiguration(), DefaultTotalIssuance())
}

// 4.2 billion peaq
func DefaultTotalIssuance() math.Int {
	return math.NewIntWithDecimal(4_200_000_000, 18)
}

// ValidateGenesis validates the provided genesis state to ensure the
// expected invariants holds.
func ValidateGenesis(data GenesisState) error {
	if err := data.Params.Validate(); err != nil {
		return errors.Wrap(ErrInvalidParams, err.Error())
	}
	if err := data.InflationConfiguration.Validate(); err != nil {
		return err
	}
	if data.TotalIssuanceNum.IsNil() || data.TotalIssuanceNum.IsNegative() {
		return errors.Wrap(ErrInvalidTotalIssuance, "total issuance must be non-negative")
	}
	if !data.BlockRewards.IsNil() && data.BlockRewards.IsNegative() {
		return errors.Wrap(ErrInvalidGenesis, "block rewards must be non-negative")
	}
	if data.CurrentYear > 0 && data.DoRecalculationAt == 0 {
		return errors.Wrap(ErrInvalidGenesis, "an initialized schedule needs a recalculation block")
	}
	return nil
}
