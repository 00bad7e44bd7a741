package types

import (
	"cosmossdk.io/errors"
	peaqMath "github.com/peaqnetwork/peaq-network-node-sub001/math"
)

// InflationParameters are the rates live for the current economic year.
type InflationParameters struct {
	InflationRate    peaqMath.Perbill `json:"inflation_rate"`
	DisinflationRate peaqMath.Perbill `json:"disinflation_rate"`
}

// InflationConfiguration is the governance-set shape of the whole schedule.
type InflationConfiguration struct {
	InflationParameters     InflationParameters `json:"inflation_parameters"`
	InflationStagnationRate peaqMath.Perbill    `json:"inflation_stagnation_rate"`
	// InflationStagnationYear is the first year paid at the stagnation rate.
	InflationStagnationYear uint64 `json:"inflation_stagnation_year"`
}

// DefaultInflationConfiguration is 3.5% decaying by 10% a year until year 13,
// then 1% forever.
func DefaultInflationConfiguration() InflationConfiguration {
	return InflationConfiguration{
		InflationParameters: InflationParameters{
			InflationRate:    peaqMath.MustNewPerbill(35_000_000),
			DisinflationRate: peaqMath.PerbillFromPercent(10),
		},
		InflationStagnationRate: peaqMath.PerbillFromPercent(1),
		InflationStagnationYear: 13,
	}
}

func (c InflationConfiguration) Validate() error {
	if c.InflationStagnationYear < 1 {
		return errors.Wrap(ErrInvalidInflationConfiguration, "stagnation year must be at least 1")
	}
	return nil
}

// IsStagnant reports whether the schedule has reached its terminal rate in year.
func (c InflationConfiguration) IsStagnant(year uint64) bool {
	return year >= c.InflationStagnationYear
}
