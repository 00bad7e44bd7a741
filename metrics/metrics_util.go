package metrics

import (
	"math/big"
	"strconv"
	"time"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/telemetry"
	metrics "github.com/hashicorp/go-metrics"
)

// amounts are in base units and routinely exceed an int64
func intToFloat32(x math.Int) float32 {
	if x.IsNil() {
		return 0
	}
	f, _ := new(big.Float).SetInt(x.BigInt()).Float32()
	return f
}

// Issuance computed for the next block
// Metric Name:
//
//	peaq_inflation_block_issuance
func SetBlockIssuance(amount math.Int) {
	telemetry.SetGauge(intToFloat32(amount), "peaq", "inflation", "block_issuance")
}

// peaq_inflation_current_year
func SetCurrentYear(year uint64) {
	metrics.SetGauge(
		[]string{"peaq", "inflation", "current_year"},
		float32(year),
	)
}

// peaq_inflation_year_rollover
func IncrYearRollover() {
	telemetry.IncrCounterWithLabels(
		[]string{"peaq", "inflation", "year_rollover"},
		1,
		nil,
	)
}

// Counts storage migration steps applied on upgrade
// Metric Name:
//
//	peaq_migration_step_applied
func IncrMigrationStepApplied(module string, version uint64) {
	telemetry.IncrCounterWithLabels(
		[]string{"peaq", "migration", "step_applied"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(LABEL_MODULE, module),
			telemetry.NewLabel(LABEL_VERSION, strconv.FormatUint(version, 10)),
		},
	)
}

// Amount transferred to a beneficiary in one block
// Metric Name:
//
//	peaq_blockreward_distributed
func SetDistributedAmount(beneficiary string, amount math.Int) {
	telemetry.SetGaugeWithLabels(
		[]string{"peaq", "blockreward", "distributed"},
		intToFloat32(amount),
		[]metrics.Label{telemetry.NewLabel(LABEL_BENEFICIARY, beneficiary)},
	)
}

// Measures the time taken to mint and split a block reward
// Metric Names:
//
//	peaq_blockreward_distribution_milliseconds
//	peaq_blockreward_distribution_milliseconds_count
//	peaq_blockreward_distribution_milliseconds_sum
func MeasureDistributionDuration(start time.Time) {
	metrics.MeasureSince(
		[]string{"peaq", "blockreward", "distribution", "milliseconds"},
		start.UTC(),
	)
}

// peaq_stakingrewards_claim
func IncrRewardClaim(strategy string) {
	telemetry.IncrCounterWithLabels(
		[]string{"peaq", "stakingrewards", "claim"},
		1,
		[]metrics.Label{telemetry.NewLabel(LABEL_STRATEGY, strategy)},
	)
}
