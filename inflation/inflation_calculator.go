package inflation

import (
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	peaqMath "github.com/peaqnetwork/peaq-network-node-sub001/math"
	"github.com/peaqnetwork/peaq-network-node-sub001/x/inflation/types"
)

// NextYearParameters returns the parameters live in newYear given those of
// the year that just ended. Before the stagnation year the rate decays by the
// disinflation rate; from the stagnation year on the rate is pinned to the
// stagnation rate and no longer decays.
func NextYearParameters(
	config types.InflationConfiguration,
	current types.InflationParameters,
	newYear uint64,
) types.InflationParameters {
	if config.IsStagnant(newYear) {
		return types.InflationParameters{
			InflationRate:    config.InflationStagnationRate,
			DisinflationRate: peaqMath.ZeroPerbill(),
		}
	}
	return types.InflationParameters{
		InflationRate:    peaqMath.CalcExpDecay(current.InflationRate, current.DisinflationRate),
		DisinflationRate: current.DisinflationRate,
	}
}

// ParametersForYear replays the schedule from year one to year.
func ParametersForYear(config types.InflationConfiguration, year uint64) types.InflationParameters {
	params := config.InflationParameters
	for y := uint64(2); y <= year; y++ {
		params = NextYearParameters(config, params, y)
	}
	return params
}

// BlockIssuance returns floor(totalIssuance * rate / blocksPerYear). It is
// zero for a zero year length or a non-positive issuance.
func BlockIssuance(totalIssuance math.Int, rate peaqMath.Perbill, blocksPerYear uint64) math.Int {
	if blocksPerYear == 0 {
		return math.ZeroInt()
	}
	yearly := rate.MulInt(totalIssuance)
	return yearly.Quo(math.NewIntFromUint64(blocksPerYear))
}

// AnnualInflationPercent extrapolates a per-block reward over a year and
// expresses it as a percentage of supply.
func AnnualInflationPercent(blockReward math.Int, blocksPerYear uint64, supply math.Int) (peaqMath.Dec, error) {
	if supply.IsNil() || !supply.IsPositive() {
		return peaqMath.ZeroDec(), nil
	}
	yearly, err := peaqMath.NewDecFromSdkInt(blockReward.Mul(math.NewIntFromUint64(blocksPerYear)))
	if err != nil {
		return peaqMath.Dec{}, errors.Wrap(err, "yearly issuance")
	}
	supplyDec, err := peaqMath.NewDecFromSdkInt(supply)
	if err != nil {
		return peaqMath.Dec{}, errors.Wrap(err, "supply")
	}
	ratio, err := yearly.Quo(supplyDec)
	if err != nil {
		return peaqMath.Dec{}, err
	}
	return ratio.Percent()
}
