package inflation

import (
	"cosmossdk.io/math"
	peaqMath "github.com/peaqnetwork/peaq-network-node-sub001/math"
	"github.com/peaqnetwork/peaq-network-node-sub001/x/inflation/types"
)

// YearProjection is the outcome of one economic year of the schedule.
type YearProjection struct {
	Year             uint64
	InflationRate    peaqMath.Perbill
	DisinflationRate peaqMath.Perbill
	// issuance at the start of the year, the base the block reward is taken from
	TotalIssuance math.Int
	BlockReward   math.Int
	// BlockReward paid for every block of the year
	YearIssuance math.Int
}

// Project runs the schedule for the given number of years, assuming every
// block reward of a year is minted before the next recalculation.
func Project(config types.InflationConfiguration, totalIssuance math.Int, blocksPerYear, years uint64) []YearProjection {
	out := make([]YearProjection, 0, years)
	params := config.InflationParameters
	supply := totalIssuance
	for year := uint64(1); year <= years; year++ {
		if year > 1 {
			params = NextYearParameters(config, params, year)
		}
		reward := BlockIssuance(supply, params.InflationRate, blocksPerYear)
		minted := reward.Mul(math.NewIntFromUint64(blocksPerYear))
		out = append(out, YearProjection{
			Year:             year,
			InflationRate:    params.InflationRate,
			DisinflationRate: params.DisinflationRate,
			TotalIssuance:    supply,
			BlockReward:      reward,
			YearIssuance:     minted,
		})
		supply = supply.Add(minted)
	}
	return out
}
