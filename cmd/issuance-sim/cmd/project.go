package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/peaqnetwork/peaq-network-node-sub001/app/params"
	"github.com/peaqnetwork/peaq-network-node-sub001/inflation"
	peaqMath "github.com/peaqnetwork/peaq-network-node-sub001/math"
	"github.com/peaqnetwork/peaq-network-node-sub001/x/inflation/types"
)

const (
	flagInflationRate    = "inflation-rate"
	flagDisinflationRate = "disinflation-rate"
	flagStagnationRate   = "stagnation-rate"
	flagStagnationYear   = "stagnation-year"
	flagTotalIssuance    = "total-issuance"
	flagBlockTimeMs      = "block-time-ms"
	flagYears            = "years"
	flagOutput           = "output"
)

// projectConfig is everything a projection needs, read from flags.
type projectConfig struct {
	Configuration types.InflationConfiguration
	// base units
	TotalIssuance math.Int
	BlocksPerYear uint64
	Years         uint64
}

type projectionRow struct {
	Year             uint64 `json:"year"`
	InflationRate    string `json:"inflation_rate"`
	DisinflationRate string `json:"disinflation_rate"`
	TotalIssuance    string `json:"total_issuance"`
	BlockReward      string `json:"block_reward"`
	YearIssuance     string `json:"year_issuance"`
	AnnualInflation  string `json:"annual_inflation_percent"`
}

func NewProjectCmd() *cobra.Command {
	defaults := types.DefaultInflationConfiguration()

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Print the rate, block reward and issuance of every year",
		Example: `issuance-sim project --years 15
issuance-sim project --inflation-rate 0.05 --total-issuance 1000000000 --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := loggerFromCmd(cmd)
			cfg, err := projectConfigFromFlags(cmd)
			if err != nil {
				return err
			}
			logger.Info("projecting schedule",
				"years", cfg.Years,
				"blocks_per_year", cfg.BlocksPerYear,
				"total_issuance", cfg.TotalIssuance.String(),
			)

			rows, err := buildRows(cfg)
			if err != nil {
				return err
			}

			output, err := cmd.Flags().GetString(flagOutput)
			if err != nil {
				return err
			}
			switch output {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			case "text":
				return writeTable(cmd.OutOrStdout(), rows)
			default:
				return fmt.Errorf("unknown output %q, expected text or json", output)
			}
		},
	}

	cmd.Flags().String(flagInflationRate, defaults.InflationParameters.InflationRate.String(), "year one inflation rate as a fraction")
	cmd.Flags().String(flagDisinflationRate, defaults.InflationParameters.DisinflationRate.String(), "yearly relative decay of the rate")
	cmd.Flags().String(flagStagnationRate, defaults.InflationStagnationRate.String(), "rate held from the stagnation year on")
	cmd.Flags().Uint64(flagStagnationYear, defaults.InflationStagnationYear, "first year at the stagnation rate")
	cmd.Flags().String(flagTotalIssuance, "4200000000", "issuance at year one, in "+params.HumanCoinUnit)
	cmd.Flags().Uint64(flagBlockTimeMs, types.DefaultBlockTimeMs, "block time in milliseconds")
	cmd.Flags().Uint64(flagYears, 20, "number of years to project")
	cmd.Flags().String(flagOutput, "text", "output format (text|json)")
	return cmd
}

func projectConfigFromFlags(cmd *cobra.Command) (projectConfig, error) {
	var cfg projectConfig
	rates := map[string]*peaqMath.Perbill{
		flagInflationRate:    &cfg.Configuration.InflationParameters.InflationRate,
		flagDisinflationRate: &cfg.Configuration.InflationParameters.DisinflationRate,
		flagStagnationRate:   &cfg.Configuration.InflationStagnationRate,
	}
	for flag, dst := range rates {
		raw, err := cmd.Flags().GetString(flag)
		if err != nil {
			return cfg, err
		}
		if *dst, err = peaqMath.ParsePerbill(raw); err != nil {
			return cfg, fmt.Errorf("--%s: %w", flag, err)
		}
	}

	var err error
	if cfg.Configuration.InflationStagnationYear, err = cmd.Flags().GetUint64(flagStagnationYear); err != nil {
		return cfg, err
	}
	if err := cfg.Configuration.Validate(); err != nil {
		return cfg, err
	}

	raw, err := cmd.Flags().GetString(flagTotalIssuance)
	if err != nil {
		return cfg, err
	}
	whole, ok := math.NewIntFromString(raw)
	if !ok || whole.IsNegative() {
		return cfg, fmt.Errorf("--%s: %q is not a non-negative integer", flagTotalIssuance, raw)
	}
	cfg.TotalIssuance = whole.Mul(math.NewIntWithDecimal(1, params.CoinExponent))

	blockTimeMs, err := cmd.Flags().GetUint64(flagBlockTimeMs)
	if err != nil {
		return cfg, err
	}
	if blockTimeMs == 0 {
		return cfg, fmt.Errorf("--%s must be positive", flagBlockTimeMs)
	}
	cfg.BlocksPerYear = types.BlocksPerYearFor(blockTimeMs)

	if cfg.Years, err = cmd.Flags().GetUint64(flagYears); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func buildRows(cfg projectConfig) ([]projectionRow, error) {
	projection := inflation.Project(cfg.Configuration, cfg.TotalIssuance, cfg.BlocksPerYear, cfg.Years)
	rows := make([]projectionRow, 0, len(projection))
	for _, y := range projection {
		annual, err := inflation.AnnualInflationPercent(y.BlockReward, cfg.BlocksPerYear, y.TotalIssuance)
		if err != nil {
			return nil, err
		}
		annual, err = annual.Quantize(4)
		if err != nil {
			return nil, err
		}
		total, err := toHuman(y.TotalIssuance)
		if err != nil {
			return nil, err
		}
		reward, err := toHuman(y.BlockReward)
		if err != nil {
			return nil, err
		}
		minted, err := toHuman(y.YearIssuance)
		if err != nil {
			return nil, err
		}
		rows = append(rows, projectionRow{
			Year:             y.Year,
			InflationRate:    y.InflationRate.String(),
			DisinflationRate: y.DisinflationRate.String(),
			TotalIssuance:    total,
			BlockReward:      reward,
			YearIssuance:     minted,
			AnnualInflation:  annual.String(),
		})
	}
	return rows, nil
}

// toHuman renders base units in whole coins to four places.
func toHuman(amount math.Int) (string, error) {
	d, err := peaqMath.NewDecFromSdkInt(amount)
	if err != nil {
		return "", err
	}
	d, err = d.Quo(peaqMath.NewDecFinite(1, int32(params.CoinExponent)))
	if err != nil {
		return "", err
	}
	d, err = d.Quantize(4)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

func writeTable(out io.Writer, rows []projectionRow) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "YEAR\tRATE\tDISINFLATION\tISSUANCE\tBLOCK REWARD\tMINTED\tANNUAL %\t")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			r.Year, r.InflationRate, r.DisinflationRate, r.TotalIssuance, r.BlockReward, r.YearIssuance, r.AnnualInflation)
	}
	return w.Flush()
}
