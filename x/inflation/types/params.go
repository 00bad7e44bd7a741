package types

import (
	"errors"
	"fmt"
	"strings"

	"cosmossdk.io/math"
	"github.com/peaqnetwork/peaq-network-node-sub001/app/params"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// milliseconds in a julian year, the length of one economic year
	MillisecondsPerYear uint64 = 31_557_600_000

	DefaultBlockTimeMs uint64 = 6_000
	// block time used before the move to six second blocks
	LegacyBlockTimeMs uint64 = 12_000
)

// Params holds the tunables of the inflation schedule that are not part of
// the economic configuration itself.
type Params struct {
	MintDenom     string `json:"mint_denom"`
	BlocksPerYear uint64 `json:"blocks_per_year"`
	// BlockTimeMs is the target block time the BlocksPerYear figure was derived from.
	// A zero value is read as LegacyBlockTimeMs.
	BlockTimeMs uint64 `json:"block_time_ms,omitempty"`
	// BlockRewardBeforeInitialize is paid per block until the schedule is initialized.
	BlockRewardBeforeInitialize math.Int `json:"block_reward_before_initialize"`
}

// NewParams returns Params instance with the given values.
func NewParams(mintDenom string, blocksPerYear, blockTimeMs uint64, rewardBeforeInitialize math.Int) Params {
	return Params{
		MintDenom:                   mintDenom,
		BlocksPerYear:               blocksPerYear,
		BlockTimeMs:                 blockTimeMs,
		BlockRewardBeforeInitialize: rewardBeforeInitialize,
	}
}

// DefaultParams returns default x/inflation module parameters.
func DefaultParams() Params {
	return Params{
		MintDenom:                   params.BaseCoinUnit,
		BlocksPerYear:               BlocksPerYearFor(DefaultBlockTimeMs),
		BlockTimeMs:                 DefaultBlockTimeMs,
		BlockRewardBeforeInitialize: DefaultBlockRewardBeforeInitialize(),
	}
}

// ~79.1 peaq per block until the token generation event
func DefaultBlockRewardBeforeInitialize() math.Int {
	reward, ok := math.NewIntFromString("79098670000000000000")
	if !ok {
		panic("failed to parse default block reward before initialize")
	}
	return reward
}

// BlocksPerYearFor returns how many blocks of the given duration fit in a year.
// 6s blocks give 5259600 blocks per year, 12s blocks give 2629800.
func BlocksPerYearFor(blockTimeMs uint64) uint64 {
	if blockTimeMs == 0 {
		return 0
	}
	return MillisecondsPerYear / blockTimeMs
}

// EffectiveBlockTimeMs returns BlockTimeMs, reading an unset value as the
// legacy twelve second block time.
func (p Params) EffectiveBlockTimeMs() uint64 {
	if p.BlockTimeMs == 0 {
		return LegacyBlockTimeMs
	}
	return p.BlockTimeMs
}

// Validate does the sanity check on the params.
func (p Params) Validate() error {
	if err := validateMintDenom(p.MintDenom); err != nil {
		return err
	}
	if p.BlocksPerYear == 0 {
		return errors.New("blocks per year must be positive")
	}
	if p.BlockRewardBeforeInitialize.IsNil() || p.BlockRewardBeforeInitialize.IsNegative() {
		return fmt.Errorf("block reward before initialize must be non-negative: %s", p.BlockRewardBeforeInitialize)
	}
	return nil
}

func validateMintDenom(v string) error {
	if strings.TrimSpace(v) == "" {
		return errors.New("mint denom cannot be blank")
	}
	return sdk.ValidateDenom(v)
}
