package types

import "cosmossdk.io/collections"

// prefixes are kept disjoint from the other modules of this repository so
// that keepers sharing a test store never collide
var (
	ParamsKey                 = collections.NewPrefix(160)
	InflationConfigurationKey = collections.NewPrefix(161)
	InflationParametersKey    = collections.NewPrefix(162)
	CurrentYearKey            = collections.NewPrefix(163)
	DoRecalculationAtKey      = collections.NewPrefix(164)
	DoInitializeAtKey         = collections.NewPrefix(165)
	TotalIssuanceNumKey       = collections.NewPrefix(166)
	BlockRewardsKey           = collections.NewPrefix(167)
	StorageVersionKey         = collections.NewPrefix(168)
)

const (
	// module name
	ModuleName = "inflation"

	// StoreKey is the default store key for inflation
	StoreKey = ModuleName

	// ConsensusVersion is the storage layout version compiled into this binary.
	ConsensusVersion = 3

	// GovModuleName duplicates the gov module's name to avoid a cyclic dependency with x/gov.
	GovModuleName = "gov"
)
