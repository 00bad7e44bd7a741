package types

import "cosmossdk.io/collections"

var (
	ParamsKey             = collections.NewPrefix(170)
	DistributionConfigKey = collections.NewPrefix(171)
	HardCapKey            = collections.NewPrefix(172)
	BlockIssueRewardKey   = collections.NewPrefix(173)
	StorageVersionKey     = collections.NewPrefix(174)
)

const (
	// module name, also the pot account every block reward is minted into
	ModuleName = "blockreward"

	// StoreKey is the default store key for blockreward
	StoreKey = ModuleName

	ConsensusVersion = 2
)
