package types

import "cosmossdk.io/collections"

var (
	ParamsKey         = collections.NewPrefix(180)
	RewardRateKey     = collections.NewPrefix(181)
	CoefficientKey    = collections.NewPrefix(182)
	LastBlockPoolKey  = collections.NewPrefix(183)
	RewardsKey        = collections.NewPrefix(184)
	BlocksRewardedKey = collections.NewPrefix(185)
	StorageVersionKey = collections.NewPrefix(186)
)

const (
	// module name, also the account collator pot payouts are held in until claimed
	ModuleName = "stakingrewards"

	// StoreKey is the default store key for stakingrewards
	StoreKey = ModuleName

	ConsensusVersion = 2
)
