package params

const (
	// HumanCoinUnit is the display denomination of the native token.
	HumanCoinUnit = "peaq"
	// BaseCoinUnit is the smallest unit of the native token, used for every on-chain amount.
	BaseCoinUnit = "apeaq"
	// CoinExponent is the number of decimals between HumanCoinUnit and BaseCoinUnit.
	CoinExponent = 18

	DefaultBondDenom = BaseCoinUnit
)
