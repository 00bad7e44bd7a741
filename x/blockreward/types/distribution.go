package types

import (
	"cosmossdk.io/errors"
	"cosmossdk.io/math"

	peaqMath "github.com/peaqnetwork/peaq-network-node-sub001/math"
)

// DistributionConfig splits every block reward between six beneficiaries.
// The fractions must add up to exactly one whole.
type DistributionConfig struct {
	TreasuryPercent            peaqMath.Perbill `json:"treasury_percent"`
	DappsPercent               peaqMath.Perbill `json:"dapps_percent"`
	CollatorsDelegatorsPercent peaqMath.Perbill `json:"collators_delegators_percent"`
	LpPercent                  peaqMath.Perbill `json:"lp_percent"`
	MachinesPercent            peaqMath.Perbill `json:"machines_percent"`
	ParachainLeaseFundPercent  peaqMath.Perbill `json:"parachain_lease_fund_percent"`
}

// DistributionConfigV1 is the layout stored before the parachain lease fund
// share existed.
type DistributionConfigV1 struct {
	TreasuryPercent            peaqMath.Perbill `json:"treasury_percent"`
	DappsPercent               peaqMath.Perbill `json:"dapps_percent"`
	CollatorsDelegatorsPercent peaqMath.Perbill `json:"collators_delegators_percent"`
	LpPercent                  peaqMath.Perbill `json:"lp_percent"`
	MachinesPercent            peaqMath.Perbill `json:"machines_percent"`
}

// Upgrade returns the six share layout with no lease fund share.
func (c DistributionConfigV1) Upgrade() DistributionConfig {
	return DistributionConfig{
		TreasuryPercent:            c.TreasuryPercent,
		DappsPercent:               c.DappsPercent,
		CollatorsDelegatorsPercent: c.CollatorsDelegatorsPercent,
		LpPercent:                  c.LpPercent,
		MachinesPercent:            c.MachinesPercent,
		ParachainLeaseFundPercent:  peaqMath.ZeroPerbill(),
	}
}

func DefaultDistributionConfig() DistributionConfig {
	return DistributionConfig{
		TreasuryPercent:            peaqMath.PerbillFromPercent(20),
		DappsPercent:               peaqMath.PerbillFromPercent(25),
		CollatorsDelegatorsPercent: peaqMath.PerbillFromPercent(10),
		LpPercent:                  peaqMath.PerbillFromPercent(25),
		MachinesPercent:            peaqMath.PerbillFromPercent(10),
		ParachainLeaseFundPercent:  peaqMath.PerbillFromPercent(10),
	}
}

// Fractions lists the shares in beneficiary order.
func (c DistributionConfig) Fractions() []peaqMath.Perbill {
	return []peaqMath.Perbill{
		c.TreasuryPercent,
		c.DappsPercent,
		c.CollatorsDelegatorsPercent,
		c.LpPercent,
		c.MachinesPercent,
		c.ParachainLeaseFundPercent,
	}
}

// Validate folds the shares through a checked add, failing on the first
// overflow or when the total is not exactly one.
func (c DistributionConfig) Validate() error {
	if !peaqMath.SumExactlyOne(c.Fractions()...) {
		return errors.Wrapf(ErrInconsistentDistribution, "treasury %s, dapps %s, collators/delegators %s, lp %s, machines %s, lease fund %s",
			c.TreasuryPercent, c.DappsPercent, c.CollatorsDelegatorsPercent, c.LpPercent, c.MachinesPercent, c.ParachainLeaseFundPercent)
	}
	return nil
}

// DistributionAmounts is one block reward carved by a DistributionConfig.
type DistributionAmounts struct {
	Treasury            math.Int
	Dapps               math.Int
	CollatorsDelegators math.Int
	Lp                  math.Int
	Machines            math.Int
	ParachainLeaseFund  math.Int
	// Dust is what floor rounding left over. It stays in the pot.
	Dust math.Int
}

// Split carves amount into the six shares. Every share is floored, so the
// shares never add up to more than amount.
func (c DistributionConfig) Split(amount math.Int) DistributionAmounts {
	out := DistributionAmounts{
		Treasury:            c.TreasuryPercent.MulInt(amount),
		Dapps:               c.DappsPercent.MulInt(amount),
		CollatorsDelegators: c.CollatorsDelegatorsPercent.MulInt(amount),
		Lp:                  c.LpPercent.MulInt(amount),
		Machines:            c.MachinesPercent.MulInt(amount),
		ParachainLeaseFund:  c.ParachainLeaseFundPercent.MulInt(amount),
	}
	out.Dust = math.ZeroInt()
	if amount.IsNil() || !amount.IsPositive() {
		return out
	}
	out.Dust = amount.Sub(out.Total())
	return out
}

// Shares lists the amounts in payout order.
func (a DistributionAmounts) Shares() []math.Int {
	return []math.Int{a.Treasury, a.Dapps, a.CollatorsDelegators, a.Lp, a.Machines, a.ParachainLeaseFund}
}

// Total is the sum of the six shares, dust excluded.
func (a DistributionAmounts) Total() math.Int {
	return a.Treasury.Add(a.Dapps).Add(a.CollatorsDelegators).Add(a.Lp).Add(a.Machines).Add(a.ParachainLeaseFund)
}
