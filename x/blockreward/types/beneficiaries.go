package types

// Beneficiaries names the module account each share is sent to.
type Beneficiaries struct {
	Treasury            string
	Dapps               string
	CollatorsDelegators string
	Lp                  string
	Machines            string
	ParachainLeaseFund  string
}

func DefaultBeneficiaries() Beneficiaries {
	return Beneficiaries{
		Treasury:            "treasury",
		Dapps:               "dapps_staking",
		CollatorsDelegators: "stakingrewards",
		Lp:                  "liquidity_providers",
		Machines:            "machines",
		ParachainLeaseFund:  "parachain_lease_fund",
	}
}

// ShareLabels names the shares in payout order, for events and metrics.
var ShareLabels = []string{"treasury", "dapps", "collators_delegators", "lp", "machines", "parachain_lease_fund"}

// Accounts lists the beneficiary accounts in payout order.
func (b Beneficiaries) Accounts() []string {
	return []string{b.Treasury, b.Dapps, b.CollatorsDelegators, b.Lp, b.Machines, b.ParachainLeaseFund}
}
