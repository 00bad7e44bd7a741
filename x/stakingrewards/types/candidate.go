package types

import (
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
)

type CandidateStatus int32

const (
	CandidateStatusActive CandidateStatus = iota
	// leaving candidates keep their stake until the exit delay passes but earn nothing
	CandidateStatusLeaving
)

func (s CandidateStatus) String() string {
	switch s {
	case CandidateStatusActive:
		return "active"
	case CandidateStatusLeaving:
		return "leaving"
	default:
		return "unknown"
	}
}

// Stake is an amount bonded by one account.
type Stake struct {
	Owner  string   `json:"owner"`
	Amount math.Int `json:"amount"`
}

// Candidate is a collator as the staking ledger sees it: its own bond and the
// delegations it backs.
type Candidate struct {
	Owner      string          `json:"owner"`
	Stake      math.Int        `json:"stake"`
	Delegators []Stake         `json:"delegators"`
	Status     CandidateStatus `json:"status"`
}

func (c Candidate) IsActive() bool {
	return c.Status == CandidateStatusActive
}

// Validate rejects nil or negative bonds.
func (c Candidate) Validate() error {
	if c.Stake.IsNil() || c.Stake.IsNegative() {
		return errors.Wrapf(ErrInvalidStake, "collator %s stake %s", c.Owner, c.Stake)
	}
	for _, d := range c.Delegators {
		if d.Amount.IsNil() || d.Amount.IsNegative() {
			return errors.Wrapf(ErrInvalidStake, "delegator %s stake %s", d.Owner, d.Amount)
		}
	}
	return nil
}

// DelegatorStake returns the stake delegator has with the candidate.
func (c Candidate) DelegatorStake(delegator string) (math.Int, bool) {
	for _, d := range c.Delegators {
		if d.Owner == delegator {
			return d.Amount, true
		}
	}
	return math.ZeroInt(), false
}
