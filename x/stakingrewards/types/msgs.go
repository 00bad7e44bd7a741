package types

import (
	"context"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
)

type MsgServer interface {
	SetRewardRate(context.Context, *MsgSetRewardRate) (*MsgSetRewardRateResponse, error)
	SetCoefficient(context.Context, *MsgSetCoefficient) (*MsgSetCoefficientResponse, error)
	ClaimRewards(context.Context, *MsgClaimRewards) (*MsgClaimRewardsResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

type MsgSetRewardRate struct {
	Authority  string         `json:"authority"`
	RewardRate RewardRateInfo `json:"reward_rate"`
}

type MsgSetRewardRateResponse struct{}

func (m *MsgSetRewardRate) ValidateBasic() error {
	if m.Authority == "" {
		return errors.Wrap(ErrUnauthorized, "empty authority")
	}
	return m.RewardRate.Validate()
}

type MsgSetCoefficient struct {
	Authority   string `json:"authority"`
	Coefficient uint64 `json:"coefficient"`
}

type MsgSetCoefficientResponse struct{}

func (m *MsgSetCoefficient) ValidateBasic() error {
	if m.Authority == "" {
		return errors.Wrap(ErrUnauthorized, "empty authority")
	}
	return ValidateCoefficient(m.Coefficient)
}

// MsgClaimRewards pays the signer everything owed to it so far. Sender must
// be the account being claimed for.
type MsgClaimRewards struct {
	Sender  string `json:"sender"`
	Account string `json:"account"`
}

type MsgClaimRewardsResponse struct {
	Amount math.Int `json:"amount"`
}

func (m *MsgClaimRewards) ValidateBasic() error {
	if m.Account == "" {
		return errors.Wrap(ErrInvalidAddress, "empty account")
	}
	if m.Sender != m.Account {
		return errors.Wrapf(ErrUnauthorized, "%s cannot claim for %s", m.Sender, m.Account)
	}
	return nil
}

type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

func (m *MsgUpdateParams) ValidateBasic() error {
	if m.Authority == "" {
		return errors.Wrap(ErrUnauthorized, "empty authority")
	}
	if err := m.Params.Validate(); err != nil {
		return errors.Wrap(ErrInvalidParams, err.Error())
	}
	return nil
}
