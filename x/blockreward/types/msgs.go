package types

import (
	"context"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// MsgServer is the privileged write surface of x/blockreward.
type MsgServer interface {
	SetDistributionConfig(context.Context, *MsgSetDistributionConfig) (*MsgSetDistributionConfigResponse, error)
	SetBlockIssueReward(context.Context, *MsgSetBlockIssueReward) (*MsgSetBlockIssueRewardResponse, error)
	SetHardCap(context.Context, *MsgSetHardCap) (*MsgSetHardCapResponse, error)
	TransferAllPot(context.Context, *MsgTransferAllPot) (*MsgTransferAllPotResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

func validateAuthority(authority string) error {
	if authority == "" {
		return errors.Wrap(ErrUnauthorized, "empty authority")
	}
	return nil
}

type MsgSetDistributionConfig struct {
	Authority          string             `json:"authority"`
	DistributionConfig DistributionConfig `json:"distribution_config"`
}

type MsgSetDistributionConfigResponse struct{}

func (m *MsgSetDistributionConfig) ValidateBasic() error {
	if err := validateAuthority(m.Authority); err != nil {
		return err
	}
	return m.DistributionConfig.Validate()
}

type MsgSetBlockIssueReward struct {
	Authority        string   `json:"authority"`
	BlockIssueReward math.Int `json:"block_issue_reward"`
}

type MsgSetBlockIssueRewardResponse struct{}

func (m *MsgSetBlockIssueReward) ValidateBasic() error {
	if err := validateAuthority(m.Authority); err != nil {
		return err
	}
	return validateAmount("block issue reward", m.BlockIssueReward)
}

type MsgSetHardCap struct {
	Authority string   `json:"authority"`
	HardCap   math.Int `json:"hard_cap"`
}

type MsgSetHardCapResponse struct{}

func (m *MsgSetHardCap) ValidateBasic() error {
	if err := validateAuthority(m.Authority); err != nil {
		return err
	}
	return validateAmount("hard cap", m.HardCap)
}

// MsgTransferAllPot drains the pot account into Destination.
type MsgTransferAllPot struct {
	Authority   string `json:"authority"`
	Destination string `json:"destination"`
}

type MsgTransferAllPotResponse struct {
	Amount math.Int `json:"amount"`
}

func (m *MsgTransferAllPot) ValidateBasic() error {
	if err := validateAuthority(m.Authority); err != nil {
		return err
	}
	if m.Destination == "" {
		return errors.Wrap(ErrInvalidAddress, "empty destination")
	}
	return nil
}

type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

func (m *MsgUpdateParams) ValidateBasic() error {
	if err := validateAuthority(m.Authority); err != nil {
		return err
	}
	if err := m.Params.Validate(); err != nil {
		return errors.Wrap(ErrInvalidParams, err.Error())
	}
	return nil
}
