package types

import (
	"context"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// MsgServer is the privileged write surface of x/inflation.
type MsgServer interface {
	SetTge(context.Context, *MsgSetTge) (*MsgSetTgeResponse, error)
	SetInflationConfiguration(context.Context, *MsgSetInflationConfiguration) (*MsgSetInflationConfigurationResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// MsgSetTge schedules the one-time token generation event.
type MsgSetTge struct {
	Authority     string   `json:"authority"`
	TotalIssuance math.Int `json:"total_issuance"`
	// RecalculationOffset is the number of blocks from now at which the schedule initializes.
	RecalculationOffset uint64 `json:"recalculation_offset"`
}

type MsgSetTgeResponse struct {
	DoInitializeAt uint64 `json:"do_initialize_at"`
}

func (m *MsgSetTge) ValidateBasic() error {
	if m.Authority == "" {
		return errors.Wrap(ErrUnauthorized, "empty authority")
	}
	if m.TotalIssuance.IsNil() || m.TotalIssuance.IsNegative() {
		return errors.Wrapf(ErrInvalidTotalIssuance, "%s", m.TotalIssuance)
	}
	return nil
}

type MsgSetInflationConfiguration struct {
	Authority              string                 `json:"authority"`
	InflationConfiguration InflationConfiguration `json:"inflation_configuration"`
}

type MsgSetInflationConfigurationResponse struct{}

func (m *MsgSetInflationConfiguration) ValidateBasic() error {
	if m.Authority == "" {
		return errors.Wrap(ErrUnauthorized, "empty authority")
	}
	return m.InflationConfiguration.Validate()
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
