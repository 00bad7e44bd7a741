package keeper

import (
	"context"

	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/peaqnetwork/peaq-network-node-sub001/x/inflation/types"
)

var _ types.MsgServer = msgServer{}

// msgServer is a wrapper of Keeper.
type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the x/inflation MsgServer interface.
func NewMsgServerImpl(k Keeper) types.MsgServer {
	return &msgServer{
		Keeper: k,
	}
}

func (ms msgServer) checkAuthority(signer string) error {
	if signer != ms.authority {
		return errors.Wrapf(types.ErrUnauthorized, "expected %s, got %s", ms.authority, signer)
	}
	return nil
}

func (ms msgServer) SetTge(ctx context.Context, msg *types.MsgSetTge) (*types.MsgSetTgeResponse, error) {
	if err := ms.checkAuthority(msg.Authority); err != nil {
		return nil, err
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	doInitializeAt, err := ms.Keeper.SetTge(sdk.UnwrapSDKContext(ctx), msg.TotalIssuance, msg.RecalculationOffset)
	if err != nil {
		return nil, err
	}
	return &types.MsgSetTgeResponse{DoInitializeAt: doInitializeAt}, nil
}

// SetInflationConfiguration replaces the configuration. Live parameters are
// untouched; the new configuration drives the next year transition.
func (ms msgServer) SetInflationConfiguration(ctx context.Context, msg *types.MsgSetInflationConfiguration) (*types.MsgSetInflationConfigurationResponse, error) {
	if err := ms.checkAuthority(msg.Authority); err != nil {
		return nil, err
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if err := ms.InflationConfiguration.Set(ctx, msg.InflationConfiguration); err != nil {
		return nil, err
	}
	types.EmitInflationConfigurationChangedEvent(sdk.UnwrapSDKContext(ctx), msg.InflationConfiguration)
	return &types.MsgSetInflationConfigurationResponse{}, nil
}

// UpdateParams updates the params.
func (ms msgServer) UpdateParams(ctx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := ms.checkAuthority(msg.Authority); err != nil {
		return nil, err
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if err := ms.Params.Set(ctx, msg.Params); err != nil {
		return nil, err
	}
	types.EmitParamsChangedEvent(sdk.UnwrapSDKContext(ctx), msg.Params)
	return &types.MsgUpdateParamsResponse{}, nil
}
