package keeper

import (
	"context"

	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/peaqnetwork/peaq-network-node-sub001/x/blockreward/types"
)

var _ types.MsgServer = msgServer{}

// msgServer is a wrapper of Keeper.
type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the x/blockreward MsgServer interface.
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

func (ms msgServer) SetDistributionConfig(ctx context.Context, msg *types.MsgSetDistributionConfig) (*types.MsgSetDistributionConfigResponse, error) {
	if err := ms.checkAuthority(msg.Authority); err != nil {
		return nil, err
	}
	if err := ms.Keeper.SetDistributionConfig(ctx, msg.DistributionConfig); err != nil {
		return nil, err
	}
	return &types.MsgSetDistributionConfigResponse{}, nil
}

func (ms msgServer) SetBlockIssueReward(ctx context.Context, msg *types.MsgSetBlockIssueReward) (*types.MsgSetBlockIssueRewardResponse, error) {
	if err := ms.checkAuthority(msg.Authority); err != nil {
		return nil, err
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if err := ms.Keeper.SetBlockIssueReward(ctx, msg.BlockIssueReward); err != nil {
		return nil, err
	}
	types.EmitBlockIssueRewardChangedEvent(sdk.UnwrapSDKContext(ctx), msg.BlockIssueReward)
	return &types.MsgSetBlockIssueRewardResponse{}, nil
}

func (ms msgServer) SetHardCap(ctx context.Context, msg *types.MsgSetHardCap) (*types.MsgSetHardCapResponse, error) {
	if err := ms.checkAuthority(msg.Authority); err != nil {
		return nil, err
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if err := ms.Keeper.SetHardCap(ctx, msg.HardCap); err != nil {
		return nil, err
	}
	types.EmitHardCapChangedEvent(sdk.UnwrapSDKContext(ctx), msg.HardCap)
	return &types.MsgSetHardCapResponse{}, nil
}

func (ms msgServer) TransferAllPot(ctx context.Context, msg *types.MsgTransferAllPot) (*types.MsgTransferAllPotResponse, error) {
	if err := ms.checkAuthority(msg.Authority); err != nil {
		return nil, err
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	amount, err := ms.Keeper.TransferAllPot(ctx, msg.Destination)
	if err != nil {
		return nil, err
	}
	return &types.MsgTransferAllPotResponse{Amount: amount}, nil
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
