package keeper

import (
	"context"

	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/peaqnetwork/peaq-network-node-sub001/x/stakingrewards/types"
)

var _ types.MsgServer = msgServer{}

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the x/stakingrewards MsgServer interface.
func NewMsgServerImpl(k Keeper) types.MsgServer {
	return &msgServer{Keeper: k}
}

func (ms msgServer) checkAuthority(signer string) error {
	if signer != ms.authority {
		return errors.Wrapf(types.ErrUnauthorized, "expected %s, got %s", ms.authority, signer)
	}
	return nil
}

func (ms msgServer) SetRewardRate(ctx context.Context, msg *types.MsgSetRewardRate) (*types.MsgSetRewardRateResponse, error) {
	if err := ms.checkAuthority(msg.Authority); err != nil {
		return nil, err
	}
	if err := ms.Keeper.SetRewardRate(ctx, msg.RewardRate); err != nil {
		return nil, err
	}
	return &types.MsgSetRewardRateResponse{}, nil
}

func (ms msgServer) SetCoefficient(ctx context.Context, msg *types.MsgSetCoefficient) (*types.MsgSetCoefficientResponse, error) {
	if err := ms.checkAuthority(msg.Authority); err != nil {
		return nil, err
	}
	if err := ms.Keeper.SetCoefficient(ctx, msg.Coefficient); err != nil {
		return nil, err
	}
	return &types.MsgSetCoefficientResponse{}, nil
}

// ClaimRewards is not privileged: the signer claims its own rewards.
func (ms msgServer) ClaimRewards(ctx context.Context, msg *types.MsgClaimRewards) (*types.MsgClaimRewardsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	amount, err := ms.Keeper.ClaimRewards(ctx, msg.Account)
	if err != nil {
		return nil, err
	}
	return &types.MsgClaimRewardsResponse{Amount: amount}, nil
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
