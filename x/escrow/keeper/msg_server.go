package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/climemate-chain/climemate/x/escrow/types"
)

var _ types.MsgServer = msgServer{}

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// InitializeEscrow handles creation of a new sale ledger
func (ms msgServer) InitializeEscrow(goCtx context.Context, msg *types.MsgInitializeEscrow) (*types.MsgInitializeEscrowResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationFailed.Wrap(err.Error())
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid admin address: %v", err)
	}

	escrow, err := ms.Keeper.InitializeEscrow(ctx, admin, msg.Denom, msg.PricePerToken)
	if err != nil {
		return nil, err
	}

	return &types.MsgInitializeEscrowResponse{EscrowAddress: escrow.EscrowAddress}, nil
}

// BuyTokens handles a token purchase
func (ms msgServer) BuyTokens(goCtx context.Context, msg *types.MsgBuyTokens) (*types.MsgBuyTokensResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationFailed.Wrap(err.Error())
	}

	buyer, err := sdk.AccAddressFromBech32(msg.Buyer)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid buyer address: %v", err)
	}

	totalPrice, err := ms.Keeper.Buy(ctx, buyer, msg.Denom, msg.Amount)
	if err != nil {
		return nil, err
	}

	return &types.MsgBuyTokensResponse{TotalPrice: totalPrice}, nil
}

// UpdatePrice handles an admin price change
func (ms msgServer) UpdatePrice(goCtx context.Context, msg *types.MsgUpdatePrice) (*types.MsgUpdatePriceResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationFailed.Wrap(err.Error())
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid admin address: %v", err)
	}

	if err := ms.Keeper.UpdatePrice(ctx, admin, msg.Denom, msg.NewPrice); err != nil {
		return nil, err
	}

	return &types.MsgUpdatePriceResponse{}, nil
}

// Withdraw handles an admin inventory withdrawal
func (ms msgServer) Withdraw(goCtx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationFailed.Wrap(err.Error())
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid admin address: %v", err)
	}

	if err := ms.Keeper.Withdraw(ctx, admin, msg.Denom, msg.Amount); err != nil {
		return nil, err
	}

	return &types.MsgWithdrawResponse{}, nil
}
