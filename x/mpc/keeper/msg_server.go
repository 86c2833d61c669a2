package keeper

import (
	"context"
	"errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/climemate-chain/climemate/x/mpc/types"
	sharedkeeper "github.com/climemate-chain/climemate/x/shared/keeper"
)

var _ types.MsgServer = msgServer{}

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// InitCompDef handles one-time initialization of a computation definition
func (ms msgServer) InitCompDef(goCtx context.Context, msg *types.MsgInitCompDef) (*types.MsgInitCompDefResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationFailed.Wrap(err.Error())
	}

	payer, err := sdk.AccAddressFromBech32(msg.Payer)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid payer address: %v", err)
	}

	def, err := ms.Keeper.InitCompDef(ctx, payer, msg.Kind)
	if err != nil {
		return nil, err
	}

	return &types.MsgInitCompDefResponse{CompDefId: def.Id}, nil
}

// QueueComputation handles queueing of a new computation request
func (ms msgServer) QueueComputation(goCtx context.Context, msg *types.MsgQueueComputation) (*types.MsgQueueComputationResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationFailed.Wrap(err.Error())
	}

	requester, err := sdk.AccAddressFromBech32(msg.Requester)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid requester address: %v", err)
	}

	comp, err := ms.Keeper.QueueComputation(ctx, requester, msg.Kind, msg.Offset, msg.Args)
	if err != nil {
		return nil, err
	}

	return &types.MsgQueueComputationResponse{Offset: comp.Offset}, nil
}

// ResolveCallback handles an executor callback for a queued computation.
// An aborted computation finalizes as ABORTED and the delivery still
// succeeds; failing the delivery would discard the terminal state and
// leave the offset resolvable by a later, forged callback.
func (ms msgServer) ResolveCallback(goCtx context.Context, msg *types.MsgResolveCallback) (*types.MsgResolveCallbackResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationFailed.Wrap(err.Error())
	}

	_, err := ms.Keeper.ResolveCallback(ctx, msg.Executor, msg.Offset, msg.CompDefId, msg.Output)
	if err != nil {
		if errors.Is(err, types.ErrAbortedComputation) {
			return &types.MsgResolveCallbackResponse{Status: types.COMPUTATION_STATUS_ABORTED.String()}, nil
		}
		return nil, err
	}

	return &types.MsgResolveCallbackResponse{Status: types.COMPUTATION_STATUS_RESOLVED.String()}, nil
}

// UpdateParams handles governance parameter updates
func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationFailed.Wrap(err.Error())
	}

	if err := sharedkeeper.ValidateAuthority(ms.Keeper.GetAuthority(), msg.Authority); err != nil {
		return nil, err
	}

	if err := ms.Keeper.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}

	return &types.MsgUpdateParamsResponse{}, nil
}
