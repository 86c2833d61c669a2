package types

import (
	"context"
)

// MsgServer is the server API for the MPC module's transactions.
type MsgServer interface {
	InitCompDef(context.Context, *MsgInitCompDef) (*MsgInitCompDefResponse, error)
	QueueComputation(context.Context, *MsgQueueComputation) (*MsgQueueComputationResponse, error)
	ResolveCallback(context.Context, *MsgResolveCallback) (*MsgResolveCallbackResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// MsgInitCompDefResponse reports the derived definition identifier.
type MsgInitCompDefResponse struct {
	CompDefId uint32 `json:"comp_def_id"`
}

// MsgQueueComputationResponse echoes the accepted offset.
type MsgQueueComputationResponse struct {
	Offset uint64 `json:"offset"`
}

// MsgResolveCallbackResponse reports the terminal status the record
// reached.
type MsgResolveCallbackResponse struct {
	Status string `json:"status"`
}

// MsgUpdateParamsResponse is the empty update-params response.
type MsgUpdateParamsResponse struct{}
