package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// MPC module sentinel errors
var (
	ErrInvalidKind               = sdkerrors.Register(ModuleName, 2, "unknown computation kind")
	ErrCompDefNotInitialized     = sdkerrors.Register(ModuleName, 3, "computation definition not initialized")
	ErrCompDefAlreadyInitialized = sdkerrors.Register(ModuleName, 4, "computation definition already initialized")
	ErrDuplicateOffset           = sdkerrors.Register(ModuleName, 5, "computation offset already in use")
	ErrComputationNotFound       = sdkerrors.Register(ModuleName, 6, "pending computation not found")
	ErrComputationFinalized      = sdkerrors.Register(ModuleName, 7, "computation already finalized")
	ErrCallbackOriginMismatch    = sdkerrors.Register(ModuleName, 8, "callback origin does not match expected executor")
	ErrCompDefMismatch           = sdkerrors.Register(ModuleName, 9, "callback computation definition does not match queued definition")
	ErrAbortedComputation        = sdkerrors.Register(ModuleName, 10, "computation was aborted")
	ErrInvalidOutput             = sdkerrors.Register(ModuleName, 11, "invalid computation output payload")
	ErrInvalidArgument           = sdkerrors.Register(ModuleName, 12, "invalid computation argument")
	ErrInvalidAddress            = sdkerrors.Register(ModuleName, 13, "invalid address")
	ErrValidationFailed          = sdkerrors.Register(ModuleName, 14, "message validation failed")
	ErrExecutorRejected          = sdkerrors.Register(ModuleName, 15, "executor rejected computation submission")
	ErrFeePaymentFailed          = sdkerrors.Register(ModuleName, 16, "queue fee payment failed")
	ErrInvalidParams             = sdkerrors.Register(ModuleName, 17, "invalid module parameters")
)
