package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Escrow module sentinel errors
var (
	ErrEscrowExists     = sdkerrors.Register(ModuleName, 2, "escrow already initialized for denom")
	ErrEscrowNotFound   = sdkerrors.Register(ModuleName, 3, "escrow not found")
	ErrUnauthorized     = sdkerrors.Register(ModuleName, 4, "signer is not the escrow admin")
	ErrOverflow         = sdkerrors.Register(ModuleName, 5, "arithmetic overflow")
	ErrInvalidPrice     = sdkerrors.Register(ModuleName, 6, "invalid price")
	ErrInvalidAmount    = sdkerrors.Register(ModuleName, 7, "invalid amount")
	ErrInvalidAddress   = sdkerrors.Register(ModuleName, 8, "invalid address")
	ErrValidationFailed = sdkerrors.Register(ModuleName, 9, "message validation failed")
	ErrTransferFailed   = sdkerrors.Register(ModuleName, 10, "token transfer failed")
	ErrInvalidParams    = sdkerrors.Register(ModuleName, 11, "invalid module parameters")
)
