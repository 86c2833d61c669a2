package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer is the server API for the escrow module's transactions.
type MsgServer interface {
	InitializeEscrow(context.Context, *MsgInitializeEscrow) (*MsgInitializeEscrowResponse, error)
	BuyTokens(context.Context, *MsgBuyTokens) (*MsgBuyTokensResponse, error)
	UpdatePrice(context.Context, *MsgUpdatePrice) (*MsgUpdatePriceResponse, error)
	Withdraw(context.Context, *MsgWithdraw) (*MsgWithdrawResponse, error)
}

// MsgInitializeEscrowResponse reports the derived vault address.
type MsgInitializeEscrowResponse struct {
	EscrowAddress string `json:"escrow_address"`
}

// MsgBuyTokensResponse reports the total price charged.
type MsgBuyTokensResponse struct {
	TotalPrice math.Int `json:"total_price"`
}

// MsgUpdatePriceResponse is the empty update-price response.
type MsgUpdatePriceResponse struct{}

// MsgWithdrawResponse is the empty withdraw response.
type MsgWithdrawResponse struct{}
