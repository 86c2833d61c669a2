package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the bank capabilities the MPC module consumes.
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// ExecutorEngine is the external remote-execution cluster, consumed as
// a capability. Submit hands a queued computation and its pinned
// callback route to the cluster; a rejected submission fails the queue
// operation.
type ExecutorEngine interface {
	Submit(ctx context.Context, offset uint64, compDefId uint32, args []Argument, route CallbackRoute) error
}
