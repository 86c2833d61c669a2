// Package keeper provides shared keeper interfaces and utilities for
// cross-module communication. Modules depend on these interfaces
// rather than on each other's concrete keepers.
package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MpcKeeperV1 defines the minimal mpc keeper interface for cross-module use.
// Version 1.0
type MpcKeeperV1 interface {
	// IsKindInitialized reports whether the computation definition for
	// a kind has been initialized.
	IsKindInitialized(ctx context.Context, kind string) bool

	// QueuedCount returns the number of computations awaiting a callback.
	QueuedCount(ctx context.Context) uint64
}

// EscrowKeeperV1 defines the minimal escrow keeper interface for cross-module use.
// Version 1.0
type EscrowKeeperV1 interface {
	// GetSaleStats returns cumulative sale statistics for a denom.
	GetSaleStats(ctx context.Context, denom string) (SaleStats, bool)
}

// SaleStats holds sale data returned by escrow queries.
type SaleStats struct {
	Denom        string
	Admin        sdk.AccAddress
	TotalSold    sdkmath.Int
	TotalRevenue sdkmath.Int
}

// Interface version constants. Minor bumps add methods to new Extended
// interfaces; major bumps introduce a V2 interface alongside V1.
const (
	MpcKeeperVersion    = "v1.0.0"
	EscrowKeeperVersion = "v1.0.0"
)
