package keeper

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

// TestVersionConstants verifies version constants are defined.
func TestVersionConstants(t *testing.T) {
	require.Equal(t, "v1.0.0", MpcKeeperVersion)
	require.Equal(t, "v1.0.0", EscrowKeeperVersion)
}

// TestSaleStatsStruct tests SaleStats data structure.
func TestSaleStatsStruct(t *testing.T) {
	stats := SaleStats{
		Denom:        "uco2e",
		Admin:        sdk.AccAddress([]byte("admin_______________")),
		TotalSold:    sdkmath.NewInt(1000),
		TotalRevenue: sdkmath.NewInt(5000),
	}

	require.Equal(t, "uco2e", stats.Denom)
	require.Len(t, stats.Admin, 20)
	require.True(t, stats.TotalSold.Equal(sdkmath.NewInt(1000)))
	require.True(t, stats.TotalRevenue.Equal(sdkmath.NewInt(5000)))
}
