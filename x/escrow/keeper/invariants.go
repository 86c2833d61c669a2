package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/climemate-chain/climemate/x/escrow/types"
)

// RegisterInvariants registers all escrow module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "ledger-consistency",
		LedgerConsistencyInvariant(k))
}

// AllInvariants runs all invariants of the escrow module
func AllInvariants(k Keeper) sdk.Invariant {
	return LedgerConsistencyInvariant(k)
}

// LedgerConsistencyInvariant checks that every ledger's counters are
// non-negative and its stored vault address matches the derivation for
// its denom.
func LedgerConsistencyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)

		_ = k.IterateEscrows(ctx, func(escrow types.Escrow) (bool, error) {
			if escrow.TotalSold.IsNegative() || escrow.TotalRevenue.IsNegative() {
				broken = true
				msg += fmt.Sprintf("escrow %s has negative counters (sold %s, revenue %s)\n",
					escrow.Denom, escrow.TotalSold, escrow.TotalRevenue)
			}
			if escrow.EscrowAddress != types.EscrowAddress(escrow.Denom).String() {
				broken = true
				msg += fmt.Sprintf("escrow %s vault address %s does not match derivation\n",
					escrow.Denom, escrow.EscrowAddress)
			}
			return false, nil
		})

		return sdk.FormatInvariant(types.ModuleName, "ledger-consistency",
			fmt.Sprintf("escrow ledger consistency\n%s", msg)), broken
	}
}
