package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/climemate-chain/climemate/x/mpc/types"
)

// RegisterInvariants registers all mpc module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "computation-status",
		ComputationStatusInvariant(k))
	ir.RegisterRoute(types.ModuleName, "callback-route",
		CallbackRouteInvariant(k))
}

// AllInvariants runs all invariants of the mpc module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ComputationStatusInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return CallbackRouteInvariant(k)(ctx)
	}
}

// ComputationStatusInvariant checks that every record carries a valid
// status, terminal records carry a resolution time, and the queued
// index matches the queued records exactly.
func ComputationStatusInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
			queued uint64
		)

		_ = k.IterateComputations(ctx, func(comp types.PendingComputation) (bool, error) {
			switch comp.Status {
			case types.COMPUTATION_STATUS_QUEUED:
				queued++
				if comp.ResolvedAt != nil {
					broken = true
					msg += fmt.Sprintf("queued computation %d carries a resolution time\n", comp.Offset)
				}
			case types.COMPUTATION_STATUS_RESOLVED, types.COMPUTATION_STATUS_ABORTED:
				if comp.ResolvedAt == nil {
					broken = true
					msg += fmt.Sprintf("terminal computation %d has no resolution time\n", comp.Offset)
				}
			default:
				broken = true
				msg += fmt.Sprintf("computation %d has invalid status %d\n", comp.Offset, comp.Status)
			}
			return false, nil
		})

		indexed := k.CountQueuedComputations(ctx)
		if indexed != queued {
			broken = true
			msg += fmt.Sprintf("queued index holds %d entries, records show %d queued\n", indexed, queued)
		}

		return sdk.FormatInvariant(types.ModuleName, "computation-status",
			fmt.Sprintf("computation status consistency\n%s", msg)), broken
	}
}

// CallbackRouteInvariant checks that every record's pinned callback
// route matches its definition and that the definition is initialized.
func CallbackRouteInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)

		_ = k.IterateComputations(ctx, func(comp types.PendingComputation) (bool, error) {
			if comp.Route.CompDefId != comp.CompDefId {
				broken = true
				msg += fmt.Sprintf("computation %d route pins def %d, record says %d\n",
					comp.Offset, comp.Route.CompDefId, comp.CompDefId)
			}
			if def, found := k.GetCompDef(ctx, comp.CompDefId); !found || !def.Initialized {
				broken = true
				msg += fmt.Sprintf("computation %d references uninitialized def %d\n",
					comp.Offset, comp.CompDefId)
			}
			return false, nil
		})

		return sdk.FormatInvariant(types.ModuleName, "callback-route",
			fmt.Sprintf("callback route binding\n%s", msg)), broken
	}
}
