package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/climemate-chain/climemate/x/mpc/types"
)

// QueueComputation queues a new computation of the given kind at a
// caller-chosen offset. The fee charge, the record write, and the
// executor submission commit together or not at all; a rejected
// submission leaves no trace.
func (k Keeper) QueueComputation(
	ctx context.Context,
	requester sdk.AccAddress,
	kind string,
	offset uint64,
	args []types.Argument,
) (types.PendingComputation, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	spec, ok := types.KindByName(kind)
	if !ok {
		return types.PendingComputation{}, types.ErrInvalidKind.Wrapf("%q", kind)
	}

	def, found := k.GetCompDef(ctx, spec.Id)
	if !found || !def.Initialized {
		return types.PendingComputation{}, types.ErrCompDefNotInitialized.Wrapf("kind %q (id %d)", kind, spec.Id)
	}

	// The offset is the record key. Occupied means occupied, even when
	// the occupant is long finalized.
	if k.HasComputation(ctx, offset) {
		return types.PendingComputation{}, types.ErrDuplicateOffset.Wrapf("offset %d", offset)
	}

	for i, arg := range args {
		if err := arg.Validate(); err != nil {
			return types.PendingComputation{}, types.ErrInvalidArgument.Wrapf("argument %d: %s", i, err.Error())
		}
	}

	signer, err := k.EnsureSignerIdentity(ctx)
	if err != nil {
		return types.PendingComputation{}, err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return types.PendingComputation{}, err
	}

	comp := types.PendingComputation{
		Offset:    offset,
		Kind:      spec.Name,
		CompDefId: spec.Id,
		Requester: requester.String(),
		Args:      args,
		Route: types.CallbackRoute{
			CompDefId: spec.Id,
			Signer:    signer.Address,
		},
		Status:   types.COMPUTATION_STATUS_QUEUED,
		QueuedAt: sdkCtx.BlockTime(),
	}

	cacheCtx, write := sdkCtx.CacheContext()

	if params.QueueFee.IsPositive() {
		fee := sdk.NewCoins(sdk.NewCoin(params.FeeDenom, params.QueueFee))
		if err := k.bankKeeper.SendCoinsFromAccountToModule(cacheCtx, requester, authtypes.FeeCollectorName, fee); err != nil {
			return types.PendingComputation{}, types.ErrFeePaymentFailed.Wrap(err.Error())
		}
	}

	if err := k.SetComputation(cacheCtx, comp); err != nil {
		return types.PendingComputation{}, err
	}

	// Hand off to the cluster last so a rejection rolls everything back.
	if err := k.executor.Submit(cacheCtx, offset, spec.Id, args, comp.Route); err != nil {
		return types.PendingComputation{}, types.ErrExecutorRejected.Wrap(err.Error())
	}

	write()

	k.metrics.ComputationsQueued.WithLabelValues(spec.Name).Inc()
	k.metrics.PendingComputations.Set(float64(k.CountQueuedComputations(ctx)))

	k.Logger(sdkCtx).Info("computation queued",
		"kind", spec.Name,
		"offset", fmt.Sprintf("%d", offset),
		"comp_def_id", fmt.Sprintf("%d", spec.Id),
		"requester", comp.Requester,
	)

	return comp, nil
}
