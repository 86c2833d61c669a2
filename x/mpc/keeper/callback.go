package keeper

import (
	"context"
	"fmt"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/climemate-chain/climemate/x/mpc/types"
)

// Callback rejection reasons, used as both event attributes and metric
// labels.
const (
	RejectReasonOriginMismatch = "origin_mismatch"
	RejectReasonNotFound       = "not_found"
	RejectReasonFinalized      = "already_finalized"
	RejectReasonDefMismatch    = "comp_def_mismatch"
)

// ResolveCallback applies the executor-reported outcome to a queued
// computation. Every guard runs before any mutation: a rejected
// callback leaves the record exactly as it was, still awaiting its one
// legitimate resolution. On abort the record is finalized as ABORTED
// and ErrAbortedComputation is returned so callers can distinguish the
// outcome.
func (k Keeper) ResolveCallback(
	ctx context.Context,
	executor string,
	offset uint64,
	compDefId uint32,
	output types.ComputationOutput,
) (types.DisclosedResult, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	params, err := k.GetParams(ctx)
	if err != nil {
		return types.DisclosedResult{}, err
	}

	// Origin check first. An attacker-supplied callback must not learn
	// anything about the record, so this rejects before the lookup.
	if executor != params.ExecutorAuthority {
		k.rejectCallback(sdkCtx, executor, offset, RejectReasonOriginMismatch)
		return types.DisclosedResult{}, types.ErrCallbackOriginMismatch.Wrapf("got %s", executor)
	}

	comp, found := k.GetComputation(ctx, offset)
	if !found {
		k.rejectCallback(sdkCtx, executor, offset, RejectReasonNotFound)
		return types.DisclosedResult{}, types.ErrComputationNotFound.Wrapf("offset %d", offset)
	}

	if comp.Status.IsTerminal() {
		k.rejectCallback(sdkCtx, executor, offset, RejectReasonFinalized)
		return types.DisclosedResult{}, types.ErrComputationFinalized.Wrapf("offset %d is %s", offset, comp.Status)
	}

	if compDefId != comp.Route.CompDefId {
		k.rejectCallback(sdkCtx, executor, offset, RejectReasonDefMismatch)
		return types.DisclosedResult{}, types.ErrCompDefMismatch.Wrapf("callback carries %d, route pins %d", compDefId, comp.Route.CompDefId)
	}

	spec, ok := types.KindByID(comp.CompDefId)
	if !ok {
		return types.DisclosedResult{}, types.ErrInvalidKind.Wrapf("id %d", comp.CompDefId)
	}

	now := sdkCtx.BlockTime()

	if output.Aborted {
		comp.Status = types.COMPUTATION_STATUS_ABORTED
		comp.ResolvedAt = &now
		if err := k.SetComputation(ctx, comp); err != nil {
			return types.DisclosedResult{}, err
		}

		k.metrics.ComputationsAborted.WithLabelValues(spec.Name).Inc()
		k.metrics.PendingComputations.Set(float64(k.CountQueuedComputations(ctx)))

		k.Logger(sdkCtx).Error("computation aborted by executor cluster",
			"kind", spec.Name,
			"offset", fmt.Sprintf("%d", offset),
		)

		return types.DisclosedResult{}, types.ErrAbortedComputation.Wrapf("offset %d", offset)
	}

	result, err := types.DecodeOutput(spec, output.Payload)
	if err != nil {
		return types.DisclosedResult{}, types.ErrInvalidOutput.Wrap(err.Error())
	}

	comp.Status = types.COMPUTATION_STATUS_RESOLVED
	comp.ResolvedAt = &now
	if err := k.SetComputation(ctx, comp); err != nil {
		return types.DisclosedResult{}, err
	}

	sdkCtx.EventManager().EmitEvent(k.resolutionEvent(spec, comp, result, now))

	k.metrics.ComputationsResolved.WithLabelValues(spec.Name).Inc()
	k.metrics.PendingComputations.Set(float64(k.CountQueuedComputations(ctx)))

	k.Logger(sdkCtx).Info("computation resolved",
		"kind", spec.Name,
		"offset", fmt.Sprintf("%d", offset),
		"disclosure", result.Disclosure.String(),
	)

	return result, nil
}

// resolutionEvent builds the per-kind resolution event. Only the
// kind's disclosed fields are attached; storage-initialization kinds
// announce completion and nothing else.
func (k Keeper) resolutionEvent(spec types.KindSpec, comp types.PendingComputation, result types.DisclosedResult, at time.Time) sdk.Event {
	attrs := []sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeyOffset, fmt.Sprintf("%d", comp.Offset)),
		sdk.NewAttribute(types.AttributeKeyTimestamp, fmt.Sprintf("%d", at.Unix())),
	}

	switch result.Disclosure {
	case types.DISCLOSURE_BOOL:
		attrs = append(attrs, sdk.NewAttribute(types.AttributeKeyMeetsThreshold, fmt.Sprintf("%t", result.Flag)))
	case types.DISCLOSURE_UINT64:
		attrs = append(attrs, sdk.NewAttribute(types.AttributeKeyValue, fmt.Sprintf("%d", result.Value)))
	}

	return sdk.NewEvent(spec.EventType, attrs...)
}

// rejectCallback records a refused callback. The stored record, when
// one exists, is untouched.
func (k Keeper) rejectCallback(sdkCtx sdk.Context, executor string, offset uint64, reason string) {
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCallbackRejected,
			sdk.NewAttribute(types.AttributeKeyExecutor, executor),
			sdk.NewAttribute(types.AttributeKeyOffset, fmt.Sprintf("%d", offset)),
			sdk.NewAttribute(types.AttributeKeyReason, reason),
		),
	)

	k.metrics.CallbacksRejected.WithLabelValues(reason).Inc()

	k.Logger(sdkCtx).Error("callback rejected",
		"executor", executor,
		"offset", fmt.Sprintf("%d", offset),
		"reason", reason,
	)
}
