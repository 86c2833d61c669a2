package keeper_test

import (
	"encoding/binary"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/climemate-chain/climemate/testutil/keeper"
	"github.com/climemate-chain/climemate/x/mpc/keeper"
	"github.com/climemate-chain/climemate/x/mpc/types"
)

// queueOne initializes the kind's definition and queues one
// computation at the given offset.
func queueOne(t *testing.T, k *keeper.Keeper, ctx sdk.Context, kind string, offset uint64) types.PendingComputation {
	t.Helper()
	requester := sdk.AccAddress([]byte("requester___________"))

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	fundTestAccount(t, k, ctx, requester, params.FeeDenom, math.NewInt(1_000_000))

	if !k.IsKindInitialized(ctx, kind) {
		_, err = k.InitCompDef(ctx, requester, kind)
		require.NoError(t, err)
	}

	comp, err := k.QueueComputation(ctx, requester, kind, offset, nil)
	require.NoError(t, err)
	return comp
}

func TestResolveCallbackBoolDisclosure(t *testing.T) {
	k, _, ctx := testkeeper.MpcKeeper(t)
	comp := queueOne(t, k, ctx, types.KindProveThreshold, 1)
	params, _ := k.GetParams(ctx)

	result, err := k.ResolveCallback(ctx, params.ExecutorAuthority, 1, comp.CompDefId,
		types.ComputationOutput{Payload: []byte{1}})
	require.NoError(t, err)
	require.Equal(t, types.DISCLOSURE_BOOL, result.Disclosure)
	require.True(t, result.Flag)

	stored, found := k.GetComputation(ctx, 1)
	require.True(t, found)
	require.Equal(t, types.COMPUTATION_STATUS_RESOLVED, stored.Status)
	require.NotNil(t, stored.ResolvedAt)
	require.Equal(t, uint64(0), k.QueuedCount(ctx))

	// Only the derived predicate crosses the boundary.
	ev, found := findEvent(ctx, types.EventTypeThresholdProved)
	require.True(t, found)
	require.Equal(t, "true", eventAttribute(t, ev, types.AttributeKeyMeetsThreshold))
	require.Equal(t, "1", eventAttribute(t, ev, types.AttributeKeyOffset))
	for _, attr := range ev.Attributes {
		require.NotEqual(t, types.AttributeKeyValue, attr.Key)
	}
}

func TestResolveCallbackUint64Disclosure(t *testing.T) {
	k, _, ctx := testkeeper.MpcKeeper(t)
	comp := queueOne(t, k, ctx, types.KindAddTogether, 4)
	params, _ := k.GetParams(ctx)

	payload := make([]byte, 8)
	binary.BigEndian.PutUint64(payload, 579)

	result, err := k.ResolveCallback(ctx, params.ExecutorAuthority, 4, comp.CompDefId,
		types.ComputationOutput{Payload: payload})
	require.NoError(t, err)
	require.Equal(t, uint64(579), result.Value)

	ev, found := findEvent(ctx, types.EventTypeAdditionComputed)
	require.True(t, found)
	require.Equal(t, "579", eventAttribute(t, ev, types.AttributeKeyValue))
}

func TestResolveCallbackOpaqueDisclosure(t *testing.T) {
	k, _, ctx := testkeeper.MpcKeeper(t)
	comp := queueOne(t, k, ctx, types.KindInitEmissionsCertificate, 5)
	params, _ := k.GetParams(ctx)

	result, err := k.ResolveCallback(ctx, params.ExecutorAuthority, 5, comp.CompDefId,
		types.ComputationOutput{Payload: []byte("opaque encrypted share")})
	require.NoError(t, err)
	require.Equal(t, types.DISCLOSURE_NONE, result.Disclosure)

	// Completion event carries the offset and timestamp, nothing else.
	ev, found := findEvent(ctx, types.EventTypeEmissionsCertificateInitialized)
	require.True(t, found)
	require.Len(t, ev.Attributes, 2)
}

func TestResolveCallbackOriginMismatch(t *testing.T) {
	k, _, ctx := testkeeper.MpcKeeper(t)
	comp := queueOne(t, k, ctx, types.KindProveThreshold, 1)
	params, _ := k.GetParams(ctx)

	attacker := sdk.AccAddress([]byte("attacker____________")).String()
	_, err := k.ResolveCallback(ctx, attacker, 1, comp.CompDefId,
		types.ComputationOutput{Payload: []byte{1}})
	require.ErrorIs(t, err, types.ErrCallbackOriginMismatch)

	// The record is untouched and still resolvable by the real executor.
	stored, _ := k.GetComputation(ctx, 1)
	require.Equal(t, types.COMPUTATION_STATUS_QUEUED, stored.Status)

	ev, found := findEvent(ctx, types.EventTypeCallbackRejected)
	require.True(t, found)
	require.Equal(t, keeper.RejectReasonOriginMismatch, eventAttribute(t, ev, types.AttributeKeyReason))

	_, err = k.ResolveCallback(ctx, params.ExecutorAuthority, 1, comp.CompDefId,
		types.ComputationOutput{Payload: []byte{0}})
	require.NoError(t, err)
}

func TestResolveCallbackCompDefMismatch(t *testing.T) {
	k, _, ctx := testkeeper.MpcKeeper(t)
	comp := queueOne(t, k, ctx, types.KindProveThreshold, 1)
	params, _ := k.GetParams(ctx)

	_, err := k.ResolveCallback(ctx, params.ExecutorAuthority, 1, comp.CompDefId+1,
		types.ComputationOutput{Payload: []byte{1}})
	require.ErrorIs(t, err, types.ErrCompDefMismatch)

	stored, _ := k.GetComputation(ctx, 1)
	require.Equal(t, types.COMPUTATION_STATUS_QUEUED, stored.Status)
}

func TestResolveCallbackNotFound(t *testing.T) {
	k, _, ctx := testkeeper.MpcKeeper(t)
	params, _ := k.GetParams(ctx)

	_, err := k.ResolveCallback(ctx, params.ExecutorAuthority, 99, 1,
		types.ComputationOutput{Payload: []byte{1}})
	require.ErrorIs(t, err, types.ErrComputationNotFound)
}

func TestResolveCallbackOncePerRequest(t *testing.T) {
	k, _, ctx := testkeeper.MpcKeeper(t)
	comp := queueOne(t, k, ctx, types.KindProveThreshold, 1)
	params, _ := k.GetParams(ctx)

	_, err := k.ResolveCallback(ctx, params.ExecutorAuthority, 1, comp.CompDefId,
		types.ComputationOutput{Payload: []byte{1}})
	require.NoError(t, err)

	// A second callback, even from the right origin, is refused and
	// the stored result stands.
	_, err = k.ResolveCallback(ctx, params.ExecutorAuthority, 1, comp.CompDefId,
		types.ComputationOutput{Payload: []byte{0}})
	require.ErrorIs(t, err, types.ErrComputationFinalized)

	stored, _ := k.GetComputation(ctx, 1)
	require.Equal(t, types.COMPUTATION_STATUS_RESOLVED, stored.Status)
}

func TestResolveCallbackAbort(t *testing.T) {
	k, _, ctx := testkeeper.MpcKeeper(t)
	comp := queueOne(t, k, ctx, types.KindProveThreshold, 1)
	params, _ := k.GetParams(ctx)

	_, err := k.ResolveCallback(ctx, params.ExecutorAuthority, 1, comp.CompDefId,
		types.ComputationOutput{Aborted: true})
	require.ErrorIs(t, err, types.ErrAbortedComputation)

	// Abort is terminal: the record is finalized and no resolution
	// event fires.
	stored, _ := k.GetComputation(ctx, 1)
	require.Equal(t, types.COMPUTATION_STATUS_ABORTED, stored.Status)
	require.NotNil(t, stored.ResolvedAt)

	_, found := findEvent(ctx, types.EventTypeThresholdProved)
	require.False(t, found)

	_, err = k.ResolveCallback(ctx, params.ExecutorAuthority, 1, comp.CompDefId,
		types.ComputationOutput{Payload: []byte{1}})
	require.ErrorIs(t, err, types.ErrComputationFinalized)
}

func TestResolveCallbackInvalidPayload(t *testing.T) {
	k, _, ctx := testkeeper.MpcKeeper(t)
	comp := queueOne(t, k, ctx, types.KindProveThreshold, 1)
	params, _ := k.GetParams(ctx)

	_, err := k.ResolveCallback(ctx, params.ExecutorAuthority, 1, comp.CompDefId,
		types.ComputationOutput{Payload: []byte{1, 2, 3}})
	require.ErrorIs(t, err, types.ErrInvalidOutput)

	// A malformed payload does not consume the request.
	stored, _ := k.GetComputation(ctx, 1)
	require.Equal(t, types.COMPUTATION_STATUS_QUEUED, stored.Status)
}
