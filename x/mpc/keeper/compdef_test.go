package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/climemate-chain/climemate/testutil/keeper"
	"github.com/climemate-chain/climemate/x/mpc/types"
)

func TestInitCompDef(t *testing.T) {
	k, _, ctx := testkeeper.MpcKeeper(t)
	payer := sdk.AccAddress([]byte("payer_______________"))

	def, err := k.InitCompDef(ctx, payer, types.KindProveThreshold)
	require.NoError(t, err)
	require.True(t, def.Initialized)
	require.Equal(t, types.CompDefOffset(types.KindProveThreshold), def.Id)

	stored, found := k.GetCompDef(ctx, def.Id)
	require.True(t, found)
	require.Equal(t, def, stored)

	byKind, found := k.GetCompDefByKind(ctx, types.KindProveThreshold)
	require.True(t, found)
	require.Equal(t, def, byKind)

	ev, found := findEvent(ctx, types.EventTypeCompDefInitialized)
	require.True(t, found)
	require.Equal(t, types.KindProveThreshold, eventAttribute(t, ev, types.AttributeKeyKind))
}

func TestInitCompDefTwiceFails(t *testing.T) {
	k, _, ctx := testkeeper.MpcKeeper(t)
	payer := sdk.AccAddress([]byte("payer_______________"))

	first, err := k.InitCompDef(ctx, payer, types.KindAddTogether)
	require.NoError(t, err)

	_, err = k.InitCompDef(ctx, payer, types.KindAddTogether)
	require.ErrorIs(t, err, types.ErrCompDefAlreadyInitialized)

	// The original record is untouched.
	stored, found := k.GetCompDef(ctx, first.Id)
	require.True(t, found)
	require.Equal(t, first, stored)
}

func TestInitCompDefUnknownKind(t *testing.T) {
	k, _, ctx := testkeeper.MpcKeeper(t)
	payer := sdk.AccAddress([]byte("payer_______________"))

	_, err := k.InitCompDef(ctx, payer, "mystery")
	require.ErrorIs(t, err, types.ErrInvalidKind)
}

func TestInitAllKinds(t *testing.T) {
	k, _, ctx := testkeeper.MpcKeeper(t)
	payer := sdk.AccAddress([]byte("payer_______________"))

	for _, spec := range types.Kinds() {
		_, err := k.InitCompDef(ctx, payer, spec.Name)
		require.NoError(t, err)
		require.True(t, k.IsKindInitialized(ctx, spec.Name))
	}

	var count int
	require.NoError(t, k.IterateCompDefs(ctx, func(types.CompDef) (bool, error) {
		count++
		return false, nil
	}))
	require.Equal(t, 8, count)
}
