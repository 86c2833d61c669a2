package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/climemate-chain/climemate/testutil/keeper"
	"github.com/climemate-chain/climemate/x/mpc/types"
)

func TestGenesisRoundtrip(t *testing.T) {
	k, _, ctx := testkeeper.MpcKeeper(t)
	requester := sdk.AccAddress([]byte("requester___________"))

	params, _ := k.GetParams(ctx)
	fundTestAccount(t, k, ctx, requester, params.FeeDenom, math.NewInt(1_000_000))

	_, err := k.InitCompDef(ctx, requester, types.KindProveThreshold)
	require.NoError(t, err)
	_, err = k.InitCompDef(ctx, requester, types.KindAddTogether)
	require.NoError(t, err)

	comp, err := k.QueueComputation(ctx, requester, types.KindProveThreshold, 5, nil)
	require.NoError(t, err)
	_, err = k.ResolveCallback(ctx, params.ExecutorAuthority, 5, comp.CompDefId,
		types.ComputationOutput{Payload: []byte{1}})
	require.NoError(t, err)
	_, err = k.QueueComputation(ctx, requester, types.KindAddTogether, 6, nil)
	require.NoError(t, err)

	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.NoError(t, exported.Validate())
	require.Len(t, exported.CompDefs, 2)
	require.Len(t, exported.Computations, 2)

	// Import into a fresh keeper and compare observable state.
	k2, _, ctx2 := testkeeper.MpcKeeper(t)
	require.NoError(t, k2.InitGenesis(ctx2, *exported))

	require.True(t, k2.IsKindInitialized(ctx2, types.KindProveThreshold))
	require.True(t, k2.IsKindInitialized(ctx2, types.KindAddTogether))
	require.Equal(t, uint64(1), k2.QueuedCount(ctx2))

	resolved, found := k2.GetComputation(ctx2, 5)
	require.True(t, found)
	require.Equal(t, types.COMPUTATION_STATUS_RESOLVED, resolved.Status)

	queued, found := k2.GetComputation(ctx2, 6)
	require.True(t, found)
	require.Equal(t, types.COMPUTATION_STATUS_QUEUED, queued.Status)

	// Carried-over in-flight work means the signer identity exists.
	_, found = k2.GetSignerIdentity(ctx2)
	require.True(t, found)
}

func TestInitGenesisDefault(t *testing.T) {
	k, _, ctx := testkeeper.MpcKeeper(t)
	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.Empty(t, exported.CompDefs)
	require.Empty(t, exported.Computations)
	require.Equal(t, types.DefaultParams().FeeDenom, exported.Params.FeeDenom)
}
