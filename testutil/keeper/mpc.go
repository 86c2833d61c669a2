package keeper

import (
	"context"
	"testing"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"

	"github.com/climemate-chain/climemate/x/mpc/keeper"
	"github.com/climemate-chain/climemate/x/mpc/types"
)

// StubExecutor is a test double for the remote execution cluster. It
// records every submission and can be toggled to reject.
type StubExecutor struct {
	Submissions []StubSubmission
	Err         error
}

// StubSubmission is one recorded Submit call.
type StubSubmission struct {
	Offset    uint64
	CompDefId uint32
	Args      []types.Argument
	Route     types.CallbackRoute
}

// Submit implements types.ExecutorEngine.
func (s *StubExecutor) Submit(_ context.Context, offset uint64, compDefId uint32, args []types.Argument, route types.CallbackRoute) error {
	if s.Err != nil {
		return s.Err
	}
	s.Submissions = append(s.Submissions, StubSubmission{
		Offset:    offset,
		CompDefId: compDefId,
		Args:      args,
		Route:     route,
	})
	return nil
}

// MpcKeeper creates a test keeper for the mpc module backed by real
// auth and bank keepers and a stub executor.
func MpcKeeper(t testing.TB) (*keeper.Keeper, *StubExecutor, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	env := newTestEnv(t, storeKey)

	executor := &StubExecutor{}
	k := keeper.NewKeeper(
		env.cdc,
		storeKey,
		env.bankKeeper,
		executor,
		env.authority,
	)

	return k, executor, env.ctx
}

// MpcBankKeeper exposes the underlying bank keeper used by a test env.
// Funding helpers need the concrete keeper, not the module's narrowed
// interface.
func MpcBankKeeper(k *keeper.Keeper) bankkeeper.Keeper {
	return k.GetBankKeeper().(bankkeeper.BaseKeeper)
}
