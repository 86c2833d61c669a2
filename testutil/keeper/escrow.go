package keeper

import (
	"testing"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"

	"github.com/climemate-chain/climemate/x/escrow/keeper"
	"github.com/climemate-chain/climemate/x/escrow/types"
)

// EscrowKeeper creates a test keeper for the escrow module backed by
// real auth and bank keepers.
func EscrowKeeper(t testing.TB) (*keeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	env := newTestEnv(t, storeKey)

	k := keeper.NewKeeper(
		env.cdc,
		storeKey,
		env.bankKeeper,
		env.authority,
	)

	return k, env.ctx
}

// EscrowBankKeeper exposes the underlying bank keeper used by a test env.
func EscrowBankKeeper(k *keeper.Keeper) bankkeeper.Keeper {
	return k.GetBankKeeper().(bankkeeper.BaseKeeper)
}
