package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/climemate-chain/climemate/x/mpc/keeper"
	"github.com/climemate-chain/climemate/x/mpc/types"
)

// fundTestAccount mints coins through the mpc module account and
// forwards them to the target address.
func fundTestAccount(t testing.TB, k *keeper.Keeper, ctx sdk.Context, addr sdk.AccAddress, denom string, amount math.Int) {
	bankKeeper := k.GetBankKeeper()
	moduleAddr := authtypes.NewModuleAddress(types.ModuleName)
	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))

	require.NoError(t, bankKeeper.MintCoins(ctx, types.ModuleName, coins))
	require.NoError(t, bankKeeper.SendCoins(ctx, moduleAddr, addr, coins))
}

// findEvent returns the first emitted event of the given type.
func findEvent(ctx sdk.Context, eventType string) (sdk.Event, bool) {
	for _, ev := range ctx.EventManager().Events() {
		if ev.Type == eventType {
			return ev, true
		}
	}
	return sdk.Event{}, false
}

// eventAttribute returns the value of an attribute on an event.
func eventAttribute(t testing.TB, ev sdk.Event, key string) string {
	for _, attr := range ev.Attributes {
		if attr.Key == key {
			return attr.Value
		}
	}
	t.Fatalf("event %s has no attribute %s", ev.Type, key)
	return ""
}
