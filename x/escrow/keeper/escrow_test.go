package keeper_test

import (
	stdmath "math"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/climemate-chain/climemate/testutil/keeper"
	"github.com/climemate-chain/climemate/x/escrow/keeper"
	"github.com/climemate-chain/climemate/x/escrow/types"
)

const saleDenom = "uco2e"

var (
	adminAddr = sdk.AccAddress([]byte("admin_______________"))
	buyerAddr = sdk.AccAddress([]byte("buyer_______________"))
)

// fundTestAccount mints coins through the escrow module account and
// forwards them to the target address.
func fundTestAccount(t testing.TB, k *keeper.Keeper, ctx sdk.Context, addr sdk.AccAddress, denom string, amount math.Int) {
	bankKeeper := k.GetBankKeeper()
	moduleAddr := authtypes.NewModuleAddress(types.ModuleName)
	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))

	require.NoError(t, bankKeeper.MintCoins(ctx, types.ModuleName, coins))
	require.NoError(t, bankKeeper.SendCoins(ctx, moduleAddr, addr, coins))
}

// setupSale initializes an escrow at the given price and stocks its
// vault with inventory.
func setupSale(t *testing.T, k *keeper.Keeper, ctx sdk.Context, price math.Int, inventory math.Int) types.Escrow {
	t.Helper()

	escrow, err := k.InitializeEscrow(ctx, adminAddr, saleDenom, price)
	require.NoError(t, err)

	vault, err := sdk.AccAddressFromBech32(escrow.EscrowAddress)
	require.NoError(t, err)
	fundTestAccount(t, k, ctx, vault, saleDenom, inventory)

	return escrow
}

func TestInitializeEscrow(t *testing.T) {
	k, ctx := testkeeper.EscrowKeeper(t)

	escrow, err := k.InitializeEscrow(ctx, adminAddr, saleDenom, math.NewInt(500))
	require.NoError(t, err)
	require.Equal(t, adminAddr.String(), escrow.Admin)
	require.Equal(t, types.EscrowAddress(saleDenom).String(), escrow.EscrowAddress)
	require.True(t, escrow.TotalSold.IsZero())
	require.True(t, escrow.TotalRevenue.IsZero())

	stored, found := k.GetEscrow(ctx, saleDenom)
	require.True(t, found)
	require.Equal(t, escrow.Admin, stored.Admin)
	require.True(t, stored.PricePerToken.Equal(math.NewInt(500)))
}

func TestInitializeEscrowTwiceFails(t *testing.T) {
	k, ctx := testkeeper.EscrowKeeper(t)

	_, err := k.InitializeEscrow(ctx, adminAddr, saleDenom, math.NewInt(500))
	require.NoError(t, err)

	_, err = k.InitializeEscrow(ctx, adminAddr, saleDenom, math.NewInt(900))
	require.ErrorIs(t, err, types.ErrEscrowExists)

	// First price stands.
	stored, _ := k.GetEscrow(ctx, saleDenom)
	require.True(t, stored.PricePerToken.Equal(math.NewInt(500)))
}

func TestInitializeEscrowNegativePrice(t *testing.T) {
	k, ctx := testkeeper.EscrowKeeper(t)

	_, err := k.InitializeEscrow(ctx, adminAddr, saleDenom, math.NewInt(-1))
	require.ErrorIs(t, err, types.ErrInvalidPrice)
}

func TestBuy(t *testing.T) {
	k, ctx := testkeeper.EscrowKeeper(t)
	setupSale(t, k, ctx, math.NewInt(500), math.NewInt(10_000))

	params, _ := k.GetParams(ctx)
	fundTestAccount(t, k, ctx, buyerAddr, params.PaymentDenom, math.NewInt(100_000))

	// 1000 tokens at 500 with scale 100: total = 1000*500/100 = 5000.
	total, err := k.Buy(ctx, buyerAddr, saleDenom, math.NewInt(1000))
	require.NoError(t, err)
	require.True(t, total.Equal(math.NewInt(5000)))

	bk := k.GetBankKeeper()
	require.True(t, bk.GetBalance(ctx, buyerAddr, saleDenom).Amount.Equal(math.NewInt(1000)))
	require.True(t, bk.GetBalance(ctx, buyerAddr, params.PaymentDenom).Amount.Equal(math.NewInt(95_000)))
	require.True(t, bk.GetBalance(ctx, adminAddr, params.PaymentDenom).Amount.Equal(math.NewInt(5000)))
	require.True(t, bk.GetBalance(ctx, types.EscrowAddress(saleDenom), saleDenom).Amount.Equal(math.NewInt(9000)))

	stored, _ := k.GetEscrow(ctx, saleDenom)
	require.True(t, stored.TotalSold.Equal(math.NewInt(1000)))
	require.True(t, stored.TotalRevenue.Equal(math.NewInt(5000)))
}

func TestBuySequentialAccumulates(t *testing.T) {
	k, ctx := testkeeper.EscrowKeeper(t)
	setupSale(t, k, ctx, math.NewInt(200), math.NewInt(10_000))

	params, _ := k.GetParams(ctx)
	fundTestAccount(t, k, ctx, buyerAddr, params.PaymentDenom, math.NewInt(100_000))

	_, err := k.Buy(ctx, buyerAddr, saleDenom, math.NewInt(300))
	require.NoError(t, err)
	_, err = k.Buy(ctx, buyerAddr, saleDenom, math.NewInt(700))
	require.NoError(t, err)

	stored, _ := k.GetEscrow(ctx, saleDenom)
	require.True(t, stored.TotalSold.Equal(math.NewInt(1000)))
	require.True(t, stored.TotalRevenue.Equal(math.NewInt(2000)))

	stats, found := k.GetSaleStats(ctx, saleDenom)
	require.True(t, found)
	require.True(t, stats.TotalSold.Equal(math.NewInt(1000)))
}

func TestBuyInsufficientPaymentLeavesStateUntouched(t *testing.T) {
	k, ctx := testkeeper.EscrowKeeper(t)
	setupSale(t, k, ctx, math.NewInt(500), math.NewInt(10_000))

	// Buyer has nothing: the purchase fails and no leg commits.
	_, err := k.Buy(ctx, buyerAddr, saleDenom, math.NewInt(1000))
	require.ErrorIs(t, err, types.ErrTransferFailed)

	bk := k.GetBankKeeper()
	require.True(t, bk.GetBalance(ctx, buyerAddr, saleDenom).Amount.IsZero())
	require.True(t, bk.GetBalance(ctx, types.EscrowAddress(saleDenom), saleDenom).Amount.Equal(math.NewInt(10_000)))

	stored, _ := k.GetEscrow(ctx, saleDenom)
	require.True(t, stored.TotalSold.IsZero())
	require.True(t, stored.TotalRevenue.IsZero())
}

func TestBuyInsufficientInventoryLeavesStateUntouched(t *testing.T) {
	k, ctx := testkeeper.EscrowKeeper(t)
	setupSale(t, k, ctx, math.NewInt(100), math.NewInt(50))

	params, _ := k.GetParams(ctx)
	fundTestAccount(t, k, ctx, buyerAddr, params.PaymentDenom, math.NewInt(100_000))

	_, err := k.Buy(ctx, buyerAddr, saleDenom, math.NewInt(1000))
	require.ErrorIs(t, err, types.ErrTransferFailed)

	// The payment leg rolled back with the inventory leg.
	bk := k.GetBankKeeper()
	require.True(t, bk.GetBalance(ctx, buyerAddr, params.PaymentDenom).Amount.Equal(math.NewInt(100_000)))
	require.True(t, bk.GetBalance(ctx, adminAddr, params.PaymentDenom).Amount.IsZero())
}

func TestBuyOverflowRejected(t *testing.T) {
	k, ctx := testkeeper.EscrowKeeper(t)

	// A price large enough that amount*price crosses 2^256.
	hugePrice := math.NewIntFromUint64(1)
	for i := 0; i < 4; i++ {
		hugePrice = hugePrice.MulRaw(1 << 62)
	}
	setupSale(t, k, ctx, hugePrice, math.NewInt(10_000))

	hugeAmount := hugePrice
	_, err := k.Buy(ctx, buyerAddr, saleDenom, hugeAmount)
	require.ErrorIs(t, err, types.ErrOverflow)

	stored, _ := k.GetEscrow(ctx, saleDenom)
	require.True(t, stored.TotalSold.IsZero())
	require.True(t, stored.TotalRevenue.IsZero())
}

func TestBuyUnknownEscrow(t *testing.T) {
	k, ctx := testkeeper.EscrowKeeper(t)

	_, err := k.Buy(ctx, buyerAddr, "unknown", math.NewInt(1))
	require.ErrorIs(t, err, types.ErrEscrowNotFound)
}

func TestUpdatePrice(t *testing.T) {
	k, ctx := testkeeper.EscrowKeeper(t)
	setupSale(t, k, ctx, math.NewInt(500), math.NewInt(10_000))

	require.NoError(t, k.UpdatePrice(ctx, adminAddr, saleDenom, math.NewInt(900)))

	stored, _ := k.GetEscrow(ctx, saleDenom)
	require.True(t, stored.PricePerToken.Equal(math.NewInt(900)))

	// The new price applies to the next purchase.
	params, _ := k.GetParams(ctx)
	fundTestAccount(t, k, ctx, buyerAddr, params.PaymentDenom, math.NewInt(100_000))
	total, err := k.Buy(ctx, buyerAddr, saleDenom, math.NewInt(100))
	require.NoError(t, err)
	require.True(t, total.Equal(math.NewInt(900)))
}

func TestUpdatePriceUnauthorized(t *testing.T) {
	k, ctx := testkeeper.EscrowKeeper(t)
	setupSale(t, k, ctx, math.NewInt(500), math.NewInt(10_000))

	err := k.UpdatePrice(ctx, buyerAddr, saleDenom, math.NewInt(1))
	require.ErrorIs(t, err, types.ErrUnauthorized)

	stored, _ := k.GetEscrow(ctx, saleDenom)
	require.True(t, stored.PricePerToken.Equal(math.NewInt(500)))
}

func TestUpdatePriceToZero(t *testing.T) {
	k, ctx := testkeeper.EscrowKeeper(t)
	setupSale(t, k, ctx, math.NewInt(500), math.NewInt(10_000))

	require.NoError(t, k.UpdatePrice(ctx, adminAddr, saleDenom, math.ZeroInt()))
	require.Error(t, k.UpdatePrice(ctx, adminAddr, saleDenom, math.NewInt(-1)))
}

func TestBuyHugeAmountSaturatesSoldMetric(t *testing.T) {
	k, ctx := testkeeper.EscrowKeeper(t)

	// A free sale with a fresh denom so the metric label starts at zero.
	const bulkDenom = "ubulk"
	escrow, err := k.InitializeEscrow(ctx, adminAddr, bulkDenom, math.ZeroInt())
	require.NoError(t, err)

	vault, err := sdk.AccAddressFromBech32(escrow.EscrowAddress)
	require.NoError(t, err)

	huge := math.NewIntWithDecimal(1, 21) // 10^21, beyond int64
	require.False(t, huge.IsInt64())
	fundTestAccount(t, k, ctx, vault, bulkDenom, huge)

	_, err = k.Buy(ctx, buyerAddr, bulkDenom, huge)
	require.NoError(t, err)

	sold := promtestutil.ToFloat64(keeper.NewMetrics().TokensSold.WithLabelValues(bulkDenom))
	require.Equal(t, float64(stdmath.MaxInt64), sold)

	stored, _ := k.GetEscrow(ctx, bulkDenom)
	require.True(t, stored.TotalSold.Equal(huge))
}

func TestWithdraw(t *testing.T) {
	k, ctx := testkeeper.EscrowKeeper(t)
	setupSale(t, k, ctx, math.NewInt(500), math.NewInt(10_000))

	require.NoError(t, k.Withdraw(ctx, adminAddr, saleDenom, math.NewInt(4_000)))

	bk := k.GetBankKeeper()
	require.True(t, bk.GetBalance(ctx, adminAddr, saleDenom).Amount.Equal(math.NewInt(4_000)))
	require.True(t, bk.GetBalance(ctx, types.EscrowAddress(saleDenom), saleDenom).Amount.Equal(math.NewInt(6_000)))
}

func TestWithdrawUnauthorized(t *testing.T) {
	k, ctx := testkeeper.EscrowKeeper(t)
	setupSale(t, k, ctx, math.NewInt(500), math.NewInt(10_000))

	err := k.Withdraw(ctx, buyerAddr, saleDenom, math.NewInt(1))
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestWithdrawMoreThanInventory(t *testing.T) {
	k, ctx := testkeeper.EscrowKeeper(t)
	setupSale(t, k, ctx, math.NewInt(500), math.NewInt(100))

	err := k.Withdraw(ctx, adminAddr, saleDenom, math.NewInt(1_000))
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	bk := k.GetBankKeeper()
	require.True(t, bk.GetBalance(ctx, types.EscrowAddress(saleDenom), saleDenom).Amount.Equal(math.NewInt(100)))
}
