package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	escrowtypes "github.com/climemate-chain/climemate/x/escrow/types"
	mpctypes "github.com/climemate-chain/climemate/x/mpc/types"
)

// testEnv bundles the store and SDK keepers every module test needs.
type testEnv struct {
	cdc        codec.Codec
	bankKeeper bankkeeper.BaseKeeper
	authority  string
	ctx        sdk.Context
}

// newTestEnv builds an in-memory multistore with real auth and bank
// keepers mounted alongside the given module store key.
func newTestEnv(t testing.TB, moduleKey storetypes.StoreKey) testEnv {
	authStoreKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankStoreKey := storetypes.NewKVStoreKey(banktypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(moduleKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(authStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(bankStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	// Minter permission lets the funding helper mint test balances.
	maccPerms := map[string][]string{
		authtypes.FeeCollectorName: nil,
		mpctypes.ModuleName:        {authtypes.Minter},
		escrowtypes.ModuleName:     {authtypes.Minter},
	}

	accountKeeper := authkeeper.NewAccountKeeper(
		cdc,
		runtime.NewKVStoreService(authStoreKey),
		authtypes.ProtoBaseAccount,
		maccPerms,
		address.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		sdk.GetConfig().GetBech32AccountAddrPrefix(),
		authority.String(),
	)

	bankKeeper := bankkeeper.NewBaseKeeper(
		cdc,
		runtime.NewKVStoreService(bankStoreKey),
		accountKeeper,
		map[string]bool{},
		authority.String(),
		log.NewNopLogger(),
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: time.Now().UTC()}, false, log.NewNopLogger())

	return testEnv{
		cdc:        cdc,
		bankKeeper: bankKeeper,
		authority:  authority.String(),
		ctx:        ctx,
	}
}

// FundAccount mints coins through a module account and sends them to
// the given address.
func FundAccount(t testing.TB, ctx sdk.Context, bk bankkeeper.Keeper, minterModule string, addr sdk.AccAddress, denom string, amount sdkmath.Int) {
	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	require.NoError(t, bk.MintCoins(ctx, minterModule, coins))
	require.NoError(t, bk.SendCoinsFromModuleToAccount(ctx, minterModule, addr, coins))
}
