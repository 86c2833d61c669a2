package keeper

import (
	"context"
	"encoding/json"
	"fmt"
	stdmath "math"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/climemate-chain/climemate/x/escrow/types"
	sharedkeeper "github.com/climemate-chain/climemate/x/shared/keeper"
)

var _ sharedkeeper.EscrowKeeperV1 = Keeper{}

// GetEscrow retrieves the sale ledger for one denom.
func (k Keeper) GetEscrow(ctx context.Context, denom string) (types.Escrow, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.EscrowKey(denom))
	if bz == nil {
		return types.Escrow{}, false
	}

	var escrow types.Escrow
	if err := json.Unmarshal(bz, &escrow); err != nil {
		return types.Escrow{}, false
	}

	return escrow, true
}

// SetEscrow stores a sale ledger record.
func (k Keeper) SetEscrow(ctx context.Context, escrow types.Escrow) error {
	if err := escrow.Validate(); err != nil {
		return types.ErrValidationFailed.Wrap(err.Error())
	}

	store := k.getStore(ctx)
	bz, err := json.Marshal(escrow)
	if err != nil {
		return fmt.Errorf("SetEscrow: marshal: %w", err)
	}

	store.Set(types.EscrowKey(escrow.Denom), bz)
	return nil
}

// IterateEscrows iterates over all sale ledgers.
func (k Keeper) IterateEscrows(ctx context.Context, cb func(escrow types.Escrow) (stop bool, err error)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.EscrowKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var escrow types.Escrow
		if err := json.Unmarshal(iterator.Value(), &escrow); err != nil {
			return err
		}

		stop, err := cb(escrow)
		if err != nil {
			return err
		}
		if stop {
			break
		}
	}

	return nil
}

// GetSaleStats implements sharedkeeper.EscrowKeeperV1.
func (k Keeper) GetSaleStats(ctx context.Context, denom string) (sharedkeeper.SaleStats, bool) {
	escrow, found := k.GetEscrow(ctx, denom)
	if !found {
		return sharedkeeper.SaleStats{}, false
	}

	admin, err := sdk.AccAddressFromBech32(escrow.Admin)
	if err != nil {
		return sharedkeeper.SaleStats{}, false
	}

	return sharedkeeper.SaleStats{
		Denom:        escrow.Denom,
		Admin:        admin,
		TotalSold:    escrow.TotalSold,
		TotalRevenue: escrow.TotalRevenue,
	}, true
}

// InitializeEscrow creates the sale ledger for one denom. The signer
// becomes the permanent admin; counters start at zero.
func (k Keeper) InitializeEscrow(
	ctx context.Context,
	admin sdk.AccAddress,
	denom string,
	pricePerToken math.Int,
) (types.Escrow, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if _, exists := k.GetEscrow(ctx, denom); exists {
		return types.Escrow{}, types.ErrEscrowExists.Wrapf("denom %s", denom)
	}
	if pricePerToken.IsNil() || pricePerToken.IsNegative() {
		return types.Escrow{}, types.ErrInvalidPrice.Wrap("price per token must be non-negative")
	}

	escrow := types.Escrow{
		Admin:         admin.String(),
		Denom:         denom,
		EscrowAddress: types.EscrowAddress(denom).String(),
		PricePerToken: pricePerToken,
		TotalSold:     math.ZeroInt(),
		TotalRevenue:  math.ZeroInt(),
		CreatedAt:     sdkCtx.BlockTime(),
	}

	if err := k.SetEscrow(ctx, escrow); err != nil {
		return types.Escrow{}, err
	}

	k.metrics.EscrowsInitialized.Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeEscrowInitialized,
			sdk.NewAttribute(types.AttributeKeyAdmin, escrow.Admin),
			sdk.NewAttribute(types.AttributeKeyDenom, escrow.Denom),
			sdk.NewAttribute(types.AttributeKeyPrice, escrow.PricePerToken.String()),
		),
	)

	k.Logger(sdkCtx).Info("escrow initialized",
		"denom", denom,
		"admin", escrow.Admin,
		"price", pricePerToken.String(),
	)

	return escrow, nil
}

// Buy purchases tokens from an escrow at its current price. The
// payment leg, the inventory leg, and the statistics update commit
// together or not at all.
func (k Keeper) Buy(
	ctx context.Context,
	buyer sdk.AccAddress,
	denom string,
	amount math.Int,
) (math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	escrow, found := k.GetEscrow(ctx, denom)
	if !found {
		return math.Int{}, types.ErrEscrowNotFound.Wrapf("denom %s", denom)
	}
	if amount.IsNil() || !amount.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("amount must be positive")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.Int{}, err
	}

	// total = amount * price / scale, overflow checked at every step.
	totalPrice, err := SafeMulDiv(amount, escrow.PricePerToken, params.PriceScale)
	if err != nil {
		return math.Int{}, types.ErrOverflow.Wrap(err.Error())
	}

	newSold, err := SafeAdd(escrow.TotalSold, amount)
	if err != nil {
		return math.Int{}, types.ErrOverflow.Wrap(err.Error())
	}
	newRevenue, err := SafeAdd(escrow.TotalRevenue, totalPrice)
	if err != nil {
		return math.Int{}, types.ErrOverflow.Wrap(err.Error())
	}

	adminAddr, err := sdk.AccAddressFromBech32(escrow.Admin)
	if err != nil {
		return math.Int{}, types.ErrInvalidAddress.Wrapf("stored admin address: %v", err)
	}
	escrowAddr, err := sdk.AccAddressFromBech32(escrow.EscrowAddress)
	if err != nil {
		return math.Int{}, types.ErrInvalidAddress.Wrapf("stored escrow address: %v", err)
	}

	cacheCtx, write := sdkCtx.CacheContext()

	if totalPrice.IsPositive() {
		payment := sdk.NewCoins(sdk.NewCoin(params.PaymentDenom, totalPrice))
		if err := k.bankKeeper.SendCoins(cacheCtx, buyer, adminAddr, payment); err != nil {
			return math.Int{}, types.ErrTransferFailed.Wrapf("payment: %v", err)
		}
	}

	inventory := sdk.NewCoins(sdk.NewCoin(denom, amount))
	if err := k.bankKeeper.SendCoins(cacheCtx, escrowAddr, buyer, inventory); err != nil {
		return math.Int{}, types.ErrTransferFailed.Wrapf("inventory: %v", err)
	}

	escrow.TotalSold = newSold
	escrow.TotalRevenue = newRevenue
	if err := k.SetEscrow(cacheCtx, escrow); err != nil {
		return math.Int{}, err
	}

	write()

	// Saturate rather than skip when the amount exceeds int64.
	soldCount := float64(stdmath.MaxInt64)
	if amount.IsInt64() {
		soldCount = float64(amount.Int64())
	}
	k.metrics.TokensSold.WithLabelValues(denom).Add(soldCount)
	k.metrics.PurchaseCount.WithLabelValues(denom).Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTokenPurchase,
			sdk.NewAttribute(types.AttributeKeyBuyer, buyer.String()),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyPrice, totalPrice.String()),
			sdk.NewAttribute(types.AttributeKeyTimestamp, fmt.Sprintf("%d", sdkCtx.BlockTime().Unix())),
		),
	)

	k.Logger(sdkCtx).Info("tokens purchased",
		"denom", denom,
		"buyer", buyer.String(),
		"amount", amount.String(),
		"total_price", totalPrice.String(),
	)

	return totalPrice, nil
}

// UpdatePrice replaces an escrow's sale price. Admin only; the new
// price applies to all subsequent purchases.
func (k Keeper) UpdatePrice(
	ctx context.Context,
	admin sdk.AccAddress,
	denom string,
	newPrice math.Int,
) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	escrow, found := k.GetEscrow(ctx, denom)
	if !found {
		return types.ErrEscrowNotFound.Wrapf("denom %s", denom)
	}
	if escrow.Admin != admin.String() {
		return types.ErrUnauthorized.Wrapf("%s is not the admin of escrow %s", admin, denom)
	}
	if newPrice.IsNil() || newPrice.IsNegative() {
		return types.ErrInvalidPrice.Wrap("new price must be non-negative")
	}

	oldPrice := escrow.PricePerToken
	escrow.PricePerToken = newPrice
	if err := k.SetEscrow(ctx, escrow); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePriceUpdated,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyOldPrice, oldPrice.String()),
			sdk.NewAttribute(types.AttributeKeyNewPrice, newPrice.String()),
		),
	)

	k.Logger(sdkCtx).Info("escrow price updated",
		"denom", denom,
		"old_price", oldPrice.String(),
		"new_price", newPrice.String(),
	)

	return nil
}

// Withdraw moves unsold inventory from the escrow vault back to the
// admin. Admin only.
func (k Keeper) Withdraw(
	ctx context.Context,
	admin sdk.AccAddress,
	denom string,
	amount math.Int,
) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	escrow, found := k.GetEscrow(ctx, denom)
	if !found {
		return types.ErrEscrowNotFound.Wrapf("denom %s", denom)
	}
	if escrow.Admin != admin.String() {
		return types.ErrUnauthorized.Wrapf("%s is not the admin of escrow %s", admin, denom)
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrap("amount must be positive")
	}

	escrowAddr, err := sdk.AccAddressFromBech32(escrow.EscrowAddress)
	if err != nil {
		return types.ErrInvalidAddress.Wrapf("stored escrow address: %v", err)
	}

	unsold := k.bankKeeper.GetBalance(ctx, escrowAddr, denom).Amount
	if _, err := SafeSub(unsold, amount); err != nil {
		return types.ErrInvalidAmount.Wrapf("withdraw %s exceeds unsold inventory %s", amount, unsold)
	}

	inventory := sdk.NewCoins(sdk.NewCoin(denom, amount))
	if err := k.bankKeeper.SendCoins(ctx, escrowAddr, admin, inventory); err != nil {
		return types.ErrTransferFailed.Wrap(err.Error())
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTokensWithdrawn,
			sdk.NewAttribute(types.AttributeKeyAdmin, escrow.Admin),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)

	k.Logger(sdkCtx).Info("tokens withdrawn",
		"denom", denom,
		"admin", escrow.Admin,
		"amount", amount.String(),
	)

	return nil
}
