package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/climemate-chain/climemate/x/mpc/types"
)

// EnsureSignerIdentity returns the protocol's derived signer identity,
// creating the stored record on first use. The derivation is a pure
// function of a fixed seed, so repeated calls are a no-op, not an
// error.
func (k Keeper) EnsureSignerIdentity(ctx context.Context) (types.SignerIdentity, error) {
	if identity, ok := k.GetSignerIdentity(ctx); ok {
		return identity, nil
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	identity := types.SignerIdentity{
		Address:   types.DeriveSignerAddress().String(),
		CreatedAt: sdkCtx.BlockTime(),
	}

	store := k.getStore(ctx)
	bz, err := json.Marshal(identity)
	if err != nil {
		return types.SignerIdentity{}, fmt.Errorf("EnsureSignerIdentity: marshal: %w", err)
	}
	store.Set(types.SignerIdentityKey, bz)

	return identity, nil
}

// GetSignerIdentity retrieves the stored signer identity, if created.
func (k Keeper) GetSignerIdentity(ctx context.Context) (types.SignerIdentity, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.SignerIdentityKey)
	if bz == nil {
		return types.SignerIdentity{}, false
	}

	var identity types.SignerIdentity
	if err := json.Unmarshal(bz, &identity); err != nil {
		return types.SignerIdentity{}, false
	}

	return identity, true
}
