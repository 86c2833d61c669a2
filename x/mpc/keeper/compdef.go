package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/climemate-chain/climemate/x/mpc/types"
)

// InitCompDef initializes the computation definition for one kind.
// Definitions are immutable after initialization; a second init for the
// same kind fails without touching existing state.
func (k Keeper) InitCompDef(ctx context.Context, payer sdk.AccAddress, kind string) (types.CompDef, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	spec, ok := types.KindByName(kind)
	if !ok {
		return types.CompDef{}, types.ErrInvalidKind.Wrapf("%q", kind)
	}

	store := k.getStore(ctx)
	if store.Has(types.CompDefKey(spec.Id)) {
		return types.CompDef{}, types.ErrCompDefAlreadyInitialized.Wrapf("kind %q (id %d)", kind, spec.Id)
	}

	def := types.CompDef{
		Name:          spec.Name,
		Id:            spec.Id,
		Initialized:   true,
		InitializedAt: sdkCtx.BlockTime(),
	}

	if err := k.SetCompDef(ctx, def); err != nil {
		return types.CompDef{}, err
	}

	k.metrics.CompDefsInitialized.Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCompDefInitialized,
			sdk.NewAttribute(types.AttributeKeyKind, def.Name),
			sdk.NewAttribute(types.AttributeKeyCompDefID, fmt.Sprintf("%d", def.Id)),
			sdk.NewAttribute(types.AttributeKeyRequester, payer.String()),
		),
	)

	return def, nil
}

// GetCompDef retrieves a computation definition by its derived ID.
func (k Keeper) GetCompDef(ctx context.Context, id uint32) (types.CompDef, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.CompDefKey(id))
	if bz == nil {
		return types.CompDef{}, false
	}

	var def types.CompDef
	if err := json.Unmarshal(bz, &def); err != nil {
		return types.CompDef{}, false
	}

	return def, true
}

// GetCompDefByKind retrieves a computation definition by kind name.
func (k Keeper) GetCompDefByKind(ctx context.Context, kind string) (types.CompDef, bool) {
	spec, ok := types.KindByName(kind)
	if !ok {
		return types.CompDef{}, false
	}
	return k.GetCompDef(ctx, spec.Id)
}

// SetCompDef stores a computation definition record.
func (k Keeper) SetCompDef(ctx context.Context, def types.CompDef) error {
	if err := def.Validate(); err != nil {
		return types.ErrInvalidKind.Wrap(err.Error())
	}

	store := k.getStore(ctx)
	bz, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("SetCompDef: marshal: %w", err)
	}

	store.Set(types.CompDefKey(def.Id), bz)
	return nil
}

// IterateCompDefs iterates over all initialized definitions.
func (k Keeper) IterateCompDefs(ctx context.Context, cb func(def types.CompDef) (stop bool, err error)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.CompDefKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var def types.CompDef
		if err := json.Unmarshal(iterator.Value(), &def); err != nil {
			return err
		}

		stop, err := cb(def)
		if err != nil {
			return err
		}
		if stop {
			break
		}
	}

	return nil
}
