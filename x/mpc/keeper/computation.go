package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"

	"github.com/climemate-chain/climemate/x/mpc/types"
)

// GetComputation retrieves a computation record by its offset.
func (k Keeper) GetComputation(ctx context.Context, offset uint64) (types.PendingComputation, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.ComputationKey(offset))
	if bz == nil {
		return types.PendingComputation{}, false
	}

	var comp types.PendingComputation
	if err := json.Unmarshal(bz, &comp); err != nil {
		return types.PendingComputation{}, false
	}

	return comp, true
}

// SetComputation stores a computation record and maintains the queued
// status index.
func (k Keeper) SetComputation(ctx context.Context, comp types.PendingComputation) error {
	if err := comp.Validate(); err != nil {
		return types.ErrValidationFailed.Wrap(err.Error())
	}

	store := k.getStore(ctx)
	bz, err := json.Marshal(comp)
	if err != nil {
		return fmt.Errorf("SetComputation: marshal: %w", err)
	}

	store.Set(types.ComputationKey(comp.Offset), bz)

	if comp.Status == types.COMPUTATION_STATUS_QUEUED {
		store.Set(types.QueuedIndexKey(comp.Offset), []byte{1})
	} else {
		store.Delete(types.QueuedIndexKey(comp.Offset))
	}

	return nil
}

// HasComputation reports whether the offset is occupied. Terminal
// records count: a finalized offset is retired forever.
func (k Keeper) HasComputation(ctx context.Context, offset uint64) bool {
	return k.getStore(ctx).Has(types.ComputationKey(offset))
}

// IterateComputations iterates over all computation records in offset
// order.
func (k Keeper) IterateComputations(ctx context.Context, cb func(comp types.PendingComputation) (stop bool, err error)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.ComputationKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var comp types.PendingComputation
		if err := json.Unmarshal(iterator.Value(), &comp); err != nil {
			return err
		}

		stop, err := cb(comp)
		if err != nil {
			return err
		}
		if stop {
			break
		}
	}

	return nil
}

// IsKindInitialized implements sharedkeeper.MpcKeeperV1.
func (k Keeper) IsKindInitialized(ctx context.Context, kind string) bool {
	def, found := k.GetCompDefByKind(ctx, kind)
	return found && def.Initialized
}

// QueuedCount implements sharedkeeper.MpcKeeperV1.
func (k Keeper) QueuedCount(ctx context.Context) uint64 {
	return k.CountQueuedComputations(ctx)
}

// CountQueuedComputations returns the number of computations still
// awaiting a callback.
func (k Keeper) CountQueuedComputations(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.QueuedIndexPrefix)
	defer iterator.Close()

	var count uint64
	for ; iterator.Valid(); iterator.Next() {
		count++
	}
	return count
}
