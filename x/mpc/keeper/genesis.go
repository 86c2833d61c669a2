package keeper

import (
	"context"
	"fmt"

	"github.com/climemate-chain/climemate/x/mpc/types"
)

// InitGenesis initializes the mpc module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, data types.GenesisState) error {
	if err := k.SetParams(ctx, data.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	for _, def := range data.CompDefs {
		if err := k.SetCompDef(ctx, def); err != nil {
			return fmt.Errorf("failed to initialize comp def %q: %w", def.Name, err)
		}
	}

	for _, comp := range data.Computations {
		if err := k.SetComputation(ctx, comp); err != nil {
			return fmt.Errorf("failed to initialize computation %d: %w", comp.Offset, err)
		}
	}

	if len(data.Computations) > 0 {
		if _, err := k.EnsureSignerIdentity(ctx); err != nil {
			return fmt.Errorf("failed to derive signer identity: %w", err)
		}
	}

	return nil
}

// ExportGenesis exports the mpc module's state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get params: %w", err)
	}

	var defs []types.CompDef
	if err := k.IterateCompDefs(ctx, func(def types.CompDef) (bool, error) {
		defs = append(defs, def)
		return false, nil
	}); err != nil {
		return nil, fmt.Errorf("failed to iterate comp defs: %w", err)
	}

	var comps []types.PendingComputation
	if err := k.IterateComputations(ctx, func(comp types.PendingComputation) (bool, error) {
		comps = append(comps, comp)
		return false, nil
	}); err != nil {
		return nil, fmt.Errorf("failed to iterate computations: %w", err)
	}

	return &types.GenesisState{
		Params:       params,
		CompDefs:     defs,
		Computations: comps,
	}, nil
}
