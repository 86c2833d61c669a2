package keeper

import (
	"context"
	"fmt"

	"github.com/climemate-chain/climemate/x/escrow/types"
)

// InitGenesis initializes the escrow module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, data types.GenesisState) error {
	if err := k.SetParams(ctx, data.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	for _, escrow := range data.Escrows {
		if err := k.SetEscrow(ctx, escrow); err != nil {
			return fmt.Errorf("failed to initialize escrow %s: %w", escrow.Denom, err)
		}
	}

	return nil
}

// ExportGenesis exports the escrow module's state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get params: %w", err)
	}

	var escrows []types.Escrow
	if err := k.IterateEscrows(ctx, func(escrow types.Escrow) (bool, error) {
		escrows = append(escrows, escrow)
		return false, nil
	}); err != nil {
		return nil, fmt.Errorf("failed to iterate escrows: %w", err)
	}

	return &types.GenesisState{
		Params:  params,
		Escrows: escrows,
	}, nil
}
