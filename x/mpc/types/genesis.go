package types

import (
	"fmt"
)

// GenesisState defines the MPC module's genesis state.
type GenesisState struct {
	Params       Params               `json:"params"`
	CompDefs     []CompDef            `json:"comp_defs"`
	Computations []PendingComputation `json:"computations"`
}

// DefaultGenesis returns the default genesis state: no definitions
// initialized, no computations in flight.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:       DefaultParams(),
		CompDefs:     nil,
		Computations: nil,
	}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	seenDefs := make(map[uint32]struct{}, len(gs.CompDefs))
	for _, def := range gs.CompDefs {
		if err := def.Validate(); err != nil {
			return err
		}
		if _, dup := seenDefs[def.Id]; dup {
			return fmt.Errorf("duplicate comp def id %d", def.Id)
		}
		seenDefs[def.Id] = struct{}{}
	}

	seenOffsets := make(map[uint64]struct{}, len(gs.Computations))
	for _, comp := range gs.Computations {
		if err := comp.Validate(); err != nil {
			return err
		}
		if _, dup := seenOffsets[comp.Offset]; dup {
			return fmt.Errorf("duplicate computation offset %d", comp.Offset)
		}
		seenOffsets[comp.Offset] = struct{}{}
		if _, ok := seenDefs[comp.CompDefId]; !ok {
			return fmt.Errorf("computation %d references uninitialized comp def %d", comp.Offset, comp.CompDefId)
		}
	}

	return nil
}
