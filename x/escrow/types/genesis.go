package types

import (
	"fmt"
)

// GenesisState defines the escrow module's genesis state.
type GenesisState struct {
	Params  Params   `json:"params"`
	Escrows []Escrow `json:"escrows"`
}

// DefaultGenesis returns the default genesis state: no escrows.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:  DefaultParams(),
		Escrows: nil,
	}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	seen := make(map[string]struct{}, len(gs.Escrows))
	for _, escrow := range gs.Escrows {
		if err := escrow.Validate(); err != nil {
			return err
		}
		if _, dup := seen[escrow.Denom]; dup {
			return fmt.Errorf("duplicate escrow for denom %s", escrow.Denom)
		}
		seen[escrow.Denom] = struct{}{}
	}

	return nil
}
