package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "escrow"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for escrow
	RouterKey = ModuleName
)

// Store key prefixes
var (
	ParamsKey       = []byte{0x01}
	EscrowKeyPrefix = []byte{0x02}
)

// EscrowKey returns the store key for the escrow ledger of one denom.
func EscrowKey(denom string) []byte {
	return append(EscrowKeyPrefix, []byte(denom)...)
}

// EscrowAddress returns the derived address holding one denom's sale
// inventory. Deterministic per denom, so the ledger and its vault can
// never drift apart.
func EscrowAddress(denom string) sdk.AccAddress {
	return address.Module(ModuleName, []byte(denom))
}
