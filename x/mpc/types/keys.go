package types

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "mpc"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for mpc
	RouterKey = ModuleName

	// SignerIdentitySeed is the fixed seed the protocol signer identity
	// is derived from. The derivation is deterministic, so repeated
	// initialization always lands on the same address.
	SignerIdentitySeed = "sign_pda"

	// ExecutorSeed derives the default executor authority when genesis
	// does not supply one.
	ExecutorSeed = "executor"
)

// Store key prefixes
var (
	ParamsKey            = []byte{0x01}
	CompDefKeyPrefix     = []byte{0x02}
	ComputationKeyPrefix = []byte{0x03}
	SignerIdentityKey    = []byte{0x04}
	QueuedIndexPrefix    = []byte{0x05}
)

// CompDefKey returns the store key for a computation definition.
func CompDefKey(id uint32) []byte {
	bz := make([]byte, 4)
	binary.BigEndian.PutUint32(bz, id)
	return append(CompDefKeyPrefix, bz...)
}

// ComputationKey returns the store key for a pending computation. The
// offset is the key: a second queue at an occupied offset is rejected
// at the storage layer.
func ComputationKey(offset uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, offset)
	return append(ComputationKeyPrefix, bz...)
}

// QueuedIndexKey returns the status index key for a queued computation.
func QueuedIndexKey(offset uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, offset)
	return append(QueuedIndexPrefix, bz...)
}

// DeriveSignerAddress returns the protocol's derived signer identity.
// Deterministic per (module, seed) tuple, the PDA equivalent.
func DeriveSignerAddress() sdk.AccAddress {
	return address.Module(ModuleName, []byte(SignerIdentitySeed))
}

// DeriveExecutorAddress returns the default executor authority address.
func DeriveExecutorAddress() sdk.AccAddress {
	return address.Module(ModuleName, []byte(ExecutorSeed))
}
