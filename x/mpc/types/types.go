package types

import (
	"encoding/binary"
	"fmt"
	"time"

	"cosmossdk.io/math"
)

// ComputationStatus tracks the lifecycle of a pending computation.
// QUEUED is the only non-terminal state; exactly one callback moves a
// record to RESOLVED or ABORTED and nothing moves it back.
type ComputationStatus int32

const (
	COMPUTATION_STATUS_UNSPECIFIED ComputationStatus = iota
	COMPUTATION_STATUS_QUEUED
	COMPUTATION_STATUS_RESOLVED
	COMPUTATION_STATUS_ABORTED
)

func (s ComputationStatus) String() string {
	switch s {
	case COMPUTATION_STATUS_QUEUED:
		return "QUEUED"
	case COMPUTATION_STATUS_RESOLVED:
		return "RESOLVED"
	case COMPUTATION_STATUS_ABORTED:
		return "ABORTED"
	default:
		return "UNSPECIFIED"
	}
}

// IsTerminal reports whether the status admits no further transition.
func (s ComputationStatus) IsTerminal() bool {
	return s == COMPUTATION_STATUS_RESOLVED || s == COMPUTATION_STATUS_ABORTED
}

// ArgumentType discriminates queue-time argument payloads.
type ArgumentType string

const (
	ARG_PLAINTEXT_U64  ArgumentType = "plaintext_u64"
	ARG_PLAINTEXT_U128 ArgumentType = "plaintext_u128"
	ARG_PLAINTEXT_BOOL ArgumentType = "plaintext_bool"
	ARG_ENCRYPTED      ArgumentType = "encrypted"
)

var maxU128 = math.NewIntFromUint64(1).MulRaw(1 << 62).MulRaw(1 << 62).MulRaw(16) // 2^128

// Argument is one typed queue-time input: either a public plaintext
// value or an opaque encrypted-input reference with its nonce.
// Arguments are immutable once queued.
type Argument struct {
	Type         ArgumentType `json:"type"`
	U64          uint64       `json:"u64,omitempty"`
	U128         math.Int     `json:"u128"`
	Bool         bool         `json:"bool,omitempty"`
	EncryptedRef []byte       `json:"encrypted_ref,omitempty"`
	Nonce        math.Int     `json:"nonce"`
}

// NewPlaintextU64Arg builds a public 64-bit argument.
func NewPlaintextU64Arg(v uint64) Argument {
	return Argument{Type: ARG_PLAINTEXT_U64, U64: v, U128: math.ZeroInt(), Nonce: math.ZeroInt()}
}

// NewPlaintextU128Arg builds a public 128-bit argument (nonces and the
// like that do not fit in 64 bits).
func NewPlaintextU128Arg(v math.Int) Argument {
	return Argument{Type: ARG_PLAINTEXT_U128, U128: v, Nonce: math.ZeroInt()}
}

// NewPlaintextBoolArg builds a public boolean argument.
func NewPlaintextBoolArg(v bool) Argument {
	return Argument{Type: ARG_PLAINTEXT_BOOL, Bool: v, U128: math.ZeroInt(), Nonce: math.ZeroInt()}
}

// NewEncryptedArg builds an opaque encrypted-input reference. The nonce
// accompanies the ciphertext to the executor and is never interpreted
// locally.
func NewEncryptedArg(ref []byte, nonce math.Int) Argument {
	return Argument{Type: ARG_ENCRYPTED, U128: math.ZeroInt(), EncryptedRef: ref, Nonce: nonce}
}

// Validate performs structural validation of an argument.
func (a Argument) Validate() error {
	switch a.Type {
	case ARG_PLAINTEXT_U64, ARG_PLAINTEXT_BOOL:
		return nil
	case ARG_PLAINTEXT_U128:
		if a.U128.IsNil() || a.U128.IsNegative() {
			return fmt.Errorf("u128 argument must be a non-negative integer")
		}
		if a.U128.GTE(maxU128) {
			return fmt.Errorf("u128 argument exceeds 128-bit range")
		}
		return nil
	case ARG_ENCRYPTED:
		if len(a.EncryptedRef) == 0 {
			return fmt.Errorf("encrypted argument requires a ciphertext reference")
		}
		if a.Nonce.IsNil() || a.Nonce.IsNegative() || a.Nonce.GTE(maxU128) {
			return fmt.Errorf("encrypted argument requires a 128-bit nonce")
		}
		return nil
	default:
		return fmt.Errorf("unknown argument type %q", a.Type)
	}
}

// CallbackRoute pins the single authorized resolution path for a
// pending computation: its definition identity and the protocol signer.
type CallbackRoute struct {
	CompDefId uint32 `json:"comp_def_id"`
	Signer    string `json:"signer"`
}

// CompDef is one registered computation definition. Created once by an
// explicit initialization, immutable thereafter.
type CompDef struct {
	Name          string    `json:"name"`
	Id            uint32    `json:"id"`
	Initialized   bool      `json:"initialized"`
	InitializedAt time.Time `json:"initialized_at"`
}

// Validate checks that the definition's ID matches its name derivation.
func (d CompDef) Validate() error {
	spec, ok := KindByName(d.Name)
	if !ok {
		return fmt.Errorf("unknown computation kind %q", d.Name)
	}
	if d.Id != spec.Id {
		return fmt.Errorf("comp def %q has id %d, derived offset is %d", d.Name, d.Id, spec.Id)
	}
	return nil
}

// PendingComputation is one in-flight (or finalized) request. The
// caller-chosen offset is the unique key; terminal records are retained
// for audit, which permanently retires the offset.
type PendingComputation struct {
	Offset     uint64            `json:"offset"`
	Kind       string            `json:"kind"`
	CompDefId  uint32            `json:"comp_def_id"`
	Requester  string            `json:"requester"`
	Args       []Argument        `json:"args"`
	Route      CallbackRoute     `json:"route"`
	Status     ComputationStatus `json:"status"`
	QueuedAt   time.Time         `json:"queued_at"`
	ResolvedAt *time.Time        `json:"resolved_at,omitempty"`
}

// Validate performs structural validation of a computation record.
func (c PendingComputation) Validate() error {
	spec, ok := KindByName(c.Kind)
	if !ok {
		return fmt.Errorf("unknown computation kind %q", c.Kind)
	}
	if c.CompDefId != spec.Id {
		return fmt.Errorf("computation %d references comp def %d, kind %q derives %d", c.Offset, c.CompDefId, c.Kind, spec.Id)
	}
	if c.Route.CompDefId != c.CompDefId {
		return fmt.Errorf("computation %d callback route pins comp def %d, expected %d", c.Offset, c.Route.CompDefId, c.CompDefId)
	}
	if c.Status == COMPUTATION_STATUS_UNSPECIFIED {
		return fmt.Errorf("computation %d has unspecified status", c.Offset)
	}
	for i, arg := range c.Args {
		if err := arg.Validate(); err != nil {
			return fmt.Errorf("computation %d argument %d: %w", c.Offset, i, err)
		}
	}
	return nil
}

// SignerIdentity is the stored record of the protocol's derived signing
// identity. Derivation is idempotent; the record exists so downstream
// consumers can read the address without re-deriving.
type SignerIdentity struct {
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// ComputationOutput is the executor-reported outcome of a computation:
// either an opaque success payload to be decoded per kind, or an abort
// marker with no payload.
type ComputationOutput struct {
	Aborted bool   `json:"aborted"`
	Payload []byte `json:"payload,omitempty"`
}

// DisclosedResult is the decoded, disclosure-safe view of a success
// payload. Only the field selected by the kind's Disclosure is
// meaningful.
type DisclosedResult struct {
	Disclosure Disclosure
	Flag       bool
	Value      uint64
}

// DecodeOutput decodes a success payload according to the kind's
// expected shape. Storage-initialization kinds carry an opaque blob
// which is deliberately not interpreted.
func DecodeOutput(spec KindSpec, payload []byte) (DisclosedResult, error) {
	switch spec.Disclosure {
	case DISCLOSURE_NONE:
		// Opaque encrypted state share; completion is the only signal.
		return DisclosedResult{Disclosure: DISCLOSURE_NONE}, nil
	case DISCLOSURE_BOOL:
		if len(payload) != 1 {
			return DisclosedResult{}, fmt.Errorf("kind %q expects a 1-byte boolean payload, got %d bytes", spec.Name, len(payload))
		}
		return DisclosedResult{Disclosure: DISCLOSURE_BOOL, Flag: payload[0] != 0}, nil
	case DISCLOSURE_UINT64:
		if len(payload) != 8 {
			return DisclosedResult{}, fmt.Errorf("kind %q expects an 8-byte payload, got %d bytes", spec.Name, len(payload))
		}
		return DisclosedResult{Disclosure: DISCLOSURE_UINT64, Value: binary.BigEndian.Uint64(payload)}, nil
	default:
		return DisclosedResult{}, fmt.Errorf("kind %q has unknown disclosure %d", spec.Name, spec.Disclosure)
	}
}
