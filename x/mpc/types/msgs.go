package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgInitCompDef      = "init_comp_def"
	TypeMsgQueueComputation = "queue_computation"
	TypeMsgResolveCallback  = "resolve_callback"
	TypeMsgUpdateParams     = "update_params"
)

var (
	_ sdk.Msg = &MsgInitCompDef{}
	_ sdk.Msg = &MsgQueueComputation{}
	_ sdk.Msg = &MsgResolveCallback{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgInitCompDef initializes a computation definition for one kind.
// Called once per kind before any request of that kind can be queued.
type MsgInitCompDef struct {
	Payer string `json:"payer"`
	Kind  string `json:"kind"`
}

func (m *MsgInitCompDef) Reset()         { *m = MsgInitCompDef{} }
func (m *MsgInitCompDef) String() string { return fmt.Sprintf("MsgInitCompDef{%s, %s}", m.Payer, m.Kind) }
func (*MsgInitCompDef) ProtoMessage()    {}

// ValidateBasic performs stateless validation.
func (m *MsgInitCompDef) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Payer); err != nil {
		return ErrInvalidAddress.Wrapf("invalid payer address: %v", err)
	}
	if _, ok := KindByName(m.Kind); !ok {
		return ErrInvalidKind.Wrapf("%q", m.Kind)
	}
	return nil
}

// GetSigners returns the expected signers for MsgInitCompDef.
func (m *MsgInitCompDef) GetSigners() []sdk.AccAddress {
	payer, _ := sdk.AccAddressFromBech32(m.Payer)
	return []sdk.AccAddress{payer}
}

// MsgQueueComputation queues one computation with a caller-chosen
// offset. The offset must not collide with any previously used offset.
type MsgQueueComputation struct {
	Requester string     `json:"requester"`
	Kind      string     `json:"kind"`
	Offset    uint64     `json:"offset"`
	Args      []Argument `json:"args"`
}

func (m *MsgQueueComputation) Reset() { *m = MsgQueueComputation{} }
func (m *MsgQueueComputation) String() string {
	return fmt.Sprintf("MsgQueueComputation{%s, %s, %d}", m.Requester, m.Kind, m.Offset)
}
func (*MsgQueueComputation) ProtoMessage() {}

// ValidateBasic performs stateless validation.
func (m *MsgQueueComputation) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Requester); err != nil {
		return ErrInvalidAddress.Wrapf("invalid requester address: %v", err)
	}
	if _, ok := KindByName(m.Kind); !ok {
		return ErrInvalidKind.Wrapf("%q", m.Kind)
	}
	for i, arg := range m.Args {
		if err := arg.Validate(); err != nil {
			return ErrInvalidArgument.Wrapf("argument %d: %v", i, err)
		}
	}
	return nil
}

// GetSigners returns the expected signers for MsgQueueComputation.
func (m *MsgQueueComputation) GetSigners() []sdk.AccAddress {
	requester, _ := sdk.AccAddressFromBech32(m.Requester)
	return []sdk.AccAddress{requester}
}

// MsgResolveCallback carries the executor's outcome for one queued
// computation. It is the sole path by which a pending record reaches a
// terminal state.
type MsgResolveCallback struct {
	Executor  string            `json:"executor"`
	Offset    uint64            `json:"offset"`
	CompDefId uint32            `json:"comp_def_id"`
	Output    ComputationOutput `json:"output"`
}

func (m *MsgResolveCallback) Reset() { *m = MsgResolveCallback{} }
func (m *MsgResolveCallback) String() string {
	return fmt.Sprintf("MsgResolveCallback{%s, %d, %d}", m.Executor, m.Offset, m.CompDefId)
}
func (*MsgResolveCallback) ProtoMessage() {}

// ValidateBasic performs stateless validation.
func (m *MsgResolveCallback) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Executor); err != nil {
		return ErrInvalidAddress.Wrapf("invalid executor address: %v", err)
	}
	if m.Output.Aborted && len(m.Output.Payload) != 0 {
		return ErrInvalidOutput.Wrap("aborted output must not carry a payload")
	}
	return nil
}

// GetSigners returns the expected signers for MsgResolveCallback.
func (m *MsgResolveCallback) GetSigners() []sdk.AccAddress {
	executor, _ := sdk.AccAddressFromBech32(m.Executor)
	return []sdk.AccAddress{executor}
}

// MsgUpdateParams updates the module parameters via governance.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

func (m *MsgUpdateParams) Reset() { *m = MsgUpdateParams{} }
func (m *MsgUpdateParams) String() string {
	return fmt.Sprintf("MsgUpdateParams{%s}", m.Authority)
}
func (*MsgUpdateParams) ProtoMessage() {}

// ValidateBasic performs stateless validation.
func (m *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("invalid authority address: %v", err)
	}
	if err := m.Params.Validate(); err != nil {
		return ErrInvalidParams.Wrap(err.Error())
	}
	return nil
}

// GetSigners returns the expected signers for MsgUpdateParams.
func (m *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(m.Authority)
	return []sdk.AccAddress{authority}
}
