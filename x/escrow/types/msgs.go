package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgInitializeEscrow = "initialize_escrow"
	TypeMsgBuyTokens        = "buy_tokens"
	TypeMsgUpdatePrice      = "update_price"
	TypeMsgWithdraw         = "withdraw"
)

var (
	_ sdk.Msg = &MsgInitializeEscrow{}
	_ sdk.Msg = &MsgBuyTokens{}
	_ sdk.Msg = &MsgUpdatePrice{}
	_ sdk.Msg = &MsgWithdraw{}
)

// MsgInitializeEscrow creates the sale ledger for one denom. The
// signer becomes the permanent escrow admin.
type MsgInitializeEscrow struct {
	Admin         string   `json:"admin"`
	Denom         string   `json:"denom"`
	PricePerToken math.Int `json:"price_per_token"`
}

func (m *MsgInitializeEscrow) Reset() { *m = MsgInitializeEscrow{} }
func (m *MsgInitializeEscrow) String() string {
	return fmt.Sprintf("MsgInitializeEscrow{%s, %s}", m.Admin, m.Denom)
}
func (*MsgInitializeEscrow) ProtoMessage() {}

// ValidateBasic performs stateless validation.
func (m *MsgInitializeEscrow) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Admin); err != nil {
		return ErrInvalidAddress.Wrapf("invalid admin address: %v", err)
	}
	if err := sdk.ValidateDenom(m.Denom); err != nil {
		return ErrValidationFailed.Wrapf("invalid denom: %v", err)
	}
	if m.PricePerToken.IsNil() || m.PricePerToken.IsNegative() {
		return ErrInvalidPrice.Wrap("price per token must be non-negative")
	}
	return nil
}

// GetSigners returns the expected signers for MsgInitializeEscrow.
func (m *MsgInitializeEscrow) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(m.Admin)
	return []sdk.AccAddress{admin}
}

// MsgBuyTokens purchases tokens from an escrow at its current price.
type MsgBuyTokens struct {
	Buyer  string   `json:"buyer"`
	Denom  string   `json:"denom"`
	Amount math.Int `json:"amount"`
}

func (m *MsgBuyTokens) Reset() { *m = MsgBuyTokens{} }
func (m *MsgBuyTokens) String() string {
	return fmt.Sprintf("MsgBuyTokens{%s, %s, %s}", m.Buyer, m.Denom, m.Amount)
}
func (*MsgBuyTokens) ProtoMessage() {}

// ValidateBasic performs stateless validation.
func (m *MsgBuyTokens) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Buyer); err != nil {
		return ErrInvalidAddress.Wrapf("invalid buyer address: %v", err)
	}
	if err := sdk.ValidateDenom(m.Denom); err != nil {
		return ErrValidationFailed.Wrapf("invalid denom: %v", err)
	}
	if m.Amount.IsNil() || !m.Amount.IsPositive() {
		return ErrInvalidAmount.Wrap("amount must be positive")
	}
	return nil
}

// GetSigners returns the expected signers for MsgBuyTokens.
func (m *MsgBuyTokens) GetSigners() []sdk.AccAddress {
	buyer, _ := sdk.AccAddressFromBech32(m.Buyer)
	return []sdk.AccAddress{buyer}
}

// MsgUpdatePrice replaces an escrow's sale price. Admin only.
type MsgUpdatePrice struct {
	Admin    string   `json:"admin"`
	Denom    string   `json:"denom"`
	NewPrice math.Int `json:"new_price"`
}

func (m *MsgUpdatePrice) Reset() { *m = MsgUpdatePrice{} }
func (m *MsgUpdatePrice) String() string {
	return fmt.Sprintf("MsgUpdatePrice{%s, %s, %s}", m.Admin, m.Denom, m.NewPrice)
}
func (*MsgUpdatePrice) ProtoMessage() {}

// ValidateBasic performs stateless validation.
func (m *MsgUpdatePrice) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Admin); err != nil {
		return ErrInvalidAddress.Wrapf("invalid admin address: %v", err)
	}
	if err := sdk.ValidateDenom(m.Denom); err != nil {
		return ErrValidationFailed.Wrapf("invalid denom: %v", err)
	}
	if m.NewPrice.IsNil() || m.NewPrice.IsNegative() {
		return ErrInvalidPrice.Wrap("new price must be non-negative")
	}
	return nil
}

// GetSigners returns the expected signers for MsgUpdatePrice.
func (m *MsgUpdatePrice) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(m.Admin)
	return []sdk.AccAddress{admin}
}

// MsgWithdraw moves unsold inventory from the escrow vault back to the
// admin. Admin only.
type MsgWithdraw struct {
	Admin  string   `json:"admin"`
	Denom  string   `json:"denom"`
	Amount math.Int `json:"amount"`
}

func (m *MsgWithdraw) Reset() { *m = MsgWithdraw{} }
func (m *MsgWithdraw) String() string {
	return fmt.Sprintf("MsgWithdraw{%s, %s, %s}", m.Admin, m.Denom, m.Amount)
}
func (*MsgWithdraw) ProtoMessage() {}

// ValidateBasic performs stateless validation.
func (m *MsgWithdraw) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Admin); err != nil {
		return ErrInvalidAddress.Wrapf("invalid admin address: %v", err)
	}
	if err := sdk.ValidateDenom(m.Denom); err != nil {
		return ErrValidationFailed.Wrapf("invalid denom: %v", err)
	}
	if m.Amount.IsNil() || !m.Amount.IsPositive() {
		return ErrInvalidAmount.Wrap("amount must be positive")
	}
	return nil
}

// GetSigners returns the expected signers for MsgWithdraw.
func (m *MsgWithdraw) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(m.Admin)
	return []sdk.AccAddress{admin}
}
