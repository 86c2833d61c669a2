package types

import (
	"fmt"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Escrow is the sale ledger for one inventory denom. The derived
// escrow address holds the tokens for sale; the ledger tracks pricing
// and cumulative sale statistics. TotalSold and TotalRevenue only ever
// grow.
type Escrow struct {
	Admin         string    `json:"admin"`
	Denom         string    `json:"denom"`
	EscrowAddress string    `json:"escrow_address"`
	PricePerToken math.Int  `json:"price_per_token"`
	TotalSold     math.Int  `json:"total_sold"`
	TotalRevenue  math.Int  `json:"total_revenue"`
	CreatedAt     time.Time `json:"created_at"`
}

// Validate performs structural validation of an escrow ledger record.
func (e Escrow) Validate() error {
	if _, err := sdk.AccAddressFromBech32(e.Admin); err != nil {
		return fmt.Errorf("invalid admin address: %w", err)
	}
	if err := sdk.ValidateDenom(e.Denom); err != nil {
		return fmt.Errorf("invalid denom: %w", err)
	}
	if e.EscrowAddress != EscrowAddress(e.Denom).String() {
		return fmt.Errorf("escrow address %s does not match derivation for denom %s", e.EscrowAddress, e.Denom)
	}
	if e.PricePerToken.IsNil() || e.PricePerToken.IsNegative() {
		return fmt.Errorf("price per token must be non-negative")
	}
	if e.TotalSold.IsNil() || e.TotalSold.IsNegative() {
		return fmt.Errorf("total sold must be non-negative")
	}
	if e.TotalRevenue.IsNil() || e.TotalRevenue.IsNegative() {
		return fmt.Errorf("total revenue must be non-negative")
	}
	return nil
}
