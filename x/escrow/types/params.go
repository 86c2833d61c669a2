package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"gopkg.in/yaml.v2"
)

// Params holds the escrow module parameters.
type Params struct {
	// PaymentDenom is the denom buyers pay in.
	PaymentDenom string `json:"payment_denom"`

	// PriceScale divides amount*price in the purchase formula. 100
	// gives prices two implied decimal places.
	PriceScale math.Int `json:"price_scale"`
}

// DefaultParams returns default escrow parameters.
func DefaultParams() Params {
	return Params{
		PaymentDenom: "uclim",
		PriceScale:   math.NewInt(100),
	}
}

// Validate performs basic validation of the parameter set.
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.PaymentDenom); err != nil {
		return fmt.Errorf("invalid payment denom: %w", err)
	}
	if p.PriceScale.IsNil() || !p.PriceScale.IsPositive() {
		return fmt.Errorf("price scale must be positive")
	}
	return nil
}

// String implements the Stringer interface.
func (p Params) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}
