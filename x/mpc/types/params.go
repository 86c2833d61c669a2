package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"gopkg.in/yaml.v2"
)

// Params holds the MPC module parameters.
type Params struct {
	// QueueFee is the flat fee charged per queued computation, paid to
	// the fee collector. The executor cluster's own pricing is external.
	QueueFee math.Int `json:"queue_fee"`

	// FeeDenom is the denom the queue fee is charged in.
	FeeDenom string `json:"fee_denom"`

	// ExecutorAuthority is the only identity allowed to invoke the
	// callback path. Callbacks from any other origin are rejected
	// before touching state.
	ExecutorAuthority string `json:"executor_authority"`
}

// DefaultParams returns default MPC parameters.
func DefaultParams() Params {
	return Params{
		QueueFee:          math.NewInt(25000),
		FeeDenom:          "uclim",
		ExecutorAuthority: sdk.AccAddress(DeriveExecutorAddress()).String(),
	}
}

// Validate performs basic validation of the parameter set.
func (p Params) Validate() error {
	if p.QueueFee.IsNil() || p.QueueFee.IsNegative() {
		return fmt.Errorf("queue fee must be non-negative")
	}
	if err := sdk.ValidateDenom(p.FeeDenom); err != nil {
		return fmt.Errorf("invalid fee denom: %w", err)
	}
	if _, err := sdk.AccAddressFromBech32(p.ExecutorAuthority); err != nil {
		return fmt.Errorf("invalid executor authority: %w", err)
	}
	return nil
}

// String implements the Stringer interface.
func (p Params) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}
