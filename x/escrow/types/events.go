package types

// Event types for the escrow module.
// All event types use lowercase with underscore separator.
const (
	EventTypeEscrowInitialized = "escrow_initialized"
	EventTypeTokenPurchase     = "token_purchase"
	EventTypePriceUpdated      = "price_updated"
	EventTypeTokensWithdrawn   = "tokens_withdrawn"
)

// Event attribute keys for the escrow module
const (
	AttributeKeyAdmin     = "admin"
	AttributeKeyBuyer     = "buyer"
	AttributeKeyDenom     = "denom"
	AttributeKeyAmount    = "amount"
	AttributeKeyPrice     = "price"
	AttributeKeyOldPrice  = "old_price"
	AttributeKeyNewPrice  = "new_price"
	AttributeKeyTimestamp = "timestamp"
)
