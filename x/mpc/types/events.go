package types

// Event types for the MPC module.
// All event types use lowercase with underscore separator.
const (
	// Definition lifecycle
	EventTypeCompDefInitialized = "comp_def_initialized"

	// Resolution events, one per computation kind. Only the disclosed
	// fields for the kind are attached; private inputs never appear.
	EventTypeEmissionsCertificateInitialized = "emissions_certificate_initialized"
	EventTypeEmissionsUpdated                = "emissions_updated"
	EventTypeThresholdProved                 = "threshold_proved"
	EventTypeSemaReportInitialized           = "sema_report_initialized"
	EventTypeSemaReportUpdated               = "sema_report_updated"
	EventTypeSemaComplianceProved            = "sema_compliance_proved"
	EventTypeOffsetPercentageCalculated      = "offset_percentage_calculated"
	EventTypeAdditionComputed                = "addition_computed"

	// Security events
	EventTypeCallbackRejected = "callback_rejected"
)

// Event attribute keys for the MPC module
const (
	AttributeKeyOffset         = "offset"
	AttributeKeyKind           = "kind"
	AttributeKeyCompDefID      = "comp_def_id"
	AttributeKeyRequester      = "requester"
	AttributeKeyExecutor       = "executor"
	AttributeKeyMeetsThreshold = "meets_threshold"
	AttributeKeyValue          = "value"
	AttributeKeyTimestamp      = "timestamp"
	AttributeKeyReason         = "reason"
)
