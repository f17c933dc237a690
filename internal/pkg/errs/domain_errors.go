package errs

// Domain-specific sentinel errors shared by the usecase and handler layers
var (
	// Idempotency errors
	ErrIdempotencyKeyRequired = New("idempotency key required")
	ErrIdempotencyKeyInvalid  = New("idempotency key invalid")
	ErrIdempotencyInProgress  = New("idempotency in progress")
	ErrIdempotencyKeyReused   = New("idempotency key reused with different payload")
	ErrIdempotencyCheckFailed = New("idempotency check failed")

	// Case errors
	ErrCaseNotFound               = New("rma case not found")
	ErrInvalidTransition          = New("invalid transition")
	ErrMissingRequiredFields      = New("missing required fields")
	ErrCaseConcurrentModification = New("rma case modified concurrently")
	ErrWarrantyNotesRequired      = New("warranty decision notes required")

	// Webhook errors
	ErrWebhookSignatureInvalid = New("webhook signature invalid")

	// Outbound errors
	ErrOutboundCallFailed = New("outbound platform call failed")

	// Validation errors
	ErrDomainValidation = New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
