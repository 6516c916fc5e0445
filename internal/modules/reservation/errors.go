package reservation

import "errors"

// Sentinel errors returned by the reservation workflow. Handlers and callers
// branch on these with errors.Is; messages wrapped around them carry the
// human-readable detail.
var (
	// ErrInvalidInput marks malformed deficit or request inputs.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInconsistentAmounts marks a monetary breakdown where total does not
	// equal deposit plus remaining, or an amount is negative.
	ErrInconsistentAmounts = errors.New("inconsistent amounts")

	// ErrInvalidStatus marks an unrecognized status token.
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrNotFound marks an unknown reservation id.
	ErrNotFound = errors.New("reservation not found")

	// ErrInvalidTransition marks a state machine violation.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInsufficientStock marks a confirmation rejected because current stock
	// no longer covers the requested quantities. It is a legitimate business
	// outcome, retryable after restocking.
	ErrInsufficientStock = errors.New("insufficient stock for one or more items")

	// ErrStorage marks an underlying transactional failure; all partial
	// effects have been rolled back.
	ErrStorage = errors.New("storage failure")
)
