package reservation

import "context"

// Repository defines data access for reservations. The transactional methods
// own their transaction boundary: every effect they describe commits together
// or not at all.
type Repository interface {
	// CreateReservation persists a new reservation and its lines atomically.
	// Stock is never touched here.
	CreateReservation(ctx context.Context, r *Reservation) error

	// GetReservationByID retrieves a reservation with its lines and ordered
	// status history. Returns ErrNotFound for an unknown id.
	GetReservationByID(ctx context.Context, id string) (*Reservation, error)

	// ListByBoutique returns all reservations for a boutique, optionally
	// filtered by status.
	ListByBoutique(ctx context.Context, boutiqueID string, status string) ([]*Reservation, error)

	// ListByClient returns all reservations placed by a client.
	ListByClient(ctx context.Context, clientID string) ([]*Reservation, error)

	// ListHistory returns the ordered status history of one reservation.
	ListHistory(ctx context.Context, reservationID string) ([]*StatusHistoryEntry, error)

	// ConfirmReservation commits the confirmation in one transaction:
	// re-checks and deducts shop and global stock for every line, updates the
	// reservation's status and confirmation fields, and appends the history
	// entry. Returns ErrInsufficientStock (nothing applied) when any line's
	// current stock no longer covers its quantity.
	ConfirmReservation(ctx context.Context, r *Reservation, entry *StatusHistoryEntry) error

	// CancelReservation commits the cancellation in one transaction: updates
	// the reservation's status and cancellation fields and appends the
	// history entry. Stock is never touched.
	CancelReservation(ctx context.Context, r *Reservation, entry *StatusHistoryEntry) error
}

// StockReader supplies current stock levels for deficit computation. The
// reservation module never writes stock outside ConfirmReservation.
type StockReader interface {
	// GetQuantities returns the item name plus its boutique-scoped and global
	// quantities.
	GetQuantities(ctx context.Context, itemID, boutiqueID string) (itemName string, shopQty, globalQty int, err error)
}

// BoutiqueDirectory resolves boutique display names for notifications.
type BoutiqueDirectory interface {
	GetBoutiqueName(ctx context.Context, id string) (string, error)
}

// ClientDirectory resolves client display names for notifications.
type ClientDirectory interface {
	GetClientName(ctx context.Context, id string) (string, error)
}

// Notifier receives deficit alerts after a reservation with shortfalls has
// been committed. Implementations must not assume they run inside the
// creation transaction; failures are logged, never propagated to the caller.
type Notifier interface {
	NotifyDeficit(ctx context.Context, alert DeficitAlert) error
}
