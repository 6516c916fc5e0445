package reservation

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Reservation represents a customer's hold on boutique items backed by a
// partial deposit, awaiting confirmation or cancellation.
type Reservation struct {
	ID                 uuid.UUID             `json:"id"`
	BoutiqueID         uuid.UUID             `json:"boutique_id"`
	ClientID           uuid.UUID             `json:"client_id"`
	ReservationNumber  string                `json:"reservation_number"`
	Status             Status                `json:"status"`
	TotalCents         int64                 `json:"total_cents"`
	DepositCents       int64                 `json:"deposit_cents"`
	RemainingCents     int64                 `json:"remaining_cents"`
	Currency           string                `json:"currency"`
	PickupDate         time.Time             `json:"pickup_date"`
	CreatedBy          uuid.UUID             `json:"created_by"`
	ConfirmedAt        *time.Time            `json:"confirmed_at,omitempty"`
	ConfirmedBy        *uuid.UUID            `json:"confirmed_by,omitempty"`
	CancelledAt        *time.Time            `json:"cancelled_at,omitempty"`
	CancelledBy        *uuid.UUID            `json:"cancelled_by,omitempty"`
	CancellationReason string                `json:"cancellation_reason,omitempty"`
	Lines              []*Line               `json:"lines,omitempty"`
	History            []*StatusHistoryEntry `json:"history,omitempty"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

// SetAmounts assigns the monetary breakdown, rejecting any combination that
// violates total == deposit + remaining or carries a negative amount.
func (r *Reservation) SetAmounts(total, deposit, remaining int64) error {
	if total < 0 || deposit < 0 || remaining < 0 {
		return fmt.Errorf("%w: amounts cannot be negative", ErrInconsistentAmounts)
	}
	if total != deposit+remaining {
		return fmt.Errorf("%w: total %d != deposit %d + remaining %d",
			ErrInconsistentAmounts, total, deposit, remaining)
	}
	r.TotalCents = total
	r.DepositCents = deposit
	r.RemainingCents = remaining
	return nil
}

// IsPending reports whether the reservation still awaits confirmation or
// cancellation.
func (r *Reservation) IsPending() bool {
	return r.Status == StatusPending || r.Status == StatusPendingStock
}

// Line is a single reserved item within a reservation. Created at reservation
// time and immutable afterwards.
type Line struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	ItemID        uuid.UUID `json:"item_id"`
	Quantity      int       `json:"quantity"`
	DepositCents  int64     `json:"deposit_cents"` // share of the deposit allocated to this line
	CreatedAt     time.Time `json:"created_at"`
}

// StatusHistoryEntry is one append-only audit record of a status transition.
// Entries are never updated or deleted; their order for one reservation is
// creation order.
type StatusHistoryEntry struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	OldStatus     Status    `json:"old_status"`
	NewStatus     Status    `json:"new_status"`
	ChangedBy     uuid.UUID `json:"changed_by"`
	Reason        string    `json:"reason,omitempty"`
	ChangedAt     time.Time `json:"changed_at"`
}

// LineRequest describes one requested item during reservation creation.
type LineRequest struct {
	ItemID       string `json:"item_id"`
	Quantity     int    `json:"quantity"`
	DepositCents int64  `json:"deposit_cents,omitempty"`
}

// CreateReservationRequest is the payload for creating a new reservation.
type CreateReservationRequest struct {
	BoutiqueID     string        `json:"boutique_id"`
	ClientID       string        `json:"client_id"`
	Lines          []LineRequest `json:"lines"`
	PickupDate     time.Time     `json:"pickup_date"`
	TotalCents     int64         `json:"total_cents"`
	DepositCents   int64         `json:"deposit_cents"`
	RemainingCents int64         `json:"remaining_cents"`
	CreatedBy      string        `json:"created_by"`
}

// ConfirmRequest is the payload for confirming a reservation.
type ConfirmRequest struct {
	ActorID string `json:"actor_id"`
	Note    string `json:"note,omitempty"`
}

// CancelRequest is the payload for cancelling a reservation.
type CancelRequest struct {
	ActorID string `json:"actor_id"`
	Reason  string `json:"reason,omitempty"`
}

// DeficitAlert is the payload handed to the notifier when a reservation is
// created with at least one stock shortfall.
type DeficitAlert struct {
	ReservationID     uuid.UUID       `json:"reservation_id"`
	ReservationNumber string          `json:"reservation_number"`
	BoutiqueID        uuid.UUID       `json:"boutique_id"`
	BoutiqueName      string          `json:"boutique_name"`
	ClientID          uuid.UUID       `json:"client_id"`
	ClientName        string          `json:"client_name"`
	TotalCents        int64           `json:"total_cents"`
	DepositCents      int64           `json:"deposit_cents"`
	RemainingCents    int64           `json:"remaining_cents"`
	PickupDate        time.Time       `json:"pickup_date"`
	CreatedBy         uuid.UUID       `json:"created_by"`
	Deficits          []DeficitReport `json:"deficits"`
}
