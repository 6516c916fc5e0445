package reservation

import (
	"fmt"
	"strings"
)

// Status represents the lifecycle state of a reservation.
type Status string

const (
	StatusPending      Status = "PENDING"
	StatusPendingStock Status = "PENDING_STOCK"
	StatusConfirmed    Status = "CONFIRMED"
	StatusCancelled    Status = "CANCELLED"
)

// capability describes what a reservation in a given status may do.
type capability struct {
	confirmable bool
	cancellable bool
	stockIssue  bool
	autoReady   bool // eligible for PENDING_STOCK -> PENDING after restocking
}

var capabilities = map[Status]capability{
	StatusPending:      {confirmable: true, cancellable: true},
	StatusPendingStock: {confirmable: true, cancellable: true, stockIssue: true, autoReady: true},
	StatusConfirmed:    {},
	StatusCancelled:    {},
}

// validTransitions defines the allowed status state machine.
// CONFIRMED and CANCELLED are terminal: no outgoing edges.
var validTransitions = map[Status][]Status{
	StatusPending:      {StatusConfirmed, StatusCancelled},
	StatusPendingStock: {StatusConfirmed, StatusCancelled, StatusPending},
	StatusConfirmed:    {},
	StatusCancelled:    {},
}

// IsConfirmable reports whether a reservation in this status can be confirmed.
func (s Status) IsConfirmable() bool { return capabilities[s].confirmable }

// IsCancellable reports whether a reservation in this status can be cancelled.
func (s Status) IsCancellable() bool { return capabilities[s].cancellable }

// HasStockIssue reports whether this status signals a stock shortfall.
func (s Status) HasStockIssue() bool { return capabilities[s].stockIssue }

// CanTransitionToReady reports whether restocking may move this status back
// to PENDING.
func (s Status) CanTransitionToReady() bool { return capabilities[s].autoReady }

// IsValidTransition reports whether the state machine allows moving from one
// status to another.
func IsValidTransition(from, to Status) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ParseStatus converts a status token to a Status, case-insensitively.
func ParseStatus(token string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(token)))
	if _, ok := capabilities[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, token)
	}
	return s, nil
}
