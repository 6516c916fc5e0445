package reservation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service defines the reservation workflow business logic.
type Service interface {
	// CreateReservation validates the request, computes per-line stock
	// deficits, and persists the reservation. Creation never fails because of
	// insufficient stock; shortfalls only select the PENDING_STOCK status and
	// raise a deficit alert after the transaction commits.
	CreateReservation(ctx context.Context, req CreateReservationRequest) (*Reservation, error)

	// GetReservation retrieves a reservation with lines and history.
	GetReservation(ctx context.Context, id string) (*Reservation, error)

	// ListBoutiqueReservations returns a boutique's reservations, optionally
	// filtered by status.
	ListBoutiqueReservations(ctx context.Context, boutiqueID string, status string) ([]*Reservation, error)

	// ListClientReservations returns a client's reservations.
	ListClientReservations(ctx context.Context, clientID string) ([]*Reservation, error)

	// GetHistory returns the ordered status history of a reservation.
	GetHistory(ctx context.Context, id string) ([]*StatusHistoryEntry, error)

	// ConfirmReservation finalizes a reservation: re-validates stock, deducts
	// it, transitions to CONFIRMED, and records the audit entry, all
	// atomically.
	ConfirmReservation(ctx context.Context, id string, req ConfirmRequest) (*Reservation, error)

	// CancelReservation transitions a reservation to CANCELLED and records
	// the audit entry. Stock is never restored: it was never deducted.
	CancelReservation(ctx context.Context, id string, req CancelRequest) (*Reservation, error)
}

type service struct {
	repo      Repository
	stock     StockReader
	boutiques BoutiqueDirectory
	clients   ClientDirectory
	notifier  Notifier
	log       *slog.Logger
}

// NewService creates a new reservation workflow service.
func NewService(repo Repository, stock StockReader, boutiques BoutiqueDirectory, clients ClientDirectory, notifier Notifier, log *slog.Logger) Service {
	return &service{
		repo:      repo,
		stock:     stock,
		boutiques: boutiques,
		clients:   clients,
		notifier:  notifier,
		log:       log,
	}
}

func (s *service) CreateReservation(ctx context.Context, req CreateReservationRequest) (*Reservation, error) {
	if len(req.Lines) == 0 {
		return nil, fmt.Errorf("%w: reservation must contain at least one line", ErrInvalidInput)
	}
	boutiqueID, err := uuid.Parse(req.BoutiqueID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid boutique_id", ErrInvalidInput)
	}
	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid client_id", ErrInvalidInput)
	}
	createdBy, err := uuid.Parse(req.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid created_by", ErrInvalidInput)
	}
	if req.PickupDate.Before(startOfToday()) {
		return nil, fmt.Errorf("%w: pickup date cannot be in the past", ErrInvalidInput)
	}

	res := &Reservation{
		ID:                uuid.New(),
		BoutiqueID:        boutiqueID,
		ClientID:          clientID,
		ReservationNumber: generateReservationNumber(),
		Currency:          "EUR",
		PickupDate:        req.PickupDate,
		CreatedBy:         createdBy,
	}
	if err := res.SetAmounts(req.TotalCents, req.DepositCents, req.RemainingCents); err != nil {
		return nil, err
	}

	// Read-only deficit pass over current stock. A slightly stale read only
	// affects the advisory PENDING_STOCK classification; confirmation
	// re-validates under locks.
	var deficits []*StockDeficit
	for _, lr := range req.Lines {
		if lr.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be > 0 for item %s", ErrInvalidInput, lr.ItemID)
		}
		if lr.DepositCents < 0 {
			return nil, fmt.Errorf("%w: line deposit cannot be negative", ErrInvalidInput)
		}
		itemID, err := uuid.Parse(lr.ItemID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid item_id %q", ErrInvalidInput, lr.ItemID)
		}

		name, shopQty, _, err := s.stock.GetQuantities(ctx, lr.ItemID, req.BoutiqueID)
		if err != nil {
			return nil, fmt.Errorf("%w: item %s not available in this boutique", ErrInvalidInput, lr.ItemID)
		}
		deficit, err := ComputeDeficit(name, lr.Quantity, shopQty, req.BoutiqueID)
		if err != nil {
			return nil, err
		}
		deficits = append(deficits, deficit)

		res.Lines = append(res.Lines, &Line{
			ID:            uuid.New(),
			ReservationID: res.ID,
			ItemID:        itemID,
			Quantity:      lr.Quantity,
			DepositCents:  lr.DepositCents,
		})
	}

	res.Status = StatusPending
	for _, d := range deficits {
		if d.HasDeficit() {
			res.Status = StatusPendingStock
			break
		}
	}

	if err := s.repo.CreateReservation(ctx, res); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	if res.Status == StatusPendingStock {
		s.notifyDeficits(ctx, res, deficits)
	}
	return res, nil
}

// notifyDeficits raises the post-commit deficit alert. Notification failures
// are logged and never surfaced: the reservation is already committed.
func (s *service) notifyDeficits(ctx context.Context, res *Reservation, deficits []*StockDeficit) {
	alert := DeficitAlert{
		ReservationID:     res.ID,
		ReservationNumber: res.ReservationNumber,
		BoutiqueID:        res.BoutiqueID,
		ClientID:          res.ClientID,
		TotalCents:        res.TotalCents,
		DepositCents:      res.DepositCents,
		RemainingCents:    res.RemainingCents,
		PickupDate:        res.PickupDate,
		CreatedBy:         res.CreatedBy,
	}
	for _, d := range deficits {
		if d.HasDeficit() {
			alert.Deficits = append(alert.Deficits, d.Report())
		}
	}

	if name, err := s.boutiques.GetBoutiqueName(ctx, res.BoutiqueID.String()); err == nil {
		alert.BoutiqueName = name
	}
	if name, err := s.clients.GetClientName(ctx, res.ClientID.String()); err == nil {
		alert.ClientName = name
	}

	if err := s.notifier.NotifyDeficit(ctx, alert); err != nil {
		s.log.Error("deficit alert delivery failed",
			"reservation_id", res.ID.String(), "error", err)
	}
}

func (s *service) GetReservation(ctx context.Context, id string) (*Reservation, error) {
	return s.repo.GetReservationByID(ctx, id)
}

func (s *service) ListBoutiqueReservations(ctx context.Context, boutiqueID string, status string) ([]*Reservation, error) {
	if status != "" {
		parsed, err := ParseStatus(status)
		if err != nil {
			return nil, err
		}
		status = string(parsed)
	}
	return s.repo.ListByBoutique(ctx, boutiqueID, status)
}

func (s *service) ListClientReservations(ctx context.Context, clientID string) ([]*Reservation, error) {
	return s.repo.ListByClient(ctx, clientID)
}

func (s *service) GetHistory(ctx context.Context, id string) ([]*StatusHistoryEntry, error) {
	return s.repo.ListHistory(ctx, id)
}

func (s *service) ConfirmReservation(ctx context.Context, id string, req ConfirmRequest) (*Reservation, error) {
	actor, err := uuid.Parse(req.ActorID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid actor_id", ErrInvalidInput)
	}

	res, err := s.repo.GetReservationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !res.Status.IsConfirmable() {
		return nil, fmt.Errorf("%w: cannot confirm reservation in status %s",
			ErrInvalidTransition, strings.ToLower(string(res.Status)))
	}

	oldStatus := res.Status
	now := time.Now().UTC()
	res.Status = StatusConfirmed
	res.ConfirmedAt = &now
	res.ConfirmedBy = &actor

	entry := newHistoryEntry(res.ID, oldStatus, StatusConfirmed, actor, req.Note, now)
	if err := s.repo.ConfirmReservation(ctx, res, entry); err != nil {
		// Undo the in-memory transition; nothing was applied.
		res.Status = oldStatus
		res.ConfirmedAt = nil
		res.ConfirmedBy = nil
		if errors.Is(err, ErrInsufficientStock) || errors.Is(err, ErrInvalidTransition) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	res.History = append(res.History, entry)
	s.log.Info("reservation confirmed",
		"reservation_id", res.ID.String(), "confirmed_by", actor.String())
	return res, nil
}

func (s *service) CancelReservation(ctx context.Context, id string, req CancelRequest) (*Reservation, error) {
	actor, err := uuid.Parse(req.ActorID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid actor_id", ErrInvalidInput)
	}

	res, err := s.repo.GetReservationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !res.Status.IsCancellable() {
		return nil, fmt.Errorf("%w: cannot cancel reservation in status %s",
			ErrInvalidTransition, strings.ToLower(string(res.Status)))
	}

	oldStatus := res.Status
	now := time.Now().UTC()
	res.Status = StatusCancelled
	res.CancelledAt = &now
	res.CancelledBy = &actor
	res.CancellationReason = req.Reason

	entry := newHistoryEntry(res.ID, oldStatus, StatusCancelled, actor, req.Reason, now)
	if err := s.repo.CancelReservation(ctx, res, entry); err != nil {
		res.Status = oldStatus
		res.CancelledAt = nil
		res.CancelledBy = nil
		res.CancellationReason = ""
		if errors.Is(err, ErrInvalidTransition) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	res.History = append(res.History, entry)
	s.log.Info("reservation cancelled",
		"reservation_id", res.ID.String(), "cancelled_by", actor.String())
	return res, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func newHistoryEntry(reservationID uuid.UUID, from, to Status, actor uuid.UUID, reason string, at time.Time) *StatusHistoryEntry {
	return &StatusHistoryEntry{
		ID:            uuid.New(),
		ReservationID: reservationID,
		OldStatus:     from,
		NewStatus:     to,
		ChangedBy:     actor,
		Reason:        reason,
		ChangedAt:     at,
	}
}

// generateReservationNumber creates a human-readable number: RSV-YYYYMMDD-XXXX
func generateReservationNumber() string {
	date := time.Now().UTC().Format("20060102")
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("RSV-%s-%s", date, suffix)
}

func startOfToday() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
