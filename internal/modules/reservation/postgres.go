package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL reservation repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// CreateReservation inserts the reservation and all its lines inside a single
// transaction.
func (r *postgresRepo) CreateReservation(ctx context.Context, res *Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO reservations
		  (id, boutique_id, client_id, reservation_number, status,
		   total_cents, deposit_cents, remaining_cents, currency,
		   pickup_date, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		res.ID, res.BoutiqueID, res.ClientID, res.ReservationNumber, res.Status,
		res.TotalCents, res.DepositCents, res.RemainingCents, res.Currency,
		res.PickupDate, res.CreatedBy)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}

	for _, line := range res.Lines {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO reservation_lines (id, reservation_id, item_id, quantity, deposit_cents)
			VALUES ($1,$2,$3,$4,$5)`,
			line.ID, res.ID, line.ItemID, line.Quantity, line.DepositCents)
		if err != nil {
			return fmt.Errorf("insert reservation_line: %w", err)
		}
	}

	return tx.Commit()
}

func (r *postgresRepo) GetReservationByID(ctx context.Context, id string) (*Reservation, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	res, err := scanReservation(r.db.QueryRowContext(ctx, `
		SELECT id,boutique_id,client_id,reservation_number,status,
		       total_cents,deposit_cents,remaining_cents,currency,pickup_date,created_by,
		       confirmed_at,confirmed_by,cancelled_at,cancelled_by,cancellation_reason,
		       created_at,updated_at
		FROM reservations WHERE id=$1`, uid))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	if res.Lines, err = r.listLines(ctx, res.ID); err != nil {
		return nil, err
	}
	if res.History, err = r.listHistory(ctx, res.ID); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *postgresRepo) ListByBoutique(ctx context.Context, boutiqueID string, status string) ([]*Reservation, error) {
	query := `SELECT id,boutique_id,client_id,reservation_number,status,
	                 total_cents,deposit_cents,remaining_cents,currency,pickup_date,created_by,
	                 confirmed_at,confirmed_by,cancelled_at,cancelled_by,cancellation_reason,
	                 created_at,updated_at
	          FROM reservations WHERE boutique_id=$1`
	args := []interface{}{boutiqueID}
	if status != "" {
		query += ` AND status=$2`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`
	return r.queryReservations(ctx, query, args...)
}

func (r *postgresRepo) ListByClient(ctx context.Context, clientID string) ([]*Reservation, error) {
	return r.queryReservations(ctx, `
		SELECT id,boutique_id,client_id,reservation_number,status,
		       total_cents,deposit_cents,remaining_cents,currency,pickup_date,created_by,
		       confirmed_at,confirmed_by,cancelled_at,cancelled_by,cancellation_reason,
		       created_at,updated_at
		FROM reservations WHERE client_id=$1 ORDER BY created_at DESC`, clientID)
}

func (r *postgresRepo) ListHistory(ctx context.Context, reservationID string) ([]*StatusHistoryEntry, error) {
	uid, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, reservationID)
	}
	return r.listHistory(ctx, uid)
}

// ConfirmReservation performs the read-check-deduct sequence under row locks
// so that concurrent confirmations competing for the same item serialize.
// Lines are processed in insertion order, which keeps lock acquisition order
// stable across transactions.
func (r *postgresRepo) ConfirmReservation(ctx context.Context, res *Reservation, entry *StatusHistoryEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, line := range res.Lines {
		var shopQty int
		err = tx.QueryRowContext(ctx, `
			SELECT quantity FROM boutique_stocks
			WHERE item_id=$1 AND boutique_id=$2
			FOR UPDATE`,
			line.ItemID, res.BoutiqueID).Scan(&shopQty)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInsufficientStock
		}
		if err != nil {
			return fmt.Errorf("lock boutique stock: %w", err)
		}
		if shopQty < line.Quantity {
			return ErrInsufficientStock
		}

		// The quantity guards are redundant under the row lock but keep the
		// non-negative invariant unconditional.
		cmd, err := tx.ExecContext(ctx, `
			UPDATE boutique_stocks SET quantity = quantity - $1, updated_at = NOW()
			WHERE item_id=$2 AND boutique_id=$3 AND quantity >= $1`,
			line.Quantity, line.ItemID, res.BoutiqueID)
		if err != nil {
			return fmt.Errorf("deduct boutique stock: %w", err)
		}
		if n, _ := cmd.RowsAffected(); n == 0 {
			return ErrInsufficientStock
		}

		cmd, err = tx.ExecContext(ctx, `
			UPDATE items SET global_quantity = global_quantity - $1, updated_at = NOW()
			WHERE id=$2 AND global_quantity >= $1`,
			line.Quantity, line.ItemID)
		if err != nil {
			return fmt.Errorf("deduct global stock: %w", err)
		}
		if n, _ := cmd.RowsAffected(); n == 0 {
			return ErrInsufficientStock
		}
	}

	if err := r.updateStatusTx(ctx, tx, res, entry, `
		UPDATE reservations
		SET status=$1, confirmed_at=$2, confirmed_by=$3, updated_at=NOW()
		WHERE id=$4 AND status=$5`,
		res.Status, res.ConfirmedAt, res.ConfirmedBy, res.ID, entry.OldStatus); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *postgresRepo) CancelReservation(ctx context.Context, res *Reservation, entry *StatusHistoryEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := r.updateStatusTx(ctx, tx, res, entry, `
		UPDATE reservations
		SET status=$1, cancelled_at=$2, cancelled_by=$3, cancellation_reason=$4, updated_at=NOW()
		WHERE id=$5 AND status=$6`,
		res.Status, res.CancelledAt, res.CancelledBy, res.CancellationReason, res.ID, entry.OldStatus); err != nil {
		return err
	}

	return tx.Commit()
}

// updateStatusTx applies the guarded status update and appends the history
// entry in the caller's transaction. The WHERE status guard makes a stale
// in-memory aggregate lose against a concurrent transition.
func (r *postgresRepo) updateStatusTx(ctx context.Context, tx *sql.Tx, res *Reservation, entry *StatusHistoryEntry, query string, args ...interface{}) error {
	cmd, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update reservation status: %w", err)
	}
	if n, _ := cmd.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: reservation %s is no longer %s", ErrInvalidTransition, res.ID, entry.OldStatus)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO reservation_status_history
		  (id, reservation_id, old_status, new_status, changed_by, reason, changed_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		entry.ID, entry.ReservationID, entry.OldStatus, entry.NewStatus,
		entry.ChangedBy, entry.Reason, entry.ChangedAt)
	if err != nil {
		return fmt.Errorf("insert status history: %w", err)
	}
	return nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*Reservation, error) {
	res := &Reservation{}
	var confirmedAt, cancelledAt sql.NullTime
	var confirmedBy, cancelledBy sql.NullString
	var reason sql.NullString
	err := row.Scan(
		&res.ID, &res.BoutiqueID, &res.ClientID, &res.ReservationNumber, &res.Status,
		&res.TotalCents, &res.DepositCents, &res.RemainingCents, &res.Currency,
		&res.PickupDate, &res.CreatedBy,
		&confirmedAt, &confirmedBy, &cancelledAt, &cancelledBy, &reason,
		&res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if confirmedAt.Valid {
		res.ConfirmedAt = &confirmedAt.Time
	}
	if confirmedBy.Valid {
		uid, _ := uuid.Parse(confirmedBy.String)
		res.ConfirmedBy = &uid
	}
	if cancelledAt.Valid {
		res.CancelledAt = &cancelledAt.Time
	}
	if cancelledBy.Valid {
		uid, _ := uuid.Parse(cancelledBy.String)
		res.CancelledBy = &uid
	}
	if reason.Valid {
		res.CancellationReason = reason.String
	}
	return res, nil
}

func (r *postgresRepo) queryReservations(ctx context.Context, query string, args ...interface{}) ([]*Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var reservations []*Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (r *postgresRepo) listLines(ctx context.Context, reservationID uuid.UUID) ([]*Line, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, reservation_id, item_id, quantity, deposit_cents, created_at
		FROM reservation_lines WHERE reservation_id=$1 ORDER BY created_at ASC`, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var lines []*Line
	for rows.Next() {
		line := &Line{}
		if err := rows.Scan(&line.ID, &line.ReservationID, &line.ItemID,
			&line.Quantity, &line.DepositCents, &line.CreatedAt); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *postgresRepo) listHistory(ctx context.Context, reservationID uuid.UUID) ([]*StatusHistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, reservation_id, old_status, new_status, changed_by, reason, changed_at
		FROM reservation_status_history WHERE reservation_id=$1 ORDER BY changed_at ASC`, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var history []*StatusHistoryEntry
	for rows.Next() {
		e := &StatusHistoryEntry{}
		var reason sql.NullString
		if err := rows.Scan(&e.ID, &e.ReservationID, &e.OldStatus, &e.NewStatus,
			&e.ChangedBy, &reason, &e.ChangedAt); err != nil {
			return nil, err
		}
		if reason.Valid {
			e.Reason = reason.String
		}
		history = append(history, e)
	}
	return history, rows.Err()
}
