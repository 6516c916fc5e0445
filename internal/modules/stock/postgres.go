package stock

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL stock repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateItem(ctx context.Context, item *Item) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO items (id, name, description, price_cents, currency, global_quantity, is_active)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		item.ID, item.Name, item.Description, item.PriceCents,
		item.Currency, item.GlobalQuantity, item.IsActive)
	return err
}

func (r *postgresRepo) GetItemByID(ctx context.Context, id string) (*Item, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	item := &Item{}
	err = r.db.QueryRowContext(ctx, `
		SELECT id, name, description, price_cents, currency, global_quantity, is_active, created_at, updated_at
		FROM items WHERE id=$1`, uid).
		Scan(&item.ID, &item.Name, &item.Description, &item.PriceCents,
			&item.Currency, &item.GlobalQuantity, &item.IsActive,
			&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *postgresRepo) ListItems(ctx context.Context) ([]*Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, price_cents, currency, global_quantity, is_active, created_at, updated_at
		FROM items WHERE is_active = TRUE ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Item
	for rows.Next() {
		item := &Item{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.PriceCents,
			&item.Currency, &item.GlobalQuantity, &item.IsActive,
			&item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *postgresRepo) ListBoutiqueStock(ctx context.Context, boutiqueID string) ([]*BoutiqueStock, error) {
	uid, err := uuid.Parse(boutiqueID)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, boutique_id, item_id, quantity, created_at, updated_at
		FROM boutique_stocks WHERE boutique_id=$1 ORDER BY created_at ASC`, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var stocks []*BoutiqueStock
	for rows.Next() {
		s := &BoutiqueStock{}
		if err := rows.Scan(&s.ID, &s.BoutiqueID, &s.ItemID, &s.Quantity,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		stocks = append(stocks, s)
	}
	return stocks, rows.Err()
}

func (r *postgresRepo) GetQuantities(ctx context.Context, itemID, boutiqueID string) (string, int, int, error) {
	iid, err := uuid.Parse(itemID)
	if err != nil {
		return "", 0, 0, err
	}
	bid, err := uuid.Parse(boutiqueID)
	if err != nil {
		return "", 0, 0, err
	}

	var name string
	var globalQty int
	err = r.db.QueryRowContext(ctx,
		`SELECT name, global_quantity FROM items WHERE id=$1`, iid).
		Scan(&name, &globalQty)
	if err != nil {
		return "", 0, 0, fmt.Errorf("item %s: %w", itemID, err)
	}

	var shopQty int
	err = r.db.QueryRowContext(ctx,
		`SELECT quantity FROM boutique_stocks WHERE item_id=$1 AND boutique_id=$2`, iid, bid).
		Scan(&shopQty)
	if errors.Is(err, sql.ErrNoRows) {
		shopQty = 0
	} else if err != nil {
		return "", 0, 0, err
	}

	return name, shopQty, globalQty, nil
}

// Restock raises both stock levels together so the shop-never-exceeds-global
// invariant holds at every commit point.
func (r *postgresRepo) Restock(ctx context.Context, itemID, boutiqueID string, qty int) error {
	iid, err := uuid.Parse(itemID)
	if err != nil {
		return err
	}
	bid, err := uuid.Parse(boutiqueID)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	cmd, err := tx.ExecContext(ctx, `
		UPDATE items SET global_quantity = global_quantity + $1, updated_at = NOW()
		WHERE id=$2`, qty, iid)
	if err != nil {
		return fmt.Errorf("restock item: %w", err)
	}
	if n, _ := cmd.RowsAffected(); n == 0 {
		return fmt.Errorf("item %s not found", itemID)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO boutique_stocks (id, boutique_id, item_id, quantity)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (boutique_id, item_id)
		DO UPDATE SET quantity = boutique_stocks.quantity + $4, updated_at = NOW()`,
		uuid.New(), bid, iid, qty)
	if err != nil {
		return fmt.Errorf("restock boutique: %w", err)
	}

	return tx.Commit()
}
