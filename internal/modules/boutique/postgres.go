package boutique

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL boutique repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateBoutique(ctx context.Context, b *Boutique) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO boutiques (id, name, address, city, country, phone, email, is_active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		b.ID, b.Name, b.Address, b.City, b.Country, b.Phone, b.Email, b.IsActive)
	return err
}

func (r *postgresRepo) GetBoutiqueByID(ctx context.Context, id string) (*Boutique, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	b := &Boutique{}
	err = r.db.QueryRowContext(ctx, `
		SELECT id, name, address, city, country, phone, email, is_active, created_at, updated_at
		FROM boutiques WHERE id=$1`, uid).
		Scan(&b.ID, &b.Name, &b.Address, &b.City, &b.Country,
			&b.Phone, &b.Email, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *postgresRepo) ListBoutiques(ctx context.Context) ([]*Boutique, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, address, city, country, phone, email, is_active, created_at, updated_at
		FROM boutiques WHERE is_active = TRUE ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var boutiques []*Boutique
	for rows.Next() {
		b := &Boutique{}
		if err := rows.Scan(&b.ID, &b.Name, &b.Address, &b.City, &b.Country,
			&b.Phone, &b.Email, &b.IsActive, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		boutiques = append(boutiques, b)
	}
	return boutiques, rows.Err()
}
