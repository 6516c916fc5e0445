package client

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL client repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateClient(ctx context.Context, c *Client) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO clients (id, first_name, last_name, email, phone)
		VALUES ($1,$2,$3,$4,$5)`,
		c.ID, c.FirstName, c.LastName, c.Email, c.Phone)
	return err
}

func (r *postgresRepo) GetClientByID(ctx context.Context, id string) (*Client, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	c := &Client{}
	err = r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email, phone, created_at, updated_at
		FROM clients WHERE id=$1`, uid).
		Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
			&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *postgresRepo) ListClients(ctx context.Context) ([]*Client, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, email, phone, created_at, updated_at
		FROM clients ORDER BY last_name ASC, first_name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var clients []*Client
	for rows.Next() {
		c := &Client{}
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}
