package client

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

type Repository interface {
	List(ctx context.Context) ([]Client, error)
	ListBySeller(ctx context.Context, sellerID string) ([]Client, error)
	GetByID(ctx context.Context, id string) (Client, error)
	FindByEmail(ctx context.Context, email string) (Client, error)
	Create(ctx context.Context, input ClientInput, sellerID string) (Client, error)
	Update(ctx context.Context, id string, input ClientInput) (Client, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const clientColumns = "id, name, surname, company, email, phone, seller_id, created_at"

func (r *repository) List(ctx context.Context) ([]Client, error) {
	return r.query(ctx, "SELECT "+clientColumns+" FROM clients ORDER BY created_at, id")
}

func (r *repository) ListBySeller(ctx context.Context, sellerID string) ([]Client, error) {
	return r.query(ctx,
		"SELECT "+clientColumns+" FROM clients WHERE seller_id = $1 ORDER BY created_at, id",
		sellerID,
	)
}

func (r *repository) GetByID(ctx context.Context, id string) (Client, error) {
	return scanOne(r.db.QueryRowContext(ctx, "SELECT "+clientColumns+" FROM clients WHERE id = $1", id))
}

func (r *repository) FindByEmail(ctx context.Context, email string) (Client, error) {
	return scanOne(r.db.QueryRowContext(ctx, "SELECT "+clientColumns+" FROM clients WHERE email = $1", email))
}

func (r *repository) Create(ctx context.Context, input ClientInput, sellerID string) (Client, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO clients (name, surname, company, email, phone, seller_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+clientColumns,
		input.Name, input.Surname, input.Company, input.Email, input.Phone, sellerID,
	)
	return scanOne(row)
}

func (r *repository) Update(ctx context.Context, id string, input ClientInput) (Client, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE clients
		SET name = $1, surname = $2, company = $3, email = $4, phone = $5
		WHERE id = $6
		RETURNING `+clientColumns,
		input.Name, input.Surname, input.Company, input.Email, input.Phone, id,
	)
	return scanOne(row)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM clients WHERE id = $1", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrClientNotFound
	}
	return nil
}

func (r *repository) query(ctx context.Context, query string, args ...any) ([]Client, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := []Client{}
	for rows.Next() {
		var c Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Surname, &c.Company, &c.Email, &c.Phone, &c.SellerID, &c.CreatedAt); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func scanOne(row *sql.Row) (Client, error) {
	var c Client
	err := row.Scan(&c.ID, &c.Name, &c.Surname, &c.Company, &c.Email, &c.Phone, &c.SellerID, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Client{}, ErrClientNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation {
		return Client{}, ErrClientExists
	}
	return c, err
}
