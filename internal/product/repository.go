package product

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pedidos-be/internal/db"

	"github.com/lib/pq"
)

type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (Product, error)
	Create(ctx context.Context, input ProductInput) (Product, error)
	Update(ctx context.Context, id string, input ProductInput) (Product, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, text string, limit int) ([]Product, error)

	// LockByIDs loads the products and holds their row locks until the
	// surrounding transaction ends. Only meaningful on a WithTx repository.
	LockByIDs(ctx context.Context, ids []string) ([]Product, error)
	DecrementStock(ctx context.Context, id string, qty int) error
	IncrementStock(ctx context.Context, id string, qty int) error

	WithTx(tx *sql.Tx) Repository
}

type repository struct {
	q db.DBTX
}

func NewRepository(conn *sql.DB) Repository {
	return &repository{q: conn}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{q: tx}
}

const productColumns = "id, name, stock, price, created_at"

func (r *repository) List(ctx context.Context) ([]Product, error) {
	return r.query(ctx, "SELECT "+productColumns+" FROM products ORDER BY created_at, id")
}

func (r *repository) GetByID(ctx context.Context, id string) (Product, error) {
	row := r.q.QueryRowContext(ctx, "SELECT "+productColumns+" FROM products WHERE id = $1", id)
	return scanOne(row)
}

func (r *repository) Create(ctx context.Context, input ProductInput) (Product, error) {
	row := r.q.QueryRowContext(ctx,
		"INSERT INTO products (name, stock, price) VALUES ($1, $2, $3) RETURNING "+productColumns,
		input.Name, input.Stock, input.Price,
	)
	return scanOne(row)
}

func (r *repository) Update(ctx context.Context, id string, input ProductInput) (Product, error) {
	row := r.q.QueryRowContext(ctx,
		"UPDATE products SET name = $1, stock = $2, price = $3 WHERE id = $4 RETURNING "+productColumns,
		input.Name, input.Stock, input.Price, id,
	)
	return scanOne(row)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *repository) Search(ctx context.Context, text string, limit int) ([]Product, error) {
	return r.query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE to_tsvector('simple', name) @@ plainto_tsquery('simple', $1)
		   OR name ILIKE $3 ESCAPE '\'
		ORDER BY ts_rank(to_tsvector('simple', name), plainto_tsquery('simple', $1)) DESC, name
		LIMIT $2
	`, text, limit, containsPattern(text))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching text literally.
func containsPattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}

func (r *repository) LockByIDs(ctx context.Context, ids []string) ([]Product, error) {
	// Ordered by id so concurrent orders acquire locks in the same order.
	return r.query(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = ANY($1) ORDER BY id FOR UPDATE",
		pq.Array(ids),
	)
}

func (r *repository) DecrementStock(ctx context.Context, id string, qty int) error {
	res, err := r.q.ExecContext(ctx,
		"UPDATE products SET stock = stock - $1 WHERE id = $2 AND stock >= $1",
		qty, id,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrStockConflict
	}
	return nil
}

func (r *repository) IncrementStock(ctx context.Context, id string, qty int) error {
	// A product deleted since the order was placed has nothing to restore.
	_, err := r.q.ExecContext(ctx, "UPDATE products SET stock = stock + $1 WHERE id = $2", qty, id)
	return err
}

func (r *repository) query(ctx context.Context, query string, args ...any) ([]Product, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Stock, &p.Price, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func scanOne(row *sql.Row) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Stock, &p.Price, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, ErrProductNotFound
	}
	return p, err
}
