package order

import (
	"context"
	"database/sql"
	"errors"

	"pedidos-be/internal/db"

	"github.com/lib/pq"
)

type Repository interface {
	List(ctx context.Context) ([]Order, error)
	ListBySeller(ctx context.Context, sellerID string) ([]Order, error)
	ListBySellerAndStatus(ctx context.Context, sellerID string, status Status) ([]Order, error)
	GetByID(ctx context.Context, id string) (Order, error)
	// GetForUpdate locks the order row until the surrounding transaction
	// ends. Only meaningful on a WithTx repository.
	GetForUpdate(ctx context.Context, id string) (Order, error)
	Create(ctx context.Context, o Order) (Order, error)
	Update(ctx context.Context, o Order) (Order, error)
	ReplaceItems(ctx context.Context, orderID string, items []Item) error
	Delete(ctx context.Context, id string) error

	TopClients(ctx context.Context, limit int) ([]TopClient, error)
	TopSellers(ctx context.Context, limit int) ([]TopSeller, error)

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

const orderColumns = "id, client_id, seller_id, status, total, created_at"

func (r *repository) List(ctx context.Context) ([]Order, error) {
	return r.query(ctx, "SELECT "+orderColumns+" FROM orders ORDER BY created_at, id")
}

func (r *repository) ListBySeller(ctx context.Context, sellerID string) ([]Order, error) {
	return r.query(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE seller_id = $1 ORDER BY created_at, id",
		sellerID,
	)
}

func (r *repository) ListBySellerAndStatus(ctx context.Context, sellerID string, status Status) ([]Order, error) {
	return r.query(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE seller_id = $1 AND status = $2 ORDER BY created_at, id",
		sellerID, status,
	)
}

func (r *repository) GetByID(ctx context.Context, id string) (Order, error) {
	return r.getOne(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = $1", id)
}

func (r *repository) GetForUpdate(ctx context.Context, id string) (Order, error) {
	return r.getOne(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = $1 FOR UPDATE", id)
}

func (r *repository) Create(ctx context.Context, o Order) (Order, error) {
	row := r.q.QueryRowContext(ctx, `
		INSERT INTO orders (client_id, seller_id, status, total)
		VALUES ($1, $2, $3, $4)
		RETURNING `+orderColumns,
		o.ClientID, o.SellerID, o.Status, o.Total,
	)

	created, err := scanOrder(row)
	if err != nil {
		return Order{}, err
	}

	if err := r.insertItems(ctx, created.ID, o.Items); err != nil {
		return Order{}, err
	}
	created.Items = o.Items
	return created, nil
}

func (r *repository) Update(ctx context.Context, o Order) (Order, error) {
	row := r.q.QueryRowContext(ctx, `
		UPDATE orders
		SET client_id = $1, status = $2, total = $3
		WHERE id = $4
		RETURNING `+orderColumns,
		o.ClientID, o.Status, o.Total, o.ID,
	)

	updated, err := scanOrder(row)
	if err != nil {
		return Order{}, err
	}

	orders := []Order{updated}
	if err := r.attachItems(ctx, orders); err != nil {
		return Order{}, err
	}
	return orders[0], nil
}

func (r *repository) ReplaceItems(ctx context.Context, orderID string, items []Item) error {
	if _, err := r.q.ExecContext(ctx, "DELETE FROM order_items WHERE order_id = $1", orderID); err != nil {
		return err
	}
	return r.insertItems(ctx, orderID, items)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *repository) TopClients(ctx context.Context, limit int) ([]TopClient, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT SUM(o.total) AS total,
		       c.id, c.name, c.surname, c.company, c.email, c.phone, c.seller_id, c.created_at
		FROM orders o
		JOIN clients c ON c.id = o.client_id
		WHERE o.status = $1
		GROUP BY c.id
		ORDER BY total DESC, c.id
		LIMIT $2`,
		StatusCompleted, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []TopClient{}
	for rows.Next() {
		var t TopClient
		c := &t.Client
		if err := rows.Scan(&t.Total, &c.ID, &c.Name, &c.Surname, &c.Company, &c.Email, &c.Phone, &c.SellerID, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

func (r *repository) TopSellers(ctx context.Context, limit int) ([]TopSeller, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT SUM(o.total) AS total,
		       u.id, u.name, u.surname, u.email, u.created_at
		FROM orders o
		JOIN users u ON u.id = o.seller_id
		WHERE o.status = $1
		GROUP BY u.id
		ORDER BY total DESC, u.id
		LIMIT $2`,
		StatusCompleted, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []TopSeller{}
	for rows.Next() {
		var t TopSeller
		u := &t.Seller
		if err := rows.Scan(&t.Total, &u.ID, &u.Name, &u.Surname, &u.Email, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

func (r *repository) getOne(ctx context.Context, query string, id string) (Order, error) {
	o, err := scanOrder(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		return Order{}, err
	}

	orders := []Order{o}
	if err := r.attachItems(ctx, orders); err != nil {
		return Order{}, err
	}
	return orders[0], nil
}

func (r *repository) query(ctx context.Context, query string, args ...any) ([]Order, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []Order{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.ClientID, &o.SellerID, &o.Status, &o.Total, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// attachItems loads the line items of every order in one query.
func (r *repository) attachItems(ctx context.Context, orders []Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]string, len(orders))
	index := make(map[string]int, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		index[o.ID] = i
		orders[i].Items = []Item{}
	}

	rows, err := r.q.QueryContext(ctx, `
		SELECT order_id, product_id, name, price, quantity
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, position`,
		pq.Array(ids),
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		var it Item
		if err := rows.Scan(&orderID, &it.ProductID, &it.Name, &it.Price, &it.Quantity); err != nil {
			return err
		}
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, it)
		}
	}
	return rows.Err()
}

func (r *repository) insertItems(ctx context.Context, orderID string, items []Item) error {
	for pos, it := range items {
		_, err := r.q.ExecContext(ctx, `
			INSERT INTO order_items (order_id, position, product_id, name, price, quantity)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			orderID, pos, it.ProductID, it.Name, it.Price, it.Quantity,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func scanOrder(row *sql.Row) (Order, error) {
	var o Order
	err := row.Scan(&o.ID, &o.ClientID, &o.SellerID, &o.Status, &o.Total, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Order{}, ErrOrderNotFound
	}
	return o, err
}
