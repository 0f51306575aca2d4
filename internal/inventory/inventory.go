// Package inventory reserves product stock for order line items. A
// reservation validates every line before touching stock, so within one
// transaction it either decrements all products or none.
package inventory

import (
	"context"
	"database/sql"
	"errors"
	"sort"

	"pedidos-be/internal/apperr"
	"pedidos-be/internal/logger"
	"pedidos-be/internal/product"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Line is one requested product and quantity.
type Line struct {
	ProductID string
	Quantity  int
}

// Reserved is a committed line with the product snapshot taken under lock.
type Reserved struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	Quantity  int
}

func (r Reserved) Subtotal() decimal.Decimal {
	return r.Price.Mul(decimal.NewFromInt(int64(r.Quantity)))
}

// Total sums the subtotals of lines.
func Total(lines []Reserved) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

type Service interface {
	// Reserve must run inside tx; the caller's rollback undoes every
	// decrement when it returns an error.
	Reserve(ctx context.Context, tx *sql.Tx, lines []Line) ([]Reserved, error)
	// Release returns previously reserved quantities to stock.
	Release(ctx context.Context, tx *sql.Tx, lines []Line) error
	// Replace releases previous and reserves next within tx. Every product
	// row of both sets is locked in id order before any stock is written.
	Replace(ctx context.Context, tx *sql.Tx, previous, next []Line) ([]Reserved, error)
}

type service struct {
	products product.Repository
}

func NewService(products product.Repository) Service {
	return &service{products: products}
}

func (s *service) Reserve(ctx context.Context, tx *sql.Tx, lines []Line) ([]Reserved, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "inventory"),
		zap.String("method", "Reserve"),
	)

	merged, err := merge(lines)
	if err != nil {
		return nil, err
	}

	repo := s.products.WithTx(tx)

	ids := make([]string, len(merged))
	for i, l := range merged {
		ids[i] = l.ProductID
	}

	locked, err := repo.LockByIDs(ctx, ids)
	if err != nil {
		log.Error("failed to lock products", zap.Error(err))
		return nil, apperr.Internal("reserve stock", err)
	}

	byID := make(map[string]product.Product, len(locked))
	for _, p := range locked {
		byID[p.ID] = p
	}

	// Validate everything first so no decrement is issued for a doomed order.
	reserved := make([]Reserved, 0, len(merged))
	for _, l := range merged {
		p, ok := byID[l.ProductID]
		if !ok {
			return nil, product.ErrProductNotFound
		}
		if l.Quantity > p.Stock {
			log.Info("insufficient stock",
				zap.String("product_id", p.ID),
				zap.Int("requested", l.Quantity),
				zap.Int("available", p.Stock),
			)
			return nil, apperr.InsufficientStock(p.Name)
		}
		reserved = append(reserved, Reserved{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  l.Quantity,
		})
	}

	for _, r := range reserved {
		if err := repo.DecrementStock(ctx, r.ProductID, r.Quantity); err != nil {
			if errors.Is(err, product.ErrStockConflict) {
				return nil, apperr.InsufficientStock(r.Name)
			}
			log.Error("failed to decrement stock", zap.String("product_id", r.ProductID), zap.Error(err))
			return nil, apperr.Internal("reserve stock", err)
		}
	}

	return reserved, nil
}

func (s *service) Release(ctx context.Context, tx *sql.Tx, lines []Line) error {
	repo := s.products.WithTx(tx)
	for _, l := range lines {
		if l.Quantity <= 0 || l.ProductID == "" {
			continue
		}
		if err := repo.IncrementStock(ctx, l.ProductID, l.Quantity); err != nil {
			logger.FromCtx(ctx).Error("failed to release stock",
				zap.String("product_id", l.ProductID),
				zap.Error(err),
			)
			return apperr.Internal("release stock", err)
		}
	}
	return nil
}

func (s *service) Replace(ctx context.Context, tx *sql.Tx, previous, next []Line) ([]Reserved, error) {
	if _, err := merge(next); err != nil {
		return nil, err
	}

	if _, err := s.products.WithTx(tx).LockByIDs(ctx, productIDs(previous, next)); err != nil {
		logger.FromCtx(ctx).Error("failed to lock products", zap.String("method", "Replace"), zap.Error(err))
		return nil, apperr.Internal("replace stock", err)
	}

	if err := s.Release(ctx, tx, previous); err != nil {
		return nil, err
	}
	return s.Reserve(ctx, tx, next)
}

// productIDs returns the distinct product ids of all line sets, sorted.
func productIDs(sets ...[]Line) []string {
	seen := map[string]bool{}
	ids := []string{}
	for _, lines := range sets {
		for _, l := range lines {
			if l.ProductID == "" || seen[l.ProductID] {
				continue
			}
			seen[l.ProductID] = true
			ids = append(ids, l.ProductID)
		}
	}
	sort.Strings(ids)
	return ids
}

// merge validates lines and folds repeated products into one line, keeping
// the order in which products first appear.
func merge(lines []Line) ([]Line, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	index := make(map[string]int, len(lines))
	merged := make([]Line, 0, len(lines))
	for _, l := range lines {
		if l.ProductID == "" {
			return nil, product.ErrProductNotFound
		}
		if l.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if i, ok := index[l.ProductID]; ok {
			merged[i].Quantity += l.Quantity
			continue
		}
		index[l.ProductID] = len(merged)
		merged = append(merged, l)
	}
	return merged, nil
}
