package order

import (
	"context"
	"database/sql"
	"errors"

	"pedidos-be/internal/apperr"
	"pedidos-be/internal/auth"
	"pedidos-be/internal/authz"
	"pedidos-be/internal/client"
	"pedidos-be/internal/db"
	"pedidos-be/internal/inventory"
	"pedidos-be/internal/logger"
	"pedidos-be/internal/metrics"
	"pedidos-be/internal/product"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]Order, error)
	ListForSeller(ctx context.Context) ([]Order, error)
	ListByStatus(ctx context.Context, status Status) ([]Order, error)
	Get(ctx context.Context, id string) (Order, error)
	Create(ctx context.Context, input OrderInput) (Order, error)
	Update(ctx context.Context, id string, input OrderInput) (Order, error)
	Delete(ctx context.Context, id string) error

	TopClients(ctx context.Context) ([]TopClient, error)
	TopSellers(ctx context.Context) ([]TopSeller, error)
}

type service struct {
	repo    Repository
	clients client.Repository
	stock   inventory.Service
	tx      db.TxRunner
}

func NewService(repo Repository, clients client.Repository, stock inventory.Service, tx db.TxRunner) Service {
	return &service{
		repo:    repo,
		clients: clients,
		stock:   stock,
		tx:      tx,
	}
}

func (s *service) List(ctx context.Context) ([]Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list orders", zap.Error(err))
		return nil, apperr.Internal("list orders", err)
	}
	return orders, nil
}

func (s *service) ListForSeller(ctx context.Context) ([]Order, error) {
	caller, err := authz.Caller(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := s.repo.ListBySeller(ctx, caller.ID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list seller orders", zap.Error(err))
		return nil, apperr.Internal("list orders", err)
	}
	return orders, nil
}

func (s *service) ListByStatus(ctx context.Context, status Status) ([]Order, error) {
	caller, err := authz.Caller(ctx)
	if err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	orders, err := s.repo.ListBySellerAndStatus(ctx, caller.ID, status)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list orders by status",
			zap.String("status", string(status)),
			zap.Error(err),
		)
		return nil, apperr.Internal("list orders", err)
	}
	return orders, nil
}

func (s *service) Get(ctx context.Context, id string) (Order, error) {
	return s.owned(ctx, id, "view this order")
}

func (s *service) Create(ctx context.Context, input OrderInput) (Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
	)

	caller, err := authz.Caller(ctx)
	if err != nil {
		return Order{}, err
	}

	if input.ClientID == nil || *input.ClientID == "" {
		return Order{}, ErrMissingClient
	}
	if err := s.requireClient(ctx, *input.ClientID, caller); err != nil {
		return Order{}, err
	}

	if err := checkProductIDs(input.Items); err != nil {
		return Order{}, err
	}

	status := StatusPending
	if input.Status != nil {
		if !input.Status.Valid() {
			return Order{}, ErrInvalidStatus
		}
		status = *input.Status
	}

	var created Order
	err = s.tx.Run(ctx, func(tx *sql.Tx) error {
		reserved, err := s.stock.Reserve(ctx, tx, input.Items)
		if err != nil {
			return err
		}

		created, err = s.repo.WithTx(tx).Create(ctx, Order{
			Items:    itemsFrom(reserved),
			Total:    inventory.Total(reserved),
			ClientID: *input.ClientID,
			SellerID: caller.ID,
			Status:   status,
		})
		return err
	})
	if err != nil {
		switch apperr.CodeOf(err) {
		case apperr.CodeInternal:
			log.Error("failed to create order", zap.Error(err))
		case apperr.CodeInsufficientStock:
			metrics.StockRejections.Inc()
		}
		return Order{}, wrap("create order", err)
	}

	metrics.OrdersCreated.Inc()
	log.Info("order created",
		zap.String("order_id", created.ID),
		zap.String("total", created.Total.String()),
	)
	return created, nil
}

func (s *service) Update(ctx context.Context, id string, input OrderInput) (Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateOrder"),
	)

	if _, err := s.owned(ctx, id, "edit this order"); err != nil {
		return Order{}, err
	}
	caller, _ := authz.Caller(ctx)

	if input.ClientID != nil {
		if err := s.requireClient(ctx, *input.ClientID, caller); err != nil {
			return Order{}, err
		}
	}
	if input.Status != nil && !input.Status.Valid() {
		return Order{}, ErrInvalidStatus
	}
	if err := checkProductIDs(input.Items); err != nil {
		return Order{}, err
	}

	var updated Order
	err := s.tx.Run(ctx, func(tx *sql.Tx) error {
		repo := s.repo.WithTx(tx)

		current, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if input.ClientID != nil {
			current.ClientID = *input.ClientID
		}
		if input.Status != nil {
			current.Status = *input.Status
		}

		if input.Items != nil {
			reserved, err := s.stock.Replace(ctx, tx, linesOf(current.Items), input.Items)
			if err != nil {
				return err
			}
			current.Items = itemsFrom(reserved)
			current.Total = inventory.Total(reserved)

			if err := repo.ReplaceItems(ctx, id, current.Items); err != nil {
				return err
			}
		}

		updated, err = repo.Update(ctx, current)
		return err
	})
	if err != nil {
		switch apperr.CodeOf(err) {
		case apperr.CodeInternal:
			log.Error("failed to update order", zap.String("order_id", id), zap.Error(err))
		case apperr.CodeInsufficientStock:
			metrics.StockRejections.Inc()
		}
		return Order{}, wrap("update order", err)
	}

	metrics.OrdersUpdated.Inc()
	log.Info("order updated", zap.String("order_id", id), zap.String("status", string(updated.Status)))
	return updated, nil
}

// Delete removes the order. Stock reserved by it is not returned.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.owned(ctx, id, "delete this order"); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return wrap("delete order", err)
	}

	logger.FromCtx(ctx).Info("order deleted", zap.String("order_id", id))
	return nil
}

func (s *service) TopClients(ctx context.Context) ([]TopClient, error) {
	top, err := s.repo.TopClients(ctx, TopClientsLimit)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to compute top clients", zap.Error(err))
		return nil, apperr.Internal("top clients", err)
	}
	return top, nil
}

func (s *service) TopSellers(ctx context.Context) ([]TopSeller, error) {
	top, err := s.repo.TopSellers(ctx, TopSellersLimit)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to compute top sellers", zap.Error(err))
		return nil, apperr.Internal("top sellers", err)
	}
	return top, nil
}

func (s *service) owned(ctx context.Context, id, action string) (Order, error) {
	caller, err := authz.Caller(ctx)
	if err != nil {
		return Order{}, err
	}

	if _, err := uuid.Parse(id); err != nil {
		return Order{}, ErrOrderNotFound
	}

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Order{}, wrap("get order", err)
	}

	if err := authz.RequireOwner(o, caller, action); err != nil {
		logger.FromCtx(ctx).Warn("order ownership denied",
			zap.String("order_id", id),
			zap.String("seller_id", o.SellerID),
		)
		return Order{}, err
	}
	return o, nil
}

// requireClient checks that the client exists and belongs to the caller.
func (s *service) requireClient(ctx context.Context, clientID string, caller auth.Identity) error {
	if _, err := uuid.Parse(clientID); err != nil {
		return client.ErrClientNotFound
	}

	c, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return wrap("get client", err)
	}
	return authz.RequireOwner(c, caller, "place orders for this client")
}

// checkProductIDs reports malformed product ids as missing products.
func checkProductIDs(lines []inventory.Line) error {
	for _, l := range lines {
		if _, err := uuid.Parse(l.ProductID); err != nil {
			return product.ErrProductNotFound
		}
	}
	return nil
}

func wrap(op string, err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperr.Internal(op, err)
}
