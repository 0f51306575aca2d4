package product

import (
	"context"
	"errors"
	"strings"

	"pedidos-be/internal/apperr"
	"pedidos-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (Product, error)
	Create(ctx context.Context, input ProductInput) (Product, error)
	Update(ctx context.Context, id string, input ProductInput) (Product, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, text string) ([]Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list products", zap.Error(err))
		return nil, apperr.Internal("list products", err)
	}
	return products, nil
}

func (s *service) GetByID(ctx context.Context, id string) (Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Product{}, ErrProductNotFound
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Product{}, wrap("get product", err)
	}
	return p, nil
}

func (s *service) Create(ctx context.Context, input ProductInput) (Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateProduct"),
	)

	input.Name = strings.TrimSpace(input.Name)
	if err := validate(input); err != nil {
		return Product{}, err
	}

	p, err := s.repo.Create(ctx, input)
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return Product{}, apperr.Internal("create product", err)
	}

	log.Info("product created", zap.String("product_id", p.ID))
	return p, nil
}

func (s *service) Update(ctx context.Context, id string, input ProductInput) (Product, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validate(input); err != nil {
		return Product{}, err
	}

	if _, err := s.GetByID(ctx, id); err != nil {
		return Product{}, err
	}

	p, err := s.repo.Update(ctx, id, input)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update product", zap.String("product_id", id), zap.Error(err))
		return Product{}, wrap("update product", err)
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return wrap("delete product", err)
	}

	logger.FromCtx(ctx).Info("product deleted", zap.String("product_id", id))
	return nil
}

func (s *service) Search(ctx context.Context, text string) ([]Product, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []Product{}, nil
	}

	products, err := s.repo.Search(ctx, text, SearchLimit)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to search products", zap.String("text", text), zap.Error(err))
		return nil, apperr.Internal("search products", err)
	}
	return products, nil
}

func validate(input ProductInput) error {
	switch {
	case input.Name == "":
		return ErrEmptyName
	case input.Stock < 0:
		return ErrNegativeStock
	case input.Price.IsNegative():
		return ErrNegativePrice
	}
	return nil
}

// wrap keeps taxonomy errors from the repository and marks anything else
// as internal.
func wrap(op string, err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperr.Internal(op, err)
}
