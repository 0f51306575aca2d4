package client

import (
	"context"
	"errors"
	"strings"

	"pedidos-be/internal/apperr"
	"pedidos-be/internal/authz"
	"pedidos-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]Client, error)
	ListForSeller(ctx context.Context) ([]Client, error)
	// Get returns a client owned by the caller.
	Get(ctx context.Context, id string) (Client, error)
	// Lookup returns a client without an ownership check, for embedding in
	// responses the caller is already allowed to see.
	Lookup(ctx context.Context, id string) (Client, error)
	Create(ctx context.Context, input ClientInput) (Client, error)
	Update(ctx context.Context, id string, input ClientInput) (Client, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Client, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list clients", zap.Error(err))
		return nil, apperr.Internal("list clients", err)
	}
	return clients, nil
}

func (s *service) ListForSeller(ctx context.Context) ([]Client, error) {
	caller, err := authz.Caller(ctx)
	if err != nil {
		return nil, err
	}

	clients, err := s.repo.ListBySeller(ctx, caller.ID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list seller clients", zap.Error(err))
		return nil, apperr.Internal("list clients", err)
	}
	return clients, nil
}

func (s *service) Get(ctx context.Context, id string) (Client, error) {
	return s.owned(ctx, id, "view this client")
}

func (s *service) Lookup(ctx context.Context, id string) (Client, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Client{}, ErrClientNotFound
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Client{}, wrap("get client", err)
	}
	return c, nil
}

func (s *service) Create(ctx context.Context, input ClientInput) (Client, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateClient"),
	)

	caller, err := authz.Caller(ctx)
	if err != nil {
		return Client{}, err
	}

	input, err = normalize(input)
	if err != nil {
		return Client{}, err
	}

	_, err = s.repo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return Client{}, ErrClientExists
	case !errors.Is(err, ErrClientNotFound):
		log.Error("failed to look up client email", zap.Error(err))
		return Client{}, apperr.Internal("create client", err)
	}

	c, err := s.repo.Create(ctx, input, caller.ID)
	if err != nil {
		log.Error("failed to create client", zap.Error(err))
		return Client{}, wrap("create client", err)
	}

	log.Info("client created", zap.String("client_id", c.ID))
	return c, nil
}

func (s *service) Update(ctx context.Context, id string, input ClientInput) (Client, error) {
	if _, err := s.owned(ctx, id, "edit this client"); err != nil {
		return Client{}, err
	}

	input, err := normalize(input)
	if err != nil {
		return Client{}, err
	}

	c, err := s.repo.Update(ctx, id, input)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update client", zap.String("client_id", id), zap.Error(err))
		return Client{}, wrap("update client", err)
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.owned(ctx, id, "delete this client"); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return wrap("delete client", err)
	}

	logger.FromCtx(ctx).Info("client deleted", zap.String("client_id", id))
	return nil
}

// owned loads the client and applies the ownership guard for action.
func (s *service) owned(ctx context.Context, id, action string) (Client, error) {
	caller, err := authz.Caller(ctx)
	if err != nil {
		return Client{}, err
	}

	c, err := s.Lookup(ctx, id)
	if err != nil {
		return Client{}, err
	}

	if err := authz.RequireOwner(c, caller, action); err != nil {
		logger.FromCtx(ctx).Warn("client ownership denied",
			zap.String("client_id", id),
			zap.String("seller_id", c.SellerID),
		)
		return Client{}, err
	}
	return c, nil
}

func normalize(input ClientInput) (ClientInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Surname = strings.TrimSpace(input.Surname)
	input.Company = strings.TrimSpace(input.Company)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if input.Name == "" || input.Surname == "" || input.Company == "" || input.Email == "" {
		return input, ErrMissingFields
	}
	return input, nil
}

func wrap(op string, err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperr.Internal(op, err)
}
