package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"pedidos-be/internal/apperr"
	"pedidos-be/internal/auth"
	"pedidos-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenIssuer signs identities; satisfied by *auth.TokenService.
type TokenIssuer interface {
	Issue(id auth.Identity, ttl time.Duration) (string, error)
}

type Service interface {
	Register(ctx context.Context, input CreateUserInput) (User, error)
	Login(ctx context.Context, email, password string) (string, User, error)
	GetByID(ctx context.Context, id string) (User, error)
}

type service struct {
	repo     Repository
	tokens   TokenIssuer
	tokenTTL time.Duration
}

func NewService(repo Repository, tokens TokenIssuer, tokenTTL time.Duration) Service {
	return &service{repo: repo, tokens: tokens, tokenTTL: tokenTTL}
}

func (s *service) Register(ctx context.Context, input CreateUserInput) (User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Register"),
	)

	input.Email = normalizeEmail(input.Email)
	if input.Email == "" || input.Password == "" || strings.TrimSpace(input.Name) == "" {
		return User{}, apperr.InvalidInput("name, email and password are required")
	}

	_, err := s.repo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		log.Warn("email already registered", zap.String("email", input.Email))
		return User{}, ErrEmailExists
	case !errors.Is(err, ErrUserNotFound):
		log.Error("failed to look up user", zap.Error(err))
		return User{}, apperr.Internal("register user", err)
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return User{}, apperr.Internal("register user", err)
	}
	input.Password = hashed

	u, err := s.repo.Create(ctx, input)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			return User{}, err
		}
		return User{}, apperr.Internal("register user", err)
	}

	log.Info("user registered", zap.String("user_id", u.ID), zap.String("email", u.Email))
	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
	)

	u, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, ErrUserNotFound) {
		log.Info("login with unknown email")
		return "", User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Error("failed to look up user", zap.Error(err))
		return "", User{}, apperr.Internal("login", err)
	}

	if !CheckPasswordHash(password, u.Password) {
		log.Info("password does not match", zap.String("user_id", u.ID))
		return "", User{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(IdentityOf(u), s.tokenTTL)
	if err != nil {
		log.Error("failed to issue token", zap.String("user_id", u.ID), zap.Error(err))
		return "", User{}, apperr.Internal("login", err)
	}

	return token, u, nil
}

func (s *service) GetByID(ctx context.Context, id string) (User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return User{}, ErrUserNotFound
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return User{}, apperr.Internal("get user", err)
	}
	return u, err
}

// IdentityOf is the token payload for u.
func IdentityOf(u User) auth.Identity {
	return auth.Identity{ID: u.ID, Email: u.Email, Name: u.Name, Surname: u.Surname}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
