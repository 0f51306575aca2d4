package graph

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pedidos-be/internal/apperr"
	"pedidos-be/internal/auth"
	"pedidos-be/internal/graph/model"
	"pedidos-be/internal/transport"
	"pedidos-be/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutationResolver_CreateUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockUserService)
		mr := &mutationResolver{&Resolver{UserSvc: mockSvc}}

		ctx := context.Background()
		input := model.UserInput{Name: "Eva", Surname: "Lopez", Email: "eva@shop.com", Password: "secret"}
		created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

		mockSvc.On("Register", ctx, user.CreateUserInput{
			Name: "Eva", Surname: "Lopez", Email: "eva@shop.com", Password: "secret",
		}).Return(user.User{ID: "u-1", Name: "Eva", Email: "eva@shop.com", Password: "hash", CreatedAt: created}, nil)

		res, err := mr.CreateUser(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, "u-1", res.ID)
		assert.Equal(t, "2026-01-02T03:04:05Z", res.CreatedAt)
		mockSvc.AssertExpectations(t)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		mockSvc := new(MockUserService)
		mr := &mutationResolver{&Resolver{UserSvc: mockSvc}}

		ctx := context.Background()
		mockSvc.On("Register", ctx, user.CreateUserInput{Email: "eva@shop.com"}).Return(user.User{}, user.ErrEmailExists)

		_, err := mr.CreateUser(ctx, model.UserInput{Email: "eva@shop.com"})
		assert.ErrorIs(t, err, apperr.ErrAlreadyExists)
	})
}

func TestMutationResolver_Login(t *testing.T) {
	t.Run("SetsCookie", func(t *testing.T) {
		mockSvc := new(MockUserService)
		mr := &mutationResolver{&Resolver{UserSvc: mockSvc, TokenTTL: time.Hour}}

		w := httptest.NewRecorder()
		ctx := transport.WithHTTP(context.Background(), httptest.NewRequest(http.MethodPost, "/query", nil), w)

		mockSvc.On("Login", ctx, "eva@shop.com", "secret").Return("tok", user.User{ID: "u-1"}, nil)

		res, err := mr.Login(ctx, model.AuthInput{Email: "eva@shop.com", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, "tok", res.Token)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, auth.AccessTokenCookie, cookies[0].Name)
		assert.Equal(t, "tok", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, 3600, cookies[0].MaxAge)
	})

	t.Run("WithoutHTTPContext", func(t *testing.T) {
		mockSvc := new(MockUserService)
		mr := &mutationResolver{&Resolver{UserSvc: mockSvc}}

		ctx := context.Background()
		mockSvc.On("Login", ctx, "eva@shop.com", "secret").Return("tok", user.User{ID: "u-1"}, nil)

		res, err := mr.Login(ctx, model.AuthInput{Email: "eva@shop.com", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, "tok", res.Token)
	})

	t.Run("InvalidCredentials", func(t *testing.T) {
		mockSvc := new(MockUserService)
		mr := &mutationResolver{&Resolver{UserSvc: mockSvc}}

		ctx := context.Background()
		mockSvc.On("Login", ctx, "eva@shop.com", "nope").Return("", user.User{}, user.ErrInvalidCredentials)

		_, err := mr.Login(ctx, model.AuthInput{Email: "eva@shop.com", Password: "nope"})
		assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
	})
}

func TestQueryResolver_ObtainUser(t *testing.T) {
	t.Run("Authenticated", func(t *testing.T) {
		mockSvc := new(MockUserService)
		qr := &queryResolver{&Resolver{UserSvc: mockSvc}}

		ctx := auth.WithIdentity(context.Background(), auth.Identity{ID: "u-1"})
		mockSvc.On("GetByID", ctx, "u-1").Return(user.User{ID: "u-1", Email: "eva@shop.com"}, nil)

		res, err := qr.ObtainUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, "eva@shop.com", res.Email)
	})

	t.Run("Anonymous", func(t *testing.T) {
		qr := &queryResolver{&Resolver{UserSvc: new(MockUserService)}}

		_, err := qr.ObtainUser(context.Background())
		assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
	})
}
