package graph

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.

import (
	"context"
	"net/http"

	"pedidos-be/internal/auth"
	"pedidos-be/internal/authz"
	"pedidos-be/internal/graph/model"
	"pedidos-be/internal/logger"
	"pedidos-be/internal/transport"
	"pedidos-be/internal/user"

	"go.uber.org/zap"
)

// CreateUser is the resolver for the createUser field.
func (r *mutationResolver) CreateUser(ctx context.Context, input model.UserInput) (*model.User, error) {
	u, err := r.UserSvc.Register(ctx, user.CreateUserInput{
		Name:     input.Name,
		Surname:  input.Surname,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return nil, err
	}
	return mapUser(u), nil
}

// Login is the resolver for the login field.
func (r *mutationResolver) Login(ctx context.Context, input model.AuthInput) (*model.Token, error) {
	token, u, err := r.UserSvc.Login(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	set := transport.SetCookie(ctx, &http.Cookie{
		Name:     auth.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(r.TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   r.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	logger.FromCtx(ctx).Info("user logged in",
		zap.String("user_id", u.ID),
		zap.Bool("cookie", set),
	)

	return &model.Token{Token: token}, nil
}

// ObtainUser is the resolver for the obtainUser field.
func (r *queryResolver) ObtainUser(ctx context.Context) (*model.User, error) {
	caller, err := authz.Caller(ctx)
	if err != nil {
		return nil, err
	}

	u, err := r.UserSvc.GetByID(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	return mapUser(u), nil
}

// Mutation returns MutationResolver implementation.
func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }

// Query returns QueryResolver implementation.
func (r *Resolver) Query() QueryResolver { return &queryResolver{r} }

type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
