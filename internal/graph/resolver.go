package graph

import (
	"time"

	"pedidos-be/internal/client"
	"pedidos-be/internal/order"
	"pedidos-be/internal/product"
	"pedidos-be/internal/user"

	"github.com/99designs/gqlgen/graphql"
)

// This file will not be regenerated automatically.
//
// It serves as dependency injection for your app, add any dependencies you require here.

type Resolver struct {
	UserSvc    user.Service
	ProductSvc product.Service
	ClientSvc  client.Service
	OrderSvc   order.Service

	// Session cookie written by the login mutation.
	TokenTTL     time.Duration
	SecureCookie bool
}

func NewSchema(r *Resolver) graphql.ExecutableSchema {
	return NewExecutableSchema(Config{
		Resolvers: r,
		Directives: DirectiveRoot{
			Auth: AuthDirective,
		},
	})
}
