package graph

import (
	"context"

	"pedidos-be/internal/authz"

	"github.com/99designs/gqlgen/graphql"
)

// AuthDirective rejects anonymous callers before the field resolver runs.
func AuthDirective(ctx context.Context, obj interface{}, next graphql.Resolver) (res interface{}, err error) {
	if _, err := authz.Caller(ctx); err != nil {
		return nil, err
	}
	return next(ctx)
}
