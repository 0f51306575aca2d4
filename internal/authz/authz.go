// Package authz holds the ownership guard applied to clients and orders.
package authz

import (
	"context"

	"pedidos-be/internal/apperr"
	"pedidos-be/internal/auth"
)

// Owned is implemented by records that belong to exactly one seller.
type Owned interface {
	OwnerID() string
}

func OwnedBy(e Owned, id auth.Identity) bool {
	return e != nil && id.ID != "" && e.OwnerID() == id.ID
}

// RequireOwner fails with PermissionDenied unless the caller owns e.
// action completes the message "you do not have permission to ...".
func RequireOwner(e Owned, id auth.Identity, action string) error {
	if !OwnedBy(e, id) {
		return apperr.PermissionDenied("you do not have permission to " + action)
	}
	return nil
}

// Caller returns the request identity or an Unauthenticated error.
func Caller(ctx context.Context) (auth.Identity, error) {
	id, ok := auth.IdentityFrom(ctx)
	if !ok {
		return auth.Identity{}, apperr.New(apperr.CodeUnauthenticated, "unauthorized: please login first")
	}
	return id, nil
}
