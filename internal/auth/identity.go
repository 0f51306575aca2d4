package auth

import "context"

// Identity is the authenticated seller decoded from a token.
type Identity struct {
	ID      string
	Email   string
	Name    string
	Surname string
}

type ctxKey string

const identityKey ctxKey = "identity"

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFrom returns the request identity; ok is false for anonymous requests.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok && id.ID != ""
}
