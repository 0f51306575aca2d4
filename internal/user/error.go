package user

import "pedidos-be/internal/apperr"

var (
	ErrEmailExists        = apperr.AlreadyExists("the user is already registered")
	ErrUserNotFound       = apperr.NotFound("user not found")
	ErrInvalidCredentials = apperr.New(apperr.CodeInvalidCredentials, "invalid email or password")

	// -- Constants (External Systems) --
	PgUniqueViolation = "23505"
)
