package client

import "pedidos-be/internal/apperr"

var (
	ErrClientNotFound = apperr.NotFound("the client does not exist")
	ErrClientExists   = apperr.AlreadyExists("that client is already registered")
	ErrMissingFields  = apperr.InvalidInput("name, surname, company and email are required")

	// -- Constants (External Systems) --
	PgUniqueViolation = "23505"
)
