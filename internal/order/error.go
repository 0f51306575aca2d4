package order

import "pedidos-be/internal/apperr"

var (
	ErrOrderNotFound = apperr.NotFound("the order does not exist")
	ErrInvalidStatus = apperr.InvalidInput("invalid order status")
	ErrMissingClient = apperr.InvalidInput("an order needs a client")
)
