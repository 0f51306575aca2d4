package inventory

import "pedidos-be/internal/apperr"

var (
	ErrNoLines         = apperr.InvalidInput("an order needs at least one item")
	ErrInvalidQuantity = apperr.InvalidInput("quantity must be greater than zero")
)
