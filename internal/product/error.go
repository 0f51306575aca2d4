package product

import (
	"errors"

	"pedidos-be/internal/apperr"
)

var (
	ErrProductNotFound = apperr.NotFound("product not found")
	ErrEmptyName       = apperr.InvalidInput("name cannot be empty")
	ErrNegativeStock   = apperr.InvalidInput("stock cannot be negative")
	ErrNegativePrice   = apperr.InvalidInput("price cannot be negative")

	// ErrStockConflict is returned by a conditional decrement that matched no
	// row because the stock dropped below the requested quantity.
	ErrStockConflict = errors.New("stock changed concurrently")
)
