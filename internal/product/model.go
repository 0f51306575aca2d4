package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID        string
	Name      string
	Stock     int
	Price     decimal.Decimal
	CreatedAt time.Time
}

type ProductInput struct {
	Name  string
	Stock int
	Price decimal.Decimal
}

// SearchLimit caps the number of free-text search results.
const SearchLimit = 10
