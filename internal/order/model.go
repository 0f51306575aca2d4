package order

import (
	"time"

	"pedidos-be/internal/client"
	"pedidos-be/internal/inventory"
	"pedidos-be/internal/user"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "PENDIENTE"
	StatusCompleted Status = "COMPLETADO"
	StatusCanceled  Status = "CANCELADO"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

const (
	TopClientsLimit = 10
	TopSellersLimit = 3
)

type Order struct {
	ID        string
	Items     []Item
	Total     decimal.Decimal
	ClientID  string
	SellerID  string
	Status    Status
	CreatedAt time.Time
}

// OwnerID makes Order usable with the authz guard.
func (o Order) OwnerID() string { return o.SellerID }

// Item is a line item with the product name and unit price captured when
// the order was placed.
type Item struct {
	ProductID string
	Quantity  int
	Name      string
	Price     decimal.Decimal
}

// OrderInput carries both create and update requests. On update a nil field
// leaves the stored value untouched.
type OrderInput struct {
	Items    []inventory.Line
	ClientID *string
	Status   *Status
}

type TopClient struct {
	Total  decimal.Decimal
	Client client.Client
}

type TopSeller struct {
	Total  decimal.Decimal
	Seller user.User
}

func itemsFrom(reserved []inventory.Reserved) []Item {
	items := make([]Item, len(reserved))
	for i, r := range reserved {
		items[i] = Item{ProductID: r.ProductID, Quantity: r.Quantity, Name: r.Name, Price: r.Price}
	}
	return items
}

func linesOf(items []Item) []inventory.Line {
	lines := make([]inventory.Line, len(items))
	for i, it := range items {
		lines[i] = inventory.Line{ProductID: it.ProductID, Quantity: it.Quantity}
	}
	return lines
}
