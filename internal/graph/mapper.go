package graph

import (
	"time"

	"pedidos-be/internal/client"
	"pedidos-be/internal/graph/model"
	"pedidos-be/internal/inventory"
	"pedidos-be/internal/order"
	"pedidos-be/internal/product"
	"pedidos-be/internal/user"

	"github.com/shopspring/decimal"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func mapUser(u user.User) *model.User {
	return &model.User{
		ID:        u.ID,
		Name:      u.Name,
		Surname:   u.Surname,
		Email:     u.Email,
		CreatedAt: formatTime(u.CreatedAt),
	}
}

func mapProduct(p product.Product) *model.Product {
	return &model.Product{
		ID:        p.ID,
		Name:      p.Name,
		Stock:     int32(p.Stock),
		Price:     money(p.Price),
		CreatedAt: formatTime(p.CreatedAt),
	}
}

func mapProducts(ps []product.Product) []*model.Product {
	out := make([]*model.Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, mapProduct(p))
	}
	return out
}

func mapClient(c client.Client) *model.Client {
	return &model.Client{
		ID:        c.ID,
		Name:      c.Name,
		Surname:   c.Surname,
		Company:   c.Company,
		Email:     c.Email,
		Phone:     c.Phone,
		Seller:    c.SellerID,
		CreatedAt: formatTime(c.CreatedAt),
	}
}

func mapClients(cs []client.Client) []*model.Client {
	out := make([]*model.Client, 0, len(cs))
	for _, c := range cs {
		out = append(out, mapClient(c))
	}
	return out
}

func mapOrder(o order.Order) *model.Order {
	items := make([]*model.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, &model.OrderItem{
			ID:       it.ProductID,
			Quantity: int32(it.Quantity),
			Name:     it.Name,
			Price:    money(it.Price),
		})
	}

	return &model.Order{
		ID:        o.ID,
		Items:     items,
		Total:     money(o.Total),
		ClientID:  o.ClientID,
		Seller:    o.SellerID,
		Status:    model.OrderStatus(o.Status),
		CreatedAt: formatTime(o.CreatedAt),
	}
}

func mapOrders(orders []order.Order) []*model.Order {
	out := make([]*model.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, mapOrder(o))
	}
	return out
}

func toProductInput(in model.ProductInput) product.ProductInput {
	return product.ProductInput{
		Name:  in.Name,
		Stock: int(in.Stock),
		Price: decimal.NewFromFloat(in.Price),
	}
}

func toClientInput(in model.ClientInput) client.ClientInput {
	return client.ClientInput{
		Name:    in.Name,
		Surname: in.Surname,
		Company: in.Company,
		Email:   in.Email,
		Phone:   in.Phone,
	}
}

// toOrderInput keeps a nil item list nil so updates can tell "unchanged"
// apart from "empty".
func toOrderInput(in model.OrderInput) order.OrderInput {
	out := order.OrderInput{ClientID: in.Client}

	if in.Items != nil {
		out.Items = make([]inventory.Line, 0, len(in.Items))
		for _, it := range in.Items {
			if it == nil {
				continue
			}
			out.Items = append(out.Items, inventory.Line{ProductID: it.ID, Quantity: int(it.Quantity)})
		}
	}

	if in.Status != nil {
		s := order.Status(*in.Status)
		out.Status = &s
	}
	return out
}
