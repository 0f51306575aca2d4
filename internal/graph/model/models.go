// Package model holds the GraphQL types bound by gqlgen.
package model

import (
	"fmt"
	"io"
	"strconv"

	"pedidos-be/internal/apperr"
)

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

type Token struct {
	Token string `json:"token"`
}

type UserInput struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Stock     int32   `json:"stock"`
	Price     float64 `json:"price"`
	CreatedAt string  `json:"createdAt"`
}

type ProductInput struct {
	Name  string  `json:"name"`
	Stock int32   `json:"stock"`
	Price float64 `json:"price"`
}

type Client struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Surname   string  `json:"surname"`
	Company   string  `json:"company"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Seller    string  `json:"seller"`
	CreatedAt string  `json:"createdAt"`
}

type ClientInput struct {
	Name    string  `json:"name"`
	Surname string  `json:"surname"`
	Company string  `json:"company"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
}

type OrderItem struct {
	ID       string  `json:"id"`
	Quantity int32   `json:"quantity"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
}

// Order.client is resolved from ClientID by the order field resolver.
type Order struct {
	ID        string       `json:"id"`
	Items     []*OrderItem `json:"items"`
	Total     float64      `json:"total"`
	ClientID  string       `json:"-"`
	Seller    string       `json:"seller"`
	Status    OrderStatus  `json:"status"`
	CreatedAt string       `json:"createdAt"`
}

type TopClient struct {
	Total  float64 `json:"total"`
	Client *Client `json:"client"`
}

type TopSeller struct {
	Total  float64 `json:"total"`
	Seller *User   `json:"seller"`
}

type OrderItemInput struct {
	ID       string `json:"id"`
	Quantity int32  `json:"quantity"`
}

type OrderInput struct {
	Items  []*OrderItemInput `json:"items,omitempty"`
	Client *string           `json:"client,omitempty"`
	Status *OrderStatus      `json:"status,omitempty"`
}

type OrderStatus string

const (
	OrderStatusPendiente  OrderStatus = "PENDIENTE"
	OrderStatusCompletado OrderStatus = "COMPLETADO"
	OrderStatusCancelado  OrderStatus = "CANCELADO"
)

var AllOrderStatus = []OrderStatus{
	OrderStatusPendiente,
	OrderStatusCompletado,
	OrderStatusCancelado,
}

func (e OrderStatus) IsValid() bool {
	switch e {
	case OrderStatusPendiente, OrderStatusCompletado, OrderStatusCancelado:
		return true
	}
	return false
}

func (e OrderStatus) String() string {
	return string(e)
}

func (e *OrderStatus) UnmarshalGQL(v any) error {
	str, ok := v.(string)
	if !ok {
		return apperr.InvalidInput("enums must be strings")
	}

	*e = OrderStatus(str)
	if !e.IsValid() {
		return apperr.InvalidInput(fmt.Sprintf("%s is not a valid OrderStatus", str))
	}
	return nil
}

func (e OrderStatus) MarshalGQL(w io.Writer) {
	fmt.Fprint(w, strconv.Quote(e.String()))
}
