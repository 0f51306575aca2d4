package graph

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.

import (
	"context"

	"pedidos-be/internal/apperr"
	"pedidos-be/internal/graph/model"
	"pedidos-be/internal/order"
)

// CreateOrder is the resolver for the createOrder field.
func (r *mutationResolver) CreateOrder(ctx context.Context, input model.OrderInput) (*model.Order, error) {
	o, err := r.OrderSvc.Create(ctx, toOrderInput(input))
	if err != nil {
		return nil, err
	}
	return mapOrder(o), nil
}

// UpdateOrder is the resolver for the updateOrder field.
func (r *mutationResolver) UpdateOrder(ctx context.Context, id string, input model.OrderInput) (*model.Order, error) {
	o, err := r.OrderSvc.Update(ctx, id, toOrderInput(input))
	if err != nil {
		return nil, err
	}
	return mapOrder(o), nil
}

// DeleteOrder is the resolver for the deleteOrder field.
func (r *mutationResolver) DeleteOrder(ctx context.Context, id string) (string, error) {
	if err := r.OrderSvc.Delete(ctx, id); err != nil {
		return "", err
	}
	return "Order deleted", nil
}

// Client is the resolver for the client field.
func (r *orderResolver) Client(ctx context.Context, obj *model.Order) (*model.Client, error) {
	c, err := r.ClientSvc.Lookup(ctx, obj.ClientID)
	if apperr.Is(err, apperr.CodeNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mapClient(c), nil
}

// ListOrders is the resolver for the listOrders field.
func (r *queryResolver) ListOrders(ctx context.Context) ([]*model.Order, error) {
	orders, err := r.OrderSvc.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapOrders(orders), nil
}

// ListOrdersBySeller is the resolver for the listOrdersBySeller field.
func (r *queryResolver) ListOrdersBySeller(ctx context.Context) ([]*model.Order, error) {
	orders, err := r.OrderSvc.ListForSeller(ctx)
	if err != nil {
		return nil, err
	}
	return mapOrders(orders), nil
}

// GetOrder is the resolver for the getOrder field.
func (r *queryResolver) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	o, err := r.OrderSvc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapOrder(o), nil
}

// ListOrdersByStatus is the resolver for the listOrdersByStatus field.
func (r *queryResolver) ListOrdersByStatus(ctx context.Context, status model.OrderStatus) ([]*model.Order, error) {
	orders, err := r.OrderSvc.ListByStatus(ctx, order.Status(status))
	if err != nil {
		return nil, err
	}
	return mapOrders(orders), nil
}

// TopClients is the resolver for the topClients field.
func (r *queryResolver) TopClients(ctx context.Context) ([]*model.TopClient, error) {
	top, err := r.OrderSvc.TopClients(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*model.TopClient, 0, len(top))
	for _, t := range top {
		out = append(out, &model.TopClient{Total: money(t.Total), Client: mapClient(t.Client)})
	}
	return out, nil
}

// TopSellers is the resolver for the topSellers field.
func (r *queryResolver) TopSellers(ctx context.Context) ([]*model.TopSeller, error) {
	top, err := r.OrderSvc.TopSellers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*model.TopSeller, 0, len(top))
	for _, t := range top {
		out = append(out, &model.TopSeller{Total: money(t.Total), Seller: mapUser(t.Seller)})
	}
	return out, nil
}

// Order returns OrderResolver implementation.
func (r *Resolver) Order() OrderResolver { return &orderResolver{r} }

type orderResolver struct{ *Resolver }
