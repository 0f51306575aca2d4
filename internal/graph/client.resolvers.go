package graph

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.

import (
	"context"

	"pedidos-be/internal/graph/model"
)

// CreateClient is the resolver for the createClient field.
func (r *mutationResolver) CreateClient(ctx context.Context, input model.ClientInput) (*model.Client, error) {
	c, err := r.ClientSvc.Create(ctx, toClientInput(input))
	if err != nil {
		return nil, err
	}
	return mapClient(c), nil
}

// UpdateClient is the resolver for the updateClient field.
func (r *mutationResolver) UpdateClient(ctx context.Context, id string, input model.ClientInput) (*model.Client, error) {
	c, err := r.ClientSvc.Update(ctx, id, toClientInput(input))
	if err != nil {
		return nil, err
	}
	return mapClient(c), nil
}

// DeleteClient is the resolver for the deleteClient field.
func (r *mutationResolver) DeleteClient(ctx context.Context, id string) (string, error) {
	if err := r.ClientSvc.Delete(ctx, id); err != nil {
		return "", err
	}
	return "Client deleted", nil
}

// ListClients is the resolver for the listClients field.
func (r *queryResolver) ListClients(ctx context.Context) ([]*model.Client, error) {
	clients, err := r.ClientSvc.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapClients(clients), nil
}

// ListClientsBySeller is the resolver for the listClientsBySeller field.
func (r *queryResolver) ListClientsBySeller(ctx context.Context) ([]*model.Client, error) {
	clients, err := r.ClientSvc.ListForSeller(ctx)
	if err != nil {
		return nil, err
	}
	return mapClients(clients), nil
}

// GetClient is the resolver for the getClient field.
func (r *queryResolver) GetClient(ctx context.Context, id string) (*model.Client, error) {
	c, err := r.ClientSvc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapClient(c), nil
}
