package graph

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.

import (
	"context"

	"pedidos-be/internal/graph/model"
)

// CreateProduct is the resolver for the createProduct field.
func (r *mutationResolver) CreateProduct(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	p, err := r.ProductSvc.Create(ctx, toProductInput(input))
	if err != nil {
		return nil, err
	}
	return mapProduct(p), nil
}

// UpdateProduct is the resolver for the updateProduct field.
func (r *mutationResolver) UpdateProduct(ctx context.Context, id string, input model.ProductInput) (*model.Product, error) {
	p, err := r.ProductSvc.Update(ctx, id, toProductInput(input))
	if err != nil {
		return nil, err
	}
	return mapProduct(p), nil
}

// DeleteProduct is the resolver for the deleteProduct field.
func (r *mutationResolver) DeleteProduct(ctx context.Context, id string) (string, error) {
	if err := r.ProductSvc.Delete(ctx, id); err != nil {
		return "", err
	}
	return "Product deleted", nil
}

// ListProducts is the resolver for the listProducts field.
func (r *queryResolver) ListProducts(ctx context.Context) ([]*model.Product, error) {
	products, err := r.ProductSvc.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapProducts(products), nil
}

// GetProduct is the resolver for the getProduct field.
func (r *queryResolver) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := r.ProductSvc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapProduct(p), nil
}

// SearchProducts is the resolver for the searchProducts field.
func (r *queryResolver) SearchProducts(ctx context.Context, text string) ([]*model.Product, error) {
	products, err := r.ProductSvc.Search(ctx, text)
	if err != nil {
		return nil, err
	}
	return mapProducts(products), nil
}
