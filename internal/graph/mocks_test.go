package graph

import (
	"context"

	"pedidos-be/internal/client"
	"pedidos-be/internal/order"
	"pedidos-be/internal/product"
	"pedidos-be/internal/user"

	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, input user.CreateUserInput) (user.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (string, user.User, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Get(1).(user.User), args.Error(2)
}

func (m *MockUserService) GetByID(ctx context.Context, id string) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) products(args mock.Arguments) ([]product.Product, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockProductService) List(ctx context.Context) ([]product.Product, error) {
	return m.products(m.Called(ctx))
}

func (m *MockProductService) GetByID(ctx context.Context, id string) (product.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(product.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, input product.ProductInput) (product.Product, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(product.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, id string, input product.ProductInput) (product.Product, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(product.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductService) Search(ctx context.Context, text string) ([]product.Product, error) {
	return m.products(m.Called(ctx, text))
}

type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) clients(args mock.Arguments) ([]client.Client, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]client.Client), args.Error(1)
}

func (m *MockClientService) List(ctx context.Context) ([]client.Client, error) {
	return m.clients(m.Called(ctx))
}

func (m *MockClientService) ListForSeller(ctx context.Context) ([]client.Client, error) {
	return m.clients(m.Called(ctx))
}

func (m *MockClientService) Get(ctx context.Context, id string) (client.Client, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(client.Client), args.Error(1)
}

func (m *MockClientService) Lookup(ctx context.Context, id string) (client.Client, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(client.Client), args.Error(1)
}

func (m *MockClientService) Create(ctx context.Context, input client.ClientInput) (client.Client, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(client.Client), args.Error(1)
}

func (m *MockClientService) Update(ctx context.Context, id string, input client.ClientInput) (client.Client, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(client.Client), args.Error(1)
}

func (m *MockClientService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) orders(args mock.Arguments) ([]order.Order, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context) ([]order.Order, error) {
	return m.orders(m.Called(ctx))
}

func (m *MockOrderService) ListForSeller(ctx context.Context) ([]order.Order, error) {
	return m.orders(m.Called(ctx))
}

func (m *MockOrderService) ListByStatus(ctx context.Context, status order.Status) ([]order.Order, error) {
	return m.orders(m.Called(ctx, status))
}

func (m *MockOrderService) Get(ctx context.Context, id string) (order.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(order.Order), args.Error(1)
}

func (m *MockOrderService) Create(ctx context.Context, input order.OrderInput) (order.Order, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(order.Order), args.Error(1)
}

func (m *MockOrderService) Update(ctx context.Context, id string, input order.OrderInput) (order.Order, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(order.Order), args.Error(1)
}

func (m *MockOrderService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderService) TopClients(ctx context.Context) ([]order.TopClient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.TopClient), args.Error(1)
}

func (m *MockOrderService) TopSellers(ctx context.Context) ([]order.TopSeller, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.TopSeller), args.Error(1)
}
