package graph

import (
	"context"
	"testing"

	"pedidos-be/internal/apperr"
	"pedidos-be/internal/client"
	"pedidos-be/internal/graph/model"
	"pedidos-be/internal/inventory"
	"pedidos-be/internal/order"
	"pedidos-be/internal/user"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutationResolver_CreateOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockOrderService)
		mr := &mutationResolver{&Resolver{OrderSvc: mockSvc}}
		ctx := context.Background()
		clientID := "c-1"

		mockSvc.On("Create", ctx, order.OrderInput{
			ClientID: &clientID,
			Items:    []inventory.Line{{ProductID: "p-1", Quantity: 2}},
		}).Return(order.Order{
			ID:       "o-1",
			ClientID: clientID,
			SellerID: "s-1",
			Status:   order.StatusPending,
			Total:    decimal.RequireFromString("21.50"),
			Items:    []order.Item{{ProductID: "p-1", Quantity: 2, Name: "Mouse", Price: decimal.RequireFromString("10.75")}},
		}, nil)

		res, err := mr.CreateOrder(ctx, model.OrderInput{
			Client: &clientID,
			Items:  []*model.OrderItemInput{{ID: "p-1", Quantity: 2}},
		})
		require.NoError(t, err)
		assert.Equal(t, model.OrderStatusPendiente, res.Status)
		assert.Equal(t, 21.5, res.Total)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "p-1", res.Items[0].ID)
		assert.Equal(t, 10.75, res.Items[0].Price)
		assert.Equal(t, "c-1", res.ClientID)
	})

	t.Run("InsufficientStock", func(t *testing.T) {
		mockSvc := new(MockOrderService)
		mr := &mutationResolver{&Resolver{OrderSvc: mockSvc}}
		ctx := context.Background()
		clientID := "c-1"

		mockSvc.On("Create", ctx, order.OrderInput{
			ClientID: &clientID,
			Items:    []inventory.Line{{ProductID: "p-1", Quantity: 50}},
		}).Return(order.Order{}, apperr.InsufficientStock("Mouse"))

		_, err := mr.CreateOrder(ctx, model.OrderInput{
			Client: &clientID,
			Items:  []*model.OrderItemInput{{ID: "p-1", Quantity: 50}},
		})
		assert.ErrorIs(t, err, apperr.ErrInsufficientStock)
	})
}

func TestMutationResolver_UpdateOrder(t *testing.T) {
	mockSvc := new(MockOrderService)
	mr := &mutationResolver{&Resolver{OrderSvc: mockSvc}}
	ctx := context.Background()
	done := model.OrderStatusCompletado
	want := order.StatusCompleted

	// No items in the input means the items are left alone.
	mockSvc.On("Update", ctx, "o-1", order.OrderInput{Status: &want}).
		Return(order.Order{ID: "o-1", Status: order.StatusCompleted}, nil)

	res, err := mr.UpdateOrder(ctx, "o-1", model.OrderInput{Status: &done})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCompletado, res.Status)
}

func TestMutationResolver_DeleteOrder(t *testing.T) {
	mockSvc := new(MockOrderService)
	mr := &mutationResolver{&Resolver{OrderSvc: mockSvc}}
	ctx := context.Background()
	mockSvc.On("Delete", ctx, "o-1").Return(nil)

	msg, err := mr.DeleteOrder(ctx, "o-1")
	require.NoError(t, err)
	assert.Equal(t, "Order deleted", msg)
}

func TestOrderResolver_Client(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		mockSvc := new(MockClientService)
		or := &orderResolver{&Resolver{ClientSvc: mockSvc}}
		ctx := context.Background()
		mockSvc.On("Lookup", ctx, "c-1").Return(client.Client{ID: "c-1", Name: "Ana"}, nil)

		res, err := or.Client(ctx, &model.Order{ClientID: "c-1"})
		require.NoError(t, err)
		assert.Equal(t, "Ana", res.Name)
	})

	t.Run("DeletedClientIsNull", func(t *testing.T) {
		mockSvc := new(MockClientService)
		or := &orderResolver{&Resolver{ClientSvc: mockSvc}}
		ctx := context.Background()
		mockSvc.On("Lookup", ctx, "c-9").Return(client.Client{}, client.ErrClientNotFound)

		res, err := or.Client(ctx, &model.Order{ClientID: "c-9"})
		assert.NoError(t, err)
		assert.Nil(t, res)
	})
}

func TestQueryResolver_Reports(t *testing.T) {
	t.Run("TopClients", func(t *testing.T) {
		mockSvc := new(MockOrderService)
		qr := &queryResolver{&Resolver{OrderSvc: mockSvc}}
		ctx := context.Background()
		mockSvc.On("TopClients", ctx).Return([]order.TopClient{
			{Total: decimal.NewFromInt(900), Client: client.Client{ID: "c-2"}},
			{Total: decimal.NewFromInt(120), Client: client.Client{ID: "c-1"}},
		}, nil)

		res, err := qr.TopClients(ctx)
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, 900.0, res[0].Total)
		assert.Equal(t, "c-2", res[0].Client.ID)
	})

	t.Run("TopSellers", func(t *testing.T) {
		mockSvc := new(MockOrderService)
		qr := &queryResolver{&Resolver{OrderSvc: mockSvc}}
		ctx := context.Background()
		mockSvc.On("TopSellers", ctx).Return([]order.TopSeller{
			{Total: decimal.NewFromInt(1000), Seller: user.User{ID: "s-1", Email: "eva@shop.com"}},
		}, nil)

		res, err := qr.TopSellers(ctx)
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "eva@shop.com", res[0].Seller.Email)
	})

	t.Run("ByStatus", func(t *testing.T) {
		mockSvc := new(MockOrderService)
		qr := &queryResolver{&Resolver{OrderSvc: mockSvc}}
		ctx := context.Background()
		mockSvc.On("ListByStatus", ctx, order.StatusCanceled).Return([]order.Order{{ID: "o-1"}}, nil)

		res, err := qr.ListOrdersByStatus(ctx, model.OrderStatusCancelado)
		require.NoError(t, err)
		assert.Len(t, res, 1)
	})
}

func TestQueryResolver_SellerOrders(t *testing.T) {
	t.Run("ListOrdersBySeller", func(t *testing.T) {
		mockSvc := new(MockOrderService)
		qr := &queryResolver{&Resolver{OrderSvc: mockSvc}}
		ctx := context.Background()
		mockSvc.On("ListForSeller", ctx).Return([]order.Order{
			{ID: "o-1", SellerID: "s-1", Status: order.StatusPending},
			{ID: "o-2", SellerID: "s-1", Status: order.StatusCanceled},
		}, nil)

		res, err := qr.ListOrdersBySeller(ctx)
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, model.OrderStatusCancelado, res[1].Status)
	})

	t.Run("GetOrder", func(t *testing.T) {
		mockSvc := new(MockOrderService)
		qr := &queryResolver{&Resolver{OrderSvc: mockSvc}}
		ctx := context.Background()
		mockSvc.On("Get", ctx, "o-1").Return(order.Order{
			ID: "o-1", ClientID: "c-1", SellerID: "s-1", Status: order.StatusCompleted,
			Total: decimal.RequireFromString("99.90"),
		}, nil)

		res, err := qr.GetOrder(ctx, "o-1")
		require.NoError(t, err)
		assert.Equal(t, 99.9, res.Total)
		assert.Equal(t, "s-1", res.Seller)
	})

	t.Run("GetOrderOfAnotherSeller", func(t *testing.T) {
		mockSvc := new(MockOrderService)
		qr := &queryResolver{&Resolver{OrderSvc: mockSvc}}
		ctx := context.Background()
		mockSvc.On("Get", ctx, "o-1").Return(order.Order{}, apperr.PermissionDenied("view this order"))

		res, err := qr.GetOrder(ctx, "o-1")
		assert.Nil(t, res)
		assert.ErrorIs(t, err, apperr.ErrPermissionDenied)
	})
}
