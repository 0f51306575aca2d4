package graph

import (
	"testing"
	"time"

	"pedidos-be/internal/apperr"
	"pedidos-be/internal/graph/model"
	"pedidos-be/internal/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToOrderInput(t *testing.T) {
	t.Run("NilItemsStayNil", func(t *testing.T) {
		in := toOrderInput(model.OrderInput{})
		assert.Nil(t, in.Items)
		assert.Nil(t, in.Status)
	})

	t.Run("EmptyItemsStayEmpty", func(t *testing.T) {
		in := toOrderInput(model.OrderInput{Items: []*model.OrderItemInput{}})
		assert.NotNil(t, in.Items)
		assert.Empty(t, in.Items)
	})

	t.Run("StatusConverted", func(t *testing.T) {
		s := model.OrderStatusCancelado
		in := toOrderInput(model.OrderInput{Status: &s})
		if assert.NotNil(t, in.Status) {
			assert.Equal(t, order.StatusCanceled, *in.Status)
		}
	})
}

func TestMapOrder(t *testing.T) {
	created := time.Date(2026, 5, 1, 12, 0, 0, 0, time.FixedZone("CST", -6*3600))

	o := mapOrder(order.Order{
		ID:        "o-1",
		ClientID:  "c-1",
		SellerID:  "s-1",
		Status:    order.StatusCompleted,
		Total:     decimal.RequireFromString("0.30"),
		CreatedAt: created,
	})

	assert.Equal(t, 0.3, o.Total)
	assert.Equal(t, "s-1", o.Seller)
	assert.NotNil(t, o.Items)
	assert.Equal(t, "2026-05-01T18:00:00Z", o.CreatedAt)
}

func TestOrderStatusUnmarshal(t *testing.T) {
	var s model.OrderStatus
	assert.NoError(t, s.UnmarshalGQL("COMPLETADO"))
	assert.Equal(t, model.OrderStatusCompletado, s)

	err := s.UnmarshalGQL("ENVIADO")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.EqualError(t, err, "ENVIADO is not a valid OrderStatus")
	assert.ErrorIs(t, s.UnmarshalGQL(3), apperr.ErrInvalidInput)
}
