package services

import (
	"testing"

	"github.com/flounder11/online-coffee-api/entity"
	"github.com/flounder11/online-coffee-api/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetail_RoundTripsCommittedOrder(t *testing.T) {
	db := newTestDB(t)
	fx := seedCatalog(t, db)
	checkout := newCheckoutService(db)
	orders := NewOrderService(repository.NewOrderRepository(db))

	committed, err := checkout.Checkout(&CheckoutReq{
		Items: []CartItemIn{
			{
				ProductID: fx.cappuccino.ID,
				Quantity:  2,
				Additives: []CartAdditiveIn{{ID: fx.syrup.ID, Quantity: 1}},
			},
			{ProductID: fx.baguette.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	detail, err := orders.Detail(committed.ID)
	require.NoError(t, err)

	assert.Equal(t, committed.ID, detail.ID)
	assert.Equal(t, int64(430), detail.Total)
	assert.Equal(t, 2, detail.ItemsCount)
	assert.Equal(t, entity.OrderStatusPending, detail.Status)
	require.Len(t, detail.Items, 2)

	first := detail.Items[0]
	assert.Equal(t, "Cappuccino", first.Title)
	assert.Equal(t, "/images/cappuccino.png", first.Img)
	assert.Equal(t, 2, first.Quantity)
	assert.Equal(t, int64(140), first.PriceAtTime)
	require.Len(t, first.Additives, 1)
	assert.Equal(t, "Vanilla Syrup", first.Additives[0].Title)
	assert.Equal(t, "syrups", first.Additives[0].Category)
	assert.Equal(t, int64(30), first.Additives[0].PriceAtTime)

	second := detail.Items[1]
	assert.Equal(t, "Baguette", second.Title)
	assert.Empty(t, second.Additives)
}

func TestDetail_PriceAtTimeSurvivesCatalogChanges(t *testing.T) {
	db := newTestDB(t)
	fx := seedCatalog(t, db)
	checkout := newCheckoutService(db)
	orders := NewOrderService(repository.NewOrderRepository(db))

	committed, err := checkout.Checkout(&CheckoutReq{
		Items: []CartItemIn{
			{
				ProductID: fx.cappuccino.ID,
				Quantity:  1,
				Additives: []CartAdditiveIn{{ID: fx.milk.ID}},
			},
		},
	})
	require.NoError(t, err)

	// catalog prices move after checkout
	require.NoError(t, db.Model(&entity.Product{}).Where("id = ?", fx.cappuccino.ID).Update("price", 999).Error)
	require.NoError(t, db.Model(&entity.Additive{}).Where("id = ?", fx.milk.ID).Update("price", 777).Error)

	detail, err := orders.Detail(committed.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(160), detail.Total)
	assert.Equal(t, int64(140), detail.Items[0].PriceAtTime)
	assert.Equal(t, int64(20), detail.Items[0].Additives[0].PriceAtTime)
}

func TestDetail_OrderNotFound(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(repository.NewOrderRepository(db))

	_, err := orders.Detail(42)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
