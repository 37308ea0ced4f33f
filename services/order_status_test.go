package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longkovipb52/TaloFood-App-sub000/entity"
	"github.com/longkovipb52/TaloFood-App-sub000/services"
)

func placeOrder(t *testing.T, svc *services.OrderService, userID, foodID uint, qty int) uint {
	t.Helper()
	out, err := svc.Create(userID, &services.CreateOrderReq{
		Name: "Buyer", Phone: "0", Address: "x",
		Lines: []services.OrderLineIn{{FoodID: foodID, Qty: qty, Price: 50000}},
		Total: int64(qty) * 50000,
	})
	require.NoError(t, err)
	return out.ID
}

func TestUpdateStatusStampsDeliveryDate(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "buyer@test.local")
	pho := seedFood(t, db, "Beef Pho", 50000)
	orderID := placeOrder(t, svc, user.ID, pho.ID, 1)

	var before entity.Order
	require.NoError(t, db.First(&before, orderID).Error)
	placeholder := before.DeliveryDate

	// intermediate transitions leave the placeholder untouched
	require.NoError(t, svc.UpdateStatus(orderID, entity.StatusConfirmed))
	require.NoError(t, svc.UpdateStatus(orderID, entity.StatusOutForDelivery))
	var mid entity.Order
	require.NoError(t, db.First(&mid, orderID).Error)
	assert.True(t, mid.DeliveryDate.Equal(placeholder))

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, svc.UpdateStatus(orderID, entity.StatusDelivered))

	var after entity.Order
	require.NoError(t, db.First(&after, orderID).Error)
	assert.Equal(t, entity.StatusDelivered, after.Status)
	assert.True(t, after.DeliveryDate.After(placeholder))
}

func TestUpdateStatusRejectsUnknownValues(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "buyer@test.local")
	pho := seedFood(t, db, "Beef Pho", 50000)
	orderID := placeOrder(t, svc, user.ID, pho.ID, 1)

	err := svc.UpdateStatus(orderID, entity.OrderStatus("Shipped"))
	assert.ErrorIs(t, err, services.ErrInvalidStatus)

	err = svc.UpdateStatus(9999, entity.StatusConfirmed)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCancel(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "buyer@test.local")
	other := seedUser(t, db, "other@test.local")
	pho := seedFood(t, db, "Beef Pho", 50000)

	t.Run("owner cancels a pending order", func(t *testing.T) {
		orderID := placeOrder(t, svc, user.ID, pho.ID, 2)
		sold := foodByID(t, db, pho.ID).TotalSold

		require.NoError(t, svc.Cancel(orderID, user.ID))

		var o entity.Order
		require.NoError(t, db.First(&o, orderID).Error)
		assert.Equal(t, entity.StatusCancelled, o.Status)

		// counters are not reversed on cancellation
		assert.Equal(t, sold, foodByID(t, db, pho.ID).TotalSold)

		// second cancel hits the terminal state
		err := svc.Cancel(orderID, user.ID)
		assert.ErrorIs(t, err, services.ErrInvalidTransition)
	})

	t.Run("cancel fails once delivered", func(t *testing.T) {
		orderID := placeOrder(t, svc, user.ID, pho.ID, 1)
		require.NoError(t, svc.UpdateStatus(orderID, entity.StatusDelivered))

		err := svc.Cancel(orderID, user.ID)
		assert.ErrorIs(t, err, services.ErrInvalidTransition)
	})

	t.Run("cancel succeeds out for delivery", func(t *testing.T) {
		orderID := placeOrder(t, svc, user.ID, pho.ID, 1)
		require.NoError(t, svc.UpdateStatus(orderID, entity.StatusOutForDelivery))
		assert.NoError(t, svc.Cancel(orderID, user.ID))
	})

	t.Run("non-owner sees not found", func(t *testing.T) {
		orderID := placeOrder(t, svc, user.ID, pho.ID, 1)
		err := svc.Cancel(orderID, other.ID)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}
