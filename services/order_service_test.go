package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longkovipb52/TaloFood-App-sub000/entity"
	"github.com/longkovipb52/TaloFood-App-sub000/services"
)

func TestCreateOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	user := seedUser(t, db, "buyer@test.local")
	pho := seedFood(t, db, "Beef Pho", 50000)
	coffee := seedFood(t, db, "Iced Coffee", 25000)

	out, err := svc.Create(user.ID, &services.CreateOrderReq{
		Name: "Buyer", Phone: "0900000000", Address: "1 Test St",
		PaymentMethod: "COD",
		Lines: []services.OrderLineIn{
			{FoodID: pho.ID, Qty: 2, Price: 50000},
			{FoodID: coffee.ID, Qty: 1, Price: 25000},
		},
		Total: 125000,
	})
	require.NoError(t, err)
	require.NotZero(t, out.ID)
	assert.Equal(t, int64(125000), out.Total)

	var order entity.Order
	require.NoError(t, db.First(&order, out.ID).Error)
	assert.Equal(t, entity.StatusPendingConfirmation, order.Status)
	assert.Equal(t, user.ID, order.UserID)
	// delivery date placeholder equals the order date until delivery
	assert.WithinDuration(t, order.CreatedAt, order.DeliveryDate, time.Second)

	var lines []entity.OrderLine
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&lines).Error)
	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.Equal(t, user.ID, l.UserID)
	}

	assert.Equal(t, int64(2), foodByID(t, db, pho.ID).TotalSold)
	assert.Equal(t, int64(1), foodByID(t, db, coffee.ID).TotalSold)
}

func TestCreateOrderValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "buyer@test.local")
	pho := seedFood(t, db, "Beef Pho", 50000)

	cases := []struct {
		name  string
		lines []services.OrderLineIn
	}{
		{"empty lines", nil},
		{"zero qty", []services.OrderLineIn{{FoodID: pho.ID, Qty: 0, Price: 50000}}},
		{"negative qty", []services.OrderLineIn{{FoodID: pho.ID, Qty: -1, Price: 50000}}},
		{"unknown food", []services.OrderLineIn{{FoodID: 9999, Qty: 1, Price: 50000}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(user.ID, &services.CreateOrderReq{
				Name: "Buyer", Phone: "0", Address: "x",
				Lines: tc.lines, Total: 50000,
			})
			assert.ErrorIs(t, err, services.ErrValidation)
		})
	}

	// nothing persisted by the rejected attempts
	var count int64
	db.Model(&entity.Order{}).Count(&count)
	assert.Zero(t, count)
	assert.Zero(t, foodByID(t, db, pho.ID).TotalSold)
}

func TestCreateOrderRollsBackAsAUnit(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "buyer@test.local")
	pho := seedFood(t, db, "Beef Pho", 50000)

	// Make the line insert fail mid-transaction.
	require.NoError(t, db.Migrator().DropTable(&entity.OrderLine{}))

	_, err := svc.Create(user.ID, &services.CreateOrderReq{
		Name: "Buyer", Phone: "0", Address: "x",
		Lines: []services.OrderLineIn{{FoodID: pho.ID, Qty: 3, Price: 50000}},
		Total: 150000,
	})
	assert.ErrorIs(t, err, services.ErrTxFailed)

	// no header, no counter increment survived the rollback
	var count int64
	db.Model(&entity.Order{}).Count(&count)
	assert.Zero(t, count)
	assert.Zero(t, foodByID(t, db, pho.ID).TotalSold)
}

func TestTotalSoldAccumulatesAcrossOrders(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "buyer@test.local")
	pho := seedFood(t, db, "Beef Pho", 50000)

	quantities := []int{2, 1, 4}
	var want int64
	for _, q := range quantities {
		_, err := svc.Create(user.ID, &services.CreateOrderReq{
			Name: "Buyer", Phone: "0", Address: "x",
			Lines: []services.OrderLineIn{{FoodID: pho.ID, Qty: q, Price: 50000}},
			Total: int64(q) * 50000,
		})
		require.NoError(t, err)
		want += int64(q)
	}

	assert.Equal(t, want, foodByID(t, db, pho.ID).TotalSold)
}

func TestCreateOrderIdempotencyKey(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "buyer@test.local")
	pho := seedFood(t, db, "Beef Pho", 50000)

	req := &services.CreateOrderReq{
		Name: "Buyer", Phone: "0", Address: "x",
		Lines:          []services.OrderLineIn{{FoodID: pho.ID, Qty: 2, Price: 50000}},
		Total:          100000,
		IdempotencyKey: "client-key-1",
	}

	first, err := svc.Create(user.ID, req)
	require.NoError(t, err)

	replay, err := svc.Create(user.ID, req)
	require.NoError(t, err)
	assert.Equal(t, first.ID, replay.ID)

	// replay wrote nothing
	var count int64
	db.Model(&entity.Order{}).Count(&count)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, int64(2), foodByID(t, db, pho.ID).TotalSold)
}

func TestDetailForUser(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	buyer := seedUser(t, db, "buyer@test.local")
	other := seedUser(t, db, "other@test.local")
	pho := seedFood(t, db, "Beef Pho", 50000)

	orderID := placeOrder(t, svc, buyer.ID, pho.ID, 2)

	detail, err := svc.DetailForUser(buyer.ID, orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, detail.Order.ID)
	require.Len(t, detail.Lines, 1)
	assert.Equal(t, pho.ID, detail.Lines[0].FoodID)

	// someone else's order looks like it does not exist
	_, err = svc.DetailForUser(other.ID, orderID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	// a store failure is not disguised as a missing order
	require.NoError(t, db.Migrator().DropTable(&entity.Order{}))
	_, err = svc.DetailForUser(buyer.ID, orderID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrNotFound)
}
