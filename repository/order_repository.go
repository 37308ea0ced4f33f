package repository

import (
	"time"

	"github.com/longkovipb52/TaloFood-App-sub000/entity"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// FindByIdempotencyKey returns the order already created for key, if any.
func (r *OrderRepository) FindByIdempotencyKey(key string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("idempotency_key = ?", key).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID           uint               `json:"id"`
	Total        int64              `json:"total"`
	Status       entity.OrderStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
	DeliveryDate time.Time          `json:"deliveryDate"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, total, status, created_at, delivery_date").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// ListOrders is the admin view, optionally filtered by status and date range.
func (r *OrderRepository) ListOrders(status entity.OrderStatus, from, to *time.Time, page, limit int) ([]entity.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	filter := func(q *gorm.DB) *gorm.DB {
		if status != "" {
			q = q.Where("status = ?", status)
		}
		if from != nil {
			q = q.Where("created_at >= ?", *from)
		}
		if to != nil {
			q = q.Where("created_at < ?", *to)
		}
		return q
	}

	var total int64
	if err := filter(r.DB.Model(&entity.Order{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []entity.Order
	if err := filter(r.DB.Model(&entity.Order{})).
		Order("id DESC").Limit(limit).Offset(offset).Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateStatus applies the new status; when delivered is true the delivery
// date is stamped in the same UPDATE so the two can never diverge.
func (r *OrderRepository) UpdateStatus(tx *gorm.DB, orderID uint, status entity.OrderStatus, delivered bool) error {
	updates := map[string]any{"status": status}
	if delivered {
		updates["delivery_date"] = time.Now()
	}
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Updates(updates).Error
}

// ---------------- Order lines ----------------

func (r *OrderRepository) CreateOrderLine(tx *gorm.DB, l *entity.OrderLine) error {
	return tx.Create(l).Error
}

func (r *OrderRepository) GetOrderLines(orderID uint) ([]entity.OrderLine, error) {
	var lines []entity.OrderLine
	err := r.DB.Model(&entity.OrderLine{}).
		Select("id, qty, unit_price, food_id, order_id, user_id").
		Where("order_id = ?", orderID).
		Find(&lines).Error
	return lines, err
}

// FindReviewableLine resolves the order line a customer may review: it must
// belong to them, reference the food, and sit in a delivered (or paid) order.
func (r *OrderRepository) FindReviewableLine(userID, foodID, orderID uint) (*entity.OrderLine, error) {
	var line entity.OrderLine
	err := r.DB.
		Joins("JOIN orders ON orders.id = order_lines.order_id").
		Where("order_lines.user_id = ? AND order_lines.food_id = ? AND order_lines.order_id = ?", userID, foodID, orderID).
		Where("orders.status IN ?", []entity.OrderStatus{entity.StatusDelivered, entity.StatusPaid}).
		First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}
