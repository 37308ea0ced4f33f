package services

import (
	"errors"
	"fmt"

	"github.com/longkovipb52/TaloFood-App-sub000/entity"
	"gorm.io/gorm"
)

// UpdateStatus is the administrative status setter. It accepts any
// recognized status regardless of the normal flow (admins may override),
// and stamps the delivery date in the same update when the order arrives
// at Delivered.
func (s *OrderService) UpdateStatus(orderID uint, status entity.OrderStatus) error {
	if !status.Recognized() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	_, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: order", ErrNotFound)
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.UpdateStatus(tx, orderID, status, status == entity.StatusDelivered)
	})
}

// Cancel lets the owning customer cancel an order that has not reached a
// terminal state. The sales counters are intentionally not reversed:
// cancellation is only legal before delivery, so the sale never completed
// from the counter's point of view.
func (s *OrderService) Cancel(orderID, userID uint) error {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: order", ErrNotFound)
		}
		return err
	}

	if !entity.CanTransition(o.Status, entity.StatusCancelled) {
		return fmt.Errorf("%w: cannot cancel a %s order", ErrInvalidTransition, o.Status)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.UpdateStatus(tx, o.ID, entity.StatusCancelled, false)
	})
}
