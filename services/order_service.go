package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/longkovipb52/TaloFood-App-sub000/entity"
	"github.com/longkovipb52/TaloFood-App-sub000/repository"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	FoodRepo *repository.FoodRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, foodRepo *repository.FoodRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, FoodRepo: foodRepo}
}

// ----- DTOs from Controller -----

type OrderLineIn struct {
	FoodID uint  `json:"foodId"`
	Qty    int   `json:"qty"`
	Price  int64 `json:"price"`
}

type CreateOrderReq struct {
	Name           string        `json:"name"`
	Phone          string        `json:"phone"`
	Address        string        `json:"address"`
	PaymentMethod  string        `json:"paymentMethod"`
	Lines          []OrderLineIn `json:"lines"`
	Total          int64         `json:"total"`
	IdempotencyKey string        `json:"idempotencyKey"`
}

type CreateOrderRes struct {
	ID    uint  `json:"id"`
	Total int64 `json:"total"`
}

// Create places an order: one transaction writes the header, every line
// with its snapshotted price, and the per-food sales counters. Any failure
// rolls the whole thing back; nothing partial is ever visible.
func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*CreateOrderRes, error) {
	if len(req.Lines) == 0 {
		return nil, fmt.Errorf("%w: lines is required", ErrValidation)
	}
	foodIDs := make([]uint, 0, len(req.Lines))
	for _, l := range req.Lines {
		if l.Qty <= 0 {
			return nil, fmt.Errorf("%w: qty must be positive", ErrValidation)
		}
		foodIDs = append(foodIDs, l.FoodID)
	}

	ok, err := s.FoodRepo.AllExist(foodIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTxFailed, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: food not found", ErrValidation)
	}

	// A replayed request with the same token returns the original order.
	var idemKey *string
	if req.IdempotencyKey != "" {
		if prev, err := s.Repo.FindByIdempotencyKey(req.IdempotencyKey); err == nil {
			return &CreateOrderRes{ID: prev.ID, Total: prev.Total}, nil
		}
		k := req.IdempotencyKey
		idemKey = &k
	}

	var out CreateOrderRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			Total:         req.Total,
			Status:        entity.StatusPendingConfirmation,
			Name:          req.Name,
			Phone:         req.Phone,
			Address:       req.Address,
			PaymentMethod: req.PaymentMethod,
			// Placeholder until actual delivery overwrites it.
			DeliveryDate:   time.Now(),
			UserID:         userID,
			IdempotencyKey: idemKey,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, l := range req.Lines {
			line := entity.OrderLine{
				Qty:       l.Qty,
				UnitPrice: l.Price, // snapshot, never re-read from Food
				OrderID:   order.ID,
				FoodID:    l.FoodID,
				UserID:    userID,
			}
			if err := s.Repo.CreateOrderLine(tx, &line); err != nil {
				return err
			}
			if err := s.FoodRepo.IncrementTotalSold(tx, l.FoodID, l.Qty); err != nil {
				return err
			}
		}

		out = CreateOrderRes{ID: order.ID, Total: order.Total}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTxFailed, err)
	}
	return &out, nil
}

// ----- List & Detail -----

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

type OrderDetail struct {
	Order entity.Order       `json:"order"`
	Lines []entity.OrderLine `json:"lines"`
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: order", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	lines, err := s.Repo.GetOrderLines(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Lines: lines}, nil
}
