package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/longkovipb52/TaloFood-App-sub000/entity"
	"github.com/longkovipb52/TaloFood-App-sub000/repository"
	"gorm.io/gorm"
)

type ReviewService struct {
	Repo      *repository.ReviewRepository
	OrderRepo *repository.OrderRepository
}

func NewReviewService(repo *repository.ReviewRepository, orderRepo *repository.OrderRepository) *ReviewService {
	return &ReviewService{Repo: repo, OrderRepo: orderRepo}
}

type SubmitReviewReq struct {
	FoodID  uint   `json:"foodId"`
	OrderID uint   `json:"orderId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type SubmitReviewRes struct {
	Review  entity.Review `json:"review"`
	Updated bool          `json:"updated"`
}

// Submit creates or overwrites the review for the purchased order line.
// A customer may only review what they have received: the line must belong
// to them and its order must be delivered. At most one review per line; the
// composite unique index is the arbiter under concurrent submissions, a
// duplicate-key insert is simply the update signal.
func (s *ReviewService) Submit(userID uint, req *SubmitReviewReq) (*SubmitReviewRes, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be 1..5", ErrValidation)
	}

	line, err := s.OrderRepo.FindReviewableLine(userID, req.FoodID, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: you can only review delivered purchases", ErrForbidden)
		}
		return nil, err
	}

	res, err := s.upsertForLine(userID, req, line.ID)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.RecalcAverage(req.FoodID); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ReviewService) upsertForLine(userID uint, req *SubmitReviewReq, lineID uint) (*SubmitReviewRes, error) {
	if existing, err := s.Repo.FindByOrderLine(lineID); err == nil {
		existing.Rating = req.Rating
		existing.Comment = req.Comment
		existing.ReviewDate = time.Now()
		if err := s.Repo.Save(existing); err != nil {
			return nil, err
		}
		return &SubmitReviewRes{Review: *existing, Updated: true}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rev := entity.Review{
		Rating:      req.Rating,
		Comment:     req.Comment,
		ReviewDate:  time.Now(),
		UserID:      userID,
		FoodID:      req.FoodID,
		OrderLineID: &lineID,
	}
	if err := s.Repo.Create(&rev); err != nil {
		// Lost the race against a concurrent submit for the same line;
		// the constraint tells us to update instead.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.upsertForLine(userID, req, lineID)
		}
		return nil, err
	}
	return &SubmitReviewRes{Review: rev, Updated: false}, nil
}

// EditOwn updates a review from the user's own history, bypassing the
// order-linkage check but never the ownership check.
func (s *ReviewService) EditOwn(reviewID, userID uint, rating int, comment string) (*entity.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be 1..5", ErrValidation)
	}

	rev, err := s.Repo.Get(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: review", ErrNotFound)
		}
		return nil, err
	}
	if rev.UserID != userID {
		return nil, fmt.Errorf("%w: not your review", ErrForbidden)
	}

	rev.Rating = rating
	rev.Comment = comment
	rev.ReviewDate = time.Now()
	if err := s.Repo.Save(rev); err != nil {
		return nil, err
	}

	if err := s.Repo.RecalcAverage(rev.FoodID); err != nil {
		return nil, err
	}
	return rev, nil
}

// Delete removes the user's own review. Admin deletions go through
// DeleteAny instead.
func (s *ReviewService) Delete(reviewID, userID uint) error {
	rev, err := s.Repo.Get(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: review", ErrNotFound)
		}
		return err
	}
	if rev.UserID != userID {
		return fmt.Errorf("%w: not your review", ErrForbidden)
	}
	return s.remove(rev)
}

// DeleteAny removes any review, regardless of owner.
func (s *ReviewService) DeleteAny(reviewID uint) error {
	rev, err := s.Repo.Get(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: review", ErrNotFound)
		}
		return err
	}
	return s.remove(rev)
}

func (s *ReviewService) remove(rev *entity.Review) error {
	if err := s.Repo.Delete(rev); err != nil {
		return err
	}
	return s.Repo.RecalcAverage(rev.FoodID)
}

// ----- Reads -----

func (s *ReviewService) ListForFood(foodID uint, limit, offset int) ([]entity.Review, error) {
	return s.Repo.ListForFood(foodID, limit, offset)
}

func (s *ReviewService) ListForUser(userID uint, limit, offset int) ([]entity.Review, error) {
	return s.Repo.ListForUser(userID, limit, offset)
}
