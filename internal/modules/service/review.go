package service

import (
	"context"
	"errors"

	"github.com/ferd-app/ferd-server/internal/modules/model"
	"github.com/ferd-app/ferd-server/internal/modules/repo"
	"gorm.io/gorm"
)

type CreateReviewInput struct {
	SpotID   int64
	UserName string
	Rating   int
	Comment  string
}

type ReviewService interface {
	ListBySpot(ctx context.Context, spotID int64) ([]model.Review, error)
	Create(ctx context.Context, in CreateReviewInput) (*model.Review, error)
}

type reviewService struct {
	r repo.ReviewRepo
}

func NewReviewService(r repo.ReviewRepo) ReviewService {
	return &reviewService{r: r}
}

// ListBySpot returns the spot's reviews, newest first. An unknown spot id
// simply yields an empty list.
func (s *reviewService) ListBySpot(ctx context.Context, spotID int64) ([]model.Review, error) {
	return s.r.ListBySpot(ctx, spotID)
}

func (s *reviewService) Create(ctx context.Context, in CreateReviewInput) (*model.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, ErrInvalidRating
	}

	rv := &model.Review{
		SpotID:   in.SpotID,
		UserName: in.UserName,
		Rating:   in.Rating,
		Comment:  in.Comment,
	}
	if err := s.r.CreateForExistingSpot(ctx, rv); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpotNotFound
		}
		return nil, err
	}
	return rv, nil
}
