package repo

import (
	"context"

	"github.com/ferd-app/ferd-server/internal/modules/model"
	"gorm.io/gorm"
)

// SpotWithRating is one listing row: the spot plus its review aggregates,
// computed at query time and never stored.
type SpotWithRating struct {
	model.Spot
	AvgRating   float64 `json:"avg_rating"`
	ReviewCount int64   `json:"review_count"`
}

type SpotRepo interface {
	ListWithRatings(ctx context.Context) ([]SpotWithRating, error)
	Create(ctx context.Context, s *model.Spot) error
	GetByID(ctx context.Context, id int64) (*model.Spot, error)
	DeleteCascade(ctx context.Context, id int64) (*model.Spot, error)
}

type spotRepo struct{ db *gorm.DB }

func NewSpotRepo(db *gorm.DB) SpotRepo {
	return &spotRepo{db: db}
}

func (r *spotRepo) ListWithRatings(ctx context.Context) ([]SpotWithRating, error) {
	var rows []SpotWithRating
	err := r.db.WithContext(ctx).
		Model(&model.Spot{}).
		Select("spots.*, COALESCE(AVG(reviews.rating), 0) AS avg_rating, COUNT(reviews.id) AS review_count").
		Joins("LEFT JOIN reviews ON reviews.spot_id = spots.id").
		Group("spots.id").
		// id breaks ties within the same second, keeping newest-first strict
		Order("spots.created_at DESC, spots.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *spotRepo) Create(ctx context.Context, s *model.Spot) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *spotRepo) GetByID(ctx context.Context, id int64) (*model.Spot, error) {
	var s model.Spot
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteCascade removes the spot and all of its reviews in one transaction
// and returns the deleted row so callers can clean up the image file.
// Returns gorm.ErrRecordNotFound when the spot does not exist.
func (r *spotRepo) DeleteCascade(ctx context.Context, id int64) (*model.Spot, error) {
	var s model.Spot
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&s, id).Error; err != nil {
			return err
		}
		if err := tx.Where("spot_id = ?", id).Delete(&model.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Spot{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}
