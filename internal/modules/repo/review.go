package repo

import (
	"context"

	"github.com/ferd-app/ferd-server/internal/modules/model"
	"gorm.io/gorm"
)

type ReviewRepo interface {
	ListBySpot(ctx context.Context, spotID int64) ([]model.Review, error)
	CreateForExistingSpot(ctx context.Context, rv *model.Review) error
}

type reviewRepo struct{ db *gorm.DB }

func NewReviewRepo(db *gorm.DB) ReviewRepo {
	return &reviewRepo{db: db}
}

func (r *reviewRepo) ListBySpot(ctx context.Context, spotID int64) ([]model.Review, error) {
	var items []model.Review
	err := r.db.WithContext(ctx).
		Where("spot_id = ?", spotID).
		Order("created_at DESC, id DESC").
		Find(&items).Error
	return items, err
}

// CreateForExistingSpot verifies the referenced spot inside the same
// transaction as the insert, so a concurrent spot deletion cannot slip in
// between the check and the write. Returns gorm.ErrRecordNotFound when the
// spot does not exist.
func (r *reviewRepo) CreateForExistingSpot(ctx context.Context, rv *model.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var spot model.Spot
		if err := tx.Select("id").First(&spot, rv.SpotID).Error; err != nil {
			return err
		}
		return tx.Create(rv).Error
	})
}
