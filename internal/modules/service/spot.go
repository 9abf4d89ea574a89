package service

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/ferd-app/ferd-server/internal/infra/storage"
	"github.com/ferd-app/ferd-server/internal/modules/model"
	"github.com/ferd-app/ferd-server/internal/modules/repo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ImageStore is the slice of the upload store the spot service needs.
type ImageStore interface {
	AllowedExtension(filename string) bool
	Save(fh *multipart.FileHeader) (storedName string, url string, err error)
	Remove(url string) error
}

type CreateSpotInput struct {
	Name        string
	Description string
	Location    string
	Image       *multipart.FileHeader // optional
}

type SpotService interface {
	List(ctx context.Context) ([]repo.SpotWithRating, error)
	Create(ctx context.Context, in CreateSpotInput) (*model.Spot, error)
	Delete(ctx context.Context, id int64) error
}

type spotService struct {
	r     repo.SpotRepo
	store ImageStore
	log   *zap.Logger
}

func NewSpotService(r repo.SpotRepo, store ImageStore, log *zap.Logger) SpotService {
	return &spotService{r: r, store: store, log: log}
}

func (s *spotService) List(ctx context.Context) ([]repo.SpotWithRating, error) {
	return s.r.ListWithRatings(ctx)
}

// Create inserts a new spot. An attached image is stored only when both its
// extension and its content pass the upload policy; an image that fails the
// policy is skipped, not fatal. A failed insert removes the just-written
// file again so the row and the file stay consistent.
func (s *spotService) Create(ctx context.Context, in CreateSpotInput) (*model.Spot, error) {
	spot := &model.Spot{
		Name:        in.Name,
		Description: in.Description,
		Location:    in.Location,
	}

	if in.Image != nil && in.Image.Filename != "" && s.store.AllowedExtension(in.Image.Filename) {
		_, url, err := s.store.Save(in.Image)
		switch {
		case errors.Is(err, storage.ErrNotAnImage):
			s.log.Warn("skipping upload with non-image content",
				zap.String("filename", in.Image.Filename))
		case err != nil:
			return nil, err
		default:
			spot.ImageURL = &url
		}
	}

	if err := s.r.Create(ctx, spot); err != nil {
		if spot.ImageURL != nil {
			if rmErr := s.store.Remove(*spot.ImageURL); rmErr != nil {
				s.log.Warn("failed to remove orphaned upload",
					zap.String("url", *spot.ImageURL), zap.Error(rmErr))
			}
		}
		return nil, err
	}
	return spot, nil
}

// Delete removes the spot and its reviews, then unlinks the image file.
// File removal is best-effort: an unreferenced leftover file is harmless,
// a row pointing at a missing file is not.
func (s *spotService) Delete(ctx context.Context, id int64) error {
	spot, err := s.r.DeleteCascade(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSpotNotFound
		}
		return err
	}

	if spot.ImageURL != nil {
		if err := s.store.Remove(*spot.ImageURL); err != nil {
			s.log.Warn("failed to remove image for deleted spot",
				zap.Int64("spot_id", id), zap.Error(err))
		}
	}
	return nil
}
