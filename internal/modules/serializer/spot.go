package serializer

import (
	"math"
	"time"

	"github.com/ferd-app/ferd-server/internal/modules/model"
	"github.com/ferd-app/ferd-server/internal/modules/repo"
)

// Spot is the camelCase wire shape the frontend consumes.
type Spot struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	ImageURL    *string `json:"imageUrl"`
	CreatedAt   string  `json:"createdAt"`
	AvgRating   float64 `json:"avgRating"`
	ReviewCount int64   `json:"reviewCount"`
}

func BuildSpot(row repo.SpotWithRating) Spot {
	return Spot{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Location:    row.Location,
		ImageURL:    row.ImageURL,
		CreatedAt:   row.CreatedAt.Format(time.RFC3339),
		AvgRating:   math.Round(row.AvgRating*10) / 10,
		ReviewCount: row.ReviewCount,
	}
}

// BuildSpots always yields a JSON array, never null.
func BuildSpots(rows []repo.SpotWithRating) []Spot {
	out := make([]Spot, 0, len(rows))
	for _, row := range rows {
		out = append(out, BuildSpot(row))
	}
	return out
}

// Review is the camelCase wire shape for a spot's review.
type Review struct {
	ID        int64  `json:"id"`
	UserName  string `json:"userName"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"createdAt"`
}

func BuildReview(rv model.Review) Review {
	return Review{
		ID:        rv.ID,
		UserName:  rv.UserName,
		Rating:    rv.Rating,
		Comment:   rv.Comment,
		CreatedAt: rv.CreatedAt.Format(time.RFC3339),
	}
}

func BuildReviews(items []model.Review) []Review {
	out := make([]Review, 0, len(items))
	for _, rv := range items {
		out = append(out, BuildReview(rv))
	}
	return out
}
