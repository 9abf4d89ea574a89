package serializer

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/ferd-app/ferd-server/internal/modules/model"
	"github.com/ferd-app/ferd-server/internal/modules/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSpot_RoundsRatingToOneDecimal(t *testing.T) {
	tests := []struct {
		name     string
		avg      float64
		expected float64
	}{
		{"no reviews is exactly zero", 0, 0},
		{"whole average stays whole", 4, 4.0},
		{"repeating decimal rounds", 3.6666666, 3.7},
		{"half rounds up", 4.25, 4.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := BuildSpot(repo.SpotWithRating{AvgRating: tt.avg})
			assert.Equal(t, tt.expected, s.AvgRating)
		})
	}
}

func TestBuildSpot_WireShape(t *testing.T) {
	url := "/static/uploads/20260801_120000_falls.png"
	row := repo.SpotWithRating{
		Spot: model.Spot{
			ID:          7,
			Name:        "Secret Falls",
			Description: "A hidden waterfall",
			Location:    "Hilltown",
			ImageURL:    &url,
			CreatedAt:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		},
		AvgRating:   4.0,
		ReviewCount: 3,
	}

	data, err := json.Marshal(BuildSpot(row))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))

	// the frontend expects camelCase keys
	for _, key := range []string{"id", "name", "description", "location", "imageUrl", "createdAt", "avgRating", "reviewCount"} {
		assert.Contains(t, m, key)
	}
	assert.Equal(t, "2026-08-01T12:00:00Z", m["createdAt"])
}

func TestBuildSpot_NullImageURL(t *testing.T) {
	data, err := json.Marshal(BuildSpot(repo.SpotWithRating{}))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"imageUrl":null`)
}

func TestBuildSpots_EmptyIsArrayNotNull(t *testing.T) {
	data, err := json.Marshal(BuildSpots(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestBuildReviews_EmptyIsArrayNotNull(t *testing.T) {
	data, err := json.Marshal(BuildReviews(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
