package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferd-app/ferd-server/internal/modules/model"
	"github.com/ferd-app/ferd-server/internal/modules/repo"
	"github.com/ferd-app/ferd-server/internal/modules/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSpotService is a mock implementation of service.SpotService
type MockSpotService struct {
	mock.Mock
}

func (m *MockSpotService) List(ctx context.Context) ([]repo.SpotWithRating, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repo.SpotWithRating), args.Error(1)
}

func (m *MockSpotService) Create(ctx context.Context, in service.CreateSpotInput) (*model.Spot, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Spot), args.Error(1)
}

func (m *MockSpotService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func multipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestSpotHandler_ListSpots(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(*MockSpotService)
		expectedStatus int
		check          func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "returns spots as camelCase array",
			setup: func(svc *MockSpotService) {
				svc.On("List", mock.Anything).Return([]repo.SpotWithRating{
					{
						Spot:        model.Spot{ID: 1, Name: "Secret Falls", Description: "A hidden waterfall", Location: "Hilltown"},
						AvgRating:   4.0,
						ReviewCount: 3,
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				var spots []map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &spots))
				require.Len(t, spots, 1)
				assert.Equal(t, "Secret Falls", spots[0]["name"])
				assert.Equal(t, float64(4), spots[0]["avgRating"])
				assert.Equal(t, float64(3), spots[0]["reviewCount"])
				assert.Nil(t, spots[0]["imageUrl"])
			},
		},
		{
			name: "empty listing is an empty array",
			setup: func(svc *MockSpotService) {
				svc.On("List", mock.Anything).Return([]repo.SpotWithRating{}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "[]", w.Body.String())
			},
		},
		{
			name: "storage fault maps to 500",
			setup: func(svc *MockSpotService) {
				svc.On("List", mock.Anything).Return(nil, errors.New("disk on fire"))
			},
			expectedStatus: http.StatusInternalServerError,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), "Failed to fetch spots")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockSpotService{}
			tt.setup(svc)

			router := setupTestRouter()
			router.GET("/api/hidden-spots", NewSpotHandler(svc).ListSpots)

			req := httptest.NewRequest("GET", "/api/hidden-spots", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.check(t, w)
			svc.AssertExpectations(t)
		})
	}
}

func TestSpotHandler_CreateSpot(t *testing.T) {
	tests := []struct {
		name           string
		fields         map[string]string
		setup          func(*MockSpotService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "valid submission",
			fields: map[string]string{
				"name":        "Secret Falls",
				"description": "A hidden waterfall",
				"location":    "Hilltown",
			},
			setup: func(svc *MockSpotService) {
				svc.On("Create", mock.Anything, mock.AnythingOfType("service.CreateSpotInput")).
					Return(&model.Spot{ID: 7, Name: "Secret Falls", Location: "Hilltown"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"id":7`,
		},
		{
			name: "missing location",
			fields: map[string]string{
				"name":        "Secret Falls",
				"description": "A hidden waterfall",
			},
			setup:          func(svc *MockSpotService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Missing required fields",
		},
		{
			name: "empty name counts as missing",
			fields: map[string]string{
				"name":        "",
				"description": "A hidden waterfall",
				"location":    "Hilltown",
			},
			setup:          func(svc *MockSpotService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Missing required fields",
		},
		{
			name: "service fault maps to 500",
			fields: map[string]string{
				"name":        "Secret Falls",
				"description": "A hidden waterfall",
				"location":    "Hilltown",
			},
			setup: func(svc *MockSpotService) {
				svc.On("Create", mock.Anything, mock.AnythingOfType("service.CreateSpotInput")).
					Return(nil, errors.New("insert failed"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Failed to add spot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockSpotService{}
			tt.setup(svc)

			router := setupTestRouter()
			router.POST("/api/hidden-spots", NewSpotHandler(svc).CreateSpot)

			body, contentType := multipartBody(t, tt.fields)
			req := httptest.NewRequest("POST", "/api/hidden-spots", body)
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestSpotHandler_DeleteSpot(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		setup          func(*MockSpotService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful deletion",
			id:   "7",
			setup: func(svc *MockSpotService) {
				svc.On("Delete", mock.Anything, int64(7)).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Spot deleted successfully",
		},
		{
			name: "unknown id",
			id:   "9999",
			setup: func(svc *MockSpotService) {
				svc.On("Delete", mock.Anything, int64(9999)).Return(service.ErrSpotNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "Spot not found",
		},
		{
			name:           "non-numeric id",
			id:             "abc",
			setup:          func(svc *MockSpotService) {},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "Resource not found",
		},
		{
			name: "storage fault maps to 500",
			id:   "7",
			setup: func(svc *MockSpotService) {
				svc.On("Delete", mock.Anything, int64(7)).Return(errors.New("locked"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Failed to delete spot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockSpotService{}
			tt.setup(svc)

			router := setupTestRouter()
			router.DELETE("/api/hidden-spots/:id", NewSpotHandler(svc).DeleteSpot)

			req := httptest.NewRequest("DELETE", "/api/hidden-spots/"+tt.id, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
