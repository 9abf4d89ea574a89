package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ferd-app/ferd-server/internal/modules/serializer"
	"github.com/ferd-app/ferd-server/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	svc service.ReviewService
}

func NewReviewHandler(s service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: s}
}

// ListReviews godoc
//
//	@Summary		List reviews for a spot
//	@Description	All reviews for the spot, newest first. An unknown spot id yields an empty array.
//	@Tags			reviews
//	@Produce		json
//	@Param			id	path		integer	true	"Spot ID"
//	@Success		200	{array}		serializer.Review
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/hidden-spots/{id}/reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	spotID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, serializer.Err("Resource not found", "", err))
		return
	}

	items, err := h.svc.ListBySpot(c.Request.Context(), spotID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.Err("Failed to fetch reviews", "", err))
		return
	}
	c.JSON(http.StatusOK, serializer.BuildReviews(items))
}

type CreateReviewReq struct {
	UserName string `json:"user_name"`
	Rating   *int   `json:"rating"`
	Comment  string `json:"comment"`
}

type CreateReviewResp struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// CreateReview godoc
//
//	@Summary		Add a review
//	@Description	Attach a rating and comment to an existing spot
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			id		path		integer				true	"Spot ID"
//	@Param			review	body		handler.CreateReviewReq	true	"Review payload"
//	@Success		201	{object}	handler.CreateReviewResp
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/hidden-spots/{id}/reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	spotID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, serializer.Err("Resource not found", "", err))
		return
	}

	var req CreateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		// a non-integer rating fails JSON decoding and lands here
		c.JSON(http.StatusBadRequest, serializer.Err("Invalid rating",
			"Rating must be an integer between 1 and 5", err))
		return
	}

	if req.UserName == "" || req.Rating == nil || req.Comment == "" {
		c.JSON(http.StatusBadRequest, serializer.Err("Missing required fields",
			"User name, rating, and comment are required", nil))
		return
	}
	if *req.Rating < 1 || *req.Rating > 5 {
		c.JSON(http.StatusBadRequest, serializer.Err("Invalid rating",
			"Rating must be between 1 and 5", nil))
		return
	}

	rv, err := h.svc.Create(c.Request.Context(), service.CreateReviewInput{
		SpotID:   spotID,
		UserName: req.UserName,
		Rating:   *req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		if errors.Is(err, service.ErrSpotNotFound) {
			c.JSON(http.StatusNotFound, serializer.Err("Spot not found", "", nil))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.Err("Failed to add review", "", err))
		return
	}

	c.JSON(http.StatusCreated, CreateReviewResp{
		Message: "Review added successfully!",
		ID:      rv.ID,
	})
}
