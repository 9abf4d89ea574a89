package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ferd-app/ferd-server/internal/modules/serializer"
	"github.com/ferd-app/ferd-server/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type SpotHandler struct {
	svc service.SpotService
}

func NewSpotHandler(s service.SpotService) *SpotHandler {
	return &SpotHandler{svc: s}
}

// ListSpots godoc
//
//	@Summary		List hidden spots
//	@Description	All spots, newest first, each with its average rating and review count
//	@Tags			spots
//	@Produce		json
//	@Success		200	{array}		serializer.Spot
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/hidden-spots [get]
func (h *SpotHandler) ListSpots(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.Err("Failed to fetch spots", "", err))
		return
	}
	c.JSON(http.StatusOK, serializer.BuildSpots(rows))
}

type CreateSpotReq struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description" binding:"required"`
	Location    string `form:"location" binding:"required"`
}

type CreateSpotResp struct {
	Message  string `json:"message"`
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// CreateSpot godoc
//
//	@Summary		Add a hidden spot
//	@Description	Create a spot from a multipart form with an optional image file
//	@Tags			spots
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name		formData	string	true	"Spot name"
//	@Param			description	formData	string	true	"Spot description"
//	@Param			location	formData	string	true	"Spot location"
//	@Param			image		formData	file	false	"Image (png, jpg, jpeg, gif, webp)"
//	@Success		201	{object}	handler.CreateSpotResp
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/hidden-spots [post]
func (h *SpotHandler) CreateSpot(c *gin.Context) {
	req := CreateSpotReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err("Missing required fields",
			"Name, description, and location are required", err))
		return
	}

	// the image is optional; whether it is acceptable is decided by the
	// upload policy in the service
	file, err := c.FormFile("image")
	if err != nil {
		file = nil
	}

	spot, err := h.svc.Create(c.Request.Context(), service.CreateSpotInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Image:       file,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.Err("Failed to add spot", "", err))
		return
	}

	c.JSON(http.StatusCreated, CreateSpotResp{
		Message:  "Spot added successfully!",
		ID:       spot.ID,
		Name:     spot.Name,
		Location: spot.Location,
	})
}

// DeleteSpot godoc
//
//	@Summary		Delete a hidden spot
//	@Description	Remove a spot and all of its reviews; the upload, if any, is unlinked
//	@Tags			spots
//	@Produce		json
//	@Param			id	path		integer	true	"Spot ID"
//	@Success		200	{object}	serializer.MessageResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/hidden-spots/{id} [delete]
func (h *SpotHandler) DeleteSpot(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, serializer.Err("Resource not found", "", err))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrSpotNotFound) {
			c.JSON(http.StatusNotFound, serializer.Err("Spot not found", "", nil))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.Err("Failed to delete spot", "", err))
		return
	}

	c.JSON(http.StatusOK, serializer.MessageResponse{Message: "Spot deleted successfully"})
}
