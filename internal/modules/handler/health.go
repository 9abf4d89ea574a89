package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResp struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// HealthCheck godoc
//
//	@Summary		Health check
//	@Description	Liveness probe returning the current server time. Touches no state.
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	handler.HealthResp
//	@Router			/health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResp{
		Status:    "ok",
		Message:   "Ferd API is running!",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
