package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fittracker/backend/internal/service"
)

type ExportHandler struct {
	exportService service.ExportService
}

func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportWorkouts godoc
// @Summary Export the workout history to object storage
// @Tags Exports
// @Produce json
// @Success 201 {object} service.ExportResult
// @Failure 503 {object} gin.H "Object storage is not configured"
// @Failure 500 {object} gin.H
// @Router /exports/workouts [post]
func (h *ExportHandler) ExportWorkouts(c *gin.Context) {
	result, err := h.exportService.ExportWorkouts(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrExportDisabled) {
			abortWithError(c, http.StatusServiceUnavailable, "Workout export is not enabled")
			return
		}
		abortWithInternalError(c, "Failed to export workouts", err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
