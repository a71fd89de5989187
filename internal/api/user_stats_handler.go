package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fittracker/backend/internal/schema"
	"fittracker/backend/internal/service"
)

type UserStatsHandler struct {
	statsService service.UserStatsService
}

func NewUserStatsHandler(statsService service.UserStatsService) *UserStatsHandler {
	return &UserStatsHandler{statsService: statsService}
}

func (h *UserStatsHandler) GetUserStats(c *gin.Context) {
	stats, err := h.statsService.GetUserStats(c.Request.Context())
	if err != nil {
		abortWithInternalError(c, "Failed to fetch user stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// UpdateUserStats overwrites the given counters; lastWorkoutDate: null clears the date.
func (h *UserStatsHandler) UpdateUserStats(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user stats data")
		return
	}
	patch, err := schema.ParseUserStatsPatch(body)
	if err != nil {
		abortWithValidationError(c, "Invalid user stats data", err)
		return
	}

	stats, err := h.statsService.UpdateUserStats(c.Request.Context(), patch)
	if err != nil {
		abortWithInternalError(c, "Failed to update user stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
