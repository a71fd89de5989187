package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fittracker/backend/internal/schema"
	"fittracker/backend/internal/service"
)

type WorkoutHandler struct {
	workoutService service.WorkoutService
}

func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// ListWorkouts godoc
// @Summary List logged workouts, newest first
// @Tags Workouts
// @Produce json
// @Success 200 {array} domain.Workout
// @Failure 500 {object} gin.H
// @Router /workouts [get]
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	workouts, err := h.workoutService.ListWorkouts(c.Request.Context())
	if err != nil {
		abortWithInternalError(c, "Failed to fetch workouts", err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// GetWorkout godoc
// @Summary Get one workout
// @Tags Workouts
// @Produce json
// @Param id path string true "Workout ID"
// @Success 200 {object} domain.Workout
// @Failure 404 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /workouts/{id} [get]
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	workout, err := h.workoutService.GetWorkout(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found")
			return
		}
		abortWithInternalError(c, "Failed to fetch workout", err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// CreateWorkout godoc
// @Summary Log a workout
// @Description The server assigns id and date. Stats are updated as a side effect.
// @Tags Workouts
// @Accept json
// @Produce json
// @Success 201 {object} domain.Workout
// @Failure 400 {object} gin.H "Invalid workout data, with per-field errors"
// @Failure 500 {object} gin.H
// @Router /workouts [post]
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout data")
		return
	}
	in, err := schema.ParseInsertWorkout(body)
	if err != nil {
		abortWithValidationError(c, "Invalid workout data", err)
		return
	}

	workout, err := h.workoutService.CreateWorkout(c.Request.Context(), in)
	if err != nil {
		abortWithInternalError(c, "Failed to create workout", err)
		return
	}
	c.JSON(http.StatusCreated, workout)
}

// DeleteWorkout godoc
// @Summary Delete a workout
// @Description Stats are left as they are.
// @Tags Workouts
// @Param id path string true "Workout ID"
// @Success 204
// @Failure 404 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /workouts/{id} [delete]
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	if err := h.workoutService.DeleteWorkout(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found")
			return
		}
		abortWithInternalError(c, "Failed to delete workout", err)
		return
	}
	c.Status(http.StatusNoContent)
}
