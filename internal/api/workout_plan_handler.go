package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"fittracker/backend/internal/domain"
	"fittracker/backend/internal/planner"
	"fittracker/backend/internal/schema"
	"fittracker/backend/internal/service"
)

type WorkoutPlanHandler struct {
	planService service.WorkoutPlanService
}

func NewWorkoutPlanHandler(planService service.WorkoutPlanService) *WorkoutPlanHandler {
	return &WorkoutPlanHandler{planService: planService}
}

// GeneratePlansRequest carries the generation preferences. Zero fields take
// the standard defaults.
type GeneratePlansRequest struct {
	FitnessLevel    string   `json:"fitness_level" binding:"omitempty,oneof=beginner intermediate advanced"`
	Goals           []string `json:"goals" binding:"omitempty,dive,required"`
	AvailableDays   int      `json:"available_days" binding:"omitempty,min=1,max=7"`
	WorkoutDuration int      `json:"workout_duration" binding:"omitempty,min=1"`
	Equipment       []string `json:"equipment" binding:"omitempty,dive,required"`
	Save            bool     `json:"save"`
}

type GeneratePlansResponse struct {
	RecommendedPlans []domain.NewWorkoutPlan `json:"recommended_plans"`
	SavedPlans       []domain.WorkoutPlan    `json:"saved_plans,omitempty"`
	Source           planner.Source          `json:"source"`
	Notice           string                  `json:"notice,omitempty"`
}

// ListWorkoutPlans godoc
// @Summary List the workout plan, by day of week
// @Tags WorkoutPlans
// @Produce json
// @Success 200 {array} domain.WorkoutPlan
// @Failure 500 {object} gin.H
// @Router /workout-plans [get]
func (h *WorkoutPlanHandler) ListWorkoutPlans(c *gin.Context) {
	plans, err := h.planService.ListWorkoutPlans(c.Request.Context())
	if err != nil {
		abortWithInternalError(c, "Failed to fetch workout plans", err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// ListWorkoutPlansByWeek godoc
// @Summary List the plans of one week
// @Tags WorkoutPlans
// @Produce json
// @Param week path int true "Week number, starting at 1"
// @Success 200 {array} domain.WorkoutPlan
// @Failure 400 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /workout-plans/week/{week} [get]
func (h *WorkoutPlanHandler) ListWorkoutPlansByWeek(c *gin.Context) {
	week, err := strconv.Atoi(c.Param("week"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid week %q", c.Param("week")))
		return
	}

	plans, err := h.planService.ListWorkoutPlansByWeek(c.Request.Context(), week)
	if err != nil {
		if errors.Is(err, service.ErrInvalidWeek) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithInternalError(c, "Failed to fetch workout plans", err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// GetWorkoutPlan godoc
// @Summary Get one plan entry
// @Tags WorkoutPlans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} domain.WorkoutPlan
// @Failure 404 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /workout-plans/{id} [get]
func (h *WorkoutPlanHandler) GetWorkoutPlan(c *gin.Context) {
	plan, err := h.planService.GetWorkoutPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrWorkoutPlanNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout plan not found")
			return
		}
		abortWithInternalError(c, "Failed to fetch workout plan", err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// CreateWorkoutPlan godoc
// @Summary Add a plan entry
// @Tags WorkoutPlans
// @Accept json
// @Produce json
// @Success 201 {object} domain.WorkoutPlan
// @Failure 400 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /workout-plans [post]
func (h *WorkoutPlanHandler) CreateWorkoutPlan(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout plan data")
		return
	}
	in, err := schema.ParseInsertWorkoutPlan(body)
	if err != nil {
		abortWithValidationError(c, "Invalid workout plan data", err)
		return
	}

	plan, err := h.planService.CreateWorkoutPlan(c.Request.Context(), in)
	if err != nil {
		abortWithInternalError(c, "Failed to create workout plan", err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// UpdateWorkoutPlan godoc
// @Summary Merge fields into a plan entry
// @Tags WorkoutPlans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} domain.WorkoutPlan
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /workout-plans/{id} [put]
func (h *WorkoutPlanHandler) UpdateWorkoutPlan(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout plan data")
		return
	}
	patch, err := schema.ParseWorkoutPlanPatch(body)
	if err != nil {
		abortWithValidationError(c, "Invalid workout plan data", err)
		return
	}

	plan, err := h.planService.UpdateWorkoutPlan(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutPlanNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout plan not found")
			return
		}
		abortWithInternalError(c, "Failed to update workout plan", err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// DeleteWorkoutPlan godoc
// @Summary Delete a plan entry
// @Tags WorkoutPlans
// @Param id path string true "Plan ID"
// @Success 204
// @Failure 404 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /workout-plans/{id} [delete]
func (h *WorkoutPlanHandler) DeleteWorkoutPlan(c *gin.Context) {
	if err := h.planService.DeleteWorkoutPlan(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrWorkoutPlanNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout plan not found")
			return
		}
		abortWithInternalError(c, "Failed to delete workout plan", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GenerateWorkoutPlans godoc
// @Summary Generate recommended plans
// @Description Falls back to two fixed plans when the generator is unavailable.
// @Description With "save": true the plans are also stored.
// @Tags WorkoutPlans
// @Accept json
// @Produce json
// @Param preferences body GeneratePlansRequest false "Generation preferences"
// @Success 200 {object} GeneratePlansResponse
// @Failure 400 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /workout-plans/generate [post]
func (h *WorkoutPlanHandler) GenerateWorkoutPlans(c *gin.Context) {
	var req GeneratePlansRequest
	body, err := readBody(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid generation preferences")
		return
	}
	// an empty body asks for the default preferences
	if len(bytes.TrimSpace(body)) > 0 {
		if err := binding.JSON.BindBody(body, &req); err != nil {
			abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
			return
		}
	}

	prefs := planner.Preferences{
		FitnessLevel:    req.FitnessLevel,
		Goals:           req.Goals,
		AvailableDays:   req.AvailableDays,
		WorkoutDuration: req.WorkoutDuration,
		Equipment:       req.Equipment,
	}
	generated, err := h.planService.GenerateWorkoutPlans(c.Request.Context(), prefs, req.Save)
	if err != nil {
		abortWithInternalError(c, "Failed to create workout plan", err)
		return
	}

	c.JSON(http.StatusOK, GeneratePlansResponse{
		RecommendedPlans: generated.Recommended,
		SavedPlans:       generated.Saved,
		Source:           generated.Source,
		Notice:           generated.Notice,
	})
}
