package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"fittracker/backend/internal/domain"
	"fittracker/backend/internal/predictor"
)

// CaloriePredictor estimates burned calories. predictor.Client satisfies it.
type CaloriePredictor interface {
	Predict(ctx context.Context, req predictor.Request) predictor.Prediction
}

type PredictionHandler struct {
	predictor CaloriePredictor
}

func NewPredictionHandler(p CaloriePredictor) *PredictionHandler {
	return &PredictionHandler{predictor: p}
}

type PredictCaloriesRequest struct {
	WorkoutType domain.WorkoutType `json:"workout_type" binding:"required,oneof=cardio strength flexibility sports other"`
	Duration    int                `json:"duration" binding:"required,min=1"`
	Intensity   int                `json:"intensity" binding:"required,min=1,max=10"`
	WorkoutName string             `json:"workout_name"`
}

// PredictCalories godoc
// @Summary Estimate burned calories for a planned workout
// @Description Uses the prediction model when reachable, otherwise a fixed formula.
// @Tags Predictions
// @Accept json
// @Produce json
// @Param request body PredictCaloriesRequest true "Workout to estimate"
// @Success 200 {object} predictor.Prediction
// @Failure 400 {object} gin.H
// @Router /predict-calories [post]
func (h *PredictionHandler) PredictCalories(c *gin.Context) {
	var req PredictCaloriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	prediction := h.predictor.Predict(c.Request.Context(), predictor.Request{
		WorkoutType: req.WorkoutType,
		Duration:    req.Duration,
		Intensity:   req.Intensity,
		WorkoutName: req.WorkoutName,
	})
	c.JSON(http.StatusOK, prediction)
}
