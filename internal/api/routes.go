package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fittracker/backend/internal/service"
	"fittracker/backend/internal/telemetry/metrics"
)

// Services are the use cases served by the router.
type Services struct {
	Workouts     service.WorkoutService
	WorkoutPlans service.WorkoutPlanService
	UserStats    service.UserStatsService
	Exports      service.ExportService
	Auth         service.AuthService
	Predictor    CaloriePredictor
}

// MetricsParams enables the prometheus endpoint when Registry is set.
type MetricsParams struct {
	Manager  *metrics.Manager
	Registry *prometheus.Registry
	Path     string
}

// NewRouter builds a gin engine with the request middleware chain and every route.
func NewRouter(services Services, metricsParams MetricsParams) *gin.Engine {
	router := gin.New()
	if metricsParams.Manager != nil {
		router.Use(RequestMetrics(metricsParams.Manager))
	}
	router.Use(LogRequest(), PanicRecovery(metricsParams.Manager))

	if metricsParams.Registry != nil {
		path := metricsParams.Path
		if path == "" {
			path = "/metrics"
		}
		router.GET(path, gin.WrapH(promhttp.HandlerFor(metricsParams.Registry, promhttp.HandlerOpts{})))
	}

	SetupRoutes(router, services)
	return router
}

func SetupRoutes(router *gin.Engine, services Services) {
	workoutHandler := NewWorkoutHandler(services.Workouts)
	planHandler := NewWorkoutPlanHandler(services.WorkoutPlans)
	statsHandler := NewUserStatsHandler(services.UserStats)
	predictionHandler := NewPredictionHandler(services.Predictor)
	exportHandler := NewExportHandler(services.Exports)
	authHandler := NewAuthHandler(services.Auth)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.NoRoute(func(c *gin.Context) {
		abortWithError(c, http.StatusNotFound, "route not found")
	})

	apiGroup := router.Group("/api")
	{
		workouts := apiGroup.Group("/workouts")
		{
			workouts.GET("", workoutHandler.ListWorkouts)
			workouts.POST("", workoutHandler.CreateWorkout)
			workouts.GET("/:id", workoutHandler.GetWorkout)
			workouts.DELETE("/:id", workoutHandler.DeleteWorkout)
		}

		plans := apiGroup.Group("/workout-plans")
		{
			plans.GET("", planHandler.ListWorkoutPlans)
			plans.POST("", planHandler.CreateWorkoutPlan)
			plans.POST("/generate", planHandler.GenerateWorkoutPlans)
			plans.GET("/week/:week", planHandler.ListWorkoutPlansByWeek)
			plans.GET("/:id", planHandler.GetWorkoutPlan)
			plans.PUT("/:id", planHandler.UpdateWorkoutPlan)
			plans.DELETE("/:id", planHandler.DeleteWorkoutPlan)
		}

		apiGroup.GET("/user-stats", statsHandler.GetUserStats)
		apiGroup.PUT("/user-stats", statsHandler.UpdateUserStats)

		apiGroup.POST("/predict-calories", predictionHandler.PredictCalories)
		apiGroup.POST("/exports/workouts", exportHandler.ExportWorkouts)

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.Signup)
			authGroup.POST("/login", authHandler.Login)
		}

		protected := apiGroup.Group("")
		protected.Use(AuthMiddleware(services.Auth))
		{
			protected.GET("/me", authHandler.Me)
		}
	}
}
