package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"fittrack/tracker/internal/service"
)

// SetupRoutes registers every endpoint under the /api prefix.
func SetupRoutes(
	router *gin.Engine,
	logger zerolog.Logger,
	workoutService service.WorkoutService,
	stepService service.StepService,
	statsService service.StatsService,
	exportService service.ExportService, // nil when exports are not configured
) {
	workoutHandler := NewWorkoutHandler(workoutService, logger)
	stepHandler := NewStepHandler(stepService, logger)
	statsHandler := NewStatsHandler(statsService, logger)
	catalogHandler := NewCatalogHandler()
	exportHandler := NewExportHandler(exportService, logger)

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Fitness Tracking API"})
		})

		workoutGroup := apiGroup.Group("/workouts")
		{
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			// Static route first so gin prefers it over the :id parameter.
			workoutGroup.GET("/stats/summary", statsHandler.Summary)
			workoutGroup.GET("/:id", workoutHandler.GetWorkout)
			workoutGroup.PUT("/:id", workoutHandler.UpdateWorkout)
			workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)
		}

		apiGroup.GET("/exercises", catalogHandler.ListTemplates)

		stepGroup := apiGroup.Group("/steps")
		{
			stepGroup.POST("", stepHandler.LogSteps)
			stepGroup.GET("", stepHandler.ListSteps)
		}

		apiGroup.POST("/exports", exportHandler.CreateExport)
	}
}
