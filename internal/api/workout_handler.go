package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"fittrack/tracker/internal/domain"
	"fittrack/tracker/internal/service"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
	logger         zerolog.Logger
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService, logger zerolog.Logger) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService, logger: logger}
}

// --- DTOs for API (Data Transfer Objects) ---

// ExerciseSetRequest is one set within an exercise payload. Completed
// defaults to true when omitted.
type ExerciseSetRequest struct {
	Reps      int     `json:"reps" binding:"gte=0"`
	Weight    float64 `json:"weight" binding:"gte=0"`
	Completed *bool   `json:"completed"`
}

// ExerciseRequest is one exercise within a workout payload.
type ExerciseRequest struct {
	Name     string               `json:"name" binding:"required"`
	Category string               `json:"category"`
	Sets     []ExerciseSetRequest `json:"sets" binding:"dive"`
}

// WorkoutRequest defines the expected JSON for creating or replacing a
// workout. It never carries an id or created_at; those belong to the server.
type WorkoutRequest struct {
	Date      string            `json:"date" binding:"required,datetime=2006-01-02"`
	Exercises []ExerciseRequest `json:"exercises" binding:"required,dive"`
	Duration  *int              `json:"duration" binding:"omitempty,gte=0"` // minutes
	Notes     string            `json:"notes"`
}

// toDraft converts the request body into the domain draft.
func (r WorkoutRequest) toDraft() domain.WorkoutDraft {
	exercises := make([]domain.Exercise, len(r.Exercises))
	for i, ex := range r.Exercises {
		sets := make([]domain.ExerciseSet, len(ex.Sets))
		for j, set := range ex.Sets {
			completed := true
			if set.Completed != nil {
				completed = *set.Completed
			}
			sets[j] = domain.ExerciseSet{
				Reps:      set.Reps,
				Weight:    set.Weight,
				Completed: completed,
			}
		}
		exercises[i] = domain.Exercise{
			Name:     ex.Name,
			Category: ex.Category,
			Sets:     sets,
		}
	}
	return domain.WorkoutDraft{
		Date:      r.Date,
		Exercises: exercises,
		Duration:  r.Duration,
		Notes:     r.Notes,
	}
}

// WorkoutResponse is the DTO for returning workout details.
type WorkoutResponse struct {
	ID        string            `json:"id"`
	Date      string            `json:"date"`
	Exercises []domain.Exercise `json:"exercises"`
	Duration  *int              `json:"duration,omitempty"`
	Notes     string            `json:"notes,omitempty"`
	CreatedAt string            `json:"created_at"`
}

// MapWorkoutToResponse converts a domain.Workout to WorkoutResponse DTO.
func MapWorkoutToResponse(w *domain.Workout) WorkoutResponse {
	if w == nil {
		return WorkoutResponse{}
	}
	return WorkoutResponse{
		ID:        w.ID.Hex(),
		Date:      w.Date,
		Exercises: w.Exercises,
		Duration:  w.Duration,
		Notes:     w.Notes,
		CreatedAt: w.CreatedAt,
	}
}

// MapWorkoutsToResponse converts a slice of domain.Workout to response DTOs.
func MapWorkoutsToResponse(workouts []domain.Workout) []WorkoutResponse {
	responses := make([]WorkoutResponse, len(workouts))
	for i, w := range workouts {
		responses[i] = MapWorkoutToResponse(&w)
	}
	return responses
}

// dateRangeFromQuery reads the optional start_date/end_date query
// parameters. Whichever bound is present applies.
func dateRangeFromQuery(c *gin.Context) domain.DateRange {
	return domain.DateRange{
		Start: c.Query("start_date"),
		End:   c.Query("end_date"),
	}
}

// --- Handler Methods ---

// CreateWorkout handles POST /workouts.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	workout, err := h.workoutService.CreateWorkout(c.Request.Context(), req.toDraft())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, MapWorkoutToResponse(workout))
}

// ListWorkouts handles GET /workouts with optional start_date/end_date.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	workouts, err := h.workoutService.ListWorkouts(c.Request.Context(), dateRangeFromQuery(c))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, MapWorkoutsToResponse(workouts))
}

// GetWorkout handles GET /workouts/:id.
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	workout, err := h.workoutService.GetWorkout(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, MapWorkoutToResponse(workout))
}

// UpdateWorkout handles PUT /workouts/:id. The body is a full replacement
// payload; id and created_at are untouched.
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	workout, err := h.workoutService.UpdateWorkout(c.Request.Context(), c.Param("id"), req.toDraft())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, MapWorkoutToResponse(workout))
}

// DeleteWorkout handles DELETE /workouts/:id.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	if err := h.workoutService.DeleteWorkout(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workout deleted successfully"})
}
