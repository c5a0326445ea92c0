package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"fittrack/tracker/internal/domain"
	"fittrack/tracker/internal/service"
)

// StepHandler holds the step service dependency.
type StepHandler struct {
	stepService service.StepService
	logger      zerolog.Logger
}

// NewStepHandler creates a new StepHandler.
func NewStepHandler(stepService service.StepService, logger zerolog.Logger) *StepHandler {
	return &StepHandler{stepService: stepService, logger: logger}
}

// LogStepsRequest defines the expected JSON for logging steps. Steps is a
// pointer so a legitimate count of 0 passes the required check.
type LogStepsRequest struct {
	Date  string `json:"date" binding:"required,datetime=2006-01-02"`
	Steps *int   `json:"steps" binding:"required,gte=0"`
}

// StepRecordResponse is the DTO for returning a step record.
type StepRecordResponse struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Steps int    `json:"steps"`
}

// MapStepRecordsToResponse converts domain records to response DTOs.
func MapStepRecordsToResponse(records []domain.StepRecord) []StepRecordResponse {
	responses := make([]StepRecordResponse, len(records))
	for i, r := range records {
		responses[i] = StepRecordResponse{
			ID:    r.ID.Hex(),
			Date:  r.Date,
			Steps: r.Steps,
		}
	}
	return responses
}

// LogSteps handles POST /steps. Logging twice for the same date overwrites
// the earlier count.
func (h *StepHandler) LogSteps(c *gin.Context) {
	var req LogStepsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.stepService.LogSteps(c.Request.Context(), req.Date, *req.Steps); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Steps logged successfully", "steps": *req.Steps})
}

// ListSteps handles GET /steps with optional start_date/end_date.
func (h *StepHandler) ListSteps(c *gin.Context) {
	records, err := h.stepService.ListSteps(c.Request.Context(), dateRangeFromQuery(c))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, MapStepRecordsToResponse(records))
}
