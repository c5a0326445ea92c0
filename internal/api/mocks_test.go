package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"fittrack/tracker/internal/domain"
	"fittrack/tracker/internal/service"
)

// stubWorkoutService returns canned values and records what it was called
// with.
type stubWorkoutService struct {
	workout  *domain.Workout
	workouts []domain.Workout
	err      error

	gotID    string
	gotDraft domain.WorkoutDraft
	gotRange domain.DateRange
	calls    int
}

func (s *stubWorkoutService) CreateWorkout(_ context.Context, draft domain.WorkoutDraft) (*domain.Workout, error) {
	s.calls++
	s.gotDraft = draft
	return s.workout, s.err
}

func (s *stubWorkoutService) ListWorkouts(_ context.Context, dates domain.DateRange) ([]domain.Workout, error) {
	s.calls++
	s.gotRange = dates
	return s.workouts, s.err
}

func (s *stubWorkoutService) GetWorkout(_ context.Context, id string) (*domain.Workout, error) {
	s.calls++
	s.gotID = id
	return s.workout, s.err
}

func (s *stubWorkoutService) UpdateWorkout(_ context.Context, id string, draft domain.WorkoutDraft) (*domain.Workout, error) {
	s.calls++
	s.gotID = id
	s.gotDraft = draft
	return s.workout, s.err
}

func (s *stubWorkoutService) DeleteWorkout(_ context.Context, id string) error {
	s.calls++
	s.gotID = id
	return s.err
}

type stubStepService struct {
	records []domain.StepRecord
	err     error

	gotDate  string
	gotSteps int
	gotRange domain.DateRange
}

func (s *stubStepService) LogSteps(_ context.Context, date string, steps int) error {
	s.gotDate = date
	s.gotSteps = steps
	return s.err
}

func (s *stubStepService) ListSteps(_ context.Context, dates domain.DateRange) ([]domain.StepRecord, error) {
	s.gotRange = dates
	return s.records, s.err
}

type stubStatsService struct {
	stats *domain.WorkoutStats
	err   error
}

func (s *stubStatsService) Summary(_ context.Context) (*domain.WorkoutStats, error) {
	return s.stats, s.err
}

type stubExportService struct {
	result *service.ExportResult
	err    error
}

func (s *stubExportService) ExportSnapshot(_ context.Context) (*service.ExportResult, error) {
	return s.result, s.err
}

// testRouter builds a gin engine with the full route table and the given
// stubs. Nil stubs register as nil services, matching how main wires a
// disabled export.
func testRouter(workouts *stubWorkoutService, steps *stubStepService, stats *stubStatsService, exports *stubExportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	var workoutService service.WorkoutService
	if workouts != nil {
		workoutService = workouts
	}
	var stepService service.StepService
	if steps != nil {
		stepService = steps
	}
	var statsService service.StatsService
	if stats != nil {
		statsService = stats
	}
	var exportService service.ExportService
	if exports != nil {
		exportService = exports
	}

	SetupRoutes(router, zerolog.Nop(), workoutService, stepService, statsService, exportService)
	return router
}
