package service

import (
	"context"
	"errors"
	"time"

	"fittrack/tracker/internal/domain"
	"fittrack/tracker/internal/repository"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrValidationFailed = errors.New("workout validation failed")
)

// maxListResults caps every list operation. There is no pagination beyond
// this.
const maxListResults = 100

// dateLayout is the wire format of every calendar date in the system.
const dateLayout = "2006-01-02"

// WorkoutService owns the workout lifecycle. Identifiers enter as strings
// and are parsed at this boundary.
type WorkoutService interface {
	CreateWorkout(ctx context.Context, draft domain.WorkoutDraft) (*domain.Workout, error)
	ListWorkouts(ctx context.Context, dates domain.DateRange) ([]domain.Workout, error)
	GetWorkout(ctx context.Context, id string) (*domain.Workout, error)
	UpdateWorkout(ctx context.Context, id string, draft domain.WorkoutDraft) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, id string) error
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
	}
}

// validateDraft enforces the shape rules shared by create and update: a
// well-formed date, a present exercise list and a non-negative duration.
func validateDraft(draft domain.WorkoutDraft) error {
	if _, err := time.Parse(dateLayout, draft.Date); err != nil {
		return ErrValidationFailed
	}
	if draft.Exercises == nil {
		return ErrValidationFailed
	}
	if draft.Duration != nil && *draft.Duration < 0 {
		return ErrValidationFailed
	}
	for _, ex := range draft.Exercises {
		if ex.Name == "" {
			return ErrValidationFailed
		}
		for _, set := range ex.Sets {
			if set.Reps < 0 || set.Weight < 0 {
				return ErrValidationFailed
			}
		}
	}
	return nil
}

// CreateWorkout stores a new workout session. Multiple workouts may share a
// date; no duplicate detection is performed.
func (s *workoutService) CreateWorkout(ctx context.Context, draft domain.WorkoutDraft) (*domain.Workout, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	workout := &domain.Workout{
		Date:      draft.Date,
		Exercises: draft.Exercises,
		Duration:  draft.Duration,
		Notes:     draft.Notes,
	}

	workoutID, err := s.workoutRepo.Insert(ctx, workout)
	if err != nil {
		return nil, err
	}
	// Fetch again so the caller sees exactly what was stored.
	return s.workoutRepo.GetByID(ctx, workoutID)
}

// ListWorkouts returns up to 100 workouts in the date range, newest first.
func (s *workoutService) ListWorkouts(ctx context.Context, dates domain.DateRange) ([]domain.Workout, error) {
	return s.workoutRepo.List(ctx, dates, maxListResults)
}

// GetWorkout retrieves a single workout by its external id string.
func (s *workoutService) GetWorkout(ctx context.Context, id string) (*domain.Workout, error) {
	workoutID, err := domain.ParseWorkoutID(id)
	if err != nil {
		return nil, err
	}

	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

// UpdateWorkout replaces the mutable fields of an existing workout and
// returns the stored result. The id and created_at survive unchanged.
func (s *workoutService) UpdateWorkout(ctx context.Context, id string, draft domain.WorkoutDraft) (*domain.Workout, error) {
	workoutID, err := domain.ParseWorkoutID(id)
	if err != nil {
		return nil, err
	}
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	if err := s.workoutRepo.Replace(ctx, workoutID, draft); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return s.workoutRepo.GetByID(ctx, workoutID)
}

// DeleteWorkout removes a workout by its external id string.
func (s *workoutService) DeleteWorkout(ctx context.Context, id string) error {
	workoutID, err := domain.ParseWorkoutID(id)
	if err != nil {
		return err
	}

	if err := s.workoutRepo.Delete(ctx, workoutID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	return nil
}
