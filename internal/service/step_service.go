package service

import (
	"context"
	"time"

	"fittrack/tracker/internal/domain"
	"fittrack/tracker/internal/repository"
)

// StepService owns daily step counts.
type StepService interface {
	// LogSteps upserts the step count for a date. Logging twice for the
	// same date keeps only the later value.
	LogSteps(ctx context.Context, date string, steps int) error
	ListSteps(ctx context.Context, dates domain.DateRange) ([]domain.StepRecord, error)
}

type stepService struct {
	stepRepo repository.StepRepository
}

// NewStepService creates a new instance of stepService.
func NewStepService(stepRepo repository.StepRepository) StepService {
	return &stepService{
		stepRepo: stepRepo,
	}
}

func (s *stepService) LogSteps(ctx context.Context, date string, steps int) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return ErrValidationFailed
	}
	if steps < 0 {
		return ErrValidationFailed
	}
	return s.stepRepo.Upsert(ctx, date, steps)
}

// ListSteps returns up to 100 step records in the date range, newest first.
func (s *stepService) ListSteps(ctx context.Context, dates domain.DateRange) ([]domain.StepRecord, error) {
	return s.stepRepo.List(ctx, dates, maxListResults)
}
