package service

import (
	"context"
	"errors"
	"time"

	"fittrack/tracker/internal/domain"
	"fittrack/tracker/internal/repository"
)

// StatsService computes summary statistics over the live store. Every call
// recomputes from scratch; nothing is cached.
type StatsService interface {
	Summary(ctx context.Context) (*domain.WorkoutStats, error)
}

type statsService struct {
	workoutRepo repository.WorkoutRepository
	stepRepo    repository.StepRepository
	now         func() time.Time
}

// NewStatsService creates a new instance of statsService.
func NewStatsService(workoutRepo repository.WorkoutRepository, stepRepo repository.StepRepository) StatsService {
	return &statsService{
		workoutRepo: workoutRepo,
		stepRepo:    stepRepo,
		now:         time.Now,
	}
}

// Summary computes the stats as of the server's current UTC date. The week
// and month windows are the last 7 and 30 days, inclusive, compared as ISO
// date strings.
func (s *statsService) Summary(ctx context.Context) (*domain.WorkoutStats, error) {
	today := s.now().UTC()
	todayStr := today.Format(dateLayout)
	weekAgo := today.AddDate(0, 0, -7).Format(dateLayout)
	monthAgo := today.AddDate(0, 0, -30).Format(dateLayout)

	totalWorkouts, err := s.workoutRepo.Count(ctx, domain.DateRange{})
	if err != nil {
		return nil, err
	}
	workoutsThisWeek, err := s.workoutRepo.Count(ctx, domain.DateRange{Start: weekAgo})
	if err != nil {
		return nil, err
	}
	workoutsThisMonth, err := s.workoutRepo.Count(ctx, domain.DateRange{Start: monthAgo})
	if err != nil {
		return nil, err
	}
	totalDuration, err := s.workoutRepo.SumDuration(ctx)
	if err != nil {
		return nil, err
	}

	var stepsToday int64
	record, err := s.stepRepo.GetByDate(ctx, todayStr)
	switch {
	case err == nil:
		stepsToday = int64(record.Steps)
	case errors.Is(err, repository.ErrNotFound):
		stepsToday = 0
	default:
		return nil, err
	}

	return &domain.WorkoutStats{
		TotalWorkouts:     totalWorkouts,
		TotalDuration:     totalDuration,
		WorkoutsThisWeek:  workoutsThisWeek,
		WorkoutsThisMonth: workoutsThisMonth,
		TotalStepsToday:   stepsToday,
	}, nil
}
