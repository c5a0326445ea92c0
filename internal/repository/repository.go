package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"fittrack/tracker/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors from driver errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// WorkoutRepository defines the interface for interacting with workout data.
type WorkoutRepository interface {
	// Insert stores a new workout, stamping its id and creation timestamp.
	Insert(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	// List returns workouts whose date falls in the given range, sorted by
	// date descending. limit <= 0 means no cap.
	List(ctx context.Context, dates domain.DateRange, limit int64) ([]domain.Workout, error)
	// Replace overwrites the mutable fields (date, exercises, duration,
	// notes) of the workout with the given id. Id and created_at are left
	// untouched.
	Replace(ctx context.Context, id primitive.ObjectID, draft domain.WorkoutDraft) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context, dates domain.DateRange) (int64, error)
	// SumDuration totals the duration field over all workouts that have one.
	SumDuration(ctx context.Context) (int64, error)
}

// StepRepository defines the interface for interacting with step records.
type StepRepository interface {
	// Upsert creates the record for the date if absent, otherwise overwrites
	// its step count unconditionally.
	Upsert(ctx context.Context, date string, steps int) error
	GetByDate(ctx context.Context, date string) (*domain.StepRecord, error)
	// List returns step records in the given range, sorted by date
	// descending. limit <= 0 means no cap.
	List(ctx context.Context, dates domain.DateRange, limit int64) ([]domain.StepRecord, error)
}
