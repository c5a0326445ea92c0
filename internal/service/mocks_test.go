package service

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"fittrack/tracker/internal/domain"
	"fittrack/tracker/internal/repository"
)

// fakeWorkoutRepo is an in-memory repository.WorkoutRepository. It mirrors
// the store semantics the mongo implementation provides: id and created_at
// stamping on insert, date-descending sort, inclusive one-or-two-sided
// range filters.
type fakeWorkoutRepo struct {
	workouts map[primitive.ObjectID]domain.Workout
	err      error
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{workouts: make(map[primitive.ObjectID]domain.Workout)}
}

func inRange(date string, dates domain.DateRange) bool {
	if dates.Start != "" && date < dates.Start {
		return false
	}
	if dates.End != "" && date > dates.End {
		return false
	}
	return true
}

func (f *fakeWorkoutRepo) Insert(_ context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	workout.ID = primitive.NewObjectID()
	workout.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	f.workouts[workout.ID] = *workout
	return workout.ID, nil
}

func (f *fakeWorkoutRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	if f.err != nil {
		return nil, f.err
	}
	workout, ok := f.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &workout, nil
}

func (f *fakeWorkoutRepo) List(_ context.Context, dates domain.DateRange, limit int64) ([]domain.Workout, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.Workout{}
	for _, w := range f.workouts {
		if inRange(w.Date, dates) {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeWorkoutRepo) Replace(_ context.Context, id primitive.ObjectID, draft domain.WorkoutDraft) error {
	if f.err != nil {
		return f.err
	}
	workout, ok := f.workouts[id]
	if !ok {
		return repository.ErrNotFound
	}
	workout.Date = draft.Date
	workout.Exercises = draft.Exercises
	workout.Duration = draft.Duration
	workout.Notes = draft.Notes
	f.workouts[id] = workout
	return nil
}

func (f *fakeWorkoutRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.workouts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.workouts, id)
	return nil
}

func (f *fakeWorkoutRepo) Count(_ context.Context, dates domain.DateRange) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, w := range f.workouts {
		if inRange(w.Date, dates) {
			n++
		}
	}
	return n, nil
}

func (f *fakeWorkoutRepo) SumDuration(_ context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var total int64
	for _, w := range f.workouts {
		if w.Duration != nil {
			total += int64(*w.Duration)
		}
	}
	return total, nil
}

// fakeStepRepo is an in-memory repository.StepRepository keyed by date.
type fakeStepRepo struct {
	records map[string]domain.StepRecord
	err     error
}

func newFakeStepRepo() *fakeStepRepo {
	return &fakeStepRepo{records: make(map[string]domain.StepRecord)}
}

func (f *fakeStepRepo) Upsert(_ context.Context, date string, steps int) error {
	if f.err != nil {
		return f.err
	}
	record, ok := f.records[date]
	if !ok {
		record = domain.StepRecord{ID: primitive.NewObjectID(), Date: date}
	}
	record.Steps = steps
	f.records[date] = record
	return nil
}

func (f *fakeStepRepo) GetByDate(_ context.Context, date string) (*domain.StepRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	record, ok := f.records[date]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &record, nil
}

func (f *fakeStepRepo) List(_ context.Context, dates domain.DateRange, limit int64) ([]domain.StepRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.StepRecord{}
	for _, r := range f.records {
		if inRange(r.Date, dates) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakeFileStorage records uploads and serves canned presigned URLs.
type fakeFileStorage struct {
	uploads map[string][]byte
	url     string
	err     error
}

func newFakeFileStorage() *fakeFileStorage {
	return &fakeFileStorage{uploads: make(map[string][]byte), url: "https://example.com/presigned"}
}

func (f *fakeFileStorage) UploadObject(_ context.Context, objectKey string, _ string, body []byte) error {
	if f.err != nil {
		return f.err
	}
	f.uploads[objectKey] = body
	return nil
}

func (f *fakeFileStorage) GeneratePresignedDownloadURL(_ context.Context, _ string, _ time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func (f *fakeFileStorage) DeleteObject(_ context.Context, objectKey string) error {
	delete(f.uploads, objectKey)
	return nil
}

func intPtr(v int) *int {
	return &v
}
