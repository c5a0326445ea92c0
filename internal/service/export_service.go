package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fittrack/tracker/internal/domain"
	"fittrack/tracker/internal/repository"
	"fittrack/tracker/internal/storage"
)

// ExportResult is the receipt for a snapshot export: where it landed and
// how much it contains. URL is a presigned, time-limited download link.
type ExportResult struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	Workouts    int    `json:"workouts"`
	StepRecords int    `json:"step_records"`
}

// snapshot is the JSON document written to object storage.
type snapshot struct {
	ExportedAt string              `json:"exported_at"`
	Workouts   []domain.Workout    `json:"workouts"`
	Steps      []domain.StepRecord `json:"steps"`
}

// ExportService serializes the full data set to object storage. It is the
// only way to get all records out in one piece, so it deliberately ignores
// the 100-record list cap.
type ExportService interface {
	ExportSnapshot(ctx context.Context) (*ExportResult, error)
}

type exportService struct {
	workoutRepo repository.WorkoutRepository
	stepRepo    repository.StepRepository
	fileStorage storage.FileStorage
	now         func() time.Time
}

// NewExportService creates a new instance of exportService.
func NewExportService(workoutRepo repository.WorkoutRepository, stepRepo repository.StepRepository, fileStorage storage.FileStorage) ExportService {
	return &exportService{
		workoutRepo: workoutRepo,
		stepRepo:    stepRepo,
		fileStorage: fileStorage,
		now:         time.Now,
	}
}

// ExportSnapshot serializes every workout and step record into a single
// JSON object, uploads it, and returns a presigned download URL.
func (s *exportService) ExportSnapshot(ctx context.Context) (*ExportResult, error) {
	workouts, err := s.workoutRepo.List(ctx, domain.DateRange{}, 0)
	if err != nil {
		return nil, err
	}
	steps, err := s.stepRepo.List(ctx, domain.DateRange{}, 0)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	doc := snapshot{
		ExportedAt: now.Format(time.RFC3339),
		Workouts:   workouts,
		Steps:      steps,
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	objectKey := fmt.Sprintf("exports/snapshot-%s.json", now.Format("20060102T150405Z"))
	if err := s.fileStorage.UploadObject(ctx, objectKey, "application/json", body); err != nil {
		return nil, err
	}

	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		Key:         objectKey,
		URL:         url,
		Workouts:    len(workouts),
		StepRecords: len(steps),
	}, nil
}
