package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fittrack/tracker/internal/domain"
	"fittrack/tracker/internal/repository"
)

const stepCollectionName = "steps"

// mongoStepRepository implements repository.StepRepository
type mongoStepRepository struct {
	collection *mongo.Collection
}

// NewMongoStepRepository creates a new step-record repository.
func NewMongoStepRepository(db *mongo.Database) repository.StepRepository {
	return &mongoStepRepository{
		collection: db.Collection(stepCollectionName),
	}
}

// Upsert writes the step count for a date, inserting the record if the date
// has none yet. Last write wins; counts are never accumulated.
func (r *mongoStepRepository) Upsert(ctx context.Context, date string, steps int) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"date": date},
		bson.M{"$set": bson.M{"steps": steps}},
		options.Update().SetUpsert(true),
	)
	return err
}

// GetByDate retrieves the single record for a date, if any.
func (r *mongoStepRepository) GetByDate(ctx context.Context, date string) (*domain.StepRecord, error) {
	var record domain.StepRecord
	err := r.collection.FindOne(ctx, bson.M{"date": date}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// List retrieves step records within the date range, newest date first.
func (r *mongoStepRepository) List(ctx context.Context, dates domain.DateRange, limit int64) ([]domain.StepRecord, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if limit > 0 {
		findOptions = findOptions.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, dateRangeFilter(dates), findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []domain.StepRecord{}
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// EnsureStepIndexes creates necessary indexes. Call during startup. The
// unique date index backs the at-most-one-record-per-date invariant.
func EnsureStepIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "date", Value: -1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
