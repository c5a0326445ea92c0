package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// StepRecord holds one calendar date's step count. The date is the natural
// key: there is never more than one record per date, and logging steps for
// an existing date overwrites the count (last write wins, no accumulation).
type StepRecord struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date  string             `bson:"date" json:"date"` // YYYY-MM-DD
	Steps int                `bson:"steps" json:"steps"`
}
