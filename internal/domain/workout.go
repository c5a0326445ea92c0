package domain

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidWorkoutID is returned when a string cannot be parsed into a
// workout identifier. Kept distinct from body validation errors so the API
// layer can report it precisely.
var ErrInvalidWorkoutID = errors.New("invalid workout id")

// ParseWorkoutID parses the external string form of a workout identifier
// (the hex representation of the store's ObjectID). All id strings entering
// the system cross through here.
func ParseWorkoutID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidWorkoutID
	}
	return id, nil
}

// ExerciseSet is one performed unit of an exercise (reps at a weight).
// Embedded in Exercise, never addressed on its own.
type ExerciseSet struct {
	Reps      int     `bson:"reps" json:"reps"`
	Weight    float64 `bson:"weight" json:"weight"`
	Completed bool    `bson:"completed" json:"completed"`
}

// Exercise is a named movement performed within a workout, embedded in it.
type Exercise struct {
	Name     string        `bson:"name" json:"name"`
	Category string        `bson:"category" json:"category"`
	Sets     []ExerciseSet `bson:"sets" json:"sets"`
}

// Workout represents one logged training session.
//
// ID and CreatedAt are set once at insert and never change. Date, Exercises,
// Duration and Notes are replaced wholesale on update; there is no partial
// merge.
type Workout struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date      string             `bson:"date" json:"date"` // YYYY-MM-DD
	Exercises []Exercise         `bson:"exercises" json:"exercises"`
	Duration  *int               `bson:"duration,omitempty" json:"duration,omitempty"` // minutes
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt string             `bson:"created_at" json:"created_at"` // RFC 3339
}

// WorkoutDraft carries the caller-supplied fields of a workout, without
// identifier or creation timestamp. Used for both create and full-replace
// update.
type WorkoutDraft struct {
	Date      string
	Exercises []Exercise
	Duration  *int
	Notes     string
}

// DateRange is an inclusive date filter on the string-formatted date field.
// An empty bound means unbounded on that side.
type DateRange struct {
	Start string
	End   string
}

// IsZero reports whether the range imposes no bounds at all.
func (r DateRange) IsZero() bool {
	return r.Start == "" && r.End == ""
}
