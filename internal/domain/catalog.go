package domain

// ExerciseTemplate is a static catalog entry naming a known exercise and the
// muscle-group category it belongs to. Templates are compiled in, never
// persisted, and not tied to any logged workout.
type ExerciseTemplate struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// exerciseCatalog is the fixed template library, grouped by category in
// declaration order. Served verbatim by the catalog endpoint.
var exerciseCatalog = []ExerciseTemplate{
	{Name: "Bench Press", Category: "Chest"},
	{Name: "Push Ups", Category: "Chest"},
	{Name: "Incline Dumbbell Press", Category: "Chest"},
	{Name: "Squats", Category: "Legs"},
	{Name: "Leg Press", Category: "Legs"},
	{Name: "Lunges", Category: "Legs"},
	{Name: "Deadlifts", Category: "Back"},
	{Name: "Pull Ups", Category: "Back"},
	{Name: "Bent Over Rows", Category: "Back"},
	{Name: "Overhead Press", Category: "Shoulders"},
	{Name: "Lateral Raises", Category: "Shoulders"},
	{Name: "Front Raises", Category: "Shoulders"},
	{Name: "Bicep Curls", Category: "Arms"},
	{Name: "Tricep Dips", Category: "Arms"},
	{Name: "Hammer Curls", Category: "Arms"},
	{Name: "Planks", Category: "Core"},
	{Name: "Crunches", Category: "Core"},
	{Name: "Russian Twists", Category: "Core"},
}

// ExerciseCatalog returns the full template library in declaration order.
// Callers receive a copy; the catalog itself is immutable for the lifetime
// of the process.
func ExerciseCatalog() []ExerciseTemplate {
	out := make([]ExerciseTemplate, len(exerciseCatalog))
	copy(out, exerciseCatalog)
	return out
}
