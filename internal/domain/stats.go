package domain

// WorkoutStats is the summary computed over the live store as of the moment
// of the call. Nothing here is cached or persisted.
type WorkoutStats struct {
	TotalWorkouts     int64 `json:"total_workouts"`
	TotalDuration     int64 `json:"total_duration"` // minutes, over records that carry a duration
	WorkoutsThisWeek  int64 `json:"workouts_this_week"`
	WorkoutsThisMonth int64 `json:"workouts_this_month"`
	TotalStepsToday   int64 `json:"total_steps_today"`
}
