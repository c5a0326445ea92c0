package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/tracker/internal/domain"
)

func TestStatsSummary(t *testing.T) {
	stats := &stubStatsService{stats: &domain.WorkoutStats{
		TotalWorkouts:     12,
		TotalDuration:     540,
		WorkoutsThisWeek:  3,
		WorkoutsThisMonth: 9,
		TotalStepsToday:   8500,
	}}
	router := testRouter(nil, nil, stats, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/workouts/stats/summary", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]int64
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(12), resp["total_workouts"])
	assert.Equal(t, int64(540), resp["total_duration"])
	assert.Equal(t, int64(3), resp["workouts_this_week"])
	assert.Equal(t, int64(9), resp["workouts_this_month"])
	assert.Equal(t, int64(8500), resp["total_steps_today"])
}

func TestStatsSummaryDoesNotShadowWorkoutID(t *testing.T) {
	// The stats path nests under /workouts; make sure it is not swallowed
	// by the :id route.
	stats := &stubStatsService{stats: &domain.WorkoutStats{}}
	workouts := &stubWorkoutService{err: domain.ErrInvalidWorkoutID}
	router := testRouter(workouts, nil, stats, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/workouts/stats/summary", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Zero(t, workouts.calls)
}

func TestStatsSummaryStoreFailure(t *testing.T) {
	stats := &stubStatsService{err: errors.New("cursor timeout")}
	router := testRouter(nil, nil, stats, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/workouts/stats/summary", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "cursor timeout")
}
