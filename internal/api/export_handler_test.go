package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/tracker/internal/service"
)

func TestCreateExport(t *testing.T) {
	exports := &stubExportService{result: &service.ExportResult{
		Key:         "exports/snapshot-20250112T083000Z.json",
		URL:         "https://example.com/presigned",
		Workouts:    2,
		StepRecords: 1,
	}}
	router := testRouter(nil, nil, nil, exports)

	req := httptest.NewRequest(http.MethodPost, "/api/exports", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp service.ExportResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, exports.result.Key, resp.Key)
	assert.Equal(t, 2, resp.Workouts)
	assert.Equal(t, 1, resp.StepRecords)
}

func TestCreateExportNotConfigured(t *testing.T) {
	router := testRouter(nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/exports", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Contains(t, rr.Body.String(), "export storage is not configured")
}
