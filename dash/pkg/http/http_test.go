package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"glucodash/dash/defs"
	"glucodash/dash/pkg/stats"
	"glucodash/dash/sheets"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func readyServer() *Server {
	rs := []defs.Reading{
		{
			Date:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			DateLabel:    "Jan 1",
			DisplayLabel: "Jan 1",
			SugarLevel:   95,
			Type:         defs.Fasting,
		},
		{
			Index:        1,
			Date:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			DateLabel:    "Jan 1",
			DisplayLabel: "Jan 1 (14:00)",
			SugarLevel:   150,
			Type:         defs.Random,
			Time:         "14:00",
		},
	}
	return New(rs, stats.Summarize(rs), sheets.SourceLocal, nil, ":0", zap.NewExample())
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	s.Router().ServeHTTP(w, req)
	return w
}

func TestDashboardReady(t *testing.T) {
	w := get(t, readyServer(), "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Jan 1 (14:00)")
	assert.Contains(t, w.Body.String(), "switch to bar chart")
	assert.Contains(t, w.Body.String(), "122.5")
}

func TestDashboardToggle(t *testing.T) {
	w := get(t, readyServer(), "/?kind=bar")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "switch to line chart")

	w = get(t, readyServer(), "/?kind=pie")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboardEmptyState(t *testing.T) {
	s := New(nil, stats.Summarize(nil), sheets.SourceLocal, nil, ":0", zap.NewExample())
	w := get(t, s, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No readings yet")
}

func TestDashboardErrorState(t *testing.T) {
	loadErr := errors.New("all sources failed: sheet \"x\"")
	s := New(nil, stats.Summary{}, "", loadErr, ":0", zap.NewExample())
	w := get(t, s, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Could not load readings")
	assert.Contains(t, w.Body.String(), "all sources failed")
}

func TestChartEndpoint(t *testing.T) {
	w := get(t, readyServer(), "/chart?kind=line")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "echarts")

	w = get(t, readyServer(), "/chart?kind=nope")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChartWithoutData(t *testing.T) {
	s := New(nil, stats.Summarize(nil), sheets.SourceLocal, nil, ":0", zap.NewExample())
	w := get(t, s, "/chart")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPIStats(t *testing.T) {
	w := get(t, readyServer(), "/api/stats")
	require.Equal(t, http.StatusOK, w.Code)

	var s stats.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	assert.Equal(t, 2, s.Overall.Count)
	assert.Equal(t, 122.5, s.Overall.Average)
	assert.True(t, s.Fasting.Available)
}

func TestAPIReadings(t *testing.T) {
	w := get(t, readyServer(), "/api/readings")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Source   sheets.Source  `json:"source"`
		Readings []defs.Reading `json:"readings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, sheets.SourceLocal, resp.Source)
	require.Len(t, resp.Readings, 2)
	assert.Equal(t, "Jan 1", resp.Readings[0].DisplayLabel)
}

func TestAPIHealth(t *testing.T) {
	w := get(t, readyServer(), "/api/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	s := New(nil, stats.Summary{}, "", errors.New("boom"), ":0", zap.NewExample())
	w = get(t, s, "/api/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "load failed")

	w = get(t, s, "/api/stats")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
