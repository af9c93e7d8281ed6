package metrics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zsiec/lens/internal/config"
)

func TestFrameProcessed(t *testing.T) {
	framesBefore := testutil.ToFloat64(framesProcessedTotal)
	detectionsBefore := testutil.ToFloat64(detectionsTotal)
	emptyBefore := testutil.ToFloat64(emptyFramesTotal)

	FrameProcessed(3, 10*time.Millisecond)
	FrameProcessed(0, 5*time.Millisecond)

	assert.Equal(t, framesBefore+2, testutil.ToFloat64(framesProcessedTotal))
	assert.Equal(t, detectionsBefore+3, testutil.ToFloat64(detectionsTotal))
	assert.Equal(t, emptyBefore+1, testutil.ToFloat64(emptyFramesTotal))
}

func TestSinkWrite(t *testing.T) {
	writesBefore := testutil.ToFloat64(sinkWritesTotal)
	errorsBefore := testutil.ToFloat64(sinkErrorsTotal)

	SinkWrite(nil)
	SinkWrite(assert.AnError)

	assert.Equal(t, writesBefore+1, testutil.ToFloat64(sinkWritesTotal))
	assert.Equal(t, errorsBefore+1, testutil.ToFloat64(sinkErrorsTotal))
}

func TestRouterEndpoints(t *testing.T) {
	router := NewRouter(config.DebugConfig{
		Enabled: true,
		Path:    "/metrics",
		Port:    9090,
	})

	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/metrics", http.StatusOK},
		{"/healthz", http.StatusOK},
		{"/version", http.StatusOK},
		{"/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHealthzBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	handleHealthz(rec, req)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}
