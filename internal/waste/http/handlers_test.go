package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	devdomain "github.com/ecotrack-iot/ecotrack-backend/internal/devices/domain"
	"github.com/ecotrack-iot/ecotrack-backend/internal/waste/domain"
	"github.com/ecotrack-iot/ecotrack-backend/internal/waste/service"
)

type fakeIngestor struct {
	lastEvent domain.TelemetryEvent
	result    *service.IngestResult
	err       error
}

func (f *fakeIngestor) Ingest(_ context.Context, ev domain.TelemetryEvent) (*service.IngestResult, error) {
	f.lastEvent = ev
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func setupRouter(ing *fakeIngestor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(ing, nil, nil)
	h.RegisterDevice(r.Group("/api/device"))
	return r
}

func postUpload(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/device/upload", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpload_Success(t *testing.T) {
	ing := &fakeIngestor{result: &service.IngestResult{
		Entry:  &domain.WasteLogEntry{ID: 1, Points: 50},
		Reward: &domain.RewardAccount{Points: 50},
	}}
	r := setupRouter(ing)

	w := postUpload(t, r, gin.H{"device_id": "dev-1", "waste_type": "organic", "weight": 2.5})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dev-1", ing.lastEvent.DeviceID)
	assert.Equal(t, 2.5, ing.lastEvent.Weight)
	assert.True(t, ing.lastEvent.Timestamp.IsZero())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["message"], "waste log processed")
}

func TestUpload_UnknownDevice(t *testing.T) {
	ing := &fakeIngestor{err: devdomain.ErrDeviceNotFound}
	r := setupRouter(ing)

	w := postUpload(t, r, gin.H{"device_id": "nope", "waste_type": "organic", "weight": 1.0})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpload_NonHousehold(t *testing.T) {
	ing := &fakeIngestor{err: domain.ErrNotHousehold}
	r := setupRouter(ing)

	w := postUpload(t, r, gin.H{"device_id": "dev-2", "waste_type": "organic", "weight": 1.0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpload_InvalidBody(t *testing.T) {
	ing := &fakeIngestor{}
	r := setupRouter(ing)

	for name, body := range map[string]gin.H{
		"missing device_id": {"waste_type": "organic", "weight": 1.0},
		"missing weight":    {"device_id": "dev-1", "waste_type": "organic"},
		"zero weight":       {"device_id": "dev-1", "waste_type": "organic", "weight": 0},
		"negative weight":   {"device_id": "dev-1", "waste_type": "organic", "weight": -1.5},
	} {
		w := postUpload(t, r, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}
}

func TestUpload_SuppliedTimestampForwarded(t *testing.T) {
	ing := &fakeIngestor{result: &service.IngestResult{
		Entry:  &domain.WasteLogEntry{},
		Reward: &domain.RewardAccount{},
	}}
	r := setupRouter(ing)

	w := postUpload(t, r, gin.H{
		"device_id":  "dev-1",
		"waste_type": "organic",
		"weight":     1.0,
		"timestamp":  "2026-03-01T12:00:00Z",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2026, ing.lastEvent.Timestamp.Year())
}
