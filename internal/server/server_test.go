package server

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gocivil/internal/config"
	"github.com/alexiusacademia/gocivil/internal/engine"
)

const beamJSON = `{
	"name": "B1",
	"material": {"concrete_grade": "K-250", "steel_grade": "BjTS-420"},
	"geometry": {"span_m": 5, "floor_count": 1},
	"support": "simply-supported",
	"loads": {"dead_kn_m": 10, "live_kn_m": 5},
	"seismic": "moderate"
}`

func testServer(limit float64, burst int) http.Handler {
	cfg := &config.Config{
		Server: config.ServerConfig{Addr: ":0", RateLimit: limit, RateBurst: burst},
		Batch:  config.BatchConfig{Workers: 2},
	}
	return New(cfg, nil, zap.NewNop()).Router()
}

func do(t *testing.T, h http.Handler, method, path, contentType string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, testServer(100, 100), "GET", "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Len(t, rec.Header().Get("X-Request-ID"), 36)
}

func TestRequestIDPassthrough(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	testServer(100, 100).ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestDesign(t *testing.T) {
	rec := do(t, testServer(100, 100), "POST", "/api/design", "application/json", []byte(beamJSON))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res engine.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotNil(t, res.Beam)
	assert.Equal(t, 350, res.Beam.Height)
	assert.Equal(t, 200, res.Beam.Width)
}

func TestDesign_Errors(t *testing.T) {
	h := testServer(100, 100)
	tests := []struct {
		name   string
		body   string
		status int
		kind   string
	}{
		{"bad json", `{`, http.StatusBadRequest, "bad_json"},
		{"invalid input", strings.Replace(beamJSON, `"span_m": 5`, `"span_m": -1`, 1), http.StatusBadRequest, "invalid_input"},
		{"unknown grade", strings.Replace(beamJSON, "K-250", "K-999", 1), http.StatusUnprocessableEntity, "config_lookup"},
		{"overflowing load", strings.Replace(strings.Replace(beamJSON, `"span_m": 5`, `"span_m": 30`, 1), `"dead_kn_m": 10`, `"dead_kn_m": 1e307`, 1), http.StatusBadRequest, "invalid_input"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, "POST", "/api/design", "application/json", []byte(tt.body))
			assert.Equal(t, tt.status, rec.Code)
			var body errorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.kind, body.Kind)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestDesign_MethodNotAllowed(t *testing.T) {
	rec := do(t, testServer(100, 100), "GET", "/api/design", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestTables(t *testing.T) {
	rec := do(t, testServer(100, 100), "GET", "/api/tables", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var c catalog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.Len(t, c.Supports, 4)
	assert.Len(t, c.Seismic, 3)
	assert.NotEmpty(t, c.Concrete)
	assert.Equal(t, "simply-supported", c.Supports[0].Key)
}

func TestReport(t *testing.T) {
	h := testServer(100, 100)

	rec := do(t, h, "POST", "/api/report/md", "application/json", []byte(beamJSON))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/markdown")
	assert.Contains(t, rec.Body.String(), "# B1")

	rec = do(t, h, "POST", "/api/report/pdf", "application/json", []byte(beamJSON))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))

	rec = do(t, h, "POST", "/api/report/docx", "application/json", []byte(beamJSON))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBatch(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"name", "support", "span", "concrete", "steel", "seismic", "dead", "live"},
		{"B1", "simply-supported", 5, "K-250", "BjTS-420", "moderate", 10, 5},
		{"B2", "cantilever", 2, "K-250", "BjTS-420", "low", 4, 2},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	var wb bytes.Buffer
	require.NoError(t, f.Write(&wb))
	require.NoError(t, f.Close())

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "beams.xlsx")
	require.NoError(t, err)
	_, err = part.Write(wb.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	rec := do(t, testServer(100, 100), "POST", "/api/batch", mw.FormDataContentType(), body.Bytes())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	out, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer out.Close()
	got, err := out.GetRows("Results")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "ok", got[1][3])
	assert.Equal(t, "ok", got[2][3])
}

func TestBatch_NoFile(t *testing.T) {
	rec := do(t, testServer(100, 100), "POST", "/api/batch", "application/json", []byte(`{}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRateLimit(t *testing.T) {
	h := testServer(0.001, 2)
	for i := 0; i < 2; i++ {
		rec := do(t, h, "GET", "/api/tables", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	rec := do(t, h, "GET", "/api/tables", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// health checks are not limited
	rec = do(t, h, "GET", "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWriteJSON_Unencodable(t *testing.T) {
	s := New(&config.Config{}, nil, zap.NewNop())
	rec := httptest.NewRecorder()
	s.writeJSON(rec, http.StatusOK, map[string]float64{"mu": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal", body.Kind)
}

func TestLimiterCleanup(t *testing.T) {
	l := NewIPRateLimiter(1, 1)
	l.getLimiter("10.0.0.1")
	l.getLimiter("10.0.0.2")

	assert.Equal(t, 2, l.cleanup(time.Now(), time.Minute))
	assert.Equal(t, 0, l.cleanup(time.Now().Add(2*time.Minute), time.Minute))

	// a returning client starts with a fresh bucket
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
}

func TestLimiterSweepStops(t *testing.T) {
	l := NewIPRateLimiter(1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Sweep(ctx, time.Millisecond, time.Hour)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweep did not stop")
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1", clientIP(req))
	req.RemoteAddr = "pipe"
	assert.Equal(t, "pipe", clientIP(req))
}
