package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"election-board/internal/api/handlers"
	"election-board/internal/query"
	"election-board/internal/simulation"
	"election-board/internal/store"
	"election-board/pkg/config"
	"election-board/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: "0", Mode: "test"},
		Simulation: config.SimulationConfig{
			Interval: time.Hour,
			Seed:     store.DefaultSeed,
		},
		API: config.APIConfig{
			CORS:               config.CORSConfig{AllowedOrigins: []string{"*"}, MaxAge: 86400},
			RateLimitPerMinute: 10000,
		},
	}

	log := logger.NewLogger("error", "")
	st := store.New(cfg.Simulation.Seed)
	qe := query.New(st)
	sim := simulation.NewEngine(st, store.NewLCG(cfg.Simulation.Seed), cfg.Simulation.Interval, log)
	hub := handlers.NewHub(log)

	services := NewServices(st, qe, sim, hub, log, cfg)

	router := gin.New()
	SetupRoutes(router, services, hub)
	return router
}

func doGET(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func doPOST(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.True(t, body.Success)
	return body.Data
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter(t)

	w := doGET(router, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestOverviewEndpoint(t *testing.T) {
	router := testRouter(t)

	w := doGET(router, "/api/v1/results/overview")
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.EqualValues(t, 45, data["seatsDeclared"])
	standings, ok := data["partyStandings"].([]interface{})
	require.True(t, ok)
	assert.Len(t, standings, 10)
}

func TestSeatsEndpointPagination(t *testing.T) {
	router := testRouter(t)

	w := doGET(router, "/api/v1/results/seats?page=999&limit=10")
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.EqualValues(t, 151, data["total"])
	assert.EqualValues(t, 16, data["page"], "out-of-range page clamps to last")

	// Malformed paging parameters fall back to defaults.
	w = doGET(router, "/api/v1/results/seats?page=abc&limit=xyz")
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeData(t, w)
	assert.EqualValues(t, 1, data["page"])
}

func TestSeatDetailEndpoint(t *testing.T) {
	router := testRouter(t)

	w := doGET(router, "/api/v1/results/seats/seat-1")
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "Dhaka-1", data["name"])

	w = doGET(router, "/api/v1/results/seats/seat-9999")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "seat_not_found")
}

func TestSeatsFilterMatchingNothing(t *testing.T) {
	router := testRouter(t)

	// An empty result page is a 200, unlike an unknown id.
	w := doGET(router, "/api/v1/results/seats?division_id=div-99")
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.EqualValues(t, 0, data["total"])
}

func TestMetaEndpoints(t *testing.T) {
	router := testRouter(t)

	w := doGET(router, "/api/v1/meta/divisions")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool              `json:"success"`
		Data    []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 8)

	w = doGET(router, "/api/v1/meta/districts?division_id=div-1")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Data)
}

func TestSimulationEndpoints(t *testing.T) {
	router := testRouter(t)

	w := doPOST(router, "/api/v1/admin/simulation/tick")
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	updated, ok := data["centres_updated"].(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, int(updated), 1)
	assert.LessOrEqual(t, int(updated), 3)

	w = doPOST(router, "/api/v1/admin/simulation/start")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doPOST(router, "/api/v1/admin/simulation/start")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doGET(router, "/api/v1/admin/simulation/status")
	require.Equal(t, http.StatusOK, w.Code)
	status := decodeData(t, w)
	assert.Equal(t, true, status["running"])

	w = doPOST(router, "/api/v1/admin/simulation/stop")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminEndpoints(t *testing.T) {
	router := testRouter(t)

	w := doGET(router, "/api/v1/admin/dashboard")
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.EqualValues(t, 151, data["totalSeats"])

	w = doGET(router, "/api/v1/admin/audit-logs?action=CENTRE_RESULT_SUBMITTED")
	require.Equal(t, http.StatusOK, w.Code)
	logs := decodeData(t, w)
	assert.NotNil(t, logs["logs"])
}
