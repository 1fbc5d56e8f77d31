package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appspec/harness/database"
	"github.com/appspec/harness/logger"
	"github.com/appspec/harness/models"
	"github.com/appspec/harness/scenario"
)

func TestMain(m *testing.M) {
	os.Unsetenv("MASTER_KEY")
	os.Unsetenv("BROKER_ENDPOINT")
	if err := scenario.InitializeWith(models.NetworkDescriptor{Type: models.NetworkMemory}); err != nil {
		panic(err)
	}
	database.InitializeDatabase()
	defer database.CloseDB()
	os.Exit(m.Run())
}

func testRouter() *mux.Router {
	r := mux.NewRouter()
	scenarioHandlers(r)
	runHandlers(r)
	serverHandlers(r)
	loggerHandlers(r)
	return r
}

func doRequest(t *testing.T, method, route string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.Nil(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, route, body)
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)
	return rec
}

func TestGetScenariosEndpoint(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/scenarios", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var configs []models.ScenarioConfig
	require.Nil(t, json.Unmarshal(rec.Body.Bytes(), &configs))
	require.Len(t, configs, 3)
	assert.Equal(t, "one", configs[0].Name)
	assert.Equal(t, "oneOffline", configs[1].Name)
	assert.Equal(t, "two", configs[2].Name)
}

func TestGetScenarioEndpoint(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/scenarios/two", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var cfg models.ScenarioConfig
		require.Nil(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
		assert.Equal(t, "two", cfg.Name)
		assert.Len(t, cfg.Bridges, 1)
	})
	t.Run("not found", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/scenarios/three", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetPlayerConfigEndpoint(t *testing.T) {
	t.Run("toml by default", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/scenarios/two/players/alice/config", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/toml", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), `name = "alice"`)
		assert.Contains(t, rec.Body.String(), "app-spec-alice")
	})
	t.Run("json on request", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/scenarios/one/players/bob/config?format=json", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		var doc map[string]any
		assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	})
}

func TestRunLifecycle(t *testing.T) {
	defer database.DeleteAllRecords(database.RUNS_TABLE_NAME)
	defer database.DeleteAllRecords(database.RENDERED_CONFIGS_TABLE_NAME)

	var run models.RunRecord
	t.Run("create", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/api/runs",
			map[string]any{"scenario": "two", "players": []string{"alice", "bob"}})
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Nil(t, json.Unmarshal(rec.Body.Bytes(), &run))
		assert.NotEmpty(t, run.ID)
		assert.Equal(t, "two", run.Scenario)
		assert.Equal(t, models.RunPending, run.Status)
	})
	t.Run("create stores rendered configs", func(t *testing.T) {
		record, err := database.FetchRecord(database.RENDERED_CONFIGS_TABLE_NAME, run.ID+"/alice")
		require.Nil(t, err)
		assert.Contains(t, record, "alice")
	})
	t.Run("get", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/runs/"+run.ID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var fetched models.RunRecord
		require.Nil(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
		assert.Equal(t, run.ID, fetched.ID)
	})
	t.Run("status update", func(t *testing.T) {
		rec := doRequest(t, http.MethodPut, "/api/runs/"+run.ID+"/status",
			map[string]string{"status": models.RunPassed})
		require.Equal(t, http.StatusOK, rec.Code)
		var updated models.RunRecord
		require.Nil(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.Equal(t, models.RunPassed, updated.Status)
		assert.False(t, updated.FinishedAt.IsZero())
	})
	t.Run("bogus status rejected", func(t *testing.T) {
		rec := doRequest(t, http.MethodPut, "/api/runs/"+run.ID+"/status",
			map[string]string{"status": "done"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
	t.Run("delete", func(t *testing.T) {
		rec := doRequest(t, http.MethodDelete, "/api/runs/"+run.ID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		rec = doRequest(t, http.MethodGet, "/api/runs/"+run.ID, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCreateRunValidation(t *testing.T) {
	t.Run("unknown scenario", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/api/runs", map[string]any{"scenario": "three"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
	t.Run("missing scenario", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/api/runs", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
	t.Run("bad player name", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/api/runs",
			map[string]any{"scenario": "one", "players": []string{"al ice"}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
	t.Run("players default to alice", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/api/runs", map[string]any{"scenario": "one"})
		require.Equal(t, http.StatusCreated, rec.Code)
		var run models.RunRecord
		require.Nil(t, json.Unmarshal(rec.Body.Bytes(), &run))
		assert.Equal(t, []string{"alice"}, run.Players)
		doRequest(t, http.MethodDelete, "/api/runs/"+run.ID, nil)
	})
}

func TestHealthEndpoint(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/server/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Server is up and running!!", rec.Body.String())
}

func TestServerConfigEndpoint(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/server/config", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"(hidden)"`)
}

func TestLogsEndpoint(t *testing.T) {
	logger.Log(0, "a line for the log dump")
	rec := doRequest(t, http.MethodGet, "/api/server/logs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "a line for the log dump")

	t.Run("without a data directory", func(t *testing.T) {
		// remote run-store backends never create data/, the dump must not
		// depend on it existing
		wd, err := os.Getwd()
		require.Nil(t, err)
		require.Nil(t, os.Chdir(t.TempDir()))
		defer os.Chdir(wd)

		logger.Log(0, "dumped with no data dir around")
		rec := doRequest(t, http.MethodGet, "/api/server/logs", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "dumped with no data dir around")
	})
}

func TestSecurityCheck(t *testing.T) {
	os.Setenv("MASTER_KEY", "topsecret")
	defer os.Unsetenv("MASTER_KEY")

	t.Run("no token", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/scenarios", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
	t.Run("wrong token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/scenarios", strings.NewReader(""))
		req.Header.Set("Authorization", "Bearer wrong")
		rec := httptest.NewRecorder()
		testRouter().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
	t.Run("master key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/scenarios", strings.NewReader(""))
		req.Header.Set("Authorization", "Bearer topsecret")
		rec := httptest.NewRecorder()
		testRouter().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
	t.Run("health stays open", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/server/health", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
