package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"golang.org/x/exp/slog"

	"github.com/appspec/harness/database"
	"github.com/appspec/harness/harnesscfg"
	"github.com/appspec/harness/logger"
	"github.com/appspec/harness/models"
	"github.com/appspec/harness/mq"
	"github.com/appspec/harness/network"
	"github.com/appspec/harness/scenario"
	"github.com/appspec/harness/statedump"
	"github.com/appspec/harness/validation"
)

const probeTimeout = 3 * time.Second

func runHandlers(r *mux.Router) {
	r.HandleFunc("/api/runs", securityCheck(http.HandlerFunc(getRuns))).
		Methods(http.MethodGet)
	r.HandleFunc("/api/runs", securityCheck(http.HandlerFunc(createRun))).
		Methods(http.MethodPost)
	r.HandleFunc("/api/runs/{id}", securityCheck(http.HandlerFunc(getRun))).
		Methods(http.MethodGet)
	r.HandleFunc("/api/runs/{id}", securityCheck(http.HandlerFunc(deleteRun))).
		Methods(http.MethodDelete)
	r.HandleFunc("/api/runs/{id}/status", securityCheck(http.HandlerFunc(updateRunStatus))).
		Methods(http.MethodPut)
}

// runRequest - body of POST /api/runs
type runRequest struct {
	Scenario string   `json:"scenario" validate:"required"`
	Players  []string `json:"players,omitempty" validate:"dive,regexp=^[a-zA-Z0-9_-]+$"`
}

func validateRunRequest(request *runRequest) error {
	v := validator.New()
	_ = v.RegisterValidation("regexp", validation.CheckRegex)
	return v.Struct(request)
}

// runStatusUpdate - body of PUT /api/runs/{id}/status. The orchestration
// engine may attach the state snapshots it collected from players when the
// scenario's logger config has the state dump flag set.
type runStatusUpdate struct {
	Status     string                         `json:"status"`
	StateDumps map[string]statedump.StateDump `json:"statedumps,omitempty"`
}

func getRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := database.GetRuns()
	if err != nil {
		slog.Error("failed to fetch runs", "error", err.Error())
		ReturnErrorResponse(w, r, FormatError(err, "internal"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(runs)
}

func getRun(w http.ResponseWriter, r *http.Request) {
	var params = mux.Vars(r)
	run, err := database.GetRun(params["id"])
	if err != nil {
		if database.IsEmptyRecord(err) {
			ReturnErrorResponse(w, r, FormatError(err, "notfound"))
			return
		}
		ReturnErrorResponse(w, r, FormatError(err, "internal"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(run)
}

func createRun(w http.ResponseWriter, r *http.Request) {
	var request runRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ReturnErrorResponse(w, r, FormatError(err, "badrequest"))
		return
	}
	if err := validateRunRequest(&request); err != nil {
		ReturnErrorResponse(w, r, FormatError(err, "badrequest"))
		return
	}
	cfg, err := scenario.Get(request.Scenario)
	if err != nil {
		if errors.Is(err, scenario.ErrNoSuchScenario) {
			ReturnErrorResponse(w, r, FormatError(err, "notfound"))
			return
		}
		ReturnErrorResponse(w, r, FormatError(err, "internal"))
		return
	}
	players := request.Players
	if len(players) == 0 {
		players = []string{"alice"}
	}

	// a dead switchboard is worth a warning now rather than a hung scenario later
	if err := network.Probe(cfg.Network, probeTimeout); err != nil {
		logger.Log(0, "warning:", err.Error())
	}

	run := models.RunRecord{
		ID:        uuid.NewString(),
		Scenario:  cfg.Name,
		Players:   players,
		Status:    models.RunPending,
		StartedAt: time.Now().UTC(),
	}
	rendered := make(map[string]string, len(players))
	for _, player := range players {
		data, err := scenario.Render(&cfg, player)
		if err != nil {
			ReturnErrorResponse(w, r, FormatError(err, "badrequest"))
			return
		}
		rendered[player] = string(data)
	}
	if err := database.SaveRun(&run); err != nil {
		slog.Error("failed to save run", "error", err.Error())
		ReturnErrorResponse(w, r, FormatError(err, "internal"))
		return
	}
	for player, data := range rendered {
		if err := database.SaveRenderedConfig(run.ID, player, data); err != nil {
			slog.Error("failed to store rendered config", "player", player, "error", err.Error())
		}
	}

	if harnesscfg.IsMessageQueueBackend() {
		if err := mq.PublishRun(&run, &cfg, rendered); err != nil {
			logger.Log(0, "failed to publish run over mq:", err.Error())
		}
	}

	logger.Log(1, "created run", run.ID, "of scenario", run.Scenario)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(run)
}

func deleteRun(w http.ResponseWriter, r *http.Request) {
	var params = mux.Vars(r)
	if _, err := database.GetRun(params["id"]); err != nil {
		if database.IsEmptyRecord(err) {
			ReturnErrorResponse(w, r, FormatError(err, "notfound"))
			return
		}
		ReturnErrorResponse(w, r, FormatError(err, "internal"))
		return
	}
	if err := database.DeleteRun(params["id"]); err != nil {
		ReturnErrorResponse(w, r, FormatError(err, "internal"))
		return
	}
	ReturnSuccessResponse(w, r, "deleted run "+params["id"])
}

func updateRunStatus(w http.ResponseWriter, r *http.Request) {
	var params = mux.Vars(r)
	run, err := database.GetRun(params["id"])
	if err != nil {
		if database.IsEmptyRecord(err) {
			ReturnErrorResponse(w, r, FormatError(err, "notfound"))
			return
		}
		ReturnErrorResponse(w, r, FormatError(err, "internal"))
		return
	}
	var update runStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		ReturnErrorResponse(w, r, FormatError(err, "badrequest"))
		return
	}
	v := validator.New()
	_ = v.RegisterValidation("runstatus_valid", validation.CheckRunStatus)
	if err := v.Var(update.Status, "runstatus_valid"); err != nil {
		ReturnErrorResponse(w, r, FormatError(errors.New("unknown run status "+update.Status), "badrequest"))
		return
	}

	run.Status = update.Status
	if run.IsFinished() {
		run.FinishedAt = time.Now().UTC()
	}
	if err := database.SaveRun(&run); err != nil {
		ReturnErrorResponse(w, r, FormatError(err, "internal"))
		return
	}

	// state dumps ride along on the final status update when the scenario asked for them
	if cfg, err := scenario.Get(run.Scenario); err == nil && cfg.Logger.StateDump {
		for player := range update.StateDumps {
			dump := update.StateDumps[player]
			statedump.LogDump(player, &dump)
		}
	}

	logger.Log(1, "run", run.ID, "moved to status", run.Status)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(run)
}
