package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/exp/slog"

	"github.com/appspec/harness/logger"
	"github.com/appspec/harness/scenario"
)

func scenarioHandlers(r *mux.Router) {
	r.HandleFunc("/api/scenarios", securityCheck(http.HandlerFunc(getScenarios))).
		Methods(http.MethodGet)
	r.HandleFunc("/api/scenarios/{name}", securityCheck(http.HandlerFunc(getScenario))).
		Methods(http.MethodGet)
	r.HandleFunc("/api/scenarios/{name}/players/{player}/config", securityCheck(http.HandlerFunc(getPlayerConfig))).
		Methods(http.MethodGet)
}

func getScenarios(w http.ResponseWriter, r *http.Request) {
	configs, err := scenario.List()
	if err != nil {
		slog.Error("failed to list scenarios", "error", err.Error())
		ReturnErrorResponse(w, r, FormatError(err, "internal"))
		return
	}
	logger.Log(2, "fetched scenarios")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(configs)
}

func getScenario(w http.ResponseWriter, r *http.Request) {
	var params = mux.Vars(r)
	cfg, err := scenario.Get(params["name"])
	if err != nil {
		if errors.Is(err, scenario.ErrNoSuchScenario) {
			ReturnErrorResponse(w, r, FormatError(err, "notfound"))
			return
		}
		ReturnErrorResponse(w, r, FormatError(err, "internal"))
		return
	}
	logger.Log(2, "fetched scenario", cfg.Name)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(cfg)
}

func getPlayerConfig(w http.ResponseWriter, r *http.Request) {
	var params = mux.Vars(r)
	cfg, err := scenario.Get(params["name"])
	if err != nil {
		if errors.Is(err, scenario.ErrNoSuchScenario) {
			ReturnErrorResponse(w, r, FormatError(err, "notfound"))
			return
		}
		ReturnErrorResponse(w, r, FormatError(err, "internal"))
		return
	}

	player := params["player"]
	if r.URL.Query().Get("format") == "json" {
		rendered, err := scenario.RenderJSON(&cfg, player)
		if err != nil {
			ReturnErrorResponse(w, r, FormatError(err, "badrequest"))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(rendered)
		return
	}
	rendered, err := scenario.Render(&cfg, player)
	if err != nil {
		ReturnErrorResponse(w, r, FormatError(err, "badrequest"))
		return
	}
	logger.Log(2, "rendered scenario", cfg.Name, "for player", player)
	w.Header().Set("Content-Type", "application/toml")
	w.WriteHeader(http.StatusOK)
	w.Write(rendered)
}
