package controller

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/appspec/harness/harnesscfg"
)

func serverHandlers(r *mux.Router) {
	r.HandleFunc("/api/server/health", http.HandlerFunc(getHealth)).
		Methods(http.MethodGet)
	r.HandleFunc("/api/server/config", securityCheck(http.HandlerFunc(getConfig))).
		Methods(http.MethodGet)
}

func getHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Server is up and running!!"))
}

func getConfig(w http.ResponseWriter, r *http.Request) {
	cfg := harnesscfg.GetServerConfig()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(cfg)
}
