package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/appspec/harness/logger"
)

func loggerHandlers(r *mux.Router) {
	r.HandleFunc("/api/server/logs", securityCheck(http.HandlerFunc(getLogs))).
		Methods(http.MethodGet)
}

func getLogs(w http.ResponseWriter, r *http.Request) {
	var currentTime = time.Now().Format(logger.TimeFormatDay)
	var currentFilePath = fmt.Sprintf(logger.DumpFilePattern, currentTime)
	logger.DumpFile(currentFilePath)
	contents, err := logger.Retrieve(currentFilePath)
	if err != nil {
		ReturnErrorResponse(w, r, FormatError(err, "internal"))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(contents))
}
