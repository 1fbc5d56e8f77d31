package controller

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/appspec/harness/harnesscfg"
	"github.com/appspec/harness/logger"
)

// HandleRESTRequests - handles the rest requests of the harness api
func HandleRESTRequests(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	r := mux.NewRouter()

	// Currently allowed dev origin is all. Should change in prod
	headersOk := handlers.AllowedHeaders([]string{"Access-Control-Allow-Origin", "X-Requested-With", "Content-Type", "authorization"})
	originsOk := handlers.AllowedOrigins([]string{harnesscfg.GetAllowedOrigin()})
	methodsOk := handlers.AllowedMethods([]string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete})

	scenarioHandlers(r)
	runHandlers(r)
	serverHandlers(r)
	loggerHandlers(r)

	port := harnesscfg.GetAPIPort()
	srv := &http.Server{
		Addr:    harnesscfg.GetAPIHost() + ":" + port,
		Handler: handlers.CORS(originsOk, headersOk, methodsOk)(r),
	}
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logger.Log(0, "rest server error:", err.Error())
		}
	}()
	logger.Log(0, "harness api serving on port", port)

	<-ctx.Done()
	logger.Log(0, "stopping the harness api...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log(0, "rest server shutdown error:", err.Error())
	}
}
