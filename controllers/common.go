package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/appspec/harness/harnesscfg"
	"github.com/appspec/harness/logger"
	"github.com/appspec/harness/models"
)

var errUnauthorized = errors.New("unauthorized, provide the master key as a bearer token")

// FormatError - takes an error and codes it into an ErrorResponse
func FormatError(err error, errType string) models.ErrorResponse {

	var status = http.StatusInternalServerError
	switch errType {
	case "internal":
		status = http.StatusInternalServerError
	case "badrequest":
		status = http.StatusBadRequest
	case "notfound":
		status = http.StatusNotFound
	case "unauthorized":
		status = http.StatusUnauthorized
	case "forbidden":
		status = http.StatusForbidden
	default:
		status = http.StatusInternalServerError
	}

	var response = models.ErrorResponse{
		Message: err.Error(),
		Code:    status,
	}
	return response
}

// ReturnSuccessResponse - processes message and adds header
func ReturnSuccessResponse(response http.ResponseWriter, request *http.Request, message string) {
	var httpResponse models.SuccessResponse
	httpResponse.Code = http.StatusOK
	httpResponse.Message = message
	response.Header().Set("Content-Type", "application/json")
	response.WriteHeader(http.StatusOK)
	json.NewEncoder(response).Encode(httpResponse)
}

// ReturnErrorResponse - processes error and adds header
func ReturnErrorResponse(response http.ResponseWriter, request *http.Request, errorMessage models.ErrorResponse) {
	httpResponse := &models.ErrorResponse{Code: errorMessage.Code, Message: errorMessage.Message}
	jsonResponse, err := json.Marshal(httpResponse)
	if err != nil {
		panic(err)
	}
	logger.Log(1, "processed request error:", errorMessage.Message)
	response.Header().Set("Content-Type", "application/json")
	response.WriteHeader(errorMessage.Code)
	response.Write(jsonResponse)
}

// securityCheck - checks the master key on requests. A harness without a
// configured master key runs open, it is a local test tool by default.
func securityCheck(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		masterKey := harnesscfg.GetMasterKey()
		if masterKey == "" {
			next.ServeHTTP(w, r)
			return
		}
		bearerToken := r.Header.Get("Authorization")
		var authToken = ""
		if tokenSplit := strings.Split(bearerToken, " "); len(tokenSplit) > 1 {
			authToken = tokenSplit[1]
		}
		if authToken != masterKey {
			ReturnErrorResponse(w, r, FormatError(errUnauthorized, "unauthorized"))
			return
		}
		r.Header.Set("ismaster", "yes")
		next.ServeHTTP(w, r)
	}
}
