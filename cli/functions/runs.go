package functions

import (
	"net/http"

	"github.com/appspec/harness/models"
)

// CreateRunPayload - body for creating a run
type CreateRunPayload struct {
	Scenario string   `json:"scenario"`
	Players  []string `json:"players,omitempty"`
}

// GetRuns - fetch all runs
func GetRuns() *[]models.RunRecord {
	return request[[]models.RunRecord](http.MethodGet, "/api/runs", nil)
}

// GetRun - fetch a run by ID
func GetRun(id string) *models.RunRecord {
	return request[models.RunRecord](http.MethodGet, "/api/runs/"+id, nil)
}

// CreateRun - launch a run of a scenario
func CreateRun(payload *CreateRunPayload) *models.RunRecord {
	return request[models.RunRecord](http.MethodPost, "/api/runs", payload)
}

// DeleteRun - delete a run and its rendered configs
func DeleteRun(id string) *models.SuccessResponse {
	return request[models.SuccessResponse](http.MethodDelete, "/api/runs/"+id, nil)
}

// UpdateRunStatus - move a run to a new status
func UpdateRunStatus(id, status string) *models.RunRecord {
	return request[models.RunRecord](http.MethodPut, "/api/runs/"+id+"/status",
		map[string]string{"status": status})
}
