package models

import "time"

const (
	// RunPending - run created but no player has checked in
	RunPending = "pending"
	// RunRunning - at least one player is up
	RunRunning = "running"
	// RunPassed - scenario finished and all assertions held
	RunPassed = "passed"
	// RunFailed - scenario finished with failures
	RunFailed = "failed"
	// RunAborted - run was stopped before finishing
	RunAborted = "aborted"
)

// RunRecord - bookkeeping for one execution of a scenario
type RunRecord struct {
	ID         string    `json:"id" yaml:"id"`
	Scenario   string    `json:"scenario" yaml:"scenario" validate:"required"`
	Players    []string  `json:"players" yaml:"players"`
	Status     string    `json:"status" yaml:"status" validate:"runstatus_valid"`
	StartedAt  time.Time `json:"startedat" yaml:"startedat"`
	FinishedAt time.Time `json:"finishedat,omitempty" yaml:"finishedat,omitempty"`
}

// IsFinished - whether the run reached a terminal status
func (r *RunRecord) IsFinished() bool {
	return r.Status == RunPassed || r.Status == RunFailed || r.Status == RunAborted
}

// ErrorResponse is struct for error
type ErrorResponse struct {
	Code    int    `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message" validate:"required"`
}

// SuccessResponse is struct for sending message with code.
type SuccessResponse struct {
	Code     int         `json:"code" yaml:"code"`
	Message  string      `json:"message" yaml:"message"`
	Response interface{} `json:"response,omitempty" yaml:"response,omitempty"`
}
