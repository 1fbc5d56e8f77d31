package validation

import (
	"testing"

	validator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/appspec/harness/models"
)

type networkField struct {
	Type models.NetworkType `validate:"networktype_valid"`
}

type patternField struct {
	Pattern string `validate:"regex_compiles"`
}

type statusField struct {
	Status string `validate:"runstatus_valid"`
}

func TestCheckNetworkType(t *testing.T) {
	v := validator.New()
	_ = v.RegisterValidation("networktype_valid", CheckNetworkType)
	for _, good := range []models.NetworkType{
		models.NetworkWebsocket, models.NetworkMemory, models.NetworkSim2h,
	} {
		assert.Nil(t, v.Struct(networkField{Type: good}), string(good))
	}
	for _, bad := range []models.NetworkType{"", "Sim2h", "tcp", "carrier-pigeon"} {
		assert.NotNil(t, v.Struct(networkField{Type: bad}), string(bad))
	}
}

func TestCheckRegexCompiles(t *testing.T) {
	v := validator.New()
	_ = v.RegisterValidation("regex_compiles", CheckRegexCompiles)
	assert.Nil(t, v.Struct(patternField{Pattern: "^debug/dna"}))
	assert.Nil(t, v.Struct(patternField{Pattern: "sim2h_worker"}))
	assert.NotNil(t, v.Struct(patternField{Pattern: "(["}))
}

func TestCheckRunStatus(t *testing.T) {
	v := validator.New()
	_ = v.RegisterValidation("runstatus_valid", CheckRunStatus)
	for _, good := range []string{
		models.RunPending, models.RunRunning, models.RunPassed, models.RunFailed, models.RunAborted,
	} {
		assert.Nil(t, v.Struct(statusField{Status: good}), good)
	}
	assert.NotNil(t, v.Struct(statusField{Status: "done"}))
}
