package validation

import (
	"regexp"

	validator "github.com/go-playground/validator/v10"

	"github.com/appspec/harness/models"
)

// CheckNetworkType - checks if a field is a supported network transport
func CheckNetworkType(fl validator.FieldLevel) bool {
	_, ok := models.ParseNetworkType(fl.Field().String())
	return ok
}

// CheckRegexCompiles - checks if a field holds a compilable regular expression
func CheckRegexCompiles(fl validator.FieldLevel) bool {
	_, err := regexp.Compile(fl.Field().String())
	return err == nil
}

// CheckRunStatus - checks if a field is a known run status
func CheckRunStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.RunPending, models.RunRunning, models.RunPassed, models.RunFailed, models.RunAborted:
		return true
	}
	return false
}

// CheckRegex - check if a struct's field passes regex test
func CheckRegex(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(fl.Param())
	return re.MatchString(fl.Field().String())
}
