package functions

import (
	"net/http"
	"net/url"

	"github.com/appspec/harness/models"
)

// GetScenarios - fetch all registered scenarios
func GetScenarios() *[]models.ScenarioConfig {
	return request[[]models.ScenarioConfig](http.MethodGet, "/api/scenarios", nil)
}

// GetScenario - fetch a single scenario by name
func GetScenario(name string) *models.ScenarioConfig {
	return request[models.ScenarioConfig](http.MethodGet, "/api/scenarios/"+url.PathEscape(name), nil)
}

// RenderPlayerConfig - fetch the rendered TOML config for a player of a scenario
func RenderPlayerConfig(name, player string) []byte {
	return requestRaw(http.MethodGet,
		"/api/scenarios/"+url.PathEscape(name)+"/players/"+url.PathEscape(player)+"/config")
}

// RenderPlayerConfigJSON - fetch the rendered config for a player as JSON
func RenderPlayerConfigJSON(name, player string) []byte {
	return requestRaw(http.MethodGet,
		"/api/scenarios/"+url.PathEscape(name)+"/players/"+url.PathEscape(player)+"/config?format=json")
}
