package functions

import (
	"net/http"

	"github.com/appspec/harness/config"
)

// GetServerConfig - fetch the harness server's effective configuration
func GetServerConfig() *config.ServerConfig {
	return request[config.ServerConfig](http.MethodGet, "/api/server/config", nil)
}

// GetServerHealth - fetch the harness server's health status
func GetServerHealth() []byte {
	return requestRaw(http.MethodGet, "/api/server/health")
}
