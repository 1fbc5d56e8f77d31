package harnesscfg

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/appspec/harness/config"
	"github.com/appspec/harness/models"
)

func TestGetNetworkType(t *testing.T) {
	t.Run("websocket", func(t *testing.T) {
		os.Setenv(NetworkTypeEnvVar, "websocket")
		defer os.Unsetenv(NetworkTypeEnvVar)
		netType, err := GetNetworkType()
		assert.Nil(t, err)
		assert.Equal(t, models.NetworkWebsocket, netType)
	})
	t.Run("memory", func(t *testing.T) {
		os.Setenv(NetworkTypeEnvVar, "memory")
		defer os.Unsetenv(NetworkTypeEnvVar)
		netType, err := GetNetworkType()
		assert.Nil(t, err)
		assert.Equal(t, models.NetworkMemory, netType)
	})
	t.Run("sim2h", func(t *testing.T) {
		os.Setenv(NetworkTypeEnvVar, "sim2h")
		defer os.Unsetenv(NetworkTypeEnvVar)
		netType, err := GetNetworkType()
		assert.Nil(t, err)
		assert.Equal(t, models.NetworkSim2h, netType)
	})
	t.Run("unset", func(t *testing.T) {
		os.Unsetenv(NetworkTypeEnvVar)
		_, err := GetNetworkType()
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "is not set")
	})
	t.Run("unsupported", func(t *testing.T) {
		os.Setenv(NetworkTypeEnvVar, "carrier-pigeon")
		defer os.Unsetenv(NetworkTypeEnvVar)
		_, err := GetNetworkType()
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "carrier-pigeon")
		// the error must spell out what would have been accepted
		assert.Contains(t, err.Error(), "websocket")
		assert.Contains(t, err.Error(), "memory")
		assert.Contains(t, err.Error(), "sim2h")
	})
	t.Run("case sensitive", func(t *testing.T) {
		os.Setenv(NetworkTypeEnvVar, "Sim2h")
		defer os.Unsetenv(NetworkTypeEnvVar)
		_, err := GetNetworkType()
		assert.NotNil(t, err)
	})
}

func TestGetSim2hURL(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		os.Unsetenv("APP_SPEC_SIM2H_URL")
		assert.Equal(t, DefaultSim2hURL, GetSim2hURL())
	})
	t.Run("env override", func(t *testing.T) {
		os.Setenv("APP_SPEC_SIM2H_URL", "ws://switchboard:4242")
		defer os.Unsetenv("APP_SPEC_SIM2H_URL")
		assert.Equal(t, "ws://switchboard:4242", GetSim2hURL())
	})
	t.Run("config fallback", func(t *testing.T) {
		os.Unsetenv("APP_SPEC_SIM2H_URL")
		config.Config.Server.Sim2hURL = "ws://from-file:9000"
		defer func() { config.Config.Server.Sim2hURL = "" }()
		assert.Equal(t, "ws://from-file:9000", GetSim2hURL())
	})
}

func TestGetAPIPort(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		os.Unsetenv("API_PORT")
		assert.Equal(t, "9481", GetAPIPort())
	})
	t.Run("env override", func(t *testing.T) {
		os.Setenv("API_PORT", "8080")
		defer os.Unsetenv("API_PORT")
		assert.Equal(t, "8080", GetAPIPort())
	})
}

func TestGetVerbosity(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		os.Unsetenv("VERBOSITY")
		assert.Equal(t, int32(0), GetVerbosity())
	})
	t.Run("in range", func(t *testing.T) {
		os.Setenv("VERBOSITY", "3")
		defer os.Unsetenv("VERBOSITY")
		assert.Equal(t, int32(3), GetVerbosity())
	})
	t.Run("out of range", func(t *testing.T) {
		os.Setenv("VERBOSITY", "11")
		defer os.Unsetenv("VERBOSITY")
		assert.Equal(t, int32(0), GetVerbosity())
	})
	t.Run("garbage", func(t *testing.T) {
		os.Setenv("VERBOSITY", "loud")
		defer os.Unsetenv("VERBOSITY")
		assert.Equal(t, int32(0), GetVerbosity())
	})
}

func TestGetRunRetentionHours(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		os.Unsetenv("RUN_RETENTION_HOURS")
		assert.Equal(t, 72, GetRunRetentionHours())
	})
	t.Run("env override", func(t *testing.T) {
		os.Setenv("RUN_RETENTION_HOURS", "24")
		defer os.Unsetenv("RUN_RETENTION_HOURS")
		assert.Equal(t, 24, GetRunRetentionHours())
	})
	t.Run("non positive rejected", func(t *testing.T) {
		os.Setenv("RUN_RETENTION_HOURS", "-1")
		defer os.Unsetenv("RUN_RETENTION_HOURS")
		assert.Equal(t, 72, GetRunRetentionHours())
	})
}

func TestIsMessageQueueBackend(t *testing.T) {
	t.Run("off without endpoint", func(t *testing.T) {
		os.Unsetenv("BROKER_ENDPOINT")
		os.Unsetenv("MESSAGEQUEUE_BACKEND")
		assert.False(t, IsMessageQueueBackend())
	})
	t.Run("on with endpoint", func(t *testing.T) {
		os.Setenv("BROKER_ENDPOINT", "mqtt://broker:1883")
		defer os.Unsetenv("BROKER_ENDPOINT")
		assert.True(t, IsMessageQueueBackend())
	})
	t.Run("explicitly off", func(t *testing.T) {
		os.Setenv("BROKER_ENDPOINT", "mqtt://broker:1883")
		os.Setenv("MESSAGEQUEUE_BACKEND", "off")
		defer os.Unsetenv("BROKER_ENDPOINT")
		defer os.Unsetenv("MESSAGEQUEUE_BACKEND")
		assert.False(t, IsMessageQueueBackend())
	})
}

func TestGetServerConfig(t *testing.T) {
	os.Setenv("MASTER_KEY", "secretkey")
	defer os.Unsetenv("MASTER_KEY")
	cfg := GetServerConfig()
	assert.Equal(t, "(hidden)", cfg.MasterKey)
	assert.Equal(t, "9481", cfg.APIPort)
	assert.Equal(t, "sqlite", cfg.Database)
}
