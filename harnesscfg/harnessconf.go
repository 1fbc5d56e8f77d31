package harnesscfg

import (
	"fmt"
	"os"
	"strconv"

	"github.com/appspec/harness/config"
	"github.com/appspec/harness/models"
)

// NetworkTypeEnvVar - the environment variable holding the transport selection
const NetworkTypeEnvVar = "APP_SPEC_NETWORK_TYPE"

// DefaultSim2hURL - switchboard assumed to run next to the harness unless told otherwise
const DefaultSim2hURL = "ws://localhost:9000"

// DefaultBundlePath - where the compiled application bundle is expected;
// building the bundle is the job of the surrounding build, not the harness
const DefaultBundlePath = "./dist/app-spec.bundle.json"

var (
	// Version - harness version, set at build time
	Version = "dev"
)

// SetVersion - set the harness version
func SetVersion(v string) {
	if len(v) > 0 {
		Version = v
	}
}

// GetVersion - get the harness version
func GetVersion() string {
	return Version
}

// GetNetworkType - reads the transport selection from APP_SPEC_NETWORK_TYPE.
// There is deliberately no default and no config-file fallback: an
// unrecognized or missing value is a configuration error the caller must
// treat as fatal before any scenario config is produced.
func GetNetworkType() (models.NetworkType, error) {
	value := os.Getenv(NetworkTypeEnvVar)
	if netType, ok := models.ParseNetworkType(value); ok {
		return netType, nil
	}
	if value == "" {
		return "", fmt.Errorf("%s is not set, must be one of %q, %q or %q",
			NetworkTypeEnvVar, models.NetworkWebsocket, models.NetworkMemory, models.NetworkSim2h)
	}
	return "", fmt.Errorf("unsupported network type %q in %s, must be one of %q, %q or %q",
		value, NetworkTypeEnvVar, models.NetworkWebsocket, models.NetworkMemory, models.NetworkSim2h)
}

// GetSim2hURL - the sim2h switchboard URL for online scenarios
func GetSim2hURL() string {
	url := DefaultSim2hURL
	if os.Getenv("APP_SPEC_SIM2H_URL") != "" {
		url = os.Getenv("APP_SPEC_SIM2H_URL")
	} else if config.Config.Server.Sim2hURL != "" {
		url = config.Config.Server.Sim2hURL
	}
	return url
}

// GetBundlePath - path of the compiled application bundle artifact
func GetBundlePath() string {
	path := DefaultBundlePath
	if os.Getenv("APP_SPEC_BUNDLE_PATH") != "" {
		path = os.Getenv("APP_SPEC_BUNDLE_PATH")
	} else if config.Config.Server.BundlePath != "" {
		path = config.Config.Server.BundlePath
	}
	return path
}

// GetAPIHost - the interface the harness API binds to
func GetAPIHost() string {
	host := "0.0.0.0"
	if os.Getenv("API_HOST") != "" {
		host = os.Getenv("API_HOST")
	} else if config.Config.Server.APIHost != "" {
		host = config.Config.Server.APIHost
	}
	return host
}

// GetAPIPort - the harness api port
func GetAPIPort() string {
	apiport := "9481"
	if os.Getenv("API_PORT") != "" {
		apiport = os.Getenv("API_PORT")
	} else if config.Config.Server.APIPort != "" {
		apiport = config.Config.Server.APIPort
	}
	return apiport
}

// GetMasterKey - gets the configured master key of the harness
func GetMasterKey() string {
	key := ""
	if os.Getenv("MASTER_KEY") != "" {
		key = os.Getenv("MASTER_KEY")
	} else if config.Config.Server.MasterKey != "" {
		key = config.Config.Server.MasterKey
	}
	return key
}

// GetAllowedOrigin - get the allowed origin for the api
func GetAllowedOrigin() string {
	allowedorigin := "*"
	if os.Getenv("CORS_ALLOWED_ORIGIN") != "" {
		allowedorigin = os.Getenv("CORS_ALLOWED_ORIGIN")
	} else if config.Config.Server.AllowedOrigin != "" {
		allowedorigin = config.Config.Server.AllowedOrigin
	}
	return allowedorigin
}

// GetDB - gets the database type, sqlite unless overridden
func GetDB() string {
	database := "sqlite"
	if os.Getenv("DATABASE") != "" {
		database = os.Getenv("DATABASE")
	} else if config.Config.Server.Database != "" {
		database = config.Config.Server.Database
	}
	return database
}

// GetVerbosity - fetches the log verbosity, 0 to 4
func GetVerbosity() int32 {
	var verbosity = 0
	var err error
	if os.Getenv("VERBOSITY") != "" {
		verbosity, err = strconv.Atoi(os.Getenv("VERBOSITY"))
		if err != nil {
			verbosity = 0
		}
	} else if config.Config.Server.Verbosity != 0 {
		verbosity = int(config.Config.Server.Verbosity)
	}
	if verbosity < 0 || verbosity > 4 {
		verbosity = 0
	}
	return int32(verbosity)
}

// GetMessageQueueEndpoint - gets the message queue endpoint, if any
func GetMessageQueueEndpoint() (string, bool) {
	host := ""
	if os.Getenv("BROKER_ENDPOINT") != "" {
		host = os.Getenv("BROKER_ENDPOINT")
	} else if config.Config.Server.Broker != "" {
		host = config.Config.Server.Broker
	}
	return host, host != ""
}

// IsMessageQueueBackend - checks whether the harness should distribute
// rendered configs over mqtt
func IsMessageQueueBackend() bool {
	isMessageQueueBackend := true
	if os.Getenv("MESSAGEQUEUE_BACKEND") != "" {
		isMessageQueueBackend = os.Getenv("MESSAGEQUEUE_BACKEND") == "on"
	} else if config.Config.Server.MessageQueueBackend != "" {
		isMessageQueueBackend = config.Config.Server.MessageQueueBackend == "on"
	}
	if _, ok := GetMessageQueueEndpoint(); !ok {
		return false
	}
	return isMessageQueueBackend
}

// GetMqUserName - fetches the mq username
func GetMqUserName() string {
	password := ""
	if os.Getenv("MQ_USERNAME") != "" {
		password = os.Getenv("MQ_USERNAME")
	} else if config.Config.Server.MQUserName != "" {
		password = config.Config.Server.MQUserName
	}
	return password
}

// GetMqPassword - fetches the mq password
func GetMqPassword() string {
	password := ""
	if os.Getenv("MQ_PASSWORD") != "" {
		password = os.Getenv("MQ_PASSWORD")
	} else if config.Config.Server.MQPassword != "" {
		password = config.Config.Server.MQPassword
	}
	return password
}

// GetRunRetentionHours - how long finished run records are kept around
func GetRunRetentionHours() int {
	retention := 72
	if os.Getenv("RUN_RETENTION_HOURS") != "" {
		hours, err := strconv.Atoi(os.Getenv("RUN_RETENTION_HOURS"))
		if err == nil && hours > 0 {
			retention = hours
		}
	} else if config.Config.Server.RunRetentionHours > 0 {
		retention = config.Config.Server.RunRetentionHours
	}
	return retention
}

// IsRetentionDisabled - whether run pruning is turned off
func IsRetentionDisabled() bool {
	if os.Getenv("DISABLE_RETENTION") != "" {
		return os.Getenv("DISABLE_RETENTION") == "true"
	}
	return config.Config.Server.DisableRetention
}

// GetServerConfig - assembles the effective harness config for the health api
func GetServerConfig() config.ServerConfig {
	var cfg config.ServerConfig
	cfg.APIHost = GetAPIHost()
	cfg.APIPort = GetAPIPort()
	cfg.MasterKey = "(hidden)"
	cfg.AllowedOrigin = GetAllowedOrigin()
	cfg.Database = GetDB()
	cfg.Verbosity = GetVerbosity()
	cfg.BundlePath = GetBundlePath()
	cfg.Sim2hURL = GetSim2hURL()
	cfg.RunRetentionHours = GetRunRetentionHours()
	cfg.Version = GetVersion()
	if broker, ok := GetMessageQueueEndpoint(); ok {
		cfg.Broker = broker
	}
	cfg.MessageQueueBackend = "off"
	if IsMessageQueueBackend() {
		cfg.MessageQueueBackend = "on"
	}
	return cfg
}
