// Environment file for getting variables
// Only holds settings that are safe to keep in a checked-in yaml file;
// the network transport selection is env-only on purpose (a missing value
// must abort startup rather than silently fall back to a file default).
// Reads from the environments/dev.yaml file by default.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// setting dev by default
func getEnv() string {
	env := os.Getenv("HARNESS_ENV")
	if len(env) == 0 {
		return "dev"
	}
	return env
}

// Config : application config stored as global variable
var Config *EnvironmentConfig = &EnvironmentConfig{}

// EnvironmentConfig - environment conf struct
type EnvironmentConfig struct {
	Server ServerConfig `yaml:"server"`
	SQL    SQLConfig    `yaml:"sql"`
}

// ServerConfig - harness server conf struct
type ServerConfig struct {
	APIHost             string `yaml:"apihost"`
	APIPort             string `yaml:"apiport"`
	MasterKey           string `yaml:"masterkey"`
	AllowedOrigin       string `yaml:"allowedorigin"`
	Broker              string `yaml:"broker"`
	MQUserName          string `yaml:"mqusername"`
	MQPassword          string `yaml:"mqpassword"`
	MessageQueueBackend string `yaml:"messagequeuebackend"`
	Database            string `yaml:"database"`
	SQLConn             string `yaml:"sqlconn"`
	Verbosity           int32  `yaml:"verbosity"`
	BundlePath          string `yaml:"bundlepath"`
	Sim2hURL            string `yaml:"sim2hurl"`
	RunRetentionHours   int    `yaml:"run_retention_hours"`
	Version             string `yaml:"version"`
	DisableRetention    bool   `yaml:"disable_retention"`
}

// SQLConfig - Generic SQL Config
type SQLConfig struct {
	Host     string `yaml:"host"`
	Port     int32  `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	DB       string `yaml:"db"`
	SSLMode  string `yaml:"sslmode"`
}

// ReadConfig - reads a config from disk, from the given absolute path or the
// per-environment default location
func ReadConfig(absolutePath string) (*EnvironmentConfig, error) {
	if len(absolutePath) == 0 {
		absolutePath = fmt.Sprintf("environments/%s.yaml", getEnv())
	}
	f, err := os.Open(absolutePath)
	var cfg EnvironmentConfig
	if err != nil {
		return &cfg, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err = decoder.Decode(&cfg); err != nil {
		return &cfg, err
	}
	return &cfg, nil
}
