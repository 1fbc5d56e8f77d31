package models

// NetworkType - the transport used by runtime instances under test to reach peers
type NetworkType string

const (
	// NetworkWebsocket - direct websocket transport between instances
	NetworkWebsocket NetworkType = "websocket"
	// NetworkMemory - in-process transport, no real networking
	NetworkMemory NetworkType = "memory"
	// NetworkSim2h - switchboard transport, needs a sim2h server URL
	NetworkSim2h NetworkType = "sim2h"
)

// ParseNetworkType - maps a raw string onto a supported transport
func ParseNetworkType(value string) (NetworkType, bool) {
	switch NetworkType(value) {
	case NetworkWebsocket, NetworkMemory, NetworkSim2h:
		return NetworkType(value), true
	}
	return "", false
}

// AppDescriptor - one application bundle to be installed into a runtime instance.
// Two descriptors may share a BundlePath and still count as independent
// applications as long as their UTag differs.
type AppDescriptor struct {
	ID         string `json:"id" yaml:"id" validate:"required,min=1,max=64"`
	BundlePath string `json:"bundlepath" yaml:"bundlepath" validate:"required"`
	UTag       string `json:"utag,omitempty" yaml:"utag,omitempty"`
}

// NetworkDescriptor - transport selection plus the switchboard URL for sim2h
type NetworkDescriptor struct {
	Type     NetworkType `json:"type" yaml:"type" validate:"required,networktype_valid"`
	Sim2hURL string      `json:"sim2hurl,omitempty" yaml:"sim2hurl,omitempty"`
}

// LogRule - a single log filtering rule; Pattern is a regular expression
// matched against log line content
type LogRule struct {
	Exclude bool   `json:"exclude" yaml:"exclude"`
	Pattern string `json:"pattern" yaml:"pattern" validate:"required,regex_compiles"`
	Color   string `json:"color,omitempty" yaml:"color,omitempty"`
}

// LoggerConfig - log handling for every instance in a scenario. Rules are
// applied in order; StateDump requests a full state snapshot from instances
// when a scenario run ends.
type LoggerConfig struct {
	Type      string    `json:"type" yaml:"type"`
	Rules     []LogRule `json:"rules" yaml:"rules" validate:"dive"`
	StateDump bool      `json:"statedump" yaml:"statedump"`
}

// TracingConfig - tracing exporter selection for one player
type TracingConfig struct {
	Type        string `json:"type" yaml:"type"`
	ServiceName string `json:"servicename" yaml:"servicename"`
}

// Bridge - a declared permission link letting the Caller slot call into the
// Callee slot within the same scenario
type Bridge struct {
	Handle string `json:"handle" yaml:"handle" validate:"required"`
	Caller string `json:"caller" yaml:"caller" validate:"required"`
	Callee string `json:"callee" yaml:"callee" validate:"required"`
}

// ScenarioConfig - a named test configuration: application slots, shared
// network/logger settings and bridge declarations. Built once at startup and
// read-only afterwards.
type ScenarioConfig struct {
	Name      string                   `json:"name" yaml:"name" validate:"required,min=1,max=64"`
	Instances map[string]AppDescriptor `json:"instances" yaml:"instances" validate:"required,min=1"`
	Network   NetworkDescriptor        `json:"network" yaml:"network"`
	Logger    LoggerConfig             `json:"logger" yaml:"logger"`
	Bridges   []Bridge                 `json:"bridges,omitempty" yaml:"bridges,omitempty" validate:"dive"`
}

// HasSlot - reports whether the scenario declares the given application slot
func (s *ScenarioConfig) HasSlot(slot string) bool {
	_, ok := s.Instances[slot]
	return ok
}

// TracingFor - returns the tracing config for a named player. Every player
// reports to jaeger under its own service name so traces from concurrent
// instances stay separable.
func TracingFor(player string) TracingConfig {
	return TracingConfig{
		Type:        "jaeger",
		ServiceName: "app-spec-" + player,
	}
}
