package scenario

import (
	"github.com/appspec/harness/harnesscfg"
	"github.com/appspec/harness/models"
	"github.com/appspec/harness/network"
)

// scenario names understood by the orchestration engine
const (
	ScenarioOne        = "one"
	ScenarioOneOffline = "oneOffline"
	ScenarioTwo        = "two"
)

// BridgeHandle - the handle instances use to look up the declared bridge
const BridgeHandle = "test-bridge"

// altUTag - distinguishes the second copy of the bundle in the two-instance
// scenario; same bundle, independent application
const altUTag = "altDna"

// commonLogRules - fixed ordered exclusion list shared by every scenario.
// Patterns are matched against log line content; the runtime's transport and
// reactor internals drown out the lines the tests actually need.
var commonLogRules = []models.LogRule{
	{Exclude: true, Pattern: "^debug/dna"},
	{Exclude: true, Pattern: "^debug/reduce"},
	{Exclude: true, Pattern: "sim2h_worker"},
	{Exclude: true, Pattern: "mio::poll"},
	{Exclude: true, Pattern: "tokio_core::reactor"},
	{Exclude: true, Pattern: "hyper::proto"},
	{Exclude: true, Pattern: "ws::io"},
}

// dna - the primary application bundle descriptor
func dna() models.AppDescriptor {
	return models.AppDescriptor{
		ID:         "app-spec",
		BundlePath: harnesscfg.GetBundlePath(),
	}
}

// dna2 - same bundle and identifier as dna, separate application by UTag
func dna2() models.AppDescriptor {
	d := dna()
	d.UTag = altUTag
	return d
}

// commonLogger - shared logger settings, state dump on
func commonLogger() models.LoggerConfig {
	rules := make([]models.LogRule, len(commonLogRules))
	copy(rules, commonLogRules)
	return models.LoggerConfig{
		Type:      "debug",
		Rules:     rules,
		StateDump: true,
	}
}

// buildOne - single instance in slot "app"
func buildOne(netDesc models.NetworkDescriptor) models.ScenarioConfig {
	return models.ScenarioConfig{
		Name: ScenarioOne,
		Instances: map[string]models.AppDescriptor{
			"app": dna(),
		},
		Network: netDesc,
		Logger:  commonLogger(),
	}
}

// buildOneOffline - like one, but pinned to the unreachable switchboard no
// matter which transport the environment selected
func buildOneOffline(models.NetworkDescriptor) models.ScenarioConfig {
	cfg := buildOne(network.Offline())
	cfg.Name = ScenarioOneOffline
	return cfg
}

// buildTwo - two instances of the same bundle plus a bridge from app1 to app2
func buildTwo(netDesc models.NetworkDescriptor) models.ScenarioConfig {
	return models.ScenarioConfig{
		Name: ScenarioTwo,
		Instances: map[string]models.AppDescriptor{
			"app1": dna(),
			"app2": dna2(),
		},
		Network: netDesc,
		Logger:  commonLogger(),
		Bridges: []models.Bridge{
			{Handle: BridgeHandle, Caller: "app1", Callee: "app2"},
		},
	}
}

// BuildAll - assembles every scenario config around the given shared network
// descriptor. Pure construction, no registry side effects.
func BuildAll(netDesc models.NetworkDescriptor) map[string]models.ScenarioConfig {
	builders := map[string]func(models.NetworkDescriptor) models.ScenarioConfig{
		ScenarioOne:        buildOne,
		ScenarioOneOffline: buildOneOffline,
		ScenarioTwo:        buildTwo,
	}
	configs := make(map[string]models.ScenarioConfig, len(builders))
	for name, build := range builders {
		configs[name] = build(netDesc)
	}
	return configs
}
