package scenario

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/appspec/harness/models"
)

// sections of the per-player runtime config document; the external
// orchestration engine writes the rendered TOML next to each runtime
// instance it starts

type playerSection struct {
	Name     string `toml:"name" json:"name"`
	Scenario string `toml:"scenario" json:"scenario"`
}

type instanceSection struct {
	Slot       string `toml:"slot" json:"slot"`
	Agent      string `toml:"agent" json:"agent"`
	ID         string `toml:"id" json:"id"`
	BundlePath string `toml:"bundle_path" json:"bundle_path"`
	UTag       string `toml:"utag,omitempty" json:"utag,omitempty"`
}

type networkSection struct {
	Type     string `toml:"type" json:"type"`
	Sim2hURL string `toml:"sim2h_url,omitempty" json:"sim2h_url,omitempty"`
}

type logRuleSection struct {
	Exclude bool   `toml:"exclude" json:"exclude"`
	Pattern string `toml:"pattern" json:"pattern"`
	Color   string `toml:"color,omitempty" json:"color,omitempty"`
}

type loggerSection struct {
	Type      string           `toml:"type" json:"type"`
	Rules     []logRuleSection `toml:"rules" json:"rules"`
	StateDump bool             `toml:"state_dump" json:"state_dump"`
}

type tracingSection struct {
	Type        string `toml:"type" json:"type"`
	ServiceName string `toml:"service_name" json:"service_name"`
}

type bridgeSection struct {
	Handle   string `toml:"handle" json:"handle"`
	CallerID string `toml:"caller_id" json:"caller_id"`
	CalleeID string `toml:"callee_id" json:"callee_id"`
}

type playerDoc struct {
	Player    playerSection     `toml:"player" json:"player"`
	Instances []instanceSection `toml:"instances" json:"instances"`
	Network   networkSection    `toml:"network" json:"network"`
	Logger    loggerSection     `toml:"logger" json:"logger"`
	Tracing   tracingSection    `toml:"tracing" json:"tracing"`
	Bridges   []bridgeSection   `toml:"bridges,omitempty" json:"bridges,omitempty"`
}

func buildDoc(cfg *models.ScenarioConfig, player string) (*playerDoc, error) {
	if player == "" {
		return nil, fmt.Errorf("player name required to render scenario %s", cfg.Name)
	}

	slots := make([]string, 0, len(cfg.Instances))
	for slot := range cfg.Instances {
		slots = append(slots, slot)
	}
	sort.Strings(slots)

	doc := playerDoc{
		Player: playerSection{Name: player, Scenario: cfg.Name},
		Network: networkSection{
			Type:     string(cfg.Network.Type),
			Sim2hURL: cfg.Network.Sim2hURL,
		},
		Logger: loggerSection{
			Type:      cfg.Logger.Type,
			StateDump: cfg.Logger.StateDump,
		},
	}
	for _, slot := range slots {
		desc := cfg.Instances[slot]
		doc.Instances = append(doc.Instances, instanceSection{
			Slot:       slot,
			Agent:      player + "::" + slot,
			ID:         desc.ID,
			BundlePath: desc.BundlePath,
			UTag:       desc.UTag,
		})
	}
	for _, rule := range cfg.Logger.Rules {
		doc.Logger.Rules = append(doc.Logger.Rules, logRuleSection{
			Exclude: rule.Exclude,
			Pattern: rule.Pattern,
			Color:   rule.Color,
		})
	}
	tracing := models.TracingFor(player)
	doc.Tracing = tracingSection{Type: tracing.Type, ServiceName: tracing.ServiceName}
	for _, bridge := range cfg.Bridges {
		doc.Bridges = append(doc.Bridges, bridgeSection{
			Handle:   bridge.Handle,
			CallerID: bridge.Caller,
			CalleeID: bridge.Callee,
		})
	}
	return &doc, nil
}

// Render - renders the runtime configuration document one player of the
// scenario is started with
func Render(cfg *models.ScenarioConfig, player string) ([]byte, error) {
	doc, err := buildDoc(cfg, player)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, fmt.Errorf("rendering scenario %s for %s: %w", cfg.Name, player, err)
	}
	return buf.Bytes(), nil
}

// RenderJSON - json form of the same document, for api consumers
func RenderJSON(cfg *models.ScenarioConfig, player string) ([]byte, error) {
	doc, err := buildDoc(cfg, player)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}
