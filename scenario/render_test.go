package scenario

import (
	"encoding/json"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appspec/harness/models"
)

func TestRender(t *testing.T) {
	cfg := buildTwo(models.NetworkDescriptor{Type: models.NetworkSim2h, Sim2hURL: "ws://sb:9000"})

	t.Run("round trips through toml", func(t *testing.T) {
		data, err := Render(&cfg, "alice")
		require.Nil(t, err)
		var doc playerDoc
		require.Nil(t, toml.Unmarshal(data, &doc))
		assert.Equal(t, "alice", doc.Player.Name)
		assert.Equal(t, ScenarioTwo, doc.Player.Scenario)
		assert.Equal(t, "sim2h", doc.Network.Type)
		assert.Equal(t, "ws://sb:9000", doc.Network.Sim2hURL)
	})
	t.Run("instances sorted with derived agents", func(t *testing.T) {
		doc, err := buildDoc(&cfg, "alice")
		require.Nil(t, err)
		require.Len(t, doc.Instances, 2)
		assert.Equal(t, "app1", doc.Instances[0].Slot)
		assert.Equal(t, "alice::app1", doc.Instances[0].Agent)
		assert.Equal(t, "app2", doc.Instances[1].Slot)
		assert.Equal(t, "alice::app2", doc.Instances[1].Agent)
		assert.Equal(t, "altDna", doc.Instances[1].UTag)
	})
	t.Run("tracing names the player", func(t *testing.T) {
		doc, err := buildDoc(&cfg, "bob")
		require.Nil(t, err)
		assert.Equal(t, "jaeger", doc.Tracing.Type)
		assert.Equal(t, "app-spec-bob", doc.Tracing.ServiceName)
	})
	t.Run("bridges carried over", func(t *testing.T) {
		doc, err := buildDoc(&cfg, "alice")
		require.Nil(t, err)
		require.Len(t, doc.Bridges, 1)
		assert.Equal(t, BridgeHandle, doc.Bridges[0].Handle)
		assert.Equal(t, "app1", doc.Bridges[0].CallerID)
		assert.Equal(t, "app2", doc.Bridges[0].CalleeID)
	})
	t.Run("log rules preserved in order", func(t *testing.T) {
		doc, err := buildDoc(&cfg, "alice")
		require.Nil(t, err)
		require.Len(t, doc.Logger.Rules, len(commonLogRules))
		for i, rule := range doc.Logger.Rules {
			assert.Equal(t, commonLogRules[i].Pattern, rule.Pattern)
			assert.True(t, rule.Exclude)
		}
		assert.True(t, doc.Logger.StateDump)
	})
	t.Run("player name required", func(t *testing.T) {
		_, err := Render(&cfg, "")
		assert.NotNil(t, err)
	})
}

func TestRenderJSON(t *testing.T) {
	cfg := buildOne(models.NetworkDescriptor{Type: models.NetworkMemory})
	data, err := RenderJSON(&cfg, "alice")
	require.Nil(t, err)
	var doc map[string]any
	require.Nil(t, json.Unmarshal(data, &doc))
	player := doc["player"].(map[string]any)
	assert.Equal(t, "alice", player["name"])
	assert.Equal(t, ScenarioOne, player["scenario"])
	// memory transport renders without a switchboard url
	network := doc["network"].(map[string]any)
	_, hasURL := network["sim2h_url"]
	assert.False(t, hasURL)
	// the single-instance scenario declares no bridges at all
	_, hasBridges := doc["bridges"]
	assert.False(t, hasBridges)
}
