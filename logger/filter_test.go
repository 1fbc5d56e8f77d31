package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appspec/harness/models"
)

func TestApplyRules(t *testing.T) {
	defer ClearRules()

	t.Run("excluded lines never reach the ledger", func(t *testing.T) {
		Dump() // start from an empty ledger
		err := ApplyRules(models.LoggerConfig{Rules: []models.LogRule{
			{Exclude: true, Pattern: "sim2h_worker"},
			{Exclude: true, Pattern: "^debug/dna"},
		}})
		require.Nil(t, err)

		Log(0, "sim2h_worker: tick")
		Log(0, "debug/dna reduce state")
		Log(0, "instance app1 spawned")

		dump := Dump()
		assert.NotContains(t, dump, "sim2h_worker")
		assert.NotContains(t, dump, "debug/dna")
		assert.Contains(t, dump, "instance app1 spawned")
	})

	t.Run("anchored pattern only drops at line start", func(t *testing.T) {
		require.Nil(t, ApplyRules(models.LoggerConfig{Rules: []models.LogRule{
			{Exclude: true, Pattern: "^debug/dna"},
		}}))
		Log(0, "saw debug/dna in payload")
		dump := Dump()
		assert.Contains(t, dump, "saw debug/dna in payload")
	})

	t.Run("non-exclusion rules are ignored", func(t *testing.T) {
		require.Nil(t, ApplyRules(models.LoggerConfig{Rules: []models.LogRule{
			{Exclude: false, Pattern: "instance", Color: "green"},
		}}))
		Log(0, "instance app1 spawned")
		assert.Contains(t, Dump(), "instance app1 spawned")
	})

	t.Run("bad pattern rejected, old rules kept", func(t *testing.T) {
		require.Nil(t, ApplyRules(models.LoggerConfig{Rules: []models.LogRule{
			{Exclude: true, Pattern: "ws::io"},
		}}))
		err := ApplyRules(models.LoggerConfig{Rules: []models.LogRule{
			{Exclude: true, Pattern: "(["},
		}})
		require.NotNil(t, err)
		Log(0, "ws::io noise")
		assert.NotContains(t, Dump(), "ws::io noise")
	})

	t.Run("clear restores everything", func(t *testing.T) {
		require.Nil(t, ApplyRules(models.LoggerConfig{Rules: []models.LogRule{
			{Exclude: true, Pattern: "ws::io"},
		}}))
		ClearRules()
		Log(0, "ws::io noise")
		assert.Contains(t, Dump(), "ws::io noise")
	})
}

func TestDumpCounts(t *testing.T) {
	Dump()
	Log(0, "repeated line")
	Log(0, "repeated line")
	Log(0, "repeated line")
	dump := Dump()
	require.NotEmpty(t, dump)
	line := ""
	for _, l := range strings.Split(dump, "\n") {
		if strings.Contains(l, "repeated line") {
			line = l
			break
		}
	}
	require.NotEmpty(t, line)
	assert.Contains(t, line, "(3)")
}
