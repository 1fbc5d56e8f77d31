package statedump

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDump = `{
	"queued_calls": [{"zome": "blog", "function": "create_post"}],
	"running_calls": [],
	"call_results": [
		{"call": {"zome": "blog", "function": "get_post"}, "ok": true, "result": "{}"},
		{"call": {"zome": "blog", "function": "delete_post"}, "ok": false}
	],
	"query_flows": ["q1", "q2"],
	"validation_package_flows": [],
	"direct_message_flows": [{"to": "bob::app", "message": "ping"}],
	"queued_holding_workflows": [
		{"address": "Qmabc", "workflow": "hold_entry"}
	],
	"in_process_holding_workflows": [],
	"held_aspects": {"Qmabc": ["content", "header"], "Qmdef": ["content"]},
	"source_chain": [
		{"entrytype": "dna", "address": "Qmdna", "content": "huge blob"},
		{"entrytype": "agent", "address": "Qmagent", "content": "alice"}
	]
}`

func TestDecode(t *testing.T) {
	dump, err := Decode([]byte(sampleDump))
	require.Nil(t, err)
	require.Len(t, dump.QueuedCalls, 1)
	assert.Equal(t, "blog/create_post", dump.QueuedCalls[0].String())
	require.Len(t, dump.CallResults, 2)
	assert.True(t, dump.CallResults[0].Ok)
	assert.False(t, dump.CallResults[1].Ok)
	assert.Len(t, dump.HeldAspects["Qmabc"], 2)
	require.Len(t, dump.SourceChain, 2)

	_, err = Decode([]byte("not json"))
	assert.NotNil(t, err)
}

func TestFormat(t *testing.T) {
	dump, err := Decode([]byte(sampleDump))
	require.Nil(t, err)
	out := Format("alice", dump)

	assert.Contains(t, out, "=== state dump: alice ===")
	assert.Contains(t, out, "calls: 1 queued, 0 running, 2 finished")
	assert.Contains(t, out, "queued   blog/create_post")
	assert.Contains(t, out, "done     blog/get_post (ok)")
	assert.Contains(t, out, "done     blog/delete_post (err)")
	assert.Contains(t, out, "flows: 2 query, 0 validation package, 1 direct message")
	assert.Contains(t, out, "-> bob::app: ping")
	assert.Contains(t, out, "holding: 1 queued, 0 in process")
	assert.Contains(t, out, "held entries: 2")
	assert.Contains(t, out, "Qmabc (2 aspects)")
	// dna chain content is elided
	assert.Contains(t, out, "[dna] Qmdna (omitted)")
	assert.NotContains(t, out, "huge blob")
	assert.Contains(t, out, "[agent] Qmagent alice")
}

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/debug/state" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(sampleDump))
	}))
	defer server.Close()

	dump, err := Fetch(server.URL, time.Second)
	require.Nil(t, err)
	assert.Len(t, dump.QueuedCalls, 1)

	t.Run("non-200", func(t *testing.T) {
		broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusInternalServerError)
		}))
		defer broken.Close()
		_, err := Fetch(broken.URL, time.Second)
		assert.NotNil(t, err)
	})
}
