// Package statedump decodes and formats the state snapshots runtime
// instances expose on their admin interface. The harness only reads and
// pretty-prints them when a scenario's logger config asks for a state dump;
// producing the snapshot is the runtime's business.
package statedump

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/appspec/harness/logger"
)

// FnCall - one queued or running application function call
type FnCall struct {
	Zome       string `json:"zome"`
	Function   string `json:"function"`
	Parameters string `json:"parameters,omitempty"`
}

// String - zome/function shorthand used all over the dump output
func (c FnCall) String() string {
	return c.Zome + "/" + c.Function
}

// CallResult - outcome of a finished function call
type CallResult struct {
	Call   FnCall `json:"call"`
	Ok     bool   `json:"ok"`
	Result string `json:"result,omitempty"`
}

// DirectMessageFlow - an in-flight node-to-node message
type DirectMessageFlow struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// PendingValidation - an entry waiting in a holding workflow
type PendingValidation struct {
	Address      string    `json:"address"`
	Workflow     string    `json:"workflow"`
	Dependencies []string  `json:"dependencies,omitempty"`
	Deadline     time.Time `json:"deadline,omitempty"`
}

// ChainEntry - one committed source chain record
type ChainEntry struct {
	EntryType string `json:"entrytype"`
	Address   string `json:"address"`
	Content   string `json:"content,omitempty"`
}

// StateDump - point-in-time snapshot of one runtime instance's internals
type StateDump struct {
	QueuedCalls               []FnCall            `json:"queued_calls"`
	RunningCalls              []FnCall            `json:"running_calls"`
	CallResults               []CallResult        `json:"call_results"`
	QueryFlows                []string            `json:"query_flows"`
	ValidationPackageFlows    []string            `json:"validation_package_flows"`
	DirectMessageFlows        []DirectMessageFlow `json:"direct_message_flows"`
	QueuedHoldingWorkflows    []PendingValidation `json:"queued_holding_workflows"`
	InProcessHoldingWorkflows []PendingValidation `json:"in_process_holding_workflows"`
	HeldAspects               map[string][]string `json:"held_aspects"`
	SourceChain               []ChainEntry        `json:"source_chain"`
}

// Decode - parses a snapshot from its admin interface json form
func Decode(data []byte) (*StateDump, error) {
	var dump StateDump
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("undecodable state dump: %w", err)
	}
	return &dump, nil
}

// Fetch - pulls a snapshot from a player's admin interface
func Fetch(adminURL string, timeout time.Duration) (*StateDump, error) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(adminURL + "/debug/state")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("state dump request returned %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return Decode(body)
}

// Format - renders the snapshot the way it gets logged: counts first, then
// the interesting flows line by line. DNA entries are elided from the chain
// section, their content is megabytes of compiled bundle.
func Format(player string, dump *StateDump) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== state dump: %s ===\n", player)
	fmt.Fprintf(&b, "calls: %d queued, %d running, %d finished\n",
		len(dump.QueuedCalls), len(dump.RunningCalls), len(dump.CallResults))
	for _, call := range dump.QueuedCalls {
		fmt.Fprintf(&b, "  queued   %s\n", call)
	}
	for _, call := range dump.RunningCalls {
		fmt.Fprintf(&b, "  running  %s\n", call)
	}
	for _, result := range dump.CallResults {
		status := "ok"
		if !result.Ok {
			status = "err"
		}
		fmt.Fprintf(&b, "  done     %s (%s)\n", result.Call, status)
	}

	fmt.Fprintf(&b, "flows: %d query, %d validation package, %d direct message\n",
		len(dump.QueryFlows), len(dump.ValidationPackageFlows), len(dump.DirectMessageFlows))
	for _, flow := range dump.DirectMessageFlows {
		fmt.Fprintf(&b, "  -> %s: %s\n", flow.To, flow.Message)
	}

	fmt.Fprintf(&b, "holding: %d queued, %d in process\n",
		len(dump.QueuedHoldingWorkflows), len(dump.InProcessHoldingWorkflows))
	for _, pending := range append(dump.QueuedHoldingWorkflows, dump.InProcessHoldingWorkflows...) {
		fmt.Fprintf(&b, "  %s %s\n", pending.Workflow, pending.Address)
	}

	addresses := make([]string, 0, len(dump.HeldAspects))
	for address := range dump.HeldAspects {
		addresses = append(addresses, address)
	}
	sort.Strings(addresses)
	fmt.Fprintf(&b, "held entries: %d\n", len(addresses))
	for _, address := range addresses {
		fmt.Fprintf(&b, "  %s (%d aspects)\n", address, len(dump.HeldAspects[address]))
	}

	fmt.Fprintf(&b, "source chain: %d entries\n", len(dump.SourceChain))
	for _, chainEntry := range dump.SourceChain {
		content := chainEntry.Content
		if chainEntry.EntryType == "dna" {
			content = "(omitted)"
		}
		fmt.Fprintf(&b, "  [%s] %s %s\n", chainEntry.EntryType, chainEntry.Address, content)
	}
	return b.String()
}

// LogDump - writes the formatted snapshot through the harness logger
func LogDump(player string, dump *StateDump) {
	for _, line := range strings.Split(strings.TrimRight(Format(player, dump), "\n"), "\n") {
		logger.Log(0, line)
	}
}
