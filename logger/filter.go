package logger

import (
	"fmt"
	"regexp"

	"github.com/appspec/harness/models"
)

// compiled exclusion rules, applied in install order
var excludeRules []*regexp.Regexp

// ApplyRules - installs a scenario's logger rules. Only exclusion rules
// affect the harness's own output; color rules are meant for the runtime
// instances and are ignored here. Replaces any previously installed set.
func ApplyRules(cfg models.LoggerConfig) error {
	compiled := make([]*regexp.Regexp, 0, len(cfg.Rules))
	for _, rule := range cfg.Rules {
		if !rule.Exclude {
			continue
		}
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return fmt.Errorf("bad log rule pattern %q: %w", rule.Pattern, err)
		}
		compiled = append(compiled, re)
	}
	mu.Lock()
	excludeRules = compiled
	mu.Unlock()
	return nil
}

// ClearRules - removes all installed exclusion rules
func ClearRules() {
	mu.Lock()
	excludeRules = nil
	mu.Unlock()
}

// dropByRule - true when the message matches any exclusion rule; caller holds mu
func dropByRule(message string) bool {
	for _, re := range excludeRules {
		if re.MatchString(message) {
			return true
		}
	}
	return false
}
