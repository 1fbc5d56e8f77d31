package scenario

import (
	"fmt"

	validator "github.com/go-playground/validator/v10"

	"github.com/appspec/harness/models"
	"github.com/appspec/harness/validation"
)

// Validate - checks a scenario config for internal consistency: struct tags,
// a resolvable network descriptor and bridge endpoints that name declared
// instance slots
func Validate(cfg *models.ScenarioConfig) error {
	v := validator.New()
	_ = v.RegisterValidation("networktype_valid", validation.CheckNetworkType)
	_ = v.RegisterValidation("regex_compiles", validation.CheckRegexCompiles)
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("scenario %s invalid: %w", cfg.Name, err)
	}
	if cfg.Network.Type == models.NetworkSim2h && cfg.Network.Sim2hURL == "" {
		return fmt.Errorf("scenario %s invalid: sim2h network without a switchboard URL", cfg.Name)
	}
	for _, bridge := range cfg.Bridges {
		if !cfg.HasSlot(bridge.Caller) {
			return fmt.Errorf("scenario %s invalid: bridge %s caller %q is not a declared slot",
				cfg.Name, bridge.Handle, bridge.Caller)
		}
		if !cfg.HasSlot(bridge.Callee) {
			return fmt.Errorf("scenario %s invalid: bridge %s callee %q is not a declared slot",
				cfg.Name, bridge.Handle, bridge.Callee)
		}
		if bridge.Caller == bridge.Callee {
			return fmt.Errorf("scenario %s invalid: bridge %s loops %q back to itself",
				cfg.Name, bridge.Handle, bridge.Caller)
		}
	}
	return nil
}
