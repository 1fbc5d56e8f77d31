package scenario

import (
	"errors"
	"sort"
	"sync"

	"github.com/appspec/harness/models"
	"github.com/appspec/harness/network"
)

// ErrNoSuchScenario - requested scenario name is not registered
var ErrNoSuchScenario = errors.New("no such scenario")

// ErrNotInitialized - the registry was read before Initialize ran
var ErrNotInitialized = errors.New("scenario registry not initialized")

var (
	registryMu sync.RWMutex
	registry   map[string]models.ScenarioConfig
)

// Initialize - resolves the shared network descriptor from the environment,
// builds every scenario and validates the whole set. All-or-nothing: any
// error leaves the registry empty so a bad environment can never yield a
// partial scenario map.
func Initialize() error {
	netDesc, err := network.FromEnv()
	if err != nil {
		return err
	}
	return InitializeWith(netDesc)
}

// InitializeWith - like Initialize but with a caller-supplied descriptor
func InitializeWith(netDesc models.NetworkDescriptor) error {
	configs := BuildAll(netDesc)
	for name := range configs {
		cfg := configs[name]
		if err := Validate(&cfg); err != nil {
			return err
		}
	}
	registryMu.Lock()
	registry = configs
	registryMu.Unlock()
	return nil
}

// Get - fetches one scenario config by name
func Get(name string) (models.ScenarioConfig, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if registry == nil {
		return models.ScenarioConfig{}, ErrNotInitialized
	}
	cfg, ok := registry[name]
	if !ok {
		return models.ScenarioConfig{}, ErrNoSuchScenario
	}
	return cfg, nil
}

// List - returns all scenario configs sorted by name
func List() ([]models.ScenarioConfig, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if registry == nil {
		return nil, ErrNotInitialized
	}
	configs := make([]models.ScenarioConfig, 0, len(registry))
	for name := range registry {
		configs = append(configs, registry[name])
	}
	sort.Slice(configs, func(i, j int) bool {
		return configs[i].Name < configs[j].Name
	})
	return configs, nil
}

// Names - returns the registered scenario names sorted
func Names() ([]string, error) {
	configs, err := List()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(configs))
	for i := range configs {
		names = append(names, configs[i].Name)
	}
	return names, nil
}
