package engine

import (
	"fmt"
	"sort"
	"sync"
)

// Creator builds an engine from its settings block in the config file.
type Creator func(settings map[string]interface{}) (Engine, error)

var (
	registry      = make(map[string]Creator)
	registryMutex sync.RWMutex
)

// Register adds an engine creator under a name. Engine packages call this
// from init(); importing a package for side effects enables its engine.
func Register(name string, creator Creator) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	registry[name] = creator
}

// Open builds a registered engine from settings.
func Open(name string, settings map[string]interface{}) (Engine, error) {
	registryMutex.RLock()
	creator, ok := registry[name]
	registryMutex.RUnlock()

	if !ok {
		return nil, fmt.Errorf("engine %q not registered (available: %v)", name, Names())
	}
	return creator(settings)
}

// Names returns all registered engine names, sorted.
func Names() []string {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
