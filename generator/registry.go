package generator

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pgschema/pgdsl/dsl"
)

// BuildFunc declares a schema on the given construction context.
type BuildFunc func(c *dsl.Context)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]BuildFunc)
)

// Register makes a schema available by name. It panics if the name is empty,
// build is nil, or the name is already taken, so it is meant for init functions.
func Register(name string, build BuildFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if name == "" {
		panic("generator: Register with empty name")
	}
	if build == nil {
		panic("generator: Register build func is nil for " + name)
	}
	if _, dup := registry[name]; dup {
		panic("generator: Register called twice for " + name)
	}
	registry[name] = build
}

// Lookup returns the schema registered under name.
func Lookup(name string) (BuildFunc, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	build, ok := registry[name]
	return build, ok
}

// Names returns the registered schema names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func mustLookup(name string) (BuildFunc, error) {
	build, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown schema %q (registered: %v)", name, Names())
	}
	return build, nil
}
