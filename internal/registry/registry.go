package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/nulzo/factory-method/internal/core/domain"
	"github.com/nulzo/factory-method/internal/core/ports"
)

// Factory is a function that creates a Creator instance.
type Factory func() ports.Creator

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// Register makes a creator factory available to the system.
// 'name' is the key (e.g., "ConcreteCreator1").
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("creator factory %s already registered", name))
	}
	factories[name] = f
}

// Get retrieves the factory registered under name.
func Get(name string) (Factory, error) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCreatorNotFound, name)
	}
	return f, nil
}

// Names returns the registered creator names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
