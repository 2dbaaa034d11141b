package provider

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Factory builds a Client from configuration.
type Factory func(cfg Config) (Client, error)

// Registry maps backend names to factories. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory. It panics on a duplicate name, since two
// backends claiming one name is a wiring bug.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		panic(fmt.Sprintf("provider %q already registered", name))
	}
	r.factories[name] = factory
}

// New validates cfg and builds a client with the named factory. An empty
// name uses cfg.Provider; an empty cfg.Provider is set to name.
func (r *Registry) New(name string, cfg Config) (Client, error) {
	if name == "" {
		name = cfg.Provider
	}

	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownProvider, name, strings.Join(r.Names(), ", "))
	}

	if cfg.Provider == "" {
		cfg.Provider = name
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s config: %w", name, err)
	}
	return factory(cfg)
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Remove deletes a factory. Removing an unknown name is a no-op.
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.factories, name)
}

// Reset removes every factory.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.factories)
}

// defaultRegistry holds the backends registered by their packages' init
// functions, e.g. the blank import of the gemini package.
var defaultRegistry = NewRegistry()

// Register adds a factory to the default registry. Backends call it from
// init:
//
//	func init() {
//	    provider.Register("gemini", func(cfg provider.Config) (provider.Client, error) {
//	        return NewFromConfig(cfg)
//	    })
//	}
func Register(name string, factory Factory) { defaultRegistry.Register(name, factory) }

// New builds a client from the default registry.
//
//	client, err := provider.New("", provider.FromEnv())
func New(name string, cfg Config) (Client, error) { return defaultRegistry.New(name, cfg) }

// MustNew is New that panics on error. Intended for tests.
func MustNew(name string, cfg Config) Client {
	client, err := New(name, cfg)
	if err != nil {
		panic(fmt.Sprintf("provider.MustNew(%q): %v", name, err))
	}
	return client
}

// Available lists the names in the default registry.
func Available() []string { return defaultRegistry.Names() }

// IsRegistered reports whether the default registry has name.
func IsRegistered(name string) bool { return defaultRegistry.Has(name) }

// Unregister removes name from the default registry.
func Unregister(name string) { defaultRegistry.Remove(name) }

// ClearRegistry empties the default registry. Tests only.
func ClearRegistry() { defaultRegistry.Reset() }
