// Package repositories wires the concrete backends behind a named
// registry so the CLI can select a workflow driver at runtime.
package repositories

import (
	"fmt"

	domainRepos "github.com/intres/repoship/internal/domain/repositories"
	"github.com/intres/repoship/internal/infrastructure/repositories/ghcli"
	"github.com/intres/repoship/internal/infrastructure/repositories/github"
)

// BackendFactory is a constructor that creates a RemoteBackend given an
// auth token. Backends with managed credentials ignore the token.
type BackendFactory func(token string) domainRepos.RemoteBackend

// BackendRegistry manages the registered workflow drivers.
type BackendRegistry struct {
	backends map[string]BackendFactory
}

// NewBackendRegistry creates an empty registry.
func NewBackendRegistry() *BackendRegistry {
	return &BackendRegistry{
		backends: make(map[string]BackendFactory),
	}
}

// NewDefaultRegistry creates a registry with both built-in drivers.
func NewDefaultRegistry() *BackendRegistry {
	reg := NewBackendRegistry()
	reg.Register("gh", func(string) domainRepos.RemoteBackend { return ghcli.New() })
	reg.Register("api", github.New)
	return reg
}

// Register adds a backend factory under the given name.
func (r *BackendRegistry) Register(name string, factory BackendFactory) {
	r.backends[name] = factory
}

// Get returns a configured backend instance for the given name and token.
func (r *BackendRegistry) Get(name, token string) (domainRepos.RemoteBackend, error) {
	factory, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown backend: %q (expected one of %v)", name, r.Names())
	}
	return factory(token), nil
}

// Names returns the list of registered backend names.
func (r *BackendRegistry) Names() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	return names
}
