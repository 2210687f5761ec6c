// Package controllers defines the boundary between the route table and the
// handler code that backs it: controller modules, the loader capability
// that resolves them, and a registry-based default loader.
package controllers

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound reports a controller identifier with no registered module.
var ErrNotFound = errors.New("controller module not found")

// Handlers maps exported handler names to their functions.
type Handlers map[string]http.HandlerFunc

// Module is a loaded controller module. Handlers holds the module's
// top-level exports; Default, when non-nil, is a default-export container
// consulted before the top-level exports during resolution.
type Module struct {
	Default  Handlers
	Handlers Handlers
}

// Resolve looks up a handler by name, preferring the default-export
// container over the top-level exports. Both load-time validation and
// registration use this single lookup, so the two can never disagree on
// whether a handler exists.
func (m Module) Resolve(name string) (http.HandlerFunc, bool) {
	if m.Default != nil {
		if h, ok := m.Default[name]; ok && h != nil {
			return h, true
		}
	}
	if h, ok := m.Handlers[name]; ok && h != nil {
		return h, true
	}
	return nil, false
}

// Loader resolves a controller identifier to its module. Implementations
// return an error when the identifier cannot be resolved; they are always
// injected explicitly, there is no global fallback.
type Loader func(controller string) (Module, error)

// Registry is the default Loader implementation: controller modules are
// registered explicitly by identifier and looked up at resolution time.
type Registry struct {
	modules map[string]Module
}

// NewRegistry creates an empty controller module registry.
func NewRegistry() *Registry {
	return &Registry{
		modules: make(map[string]Module),
	}
}

// Register adds the module under the given identifier, replacing any
// module previously registered there.
func (r *Registry) Register(controller string, m Module) {
	r.modules[controller] = m
}

// Load implements Loader against the registry.
func (r *Registry) Load(controller string) (Module, error) {
	m, ok := r.modules[controller]
	if !ok {
		return Module{}, fmt.Errorf("%w: %s", ErrNotFound, controller)
	}
	return m, nil
}
