package render

import (
	"fmt"
	"sync"

	"github.com/lowkit/lowkit/internal/config"
	"github.com/lowkit/lowkit/internal/node"
	lowkiterrors "github.com/lowkit/lowkit/pkg/errors"
)

// Context carries the shared read-only data producers may consult. It is
// passed explicitly through the call chain so the core stays testable in
// isolation.
type Context struct {
	Theme     *config.Theme
	Languages *config.Languages
}

// Producer turns a component's props, content and already-rendered children
// into an output node.
type Producer func(ctx Context, props map[string]any, content string, children []*node.Node) *node.Node

// Registry maps component types to producers, with one designated fallback
// for unknown types so the page degrades gracefully instead of failing.
type Registry struct {
	mu        sync.RWMutex
	producers map[string]Producer
	fallback  Producer
}

// NewRegistry creates a registry with the default producer set and the
// generic container fallback.
func NewRegistry() *Registry {
	r := &Registry{
		producers: make(map[string]Producer),
		fallback:  fallbackProducer,
	}
	registerDefaults(r)
	return r
}

// Register adds a producer for the given component type.
func (r *Registry) Register(componentType string, p Producer) error {
	if p == nil {
		return lowkiterrors.NewRenderError("", fmt.Errorf("producer for %q is nil", componentType))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.producers[componentType]; exists {
		return lowkiterrors.NewRenderError("", fmt.Errorf("producer for %q already registered", componentType))
	}

	r.producers[componentType] = p
	return nil
}

// Get retrieves the producer for a component type, falling back to the
// generic container producer for unknown types.
func (r *Registry) Get(componentType string) Producer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.producers[componentType]; ok {
		return p
	}
	return r.fallback
}

// Known reports whether a dedicated producer is registered for the type.
func (r *Registry) Known(componentType string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.producers[componentType]
	return ok
}
