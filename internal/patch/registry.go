package patch

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/docpatch/internal/core/domain"
)

// BuilderFunc creates an Operation from generic config.
// Config is a map of kind-specific fields parsed from a plan file.
type BuilderFunc func(cfg map[string]any) (domain.Operation, error)

// Registry maps operation kinds to their builders.
// It allows plans to be decoded from configuration.
type Registry struct {
	builders map[domain.OpKind]BuilderFunc
}

// NewRegistry creates a new, empty operation registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[domain.OpKind]BuilderFunc),
	}
}

// DefaultRegistry returns a registry with every built-in kind registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

// Register adds a builder for kind, replacing any existing one.
func (r *Registry) Register(kind domain.OpKind, builder BuilderFunc) {
	r.builders[kind] = builder
}

// Build creates an operation of the given kind from config.
// Returns ErrUnsupportedKind if the kind is not registered.
func (r *Registry) Build(kind domain.OpKind, cfg map[string]any) (domain.Operation, error) {
	builder, ok := r.builders[kind]
	if !ok {
		return domain.Operation{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedKind, kind)
	}
	return builder(cfg)
}

// Has returns true if a builder for kind is registered.
func (r *Registry) Has(kind domain.OpKind) bool {
	_, ok := r.builders[kind]
	return ok
}

// Kinds returns all registered kinds, sorted.
func (r *Registry) Kinds() []domain.OpKind {
	kinds := make([]domain.OpKind, 0, len(r.builders))
	for kind := range r.builders {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
