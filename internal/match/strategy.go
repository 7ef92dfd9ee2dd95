// Package match pairs source records against target candidates using an
// ordered cascade of matching strategies.
package match

import (
	"fmt"
	"sync"

	"github.com/cmdbkit/cmdbrecon-core/internal/category"
	"github.com/cmdbkit/cmdbrecon-core/internal/normalize"
	"github.com/cmdbkit/cmdbrecon-core/internal/types"
)

// Options carries the tunables shared by all strategies
type Options struct {
	// FuzzyThreshold is the minimum similarity a fuzzy match must reach to
	// be accepted at all
	FuzzyThreshold float64

	// ReviewThreshold is the similarity above which a fuzzy match is
	// applied automatically instead of flagged for review
	ReviewThreshold float64

	// Normalizer canonicalizes names before comparison
	Normalizer *normalize.Normalizer
}

// Outcome is a successful strategy hit
type Outcome struct {
	Target     *types.TargetRecord
	Type       types.MatchType
	Confidence float64
	Action     types.Action
	Notes      string
}

// Strategy is one way of pairing a source record with a target candidate.
// Apply returns nil when no candidate qualifies.
type Strategy interface {
	// Name returns the strategy's configuration name
	Name() string

	// Apply tries the strategy against the candidate pool
	Apply(src *types.SourceRecord, candidates []*types.TargetRecord) *Outcome

	// Scoped reports whether the strategy honors organization scoping.
	// Identifier equality is treated as definitive and ignores the scope.
	Scoped() bool
}

// Builder constructs a strategy instance for one category
type Builder func(desc *category.Descriptor, opts Options) Strategy

// Registry holds strategy builders keyed by configuration name
type Registry struct {
	mu       sync.RWMutex
	builders map[string]Builder
	order    []string // preserve registration order
}

// NewRegistry creates a new empty Registry
func NewRegistry() *Registry {
	return &Registry{builders: make(map[string]Builder)}
}

// Register adds a strategy builder to the registry
func (r *Registry) Register(name string, b Builder) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.builders[name]; !exists {
		r.order = append(r.order, name)
	}
	r.builders[name] = b
}

// Build constructs strategy instances in the requested order
func (r *Registry) Build(names []string, desc *category.Descriptor, opts Options) ([]Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	strategies := make([]Strategy, 0, len(names))
	for _, name := range names {
		b, ok := r.builders[name]
		if !ok {
			return nil, fmt.Errorf("unknown matching strategy: %s", name)
		}
		strategies = append(strategies, b(desc, opts))
	}
	return strategies, nil
}

// Names returns the registered strategy names in registration order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// DefaultRegistry is the global strategy registry
var DefaultRegistry = NewRegistry()

// Register adds a strategy builder to the default registry
func Register(name string, b Builder) {
	DefaultRegistry.Register(name, b)
}
