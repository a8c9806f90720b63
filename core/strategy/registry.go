package strategy

import (
	"strconv"

	"pos-pricing/internal/errors"
)

// Registry is an ordered set of strategies for one checkout session.
// Names are expected to be unique; lookups return the first match.
type Registry struct {
	strategies []Strategy
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends s. A nil strategy is ignored.
func (r *Registry) Register(s Strategy) {
	if s == nil {
		return
	}
	r.strategies = append(r.strategies, s)
}

// Unregister removes the first strategy sharing s's name
func (r *Registry) Unregister(s Strategy) {
	if s == nil {
		return
	}
	r.Remove(s.Name())
}

// Find returns the first strategy named name
func (r *Registry) Find(name string) (Strategy, bool) {
	for _, s := range r.strategies {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

// Remove deletes the first strategy named name
func (r *Registry) Remove(name string) {
	for i, s := range r.strategies {
		if s.Name() == name {
			r.strategies = append(r.strategies[:i], r.strategies[i+1:]...)
			return
		}
	}
}

// At returns the strategy at a 1-based menu position
func (r *Registry) At(position int) (Strategy, error) {
	if position < 1 || position > len(r.strategies) {
		return nil, errors.NotFound("strategy at position", strconv.Itoa(position))
	}
	return r.strategies[position-1], nil
}

// List returns the strategies in registration order
func (r *Registry) List() []Strategy {
	out := make([]Strategy, len(r.strategies))
	copy(out, r.strategies)
	return out
}

// Names returns the strategy names in registration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.strategies))
	for i, s := range r.strategies {
		names[i] = s.Name()
	}
	return names
}

// Len returns the number of registered strategies
func (r *Registry) Len() int {
	return len(r.strategies)
}
