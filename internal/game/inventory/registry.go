package inventory

import (
	"fmt"
	"sort"

	"github.com/Dimillian/daggerfall-unity/internal/game/lookup"
)

// Registry holds all loaded item templates indexed by ID.
type Registry struct {
	templates map[string]*Template
}

// NewRegistry returns an empty Registry.
//
// Postcondition: the internal map is initialised.
func NewRegistry() *Registry {
	return &Registry{templates: make(map[string]*Template)}
}

// Register adds t to the registry.
//
// Precondition:  t must not be nil.
// Postcondition: Template(t.ID) returns t; returns error if t.ID already registered.
func (r *Registry) Register(t *Template) error {
	if _, exists := r.templates[t.ID]; exists {
		return fmt.Errorf("inventory: Registry.Register: item ID %q already registered", t.ID)
	}
	r.templates[t.ID] = t
	return nil
}

// Template returns the template registered under id.
//
// Postcondition: Returns a *lookup.Error wrapping lookup.ErrNotFound iff id is unknown.
func (r *Registry) Template(id string) (*Template, error) {
	t, ok := r.templates[id]
	if !ok {
		return nil, lookup.NotFound("item template", id)
	}
	return t, nil
}

// NewItem creates a fresh instance of the template registered under id.
func (r *Registry) NewItem(id string) (*Item, error) {
	t, err := r.Template(id)
	if err != nil {
		return nil, err
	}
	return t.NewItem(), nil
}

// All returns every registered template sorted by ID.
//
// Postcondition: len(result) == number of registered templates.
func (r *Registry) All() []*Template {
	out := make([]*Template, 0, len(r.templates))
	for _, t := range r.templates {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
