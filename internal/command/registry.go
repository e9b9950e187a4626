package command

import "fmt"

// Registry holds the fixed command set, keyed by wire name. Descriptors
// keep their registration order for listings and schema output.
type Registry struct {
	byName map[string]*Descriptor
	order  []*Descriptor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Descriptor)}
}

// Register adds a descriptor. A duplicate name is a startup-time
// configuration error, not a runtime condition.
func (r *Registry) Register(d Descriptor) error {
	if d.Name == "" {
		return fmt.Errorf("command descriptor has empty name")
	}
	if _, exists := r.byName[d.Name]; exists {
		return fmt.Errorf("command %q already registered", d.Name)
	}
	stored := d
	r.byName[d.Name] = &stored
	r.order = append(r.order, &stored)
	return nil
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Descriptors returns all descriptors in registration order.
func (r *Registry) Descriptors() []*Descriptor {
	out := make([]*Descriptor, len(r.order))
	copy(out, r.order)
	return out
}

// Builtin constructs the registry from the full bridge command catalog.
func Builtin() (*Registry, error) {
	r := NewRegistry()
	for _, d := range builtinDescriptors() {
		if err := r.Register(d); err != nil {
			return nil, fmt.Errorf("building command registry: %w", err)
		}
	}
	return r, nil
}
