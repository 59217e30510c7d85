package entity

// Registry maps unique names to live entities.
// Iteration follows insertion order; replacing an entity keeps its slot.
type Registry struct {
	byName map[string]*Entity
	order  []string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Entity)}
}

// Get returns the entity registered under name
func (r *Registry) Get(name string) (*Entity, bool) {
	e, ok := r.byName[name]
	return e, ok
}

// Put registers e under e.Name
func (r *Registry) Put(e *Entity) {
	if _, ok := r.byName[e.Name]; !ok {
		r.order = append(r.order, e.Name)
	}
	r.byName[e.Name] = e
}

// Remove unregisters name. Returns false if it was not present.
func (r *Registry) Remove(name string) bool {
	if _, ok := r.byName[name]; !ok {
		return false
	}
	delete(r.byName, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of entities
func (r *Registry) Len() int {
	return len(r.order)
}

// Names returns a copy of the names in iteration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Each calls fn in iteration order until it returns false
func (r *Registry) Each(fn func(e *Entity) bool) {
	for _, n := range r.order {
		if !fn(r.byName[n]) {
			return
		}
	}
}

// Entities returns the entities in iteration order
func (r *Registry) Entities() []*Entity {
	out := make([]*Entity, 0, len(r.order))
	for _, n := range r.order {
		out = append(out, r.byName[n])
	}
	return out
}
