package office

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrUnknownOffice is returned when a lookup by ID or name finds no office.
var ErrUnknownOffice = errors.New("unknown office")

// Office is a DMV field office that administers behind-the-wheel tests
type Office struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// String returns the canonical office name
func (o Office) String() string {
	return o.Name
}

// Registry maps office IDs to names and back.
// A Registry is read-only after construction and safe for concurrent use.
type Registry struct {
	offices []Office
	byID    map[int]int
	byName  map[string]int
}

// NewRegistry builds a registry from offices, keeping their order.
// IDs must be positive and unique; names must be non-empty and unique
// once upper-cased.
func NewRegistry(offices []Office) (*Registry, error) {
	r := &Registry{
		offices: make([]Office, 0, len(offices)),
		byID:    make(map[int]int, len(offices)),
		byName:  make(map[string]int, len(offices)),
	}

	for _, o := range offices {
		name := normalizeName(o.Name)
		if o.ID <= 0 {
			return nil, fmt.Errorf("office %q: id must be positive, got %d", o.Name, o.ID)
		}
		if name == "" {
			return nil, fmt.Errorf("office %d: empty name", o.ID)
		}
		if _, dup := r.byID[o.ID]; dup {
			return nil, fmt.Errorf("duplicate office id %d", o.ID)
		}
		if _, dup := r.byName[name]; dup {
			return nil, fmt.Errorf("duplicate office name %q", name)
		}

		r.byID[o.ID] = len(r.offices)
		r.byName[name] = len(r.offices)
		r.offices = append(r.offices, Office{ID: o.ID, Name: name})
	}

	return r, nil
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := NewRegistry(table)
	if err != nil {
		panic(fmt.Sprintf("office: invalid built-in table: %v", err))
	}
	return r
})

// Default returns the registry of all California DMV offices
func Default() *Registry {
	return defaultRegistry()
}

// ByID resolves an office by its numeric identifier
func (r *Registry) ByID(id int) (Office, error) {
	i, ok := r.byID[id]
	if !ok {
		return Office{}, fmt.Errorf("%w: id %d", ErrUnknownOffice, id)
	}
	return r.offices[i], nil
}

// ByName resolves an office by name, ignoring case and surrounding whitespace
func (r *Registry) ByName(name string) (Office, error) {
	i, ok := r.byName[normalizeName(name)]
	if !ok {
		return Office{}, fmt.Errorf("%w: name %q", ErrUnknownOffice, name)
	}
	return r.offices[i], nil
}

// All returns every office in registration order.
// The returned slice is a copy and may be modified by the caller.
func (r *Registry) All() []Office {
	out := make([]Office, len(r.offices))
	copy(out, r.offices)
	return out
}

// Len returns the number of registered offices
func (r *Registry) Len() int {
	return len(r.offices)
}

// normalizeName converts an office name to its canonical uppercase form
func normalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
