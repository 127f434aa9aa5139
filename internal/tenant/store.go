package tenant

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrNoDefault = errors.New("default tenant not configured")
	ErrDuplicate = errors.New("duplicate tenant id")
	ErrMissingID = errors.New("tenant without id")
)

// Store is a read-only lookup table of tenants with a guaranteed fallback.
// It is built once at startup and never mutated afterwards, so it is safe
// for concurrent use.
type Store struct {
	defaultID string
	tenants   map[string]*Tenant
}

// NewStore indexes tenants by id. defaultID must name one of them.
func NewStore(defaultID string, tenants ...Tenant) (*Store, error) {
	s := &Store{
		defaultID: defaultID,
		tenants:   make(map[string]*Tenant, len(tenants)),
	}
	for i := range tenants {
		t := tenants[i]
		if t.ID == "" {
			return nil, fmt.Errorf("tenant %d (%q): %w", i, t.Name, ErrMissingID)
		}
		if _, ok := s.tenants[t.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicate, t.ID)
		}
		s.tenants[t.ID] = t.clone()
	}
	if _, ok := s.tenants[defaultID]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoDefault, defaultID)
	}
	return s, nil
}

// Get returns a copy of the tenant with the given id. Unknown or empty ids
// resolve to the default tenant; Get never fails.
func (s *Store) Get(id string) *Tenant {
	if t, ok := s.tenants[id]; ok {
		return t.clone()
	}
	return s.tenants[s.defaultID].clone()
}

// Has reports whether id is a configured tenant.
func (s *Store) Has(id string) bool {
	_, ok := s.tenants[id]
	return ok
}

func (s *Store) DefaultID() string {
	return s.defaultID
}

// List returns every tenant's summary ordered by id.
func (s *Store) List() []Summary {
	out := make([]Summary, 0, len(s.tenants))
	for _, t := range s.tenants {
		out = append(out, t.Summary())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
