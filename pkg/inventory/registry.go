package inventory

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrMissingID is returned when a definition has no id.
	ErrMissingID = errors.New("inventory: definition missing id")
	// ErrInvalidFootprint is returned for non-positive width or height.
	ErrInvalidFootprint = errors.New("inventory: definition footprint must be positive")
	// ErrInvalidMaxStack is returned for a non-positive stack limit.
	ErrInvalidMaxStack = errors.New("inventory: definition max stack must be positive")
	// ErrDuplicateID is returned when an id or numeric id is already taken.
	ErrDuplicateID = errors.New("inventory: definition already registered")
)

// Registry stores item definitions keyed by ItemID and provides numeric
// handles for compact references. The registry hands out the same
// *Definition for an id every time, which is what makes definition identity
// usable for stacking.
type Registry struct {
	mu     sync.RWMutex
	defs   map[ItemID]*Definition
	byID   map[RegistryID]ItemID
	nextID RegistryID
}

// NewRegistry constructs an empty registry and optionally seeds it with
// definitions. Invalid or duplicate seeds are skipped.
func NewRegistry(defs ...Definition) *Registry {
	r := &Registry{
		defs: make(map[ItemID]*Definition, len(defs)),
		byID: make(map[RegistryID]ItemID, len(defs)),
	}
	for _, d := range defs {
		_, _ = r.Register(d)
	}
	return r
}

// Register validates d, assigns a numeric id when none is supplied and stores
// it. The returned pointer is the canonical definition for d.ID.
func (r *Registry) Register(d Definition) (*Definition, error) {
	if d.ID == "" {
		return nil, ErrMissingID
	}
	if d.Width <= 0 || d.Height <= 0 {
		return nil, fmt.Errorf("%w: %s is %dx%d", ErrInvalidFootprint, d.ID, d.Width, d.Height)
	}
	if d.MaxStack <= 0 {
		return nil, fmt.Errorf("%w: %s has %d", ErrInvalidMaxStack, d.ID, d.MaxStack)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.defs[d.ID]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateID, d.ID)
	}
	if d.NumericID < 0 {
		return nil, fmt.Errorf("inventory: numeric id must be positive: %s", d.ID)
	}
	if d.NumericID == 0 {
		r.nextID++
		for r.byID[r.nextID] != "" {
			r.nextID++
		}
		d.NumericID = r.nextID
	} else {
		if owner, collision := r.byID[d.NumericID]; collision {
			return nil, fmt.Errorf("%w: numeric id %d held by %s", ErrDuplicateID, d.NumericID, owner)
		}
		if d.NumericID > r.nextID {
			r.nextID = d.NumericID
		}
	}

	def := d
	r.defs[def.ID] = &def
	r.byID[def.NumericID] = def.ID
	return &def, nil
}

// Lookup returns the definition for the provided ID, if present.
func (r *Registry) Lookup(id ItemID) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[id]
	return def, ok
}

// MustLookup is Lookup for ids known to be registered, such as sample data.
func (r *Registry) MustLookup(id ItemID) *Definition {
	def, ok := r.Lookup(id)
	if !ok {
		panic(fmt.Sprintf("inventory: unknown item %q", id))
	}
	return def
}

// LookupByRegistryID returns the definition using the numeric registry ID.
func (r *Registry) LookupByRegistryID(id RegistryID) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	key, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	def, exists := r.defs[key]
	return def, exists
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}

// Export returns the registered definitions sorted by numeric id.
func (r *Registry) Export() []*Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.defs) == 0 {
		return nil
	}
	out := make([]*Definition, 0, len(r.defs))
	for _, d := range r.defs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].NumericID < out[j].NumericID
	})
	return out
}
