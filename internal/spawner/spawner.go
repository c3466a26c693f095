// Package spawner produces loot: random item stacks drawn from a registry.
package spawner

import (
	"errors"
	"math/rand"

	"github.com/gravitas-games/gridstash/pkg/inventory"
)

// ErrEmptyCatalog is returned when there is nothing to spawn.
var ErrEmptyCatalog = errors.New("spawner: catalog is empty")

// Spawner picks a definition uniformly and a stack size in [1, MaxStack].
type Spawner struct {
	defs []*inventory.Definition
	rng  *rand.Rand
}

// New creates a spawner over every definition in reg, seeded for
// reproducible runs.
func New(reg *inventory.Registry, seed int64) (*Spawner, error) {
	defs := reg.Export()
	if len(defs) == 0 {
		return nil, ErrEmptyCatalog
	}
	return &Spawner{defs: defs, rng: rand.New(rand.NewSource(seed))}, nil
}

// Spawn returns a new unowned item.
func (s *Spawner) Spawn() *inventory.Item {
	def := s.defs[s.rng.Intn(len(s.defs))]
	return inventory.NewItem(def, 1+s.rng.Intn(def.MaxStack))
}

// SpawnN returns n new unowned items.
func (s *Spawner) SpawnN(n int) []*inventory.Item {
	out := make([]*inventory.Item, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, s.Spawn())
	}
	return out
}
