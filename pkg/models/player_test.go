package models

import (
	"testing"

	"github.com/gravitas-games/gridstash/pkg/inventory"
)

func newTestPlayer() (*Player, *inventory.Registry) {
	return NewPlayer("p1", "ash", Grid{Width: 4, Height: 3}, Grid{Width: 3, Height: 3}), inventory.SampleRegistry()
}

func TestNewPlayerGrids(t *testing.T) {
	p, _ := newTestPlayer()
	if p.Main.Width() != 4 || p.Main.Height() != 3 {
		t.Fatalf("unexpected main size %dx%d", p.Main.Width(), p.Main.Height())
	}
	if p.Stash.Width() != 3 || p.Stash.Height() != 3 {
		t.Fatalf("unexpected stash size %dx%d", p.Stash.Width(), p.Stash.Height())
	}
	if p.Main.Owner != "p1" || p.Stash.Owner != "p1" {
		t.Fatalf("expected both grids owned by p1")
	}
}

func TestClosedStashIsUnreachable(t *testing.T) {
	p, reg := newTestPlayer()
	if p.Inventory("stash") != nil {
		t.Fatalf("expected closed stash to be unreachable")
	}
	if p.Inventory("nope") != nil {
		t.Fatalf("expected unknown grid to be unreachable")
	}
	p.Hand.Hold(inventory.NewItem(reg.MustLookup("wood"), 1))
	if resp := p.PutDown("stash", 0, 0); resp != inventory.Blocked {
		t.Fatalf("expected Blocked, got %s", resp)
	}
	p.SetStashOpen(true)
	if resp := p.PutDown("stash", 0, 0); resp != inventory.Placed {
		t.Fatalf("expected Placed, got %s", resp)
	}
}

func TestMoveBetweenGrids(t *testing.T) {
	p, reg := newTestPlayer()
	p.SetStashOpen(true)
	pick := inventory.NewItem(reg.MustLookup("pickaxe"), 1)
	if !p.Collect(pick) {
		t.Fatalf("expected pickaxe to be collected")
	}
	if !p.PickUp("main", 0, 1) {
		t.Fatalf("expected to pick up the pickaxe by its lower cell")
	}
	if resp := p.PutDown("stash", 2, 2); resp != inventory.Placed {
		t.Fatalf("expected Placed, got %s", resp)
	}
	origin, ok := p.Stash.Origin(pick)
	if !ok || origin != (inventory.Point{X: 2, Y: 1}) {
		t.Fatalf("unexpected stash origin %v %v", origin, ok)
	}
	if p.DropHeld() != nil {
		t.Fatalf("expected empty hand")
	}
}

func TestCollectSpillsIntoOpenStash(t *testing.T) {
	p, reg := newTestPlayer()
	stone := reg.MustLookup("stone")
	// main 4x3 fits two 2x2 stones
	for i := 0; i < 2; i++ {
		if !p.Collect(inventory.NewItem(stone, 3)) {
			t.Fatalf("expected stone %d to fit in main", i)
		}
	}
	extra := inventory.NewItem(stone, 3)
	if p.Collect(extra) {
		t.Fatalf("expected closed stash to refuse the overflow")
	}
	p.SetStashOpen(true)
	if !p.Collect(extra) {
		t.Fatalf("expected overflow to land in the stash")
	}
	if p.Stash.Count(stone) != 3 {
		t.Fatalf("expected 3 stone in stash, got %d", p.Stash.Count(stone))
	}
}
