package models

import (
	"log"

	"github.com/gravitas-games/gridstash/pkg/cursor"
	"github.com/gravitas-games/gridstash/pkg/inventory"
)

// Grid is the size of an inventory grid
type Grid struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Player represents a player and the inventories they carry
type Player struct {
	ID       string `json:"id"`
	Username string `json:"username"`

	// Main is always available; Stash only while it is open
	Main      *inventory.Inventory `json:"-"`
	Stash     *inventory.Inventory `json:"-"`
	StashOpen bool                 `json:"stash_open"`

	// Hand holds the item being moved between grids
	Hand cursor.Cursor `json:"-"`
}

// NewPlayer creates a player with an empty main inventory and a closed stash
func NewPlayer(id, username string, main, stash Grid, opts ...inventory.Option) *Player {
	owner := inventory.WithOwner(inventory.OwnerID(id))
	return &Player{
		ID:       id,
		Username: username,
		Main:     inventory.New("main", main.Width, main.Height, append([]inventory.Option{owner}, opts...)...),
		Stash:    inventory.New("stash", stash.Width, stash.Height, append([]inventory.Option{owner}, opts...)...),
	}
}

// SetStashOpen opens or closes the stash
func (p *Player) SetStashOpen(open bool) {
	p.StashOpen = open
}

// Inventory returns the named grid if the player can reach it
func (p *Player) Inventory(name string) *inventory.Inventory {
	switch name {
	case p.Main.ID:
		return p.Main
	case p.Stash.ID:
		if p.StashOpen {
			return p.Stash
		}
	}
	return nil
}

// PickUp moves the item at (x, y) of the named grid into the hand
func (p *Player) PickUp(name string, x, y int) bool {
	inv := p.Inventory(name)
	if inv == nil {
		return false
	}
	return p.Hand.PickUp(inv, x, y)
}

// PutDown places the held item into the named grid at (x, y)
func (p *Player) PutDown(name string, x, y int) inventory.Response {
	inv := p.Inventory(name)
	if inv == nil {
		return inventory.Blocked
	}
	return p.Hand.PlaceInto(inv, x, y)
}

// Collect picks up a world item into the main inventory, spilling into the
// stash when it is open. It reports whether nothing of the item is left.
func (p *Player) Collect(item *inventory.Item) bool {
	if _, ok := cursor.Collect(p.Main, item); ok {
		return true
	}
	if p.StashOpen {
		if _, ok := cursor.Collect(p.Stash, item); ok {
			return true
		}
	}
	log.Printf("Player %s has no room for %s x%d", p.Username, item.Def.Name, item.Amount())
	return false
}

// DropHeld releases the held item into the world
func (p *Player) DropHeld() *inventory.Item {
	return p.Hand.Drop()
}
