// Package cursor models the item a player holds between inventories: picking
// a stack up from a grid, putting it down (swapping with whatever it
// replaces), dropping it into the world and collecting world items.
package cursor

import "github.com/gravitas-games/gridstash/pkg/inventory"

// Cursor holds at most one item. Grab is the cell inside the held item's
// footprint the player is holding it by.
type Cursor struct {
	held *inventory.Item
	grab inventory.Point
}

// Held returns the held item, or nil when empty-handed.
func (c *Cursor) Held() *inventory.Item { return c.held }

// Grab returns the grab offset of the held item.
func (c *Cursor) Grab() inventory.Point { return c.grab }

// Empty reports whether nothing is held.
func (c *Cursor) Empty() bool { return c.held == nil }

// PickUp removes the item covering (x, y) from inv and holds it. It fails when
// something is already held or the cell is empty.
func (c *Cursor) PickUp(inv *inventory.Inventory, x, y int) bool {
	if c.held != nil {
		return false
	}
	item := inv.ItemAt(x, y)
	if item == nil {
		return false
	}
	origin, _ := inv.Origin(item)
	if !inv.TryRemoveItem(item) {
		return false
	}
	c.held = item
	c.grab = inventory.Point{X: x - origin.X, Y: y - origin.Y}
	return true
}

// Hold puts an unowned item in the hand, grabbed by its first cell.
func (c *Cursor) Hold(item *inventory.Item) bool {
	if c.held != nil || item == nil || item.Inventory() != nil {
		return false
	}
	c.held = item
	c.grab = inventory.Point{}
	return true
}

// PlaceInto puts the held item into inv so that the grabbed cell lands on
// (x, y).
//
// Replaced swaps the hand to the displaced item, grabbed at (x, y) when it
// covered that cell and by its first cell otherwise. Placed, or Stacked with
// nothing left over, empties the hand. Any other outcome keeps holding.
func (c *Cursor) PlaceInto(inv *inventory.Inventory, x, y int) inventory.Response {
	if c.held == nil {
		return inventory.Blocked
	}

	// where the displaced item sat, captured before the placement mutates inv
	var under *inventory.Item
	var underOrigin inventory.Point
	if under = inv.ItemAt(x, y); under != nil {
		underOrigin, _ = inv.Origin(under)
	}

	resp, displaced := inv.TryPlaceItem(c.held, x-c.grab.X, y-c.grab.Y)
	switch resp {
	case inventory.Replaced:
		c.held = displaced
		if displaced == under {
			c.grab = inventory.Point{X: x - underOrigin.X, Y: y - underOrigin.Y}
		} else {
			c.grab = inventory.Point{}
		}
	case inventory.Placed:
		c.release()
	case inventory.Stacked:
		if c.held.Amount() == 0 {
			c.release()
		}
	}
	return resp
}

// Drop releases the held item into the world and returns it.
func (c *Cursor) Drop() *inventory.Item {
	item := c.held
	c.release()
	return item
}

func (c *Cursor) release() {
	c.held = nil
	c.grab = inventory.Point{}
}

// Collect quick-stacks a world item into inv and reports whether the item was
// fully picked up: placed as a new stack, or merged until nothing was left.
func Collect(inv *inventory.Inventory, item *inventory.Item) (inventory.Response, bool) {
	resp := inv.TryQuickStackItem(item)
	switch resp {
	case inventory.Placed:
		return resp, true
	case inventory.Stacked:
		return resp, item.Amount() == 0
	default:
		return resp, false
	}
}
