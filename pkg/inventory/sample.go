package inventory

// SampleRegistry returns a small survival-flavoured catalog used by the demo
// command and tests.
func SampleRegistry() *Registry {
	return NewRegistry(
		Definition{ID: "wood", NumericID: 1, Name: "Wood", Category: "resource", Width: 1, Height: 1, MaxStack: 5},
		Definition{ID: "stone", NumericID: 2, Name: "Stone", Category: "resource", Width: 2, Height: 2, MaxStack: 3},
		Definition{ID: "iron-ore", NumericID: 3, Name: "Iron Ore", Category: "resource", Width: 1, Height: 1, MaxStack: 10},
		Definition{ID: "herb", NumericID: 4, Name: "Herb", Category: "consumable", Width: 1, Height: 1, MaxStack: 20},
		Definition{ID: "pickaxe", NumericID: 5, Name: "Pickaxe", Category: "tool", Width: 1, Height: 2, MaxStack: 1},
		Definition{ID: "backpack", NumericID: 6, Name: "Backpack", Category: "gear", Width: 2, Height: 2, MaxStack: 1},
	)
}

// SampleInventories returns the player's main inventory (4x3) and a stash
// (3x3), with a few items already placed in the main inventory.
func SampleInventories(reg *Registry) (*Inventory, *Inventory) {
	owner := OwnerID("demo")

	main := New("main", 4, 3, WithOwner(owner))
	// Pickaxe (1x2) at (0,0)
	main.TryPlaceItem(NewItem(reg.MustLookup("pickaxe"), 1), 0, 0)
	// Stone (2x2) at (2,1)
	main.TryPlaceItem(NewItem(reg.MustLookup("stone"), 2), 2, 1)
	// Wood auto-placed
	main.TryQuickStackItem(NewItem(reg.MustLookup("wood"), 3))

	stash := New("stash", 3, 3, WithOwner(owner))
	return main, stash
}
