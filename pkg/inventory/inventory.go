package inventory

import "log"

// Option configures inventory construction.
type Option func(*Inventory)

// WithOwner tags the inventory with an owner identifier.
func WithOwner(owner OwnerID) Option {
	return func(inv *Inventory) {
		inv.Owner = owner
	}
}

// WithListener subscribes fn to item added/removed events at construction.
func WithListener(fn func(Event)) Option {
	return func(inv *Inventory) {
		inv.Subscribe(fn)
	}
}

// WithLogger attaches a logger used to report declined reentrant calls.
func WithLogger(l *log.Logger) Option {
	return func(inv *Inventory) {
		inv.logger = l
	}
}

// handle addresses an arena slot. A zero generation means "empty"; a handle
// whose generation no longer matches its slot is stale.
type handle struct {
	index uint32
	gen   uint32
}

func (h handle) empty() bool { return h.gen == 0 }

type slot struct {
	item   *Item
	origin Point
	gen    uint32
	live   bool
}

// Inventory is a fixed-size grid of cells holding items with rectangular
// footprints. Items live in an arena of slots addressed by generation-checked
// handles; cells store handles, so removing an item never renumbers the grid.
// The order slice keeps items in placement order.
//
// Inventory is not safe for concurrent use; see Locked.
type Inventory struct {
	ID    string
	Owner OwnerID

	width, height int

	slots []slot
	free  []uint32
	order []handle
	cells []handle

	subs        []subscription
	nextSub     SubscriptionID
	pending     []func()
	dispatching bool

	logger *log.Logger
}

// New creates an empty width x height inventory. The size never changes.
func New(id string, width, height int, opts ...Option) *Inventory {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	inv := &Inventory{
		ID:     id,
		width:  width,
		height: height,
		cells:  make([]handle, width*height),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(inv)
		}
	}
	return inv
}

// Width returns the number of grid columns.
func (inv *Inventory) Width() int { return inv.width }

// Height returns the number of grid rows.
func (inv *Inventory) Height() int { return inv.height }

// Len returns the number of items held.
func (inv *Inventory) Len() int { return len(inv.order) }

// TryPlaceItem attempts to place item with its footprint origin at (x, y).
//
// Out-of-bounds placement and footprints intersecting two or more items are
// Blocked. With no overlap the item is Placed. With exactly one overlapping
// item of the same definition the units are merged first; if the incoming
// stack is emptied the result is Stacked. Otherwise the overlapping item is
// removed, the (possibly reduced) incoming item takes its place and the
// displaced item is returned with Replaced.
func (inv *Inventory) TryPlaceItem(item *Item, x, y int) (Response, *Item) {
	if !inv.accepts(item, "TryPlaceItem") {
		return Blocked, nil
	}
	defer inv.flush()

	if !inv.inBounds(item.Def, x, y) {
		return Blocked, nil
	}

	overlaps := inv.overlapping(item.Def, x, y)
	switch len(overlaps) {
	case 0:
		if inv.place(item, x, y) {
			return Placed, nil
		}
		return Blocked, nil
	case 1:
		h := overlaps[0]
		existing := inv.slots[h.index].item
		if existing.Def == item.Def {
			inv.stack(existing, item)
			if item.amount == 0 {
				return Stacked, nil
			}
		}
		inv.remove(h)
		inv.place(item, x, y)
		return Replaced, existing
	default:
		return Blocked, nil
	}
}

// TryQuickStackItem merges item into every compatible stack, scanning in list
// order until a scan makes no progress, then places any remainder at the first
// free footprint scanning columns left to right and each column top to bottom.
// It returns Placed when a new stack was created, Stacked when units were only
// merged and Blocked when nothing changed.
func (inv *Inventory) TryQuickStackItem(item *Item) Response {
	if !inv.accepts(item, "TryQuickStackItem") {
		return Blocked
	}
	defer inv.flush()

	resp := Blocked
	for {
		progressed := false
		for _, h := range inv.order {
			existing := inv.slots[h.index].item
			if existing.Def == item.Def && inv.stack(existing, item) {
				resp = Stacked
				progressed = true
			}
		}
		if !progressed || item.amount == 0 {
			break
		}
	}

	if item.amount > 0 {
	scan:
		for x := 0; x < inv.width; x++ {
			for y := 0; y < inv.height; y++ {
				if inv.place(item, x, y) {
					resp = Placed
					break scan
				}
			}
		}
	}
	return resp
}

// TryRemoveAt removes the item covering cell (x, y) and returns it, or nil
// when the cell is empty or outside the grid.
func (inv *Inventory) TryRemoveAt(x, y int) *Item {
	if inv.declined("TryRemoveAt") {
		return nil
	}
	if x < 0 || y < 0 || x >= inv.width || y >= inv.height {
		return nil
	}
	h := inv.cells[inv.cell(x, y)]
	if h.empty() {
		return nil
	}
	defer inv.flush()
	return inv.remove(h)
}

// TryRemoveItem removes item from the inventory. It reports false when the
// item is not held by this inventory.
func (inv *Inventory) TryRemoveItem(item *Item) bool {
	if inv.declined("TryRemoveItem") {
		return false
	}
	if item == nil || item.owner != inv {
		return false
	}
	if _, ok := inv.resolve(item.at); !ok {
		return false
	}
	defer inv.flush()
	inv.remove(item.at)
	return true
}

// Items returns the held items in list order.
func (inv *Inventory) Items() []*Item {
	out := make([]*Item, 0, len(inv.order))
	for _, h := range inv.order {
		out = append(out, inv.slots[h.index].item)
	}
	return out
}

// ItemAt returns the item covering cell (x, y), if any.
func (inv *Inventory) ItemAt(x, y int) *Item {
	if x < 0 || y < 0 || x >= inv.width || y >= inv.height {
		return nil
	}
	s, ok := inv.resolve(inv.cells[inv.cell(x, y)])
	if !ok {
		return nil
	}
	return s.item
}

// IndexAt returns the list index of the item covering cell (x, y), or -1.
func (inv *Inventory) IndexAt(x, y int) int {
	if x < 0 || y < 0 || x >= inv.width || y >= inv.height {
		return -1
	}
	h := inv.cells[inv.cell(x, y)]
	if h.empty() {
		return -1
	}
	for i, o := range inv.order {
		if o == h {
			return i
		}
	}
	return -1
}

// Origin returns the footprint origin of a held item.
func (inv *Inventory) Origin(item *Item) (Point, bool) {
	if item == nil || item.owner != inv {
		return Point{}, false
	}
	s, ok := inv.resolve(item.at)
	if !ok {
		return Point{}, false
	}
	return s.origin, true
}

// Contains reports whether item is held by this inventory.
func (inv *Inventory) Contains(item *Item) bool {
	_, ok := inv.Origin(item)
	return ok
}

// Count returns the total amount held for def.
func (inv *Inventory) Count(def *Definition) int {
	total := 0
	for _, h := range inv.order {
		if it := inv.slots[h.index].item; it.Def == def {
			total += it.amount
		}
	}
	return total
}

// Cells returns a snapshot of the grid indexed [x][y]; empty cells are nil.
func (inv *Inventory) Cells() [][]*Item {
	out := make([][]*Item, inv.width)
	for x := 0; x < inv.width; x++ {
		out[x] = make([]*Item, inv.height)
		for y := 0; y < inv.height; y++ {
			out[x][y] = inv.ItemAt(x, y)
		}
	}
	return out
}

func (inv *Inventory) cell(x, y int) int { return y*inv.width + x }

func (inv *Inventory) resolve(h handle) (*slot, bool) {
	if h.empty() || int(h.index) >= len(inv.slots) {
		return nil, false
	}
	s := &inv.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil, false
	}
	return s, true
}

// declined reports whether a mutating call must be refused because the
// inventory is delivering notifications.
func (inv *Inventory) declined(op string) bool {
	if !inv.dispatching {
		return false
	}
	if inv.logger != nil {
		inv.logger.Printf("inventory %s: %s declined during event dispatch", inv.ID, op)
	}
	return true
}

// accepts checks the preconditions shared by the placement operations.
func (inv *Inventory) accepts(item *Item, op string) bool {
	if inv.declined(op) {
		return false
	}
	if item == nil || item.Def == nil || item.amount <= 0 || item.owner != nil {
		return false
	}
	return item.Def.Width > 0 && item.Def.Height > 0
}

func (inv *Inventory) inBounds(def *Definition, x, y int) bool {
	return x >= 0 && y >= 0 && x+def.Width <= inv.width && y+def.Height <= inv.height
}

// overlapping returns the distinct handles whose footprints intersect the
// footprint of def at (x, y), in discovery order.
func (inv *Inventory) overlapping(def *Definition, x, y int) []handle {
	var out []handle
	for _, c := range def.Cells() {
		h := inv.cells[inv.cell(x+c.X, y+c.Y)]
		if h.empty() {
			continue
		}
		seen := false
		for _, o := range out {
			if o == h {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, h)
		}
	}
	return out
}

// stack merges units of incoming into existing up to the stack limit. It
// reports whether any unit moved.
func (inv *Inventory) stack(existing, incoming *Item) bool {
	if incoming.amount <= 0 {
		return false
	}
	limit := existing.Def.MaxStack
	switch {
	case existing.amount+incoming.amount <= limit:
		existing.setAmountQuiet(existing.amount + incoming.amount)
		incoming.setAmountQuiet(0)
	case existing.amount < limit:
		incoming.setAmountQuiet(incoming.amount - (limit - existing.amount))
		existing.setAmountQuiet(limit)
	default:
		return false
	}
	inv.queueAmount(existing)
	inv.queueAmount(incoming)
	return true
}

// place registers item at (x, y) if its whole footprint is inside the grid
// and free.
func (inv *Inventory) place(item *Item, x, y int) bool {
	if !inv.inBounds(item.Def, x, y) {
		return false
	}
	cells := item.Def.Cells()
	for _, c := range cells {
		if !inv.cells[inv.cell(x+c.X, y+c.Y)].empty() {
			return false
		}
	}

	h := inv.alloc()
	s := &inv.slots[h.index]
	s.item = item
	s.origin = Point{X: x, Y: y}
	s.live = true
	for _, c := range cells {
		inv.cells[inv.cell(x+c.X, y+c.Y)] = h
	}
	inv.order = append(inv.order, h)
	item.owner = inv
	item.at = h
	inv.queueEvent(Event{Type: EventItemAdded, Item: item, Origin: s.origin})
	return true
}

// remove releases the slot addressed by h, clears exactly the cells of its
// footprint and drops it from the list order.
func (inv *Inventory) remove(h handle) *Item {
	s, ok := inv.resolve(h)
	if !ok {
		return nil
	}
	item := s.item
	for _, c := range item.Def.Cells() {
		idx := inv.cell(s.origin.X+c.X, s.origin.Y+c.Y)
		if inv.cells[idx] == h {
			inv.cells[idx] = handle{}
		}
	}
	for i, o := range inv.order {
		if o == h {
			inv.order = append(inv.order[:i], inv.order[i+1:]...)
			break
		}
	}

	s.item = nil
	s.live = false
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	inv.free = append(inv.free, h.index)

	item.owner = nil
	item.at = handle{}
	inv.queueEvent(Event{Type: EventItemRemoved, Item: item})
	return item
}

func (inv *Inventory) alloc() handle {
	if n := len(inv.free); n > 0 {
		idx := inv.free[n-1]
		inv.free = inv.free[:n-1]
		return handle{index: idx, gen: inv.slots[idx].gen}
	}
	inv.slots = append(inv.slots, slot{gen: 1})
	return handle{index: uint32(len(inv.slots) - 1), gen: 1}
}
