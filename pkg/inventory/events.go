package inventory

// EventType represents the type of inventory event.
type EventType int

const (
	// EventItemAdded is emitted once per successful placement.
	EventItemAdded EventType = iota
	// EventItemRemoved is emitted once per item removed from the grid.
	EventItemRemoved
)

// String returns a human-readable representation of the event type.
func (t EventType) String() string {
	switch t {
	case EventItemAdded:
		return "ItemAdded"
	case EventItemRemoved:
		return "ItemRemoved"
	default:
		return "Unknown"
	}
}

// Event is delivered to subscribers after the operation that produced it has
// left the inventory consistent. Origin is only meaningful for EventItemAdded.
type Event struct {
	Type      EventType `json:"type"`
	Inventory string    `json:"inventory"`
	Item      *Item     `json:"-"`
	Origin    Point     `json:"origin"`
}

// SubscriptionID identifies a registered handler.
type SubscriptionID int

type subscription struct {
	id SubscriptionID
	fn func(Event)
}

// Subscribe registers a handler for item added/removed events. Handlers run
// synchronously on the goroutine that called the mutating operation.
func (inv *Inventory) Subscribe(fn func(Event)) SubscriptionID {
	inv.nextSub++
	id := inv.nextSub
	inv.subs = append(inv.subs, subscription{id: id, fn: fn})
	return id
}

// Unsubscribe removes the handler registered under id.
func (inv *Inventory) Unsubscribe(id SubscriptionID) {
	for i, s := range inv.subs {
		if s.id == id {
			inv.subs = append(inv.subs[:i], inv.subs[i+1:]...)
			return
		}
	}
}

// queueEvent defers an event until the current operation commits.
func (inv *Inventory) queueEvent(ev Event) {
	ev.Inventory = inv.ID
	inv.pending = append(inv.pending, func() {
		subs := append([]subscription(nil), inv.subs...)
		for _, s := range subs {
			s.fn(ev)
		}
	})
}

// queueAmount defers an item's amount notification until the current
// operation commits.
func (inv *Inventory) queueAmount(it *Item) {
	inv.pending = append(inv.pending, it.notifyAmount)
}

// flush delivers queued notifications in the order they were produced.
// Mutating calls made from a handler are declined while flushing.
func (inv *Inventory) flush() {
	if len(inv.pending) == 0 {
		return
	}
	queued := inv.pending
	inv.pending = nil
	inv.dispatching = true
	defer func() { inv.dispatching = false }()
	for _, fn := range queued {
		fn()
	}
}
