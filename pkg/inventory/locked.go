package inventory

import "sync"

// Locked serialises every public call on an Inventory behind one mutex so a
// single inventory can be shared between goroutines. Event handlers run while
// the lock is held and must not call back into the same Locked value.
type Locked struct {
	mu  sync.Mutex
	inv *Inventory
}

// NewLocked wraps inv.
func NewLocked(inv *Inventory) *Locked {
	return &Locked{inv: inv}
}

// TryPlaceItem is Inventory.TryPlaceItem under the lock.
func (l *Locked) TryPlaceItem(item *Item, x, y int) (Response, *Item) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inv.TryPlaceItem(item, x, y)
}

// TryQuickStackItem is Inventory.TryQuickStackItem under the lock.
func (l *Locked) TryQuickStackItem(item *Item) Response {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inv.TryQuickStackItem(item)
}

// TryRemoveAt is Inventory.TryRemoveAt under the lock.
func (l *Locked) TryRemoveAt(x, y int) *Item {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inv.TryRemoveAt(x, y)
}

// TryRemoveItem is Inventory.TryRemoveItem under the lock.
func (l *Locked) TryRemoveItem(item *Item) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inv.TryRemoveItem(item)
}

// Count is Inventory.Count under the lock.
func (l *Locked) Count(def *Definition) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inv.Count(def)
}

// Items is Inventory.Items under the lock.
func (l *Locked) Items() []*Item {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inv.Items()
}

// Do runs fn with exclusive access to the wrapped inventory.
func (l *Locked) Do(fn func(inv *Inventory)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.inv)
}
