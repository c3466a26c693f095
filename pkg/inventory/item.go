package inventory

import "github.com/google/uuid"

// Item is a stack of a single definition with a mutable amount. The inventory
// currently holding the item is tracked as an ownership tag that only the
// holding Inventory writes.
type Item struct {
	ID  uuid.UUID
	Def *Definition

	amount int
	owner  *Inventory
	at     handle

	listeners []amountListener
	nextID    int
}

type amountListener struct {
	id int
	fn func(*Item)
}

// NewItem creates an unowned stack of def with the given amount.
func NewItem(def *Definition, amount int) *Item {
	return &Item{ID: uuid.New(), Def: def, amount: amount}
}

// Amount returns the number of units in the stack.
func (it *Item) Amount() int { return it.amount }

// Inventory returns the inventory holding the item, or nil when the item is
// held by a cursor or lying in the world.
func (it *Item) Inventory() *Inventory { return it.owner }

// SetAmount sets the amount and notifies amount listeners. Callers are
// responsible for respecting the definition's stack limit.
func (it *Item) SetAmount(amount int) {
	it.amount = amount
	it.notifyAmount()
}

// OnAmountChanged registers fn to run after every amount change. The returned
// function cancels the registration.
func (it *Item) OnAmountChanged(fn func(*Item)) (cancel func()) {
	it.nextID++
	id := it.nextID
	it.listeners = append(it.listeners, amountListener{id: id, fn: fn})
	return func() {
		for i, l := range it.listeners {
			if l.id == id {
				it.listeners = append(it.listeners[:i], it.listeners[i+1:]...)
				return
			}
		}
	}
}

func (it *Item) notifyAmount() {
	// copy so a listener may cancel itself
	ls := append([]amountListener(nil), it.listeners...)
	for _, l := range ls {
		l.fn(it)
	}
}

// setAmountQuiet changes the amount without notifying; the inventory queues
// the notification until its own state is consistent.
func (it *Item) setAmountQuiet(amount int) {
	it.amount = amount
}

