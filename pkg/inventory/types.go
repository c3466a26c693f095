package inventory

// Package inventory provides a grid inventory engine. Items carry a
// definition with a rectangular footprint and a maximum stack size; the
// inventory places, stacks, replaces and removes them on a fixed-size grid
// while keeping the occupancy map consistent with its ordered item list.

// ItemID represents an application-defined identifier for an item kind.
type ItemID string

// OwnerID represents an application-defined owner identifier.
// Can be user id, character id, etc.
type OwnerID string

// RegistryID is a numeric handle suitable for compact storage.
// IDs start at 1 and increment as new definitions are registered unless
// explicitly provided via Definition.NumericID.
type RegistryID int64

// Point represents a grid coordinate (x, y) with origin at top-left.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Definition describes an item kind: its footprint and how many units fit
// in one stack. Definitions are compared by pointer identity; two items are
// the same kind only when they reference the same *Definition.
type Definition struct {
	ID          ItemID     `json:"id" yaml:"id"`
	NumericID   RegistryID `json:"numericId,omitempty" yaml:"numeric_id,omitempty"`
	Name        string     `json:"name,omitempty" yaml:"name,omitempty"`
	Category    string     `json:"category,omitempty" yaml:"category,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Width       int        `json:"width" yaml:"width"`
	Height      int        `json:"height" yaml:"height"`
	MaxStack    int        `json:"maxStack" yaml:"max_stack"`
}

// Cells returns the footprint offsets of the definition relative to an origin,
// row by row.
func (d *Definition) Cells() []Point {
	out := make([]Point, 0, d.Width*d.Height)
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			out = append(out, Point{X: x, Y: y})
		}
	}
	return out
}

// Response is the outcome of a placement request.
type Response int

const (
	// Placed means the item was put into free cells.
	Placed Response = iota
	// Stacked means units were merged into existing stacks.
	Stacked
	// Replaced means a single overlapping item was removed and the incoming
	// item took its place.
	Replaced
	// Blocked means nothing changed.
	Blocked
)

// String returns a human-readable representation of the response.
func (r Response) String() string {
	switch r {
	case Placed:
		return "Placed"
	case Stacked:
		return "Stacked"
	case Replaced:
		return "Replaced"
	case Blocked:
		return "Blocked"
	default:
		return "Unknown"
	}
}
