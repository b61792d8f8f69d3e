package force

import "math"

// DefaultCategory is the group key used for items without a category.
const DefaultCategory = "default"

// Item is an input record: one product, package or other thing to place.
// The engine never modifies items.
type Item struct {
	ID        string  // Unique identifier, copied onto the node
	Name      string  // Display name
	Category  string  // Grouping label (empty means DefaultCategory)
	Weight    float64 // Size attribute, e.g. stock quantity
	Magnitude float64 // Secondary value, e.g. price
}

// Node is the simulated counterpart of an Item.
//
// X and Y hold the current position, VX and VY the velocity carried between
// iterations. A node belongs to exactly one run.
type Node struct {
	ID        string
	Name      string
	Category  string
	Weight    float64
	Magnitude float64

	X, Y   float64
	VX, VY float64
}

// Radius returns the visual radius derived from the node weight.
func (n *Node) Radius() float64 { return Radius(n.Weight) }

// Radius returns sqrt(weight)*2 + 10. Negative weights are treated as zero.
//
// The radius is a rendering hint only: collisions use the fixed
// Config.CollisionDistance, so heavy nodes may overlap visually.
func Radius(weight float64) float64 {
	return math.Sqrt(max(weight, 0))*2 + 10
}

// Edge links two distinct nodes of the same group. Endpoints are references
// into the owning run, so an edge always reflects current node positions.
type Edge struct {
	Source *Node
	Target *Node
}

// Length returns the current distance between the endpoints.
func (e Edge) Length() float64 {
	return math.Hypot(e.Target.X-e.Source.X, e.Target.Y-e.Source.Y)
}

// GroupFunc maps an item to its group key. Keys compare by exact string match.
type GroupFunc func(Item) string

// ByCategory groups items by Category, falling back to DefaultCategory.
func ByCategory(it Item) string {
	if it.Category == "" {
		return DefaultCategory
	}
	return it.Category
}
