package routes

// Node is one element of a route tree: either a Route leaf or a nested
// Tree. The interface is sealed; no other implementations exist.
type Node interface {
	node()
}

func (Route) node() {}

// Tree is an ordered sequence of route tree nodes. Trees nest to arbitrary
// depth; order is significant only for presentation.
type Tree []Node

func (Tree) node() {}

// Flatten returns every route in the tree in declaration order, descending
// through nested trees.
func Flatten(tree Tree) []Route {
	var flat []Route
	for _, n := range tree {
		switch v := n.(type) {
		case Route:
			flat = append(flat, v)
		case Tree:
			flat = append(flat, Flatten(v)...)
		}
	}
	return flat
}
