package scene

type slot struct {
	node       Node
	generation uint32
}

// Graph is an arena of nodes addressed by Handle.
//
// Graph is not safe for concurrent use: the command stack is its only writer
// and it never runs concurrently with dispatch.
type Graph struct {
	slots []slot
	free  []uint32
	live  int
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// Add stores n and returns its handle. Adding a nil node panics.
func (g *Graph) Add(n Node) Handle {
	if n == nil {
		panic("scene: cannot add a nil node")
	}

	g.live++

	if last := len(g.free) - 1; last >= 0 {
		index := g.free[last]
		g.free = g.free[:last]
		g.slots[index].node = n

		return Handle{Index: index, Generation: g.slots[index].generation}
	}

	g.slots = append(g.slots, slot{node: n, generation: 1})

	return Handle{Index: uint32(len(g.slots) - 1), Generation: 1}
}

// Node returns the node addressed by h, or false when h is stale or none.
func (g *Graph) Node(h Handle) (Node, bool) {
	s, ok := g.slot(h)
	if !ok {
		return nil, false
	}

	return s.node, true
}

// Replace swaps the node stored under h for n, keeping the handle valid.
// The replacement may be of a different kind.
func (g *Graph) Replace(h Handle, n Node) (Node, bool) {
	if n == nil {
		return nil, false
	}

	s, ok := g.slot(h)
	if !ok {
		return nil, false
	}

	prev := s.node
	s.node = n

	return prev, true
}

// Remove frees the slot addressed by h and returns the node it held.
func (g *Graph) Remove(h Handle) (Node, bool) {
	s, ok := g.slot(h)
	if !ok {
		return nil, false
	}

	prev := s.node
	s.node = nil
	s.generation++
	if s.generation == 0 {
		s.generation = 1
	}

	g.free = append(g.free, h.Index)
	g.live--

	return prev, true
}

// Len returns the number of live nodes.
func (g *Graph) Len() int {
	return g.live
}

// Each calls fn for every live node in slot order.
func (g *Graph) Each(fn func(Handle, Node)) {
	for i := range g.slots {
		s := &g.slots[i]
		if s.node == nil {
			continue
		}

		fn(Handle{Index: uint32(i), Generation: s.generation}, s.node)
	}
}

func (g *Graph) slot(h Handle) (*slot, bool) {
	if h.IsNone() || int(h.Index) >= len(g.slots) {
		return nil, false
	}

	s := &g.slots[h.Index]
	if s.node == nil || s.generation != h.Generation {
		return nil, false
	}

	return s, true
}
