// Package scene is a retained scene graph: a tree of positioned rectangles and
// texture buffers that can be enabled, disabled and queried by point.
package scene

// Scene owns the root tree and counts mutations for change tracking.
type Scene struct {
	root      *Tree
	mutations uint64
}

// New returns an empty scene.
func New() *Scene {
	s := &Scene{}
	s.root = &Tree{}
	s.root.scene = s
	s.root.kind = KindTree
	s.root.enabled = true
	s.root.tree = s.root
	return s
}

// Root returns the top level tree.
func (s *Scene) Root() *Tree {
	return s.root
}

// Mutations returns the number of position, size, enablement and buffer
// writes made to nodes of this scene.
func (s *Scene) Mutations() uint64 {
	return s.mutations
}

// NodeAt returns the topmost enabled leaf node under the layout point that
// accepts input there, together with the point in node-local coordinates.
func (s *Scene) NodeAt(lx, ly float64) (*Node, float64, float64) {
	if s == nil {
		return nil, 0, 0
	}
	return nodeAt(&s.root.Node, lx, ly)
}

func nodeAt(n *Node, lx, ly float64) (*Node, float64, float64) {
	if !n.enabled {
		return nil, 0, 0
	}
	lx -= float64(n.x)
	ly -= float64(n.y)

	if n.kind == KindTree {
		children := n.tree.children
		for i := len(children) - 1; i >= 0; i-- {
			if hit, sx, sy := nodeAt(children[i], lx, ly); hit != nil {
				return hit, sx, sy
			}
		}
		return nil, 0, 0
	}

	w, h := n.Size()
	if lx < 0 || ly < 0 || lx >= float64(w) || ly >= float64(h) {
		return nil, 0, 0
	}
	if !n.AcceptsInput(lx, ly) {
		return nil, 0, 0
	}
	return n, lx, ly
}
