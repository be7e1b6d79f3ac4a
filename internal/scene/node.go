package scene

import (
	"image/color"

	"github.com/1broseidon/decor/internal/geom"
)

// Kind identifies the concrete type behind a Node.
type Kind int

const (
	KindTree Kind = iota
	KindRect
	KindBuffer
)

func (k Kind) String() string {
	switch k {
	case KindTree:
		return "tree"
	case KindRect:
		return "rect"
	case KindBuffer:
		return "buffer"
	default:
		return "unknown"
	}
}

// Node is the part shared by every element of the scene: a position relative
// to the parent tree, an enabled flag and a destroy signal.
type Node struct {
	scene     *Scene
	kind      Kind
	parent    *Tree
	x, y      int
	enabled   bool
	destroyed bool
	destroy   Signal

	tree   *Tree
	rect   *Rect
	buffer *Buffer
}

// Tree groups child nodes. Later children are stacked above earlier ones.
type Tree struct {
	Node
	children []*Node
}

// Rect is a solid color rectangle.
type Rect struct {
	Node
	width, height int
	color         color.Color
}

// Buffer displays a texture, optionally scaled to a destination size and
// rotated by a multiple of 90 degrees.
type Buffer struct {
	Node
	texture      *Texture
	destW, destH int
	transform    Transform

	// PointAcceptsInput, when set, decides whether a point in buffer-local
	// coordinates takes part in NodeAt lookups.
	PointAcceptsInput func(b *Buffer, sx, sy float64) bool
}

func (n *Node) init(parent *Tree, kind Kind) {
	n.kind = kind
	n.enabled = true
	n.parent = parent
	if parent != nil {
		n.scene = parent.scene
		parent.children = append(parent.children, n)
	}
}

// NewTree creates an empty tree as the topmost child of parent.
func NewTree(parent *Tree) *Tree {
	t := &Tree{}
	t.init(parent, KindTree)
	t.tree = t
	return t
}

// NewRect creates a rectangle as the topmost child of parent.
func NewRect(parent *Tree, width, height int, c color.Color) *Rect {
	r := &Rect{width: width, height: height, color: c}
	r.init(parent, KindRect)
	r.rect = r
	return r
}

// NewBuffer creates a buffer showing tex as the topmost child of parent.
// tex may be nil and set later with SetTexture.
func NewBuffer(parent *Tree, tex *Texture) *Buffer {
	b := &Buffer{texture: tex}
	b.init(parent, KindBuffer)
	b.buffer = b
	return b
}

func (n *Node) touch() {
	if n.scene != nil {
		n.scene.mutations++
	}
}

// Kind returns the concrete node kind.
func (n *Node) Kind() Kind { return n.kind }

// AsTree returns the tree behind n, or nil if n is not a tree.
func (n *Node) AsTree() *Tree {
	if n == nil {
		return nil
	}
	return n.tree
}

// AsRect returns the rect behind n, or nil if n is not a rect.
func (n *Node) AsRect() *Rect {
	if n == nil {
		return nil
	}
	return n.rect
}

// AsBuffer returns the buffer behind n, or nil if n is not a buffer.
func (n *Node) AsBuffer() *Buffer {
	if n == nil {
		return nil
	}
	return n.buffer
}

// Parent returns the tree n is attached to. The scene root has no parent.
func (n *Node) Parent() *Tree {
	if n == nil {
		return nil
	}
	return n.parent
}

// Position returns the position relative to the parent tree.
func (n *Node) Position() (int, int) {
	return n.x, n.y
}

// SetPosition moves the node relative to its parent tree.
func (n *Node) SetPosition(x, y int) {
	n.touch()
	n.x, n.y = x, y
}

// SetEnabled shows or hides the node and all of its children. Disabled nodes
// are neither painted nor found by NodeAt.
func (n *Node) SetEnabled(enabled bool) {
	n.touch()
	n.enabled = enabled
}

// Enabled returns the node's own enabled flag.
func (n *Node) Enabled() bool {
	return n != nil && n.enabled
}

// Coords returns the layout coordinates of the node and whether it and all
// of its ancestors are enabled.
func (n *Node) Coords() (lx, ly int, enabled bool) {
	enabled = true
	for cur := n; cur != nil; cur = cur.ParentNode() {
		lx += cur.x
		ly += cur.y
		enabled = enabled && cur.enabled
	}
	return lx, ly, enabled
}

// ParentNode returns the parent tree as a node, or nil at the root.
func (n *Node) ParentNode() *Node {
	if n == nil || n.parent == nil {
		return nil
	}
	return &n.parent.Node
}

// IsDescendantOf reports whether n is t or lies below t.
func (n *Node) IsDescendantOf(t *Tree) bool {
	if n == nil || t == nil {
		return false
	}
	for cur := n; cur != nil; cur = cur.ParentNode() {
		if cur == &t.Node {
			return true
		}
	}
	return false
}

// Size returns the painted size of the node. Trees have no size of their own.
func (n *Node) Size() (int, int) {
	switch n.kind {
	case KindRect:
		return n.rect.width, n.rect.height
	case KindBuffer:
		return n.buffer.size()
	default:
		return 0, 0
	}
}

// Bounds returns the painted area relative to the parent tree.
func (n *Node) Bounds() geom.Rect {
	w, h := n.Size()
	return geom.Rect{X: n.x, Y: n.y, Width: w, Height: h}
}

// AcceptsInput reports whether the node-local point takes part in input
// lookups.
func (n *Node) AcceptsInput(sx, sy float64) bool {
	if n.kind == KindBuffer && n.buffer.PointAcceptsInput != nil {
		return n.buffer.PointAcceptsInput(n.buffer, sx, sy)
	}
	return true
}

// OnDestroy registers fn to run when the node is destroyed.
func (n *Node) OnDestroy(fn func()) *Listener {
	return n.destroy.Connect(fn)
}

// Destroyed reports whether Destroy has been called on the node or one of its
// ancestors.
func (n *Node) Destroyed() bool {
	return n == nil || n.destroyed
}

// Destroy removes the node from the scene. Children are destroyed first, so
// destroy listeners of a tree observe an already empty tree.
func (n *Node) Destroy() {
	if n == nil || n.destroyed {
		return
	}
	if n.kind == KindTree {
		for len(n.tree.children) > 0 {
			n.tree.children[len(n.tree.children)-1].Destroy()
		}
	}
	n.destroyed = true
	n.destroy.Emit()
	if n.parent != nil {
		n.parent.remove(n)
		n.parent = nil
	}
}

// RaiseToTop moves the node above all of its siblings.
func (n *Node) RaiseToTop() {
	if n.parent == nil {
		return
	}
	n.parent.remove(n)
	n.parent.children = append(n.parent.children, n)
}

// LowerToBottom moves the node below all of its siblings.
func (n *Node) LowerToBottom() {
	if n.parent == nil {
		return
	}
	n.parent.remove(n)
	n.parent.children = append([]*Node{n}, n.parent.children...)
}

// Children returns the children of t from bottom to top.
func (t *Tree) Children() []*Node {
	return append([]*Node(nil), t.children...)
}

func (t *Tree) remove(n *Node) {
	for i, c := range t.children {
		if c == n {
			t.children = append(t.children[:i], t.children[i+1:]...)
			return
		}
	}
}

// SetSize changes the painted size of the rectangle.
func (r *Rect) SetSize(width, height int) {
	r.touch()
	r.width, r.height = width, height
}

// SetColor changes the fill color of the rectangle.
func (r *Rect) SetColor(c color.Color) {
	r.color = c
}

// Color returns the fill color.
func (r *Rect) Color() color.Color {
	return r.color
}

// SetTexture replaces the displayed texture. nil clears the buffer.
func (b *Buffer) SetTexture(tex *Texture) {
	b.touch()
	b.texture = tex
}

// Texture returns the displayed texture.
func (b *Buffer) Texture() *Texture {
	return b.texture
}

// SetDestSize scales the texture to width x height. A zero size restores
// the texture's own size.
func (b *Buffer) SetDestSize(width, height int) {
	b.touch()
	b.destW, b.destH = width, height
}

// SetTransform rotates the texture.
func (b *Buffer) SetTransform(t Transform) {
	b.touch()
	b.transform = t
}

// Transform returns the rotation applied to the texture.
func (b *Buffer) Transform() Transform {
	return b.transform
}

func (b *Buffer) size() (int, int) {
	if b.destW > 0 && b.destH > 0 {
		return b.destW, b.destH
	}
	w, h := b.texture.Size()
	if b.transform.swapsAxes() {
		return h, w
	}
	return w, h
}
