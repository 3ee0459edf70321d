package pencil

import (
	"github.com/gogpu/gg"
)

// Node is any drawable element of the scene graph. Every Node embeds a
// Component, which carries its tree links, position, options and listeners.
type Node interface {
	// IsHover reports whether p, expressed in the parent's coordinate space,
	// lies inside the node.
	IsHover(p Position) bool
	// Trace appends the node's outline to path. The path is already opened
	// at the node's anchor; coordinates are relative to that anchor.
	Trace(path *gg.Path)

	component() *Component
}

// Component holds the state shared by every node type. Embed it and call
// initComponent from the constructor.
type Component struct {
	// Name is a free-form label used in debug output.
	Name string
	// EntityID links the node to an ECS entity. Zero means unlinked.
	EntityID uint32

	self      Node
	parent    Node
	children  []Node
	position  Position
	options   Options
	listeners listenerRegistry
}

func (c *Component) component() *Component { return c }

func (c *Component) initComponent(self Node, pos Position, opts Options) {
	c.self = self
	c.position = pos
	c.options = opts
}

// Position returns the node's anchor in its parent's coordinate space.
func (c *Component) Position() Position {
	return c.position
}

// SetPosition moves the node's anchor.
func (c *Component) SetPosition(p Position) {
	c.position = p
}

// Options returns the node's options for in-place modification.
func (c *Component) Options() *Options {
	return &c.options
}

// Parent returns the node's parent, or nil for a detached node or the scene.
func (c *Component) Parent() Node {
	return c.parent
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (c *Component) Children() []Node {
	return c.children
}

// --- Tree manipulation ---

// Add appends children to this node. A child that already has a parent is
// removed from it first. Panics if a child is nil or is an ancestor of this
// node (cycle).
func (c *Component) Add(children ...Node) {
	for _, child := range children {
		if child == nil {
			panic("pencil: cannot add nil child")
		}
		cc := child.component()
		if cc == c || cc.IsAncestorOf(c.self) {
			panic("pencil: adding child would create a cycle")
		}
		if cc.parent != nil {
			cc.parent.component().removeChildByPtr(child)
		}
		cc.parent = c.self
		c.children = append(c.children, child)
		if globalDebug {
			debugCheckTreeDepth(child)
			debugCheckChildCount(c)
		}
	}
}

// RemoveChild detaches child from this node.
// Panics if child's parent is not this node.
func (c *Component) RemoveChild(child Node) {
	cc := child.component()
	if cc.parent == nil || cc.parent.component() != c {
		panic("pencil: child's parent is not this node")
	}
	c.removeChildByPtr(child)
	cc.parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (c *Component) RemoveFromParent() {
	if c.parent == nil {
		return
	}
	c.parent.component().RemoveChild(c.self)
}

// IsAncestorOf reports whether this node is a strict ancestor of n.
func (c *Component) IsAncestorOf(n Node) bool {
	if n == nil {
		return false
	}
	for p := n.component().parent; p != nil; p = p.component().parent {
		if p.component() == c {
			return true
		}
	}
	return false
}

// Root returns the topmost ancestor of this node (itself if detached).
func (c *Component) Root() Node {
	n := c.self
	for n.component().parent != nil {
		n = n.component().parent
	}
	return n
}

// removeChildByPtr removes child from c.children without clearing its parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (c *Component) removeChildByPtr(child Node) {
	for i, n := range c.children {
		if n == child {
			copy(c.children[i:], c.children[i+1:])
			c.children[len(c.children)-1] = nil
			c.children = c.children[:len(c.children)-1]
			return
		}
	}
}

// --- Events ---

// On registers fn for events named name fired on this node or bubbling up
// from one of its descendants.
func (c *Component) On(name string, fn func(*Event)) ListenerHandle {
	return c.listeners.add(name, fn)
}

// Fire runs this node's listeners for e, then bubbles e to the ancestors
// until one of them stops it. It returns the node so calls can be chained.
func (c *Component) Fire(e *Event) Node {
	for n := c.self; n != nil && !e.stopped; n = n.component().parent {
		n.component().listeners.call(e)
	}
	return c.self
}

// hoverable is the cheap bounding check every hit-test starts with.
func (c *Component) hoverable(p Position, bounds Rect) bool {
	return !c.options.Hidden && bounds.Contains(p)
}

// --- Container ---

// Container groups nodes without drawing anything itself.
type Container struct {
	Component
}

// NewContainer creates an empty group anchored at pos.
func NewContainer(pos Position, opts ...Option) *Container {
	c := &Container{}
	c.initComponent(c, pos, applyOptions(defaultOptions(), opts))
	return c
}

// IsHover always reports false: a container is only hit through its children.
func (c *Container) IsHover(Position) bool { return false }

// Trace draws nothing.
func (c *Container) Trace(*gg.Path) {}

// --- Traversal ---

// resolveTarget returns the topmost node under p, where p is expressed in n's
// parent coordinate space. Later children are drawn over earlier ones, so
// they are tested first. Hidden subtrees are skipped.
func resolveTarget(n Node, p Position) Node {
	c := n.component()
	if c.options.Hidden {
		return nil
	}
	local := p.Subtract(c.position)
	for i := len(c.children) - 1; i >= 0; i-- {
		if t := resolveTarget(c.children[i], local); t != nil {
			return t
		}
	}
	if n.IsHover(p) {
		return n
	}
	return nil
}

// renderNode draws n and its subtree onto s. The first drawing error aborts
// the traversal.
func renderNode(n Node, s Surface) error {
	c := n.component()
	if c.options.Hidden {
		return nil
	}

	s.Push()
	defer s.Pop()
	s.Translate(c.position.X, c.position.Y)

	if c.options.Opacity < 1 {
		s.PushLayer(c.options.Opacity)
		defer s.PopLayer()
	}

	path := gg.NewPath()
	path.MoveTo(0, 0)
	n.Trace(path)
	if len(path.Elements()) > 1 {
		if err := paintPath(s, path, &c.options); err != nil {
			return err
		}
	}

	for _, child := range c.children {
		if err := renderNode(child, s); err != nil {
			return err
		}
	}
	return nil
}

func paintPath(s Surface, path *gg.Path, o *Options) error {
	if o.Fill != "" {
		col, err := ParseColor(o.Fill)
		if err != nil {
			return err
		}
		if err := s.FillPath(path, col); err != nil {
			return err
		}
	}
	if o.Stroke != "" && o.StrokeWidth > 0 {
		col, err := ParseColor(o.Stroke)
		if err != nil {
			return err
		}
		if err := s.StrokePath(path, col, o.StrokeWidth); err != nil {
			return err
		}
	}
	return nil
}

// treeDepth counts n and its ancestors.
func treeDepth(n Node) int {
	depth := 0
	for ; n != nil; n = n.component().parent {
		depth++
	}
	return depth
}
