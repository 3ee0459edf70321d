package pencil

import (
	"testing"
)

// --- Tree manipulation ---

func TestAddChild(t *testing.T) {
	parent := NewContainer(Pos(0, 0))
	a := NewContainer(Pos(1, 1))
	b := square()
	parent.Add(a, b)

	if len(parent.Children()) != 2 {
		t.Fatalf("children = %d, want 2", len(parent.Children()))
	}
	if a.Parent() != Node(parent) || b.Parent() != Node(parent) {
		t.Error("Parent not set")
	}
	if b.Root() != Node(parent) {
		t.Errorf("Root = %v, want parent", b.Root())
	}
}

func TestAddChild_Reparents(t *testing.T) {
	p1 := NewContainer(Pos(0, 0))
	p2 := NewContainer(Pos(0, 0))
	child := NewContainer(Pos(0, 0))
	p1.Add(child)
	p2.Add(child)

	if len(p1.Children()) != 0 {
		t.Errorf("old parent still has %d children", len(p1.Children()))
	}
	if child.Parent() != Node(p2) {
		t.Error("child should belong to the new parent")
	}
}

func TestAddChild_PanicsOnCycle(t *testing.T) {
	a := NewContainer(Pos(0, 0))
	b := NewContainer(Pos(0, 0))
	a.Add(b)

	assertPanics(t, "self", func() { a.Add(a) })
	assertPanics(t, "ancestor", func() { b.Add(a) })
	assertPanics(t, "nil", func() { a.Add(nil) })
}

func TestRemoveChild(t *testing.T) {
	parent := NewContainer(Pos(0, 0))
	a, b, c := NewContainer(Pos(0, 0)), NewContainer(Pos(0, 0)), NewContainer(Pos(0, 0))
	parent.Add(a, b, c)
	parent.RemoveChild(b)

	kids := parent.Children()
	if len(kids) != 2 || kids[0] != Node(a) || kids[1] != Node(c) {
		t.Errorf("children after remove = %v", kids)
	}
	if b.Parent() != nil {
		t.Error("removed child should be detached")
	}
	assertPanics(t, "not a child", func() { parent.RemoveChild(b) })

	c.RemoveFromParent()
	if len(parent.Children()) != 1 {
		t.Errorf("children = %d, want 1", len(parent.Children()))
	}
	c.RemoveFromParent() // no-op once detached
}

func TestIsAncestorOf(t *testing.T) {
	root := NewContainer(Pos(0, 0))
	mid := NewContainer(Pos(0, 0))
	leaf := square()
	root.Add(mid)
	mid.Add(leaf)

	tests := []struct {
		name string
		a    *Component
		n    Node
		want bool
	}{
		{"parent", mid.component(), leaf, true},
		{"grandparent", root.component(), leaf, true},
		{"self", leaf.component(), leaf, false},
		{"descendant", leaf.component(), root, false},
		{"nil", root.component(), nil, false},
	}
	for _, tt := range tests {
		if got := tt.a.IsAncestorOf(tt.n); got != tt.want {
			t.Errorf("%s: IsAncestorOf = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// --- Events ---

func TestFire_Bubbles(t *testing.T) {
	root := NewContainer(Pos(0, 0))
	leaf := square()
	root.Add(leaf)

	var order []string
	leaf.On(EventClick, func(e *Event) { order = append(order, "leaf") })
	root.On(EventClick, func(e *Event) {
		order = append(order, "root")
		if e.Target != Node(leaf) {
			t.Errorf("Target = %v, want leaf", e.Target)
		}
	})
	root.On(EventHover, func(*Event) { order = append(order, "wrong name") })

	if got := leaf.Fire(NewEvent(leaf, EventClick, Pos(1, 1))); got != Node(leaf) {
		t.Errorf("Fire returned %v, want the node", got)
	}
	if len(order) != 2 || order[0] != "leaf" || order[1] != "root" {
		t.Errorf("order = %v, want [leaf root]", order)
	}
}

func TestFire_Stop(t *testing.T) {
	root := NewContainer(Pos(0, 0))
	leaf := square()
	root.Add(leaf)

	calls := 0
	leaf.On(EventClick, func(e *Event) { calls++; e.Stop() })
	leaf.On(EventClick, func(e *Event) { calls++ }) // same node still runs
	root.On(EventClick, func(e *Event) { t.Error("stopped event reached the parent") })

	e := NewEvent(leaf, EventClick, Pos(0, 0))
	leaf.Fire(e)
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if !e.Stopped() {
		t.Error("Stopped should report true")
	}
}

func TestListenerHandle_Remove(t *testing.T) {
	n := square()
	calls := 0
	h := n.On(EventHover, func(*Event) { calls++ })
	n.Fire(NewEvent(n, EventHover, Pos(0, 0)))
	h.Remove()
	n.Fire(NewEvent(n, EventHover, Pos(0, 0)))
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	h.Remove()                // removing twice is harmless
	ListenerHandle{}.Remove() // so is the zero handle
}

func TestListener_RemovesItselfWhileFiring(t *testing.T) {
	n := square()
	var h ListenerHandle
	calls := 0
	h = n.On(EventHover, func(*Event) { calls++; h.Remove() })
	n.On(EventHover, func(*Event) { calls++ })
	n.Fire(NewEvent(n, EventHover, Pos(0, 0)))
	n.Fire(NewEvent(n, EventHover, Pos(0, 0)))
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

// --- Hit testing ---

func TestResolveTarget_TopmostChild(t *testing.T) {
	root := NewContainer(Pos(0, 0))
	bottom := square()
	top := square()
	root.Add(bottom, top)

	if got := resolveTarget(root, Pos(5, 5)); got != Node(top) {
		t.Errorf("target = %v, want the last added child", got)
	}
	top.Options().Hidden = true
	if got := resolveTarget(root, Pos(5, 5)); got != Node(bottom) {
		t.Errorf("target = %v, want bottom once top is hidden", got)
	}
	if got := resolveTarget(root, Pos(50, 50)); got != nil {
		t.Errorf("target = %v, want nil (containers are not hit)", got)
	}
}

func TestResolveTarget_LocalCoordinates(t *testing.T) {
	root := NewContainer(Pos(0, 0))
	group := NewContainer(Pos(100, 100))
	sq := square()
	root.Add(group)
	group.Add(sq)

	if got := resolveTarget(root, Pos(105, 105)); got != Node(sq) {
		t.Errorf("target = %v, want square under the translated group", got)
	}
	if got := resolveTarget(root, Pos(5, 5)); got != nil {
		t.Errorf("target = %v, want nil", got)
	}
	group.Options().Hidden = true
	if got := resolveTarget(root, Pos(105, 105)); got != nil {
		t.Errorf("hidden subtree was hit: %v", got)
	}
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
