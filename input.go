package pencil

// RawEventKind identifies a raw pointer input.
type RawEventKind uint8

const (
	RawPress   RawEventKind = iota // a button was pressed
	RawMove                        // the pointer moved
	RawRelease                     // a button was released
	RawWheel                       // the wheel turned
)

// String returns the name of the semantic event fired for this kind.
func (k RawEventKind) String() string {
	switch k {
	case RawPress:
		return EventMouseDown
	case RawMove:
		return EventMouseMove
	case RawRelease:
		return EventMouseUp
	case RawWheel:
		return EventMouseWheel
	default:
		return "unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// RawEvent is a pointer input as reported by the host, in client
// coordinates (relative to the host's viewport, not the surface).
type RawEvent struct {
	Kind    RawEventKind
	ClientX float64
	ClientY float64
	// DeltaY is the vertical wheel delta; positive scrolls down.
	DeltaY float64
	Button MouseButton
}

// InputSource delivers raw pointer events. Subscribe returns a function that
// stops delivery to fn. Events must be delivered on the goroutine that runs
// the scene.
type InputSource interface {
	Subscribe(fn func(RawEvent)) (unsubscribe func())
}

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, pointer events fired on nodes with a non-zero
// EntityID are forwarded to it.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Name     string
	EntityID uint32
	X, Y     float64
	Button   MouseButton
	DeltaY   float64
}

// interactionState tracks hover and click per node. It is owned and mutated
// only by the scene's dispatch logic.
type interactionState struct {
	hovered       Node // node the pointer was last over
	hoveredMarked bool // whether hover has been fired on hovered
	clicked       map[Node]struct{}
}

// --- Dispatch ---

// handleRaw translates one raw event into semantic events. The generic event
// named after the raw kind always fires first, then the derived ones.
func (s *Scene) handleRaw(ev RawEvent) {
	pos := Pos(ev.ClientX, ev.ClientY).
		Subtract(s.containerPosition).
		Add(s.host.Scroll())

	target := resolveTarget(s, pos)
	if target == nil {
		return
	}

	s.fire(target, ev.Kind.String(), pos, ev)

	switch ev.Kind {
	case RawPress:
		s.interaction.clicked[target] = struct{}{}
	case RawMove:
		s.pointerMove(target, pos, ev)
	case RawRelease:
		if _, ok := s.interaction.clicked[target]; ok {
			s.fire(target, EventClick, pos, ev)
		}
		delete(s.interaction.clicked, target)
	case RawWheel:
		switch {
		case ev.DeltaY > 0:
			s.fire(target, EventScrollDown, pos, ev)
			s.fire(target, EventZoomOut, pos, ev)
		case ev.DeltaY < 0:
			s.fire(target, EventScrollUp, pos, ev)
			s.fire(target, EventZoomIn, pos, ev)
		}
	}
}

// pointerMove cancels a pending click, moves the hover from the previous
// node to target and updates the cursor.
func (s *Scene) pointerMove(target Node, pos Position, ev RawEvent) {
	st := &s.interaction
	delete(st.clicked, target)

	if target != st.hovered {
		if prev := st.hovered; prev != nil {
			st.hoveredMarked = false
			if !prev.component().IsAncestorOf(target) {
				s.fire(prev, EventLeave, pos, ev)
			}
		}
		st.hovered = target
		s.pruneClicked()
	}
	if !st.hoveredMarked {
		st.hoveredMarked = true
		s.fire(target, EventHover, pos, ev)
	}

	cursor := target.component().options.Cursor
	if cursor == "" {
		cursor = s.options.Cursor
	}
	s.SetCursor(cursor)
}

// pruneClicked forgets clicked nodes that are no longer part of the scene.
func (s *Scene) pruneClicked() {
	for n := range s.interaction.clicked {
		if n.component().Root() != Node(s) {
			delete(s.interaction.clicked, n)
		}
	}
}

// fire dispatches a pointer event on target and forwards it to the ECS bridge.
func (s *Scene) fire(target Node, name string, pos Position, ev RawEvent) {
	c := target.component()
	c.Fire(NewEvent(target, name, pos))

	if s.store == nil || c.EntityID == 0 {
		return
	}
	s.store.EmitEvent(InteractionEvent{
		Name:     name,
		EntityID: c.EntityID,
		X:        pos.X,
		Y:        pos.Y,
		Button:   ev.Button,
		DeltaY:   ev.DeltaY,
	})
}

// IsHovered reports whether the pointer currently rests over n.
func (s *Scene) IsHovered(n Node) bool {
	return n != nil && n == s.interaction.hovered && s.interaction.hoveredMarked
}

// IsClicked reports whether n was pressed and the pointer has not moved or
// been released over it since.
func (s *Scene) IsClicked(n Node) bool {
	_, ok := s.interaction.clicked[n]
	return ok
}

// Hovered returns the node the pointer last moved over, or nil.
func (s *Scene) Hovered() Node {
	return s.interaction.hovered
}
