package ecs

import (
	"github.com/phanxgames/pencil"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType receives every forwarded event, whatever its name.
var InteractionEventType = events.NewEventType[pencil.InteractionEvent]()

// Event types per kind of interaction. Each forwarded event is published to
// InteractionEventType and to the one type matching its name, so a system
// only interested in clicks need not switch on Name.
var (
	// PointerEventType receives mousedown, mousemove, mouseup and mousewheel.
	PointerEventType = events.NewEventType[pencil.InteractionEvent]()
	// HoverEventType receives hover and leave.
	HoverEventType = events.NewEventType[pencil.InteractionEvent]()
	// ClickEventType receives click.
	ClickEventType = events.NewEventType[pencil.InteractionEvent]()
	// WheelEventType receives scrollup, scrolldown, zoomin and zoomout.
	WheelEventType = events.NewEventType[pencil.InteractionEvent]()
)

var eventTypeByName = map[string]*events.EventType[pencil.InteractionEvent]{
	pencil.EventMouseDown:  PointerEventType,
	pencil.EventMouseMove:  PointerEventType,
	pencil.EventMouseUp:    PointerEventType,
	pencil.EventMouseWheel: PointerEventType,
	pencil.EventHover:      HoverEventType,
	pencil.EventLeave:      HoverEventType,
	pencil.EventClick:      ClickEventType,
	pencil.EventScrollUp:   WheelEventType,
	pencil.EventScrollDown: WheelEventType,
	pencil.EventZoomIn:     WheelEventType,
	pencil.EventZoomOut:    WheelEventType,
}

// EventTypeFor returns the per-kind event type an event named name is
// published to, or nil for names the scene never forwards.
func EventTypeFor(name string) *events.EventType[pencil.InteractionEvent] {
	return eventTypeByName[name]
}

// Store is a pencil.EntityStore backed by a Donburi world.
type Store struct {
	world  donburi.World
	accept func(entityID uint32) bool
	mutes  map[string]bool
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithEntityFilter forwards only the events of entities for which accept
// returns true.
func WithEntityFilter(accept func(entityID uint32) bool) StoreOption {
	return func(s *Store) { s.accept = accept }
}

// WithoutEvents drops the named events, e.g. mousemove when only clicks
// matter.
func WithoutEvents(names ...string) StoreOption {
	return func(s *Store) {
		for _, n := range names {
			s.mutes[n] = true
		}
	}
}

// NewDonburiStore creates a Store publishing into world. Published events
// are delivered by events.ProcessAllEvents or the event type's
// ProcessEvents.
func NewDonburiStore(world donburi.World, opts ...StoreOption) *Store {
	s := &Store{world: world, mutes: make(map[string]bool)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EmitEvent implements pencil.EntityStore.
func (s *Store) EmitEvent(event pencil.InteractionEvent) {
	if s.mutes[event.Name] {
		return
	}
	if s.accept != nil && !s.accept(event.EntityID) {
		return
	}
	InteractionEventType.Publish(s.world, event)
	if typ := eventTypeByName[event.Name]; typ != nil {
		typ.Publish(s.world, event)
	}
}
