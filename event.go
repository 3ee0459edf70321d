package pencil

// Event is a semantic event fired on a node. Events bubble from the target
// up through its ancestors until one of the listeners calls Stop.
type Event struct {
	Target   Node
	Name     string
	Position Position // scene-space position, zero for non-pointer events

	stopped bool
}

// NewEvent creates an event for the given target.
func NewEvent(target Node, name string, pos Position) *Event {
	return &Event{Target: target, Name: name, Position: pos}
}

// Stop prevents the event from reaching further ancestors.
func (e *Event) Stop() {
	e.stopped = true
}

// Stopped reports whether Stop was called.
func (e *Event) Stopped() bool {
	return e.stopped
}

type listener struct {
	id uint32
	fn func(*Event)
}

// listenerRegistry maps event names to their listeners, in registration order.
type listenerRegistry struct {
	byName map[string][]listener
	nextID uint32
}

// ListenerHandle allows removing a registered listener.
type ListenerHandle struct {
	id   uint32
	name string
	reg  *listenerRegistry
}

// Remove unregisters the listener so it no longer fires.
func (h ListenerHandle) Remove() {
	if h.reg == nil {
		return
	}
	ls := h.reg.byName[h.name]
	for i := range ls {
		if ls[i].id == h.id {
			copy(ls[i:], ls[i+1:])
			ls[len(ls)-1] = listener{}
			h.reg.byName[h.name] = ls[:len(ls)-1]
			return
		}
	}
}

func (r *listenerRegistry) add(name string, fn func(*Event)) ListenerHandle {
	if r.byName == nil {
		r.byName = make(map[string][]listener)
	}
	r.nextID++
	r.byName[name] = append(r.byName[name], listener{id: r.nextID, fn: fn})
	return ListenerHandle{id: r.nextID, name: name, reg: r}
}

// call runs every listener for e.Name. The slice is copied so listeners may
// remove themselves while running.
func (r *listenerRegistry) call(e *Event) {
	ls := r.byName[e.Name]
	if len(ls) == 0 {
		return
	}
	snapshot := make([]listener, len(ls))
	copy(snapshot, ls)
	for _, l := range snapshot {
		l.fn(e)
	}
}
