package pencil

import "sync"

type subscriber struct {
	id uint32
	fn func(RawEvent)
}

// Injector is an InputSource fed programmatically. Events may be queued from
// any goroutine with the Press/Move/... helpers or Enqueue; they reach the
// subscribers only when the loop goroutine calls Step or Drain. Dispatch
// bypasses the queue.
type Injector struct {
	mu     sync.Mutex
	queue  []RawEvent
	subs   []subscriber
	nextID uint32
}

// NewInjector creates an empty injector.
func NewInjector() *Injector {
	return &Injector{}
}

// Subscribe implements InputSource.
func (in *Injector) Subscribe(fn func(RawEvent)) func() {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.nextID++
	id := in.nextID
	in.subs = append(in.subs, subscriber{id: id, fn: fn})
	return func() { in.unsubscribe(id) }
}

func (in *Injector) unsubscribe(id uint32) {
	in.mu.Lock()
	defer in.mu.Unlock()
	for i := range in.subs {
		if in.subs[i].id == id {
			copy(in.subs[i:], in.subs[i+1:])
			in.subs[len(in.subs)-1] = subscriber{}
			in.subs = in.subs[:len(in.subs)-1]
			return
		}
	}
}

// Subscribers returns the number of active subscriptions.
func (in *Injector) Subscribers() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.subs)
}

// Dispatch delivers ev to every subscriber immediately.
func (in *Injector) Dispatch(ev RawEvent) {
	in.mu.Lock()
	subs := make([]subscriber, len(in.subs))
	copy(subs, in.subs)
	in.mu.Unlock()
	for _, s := range subs {
		s.fn(ev)
	}
}

// Enqueue queues ev for the next Step or Drain.
func (in *Injector) Enqueue(ev RawEvent) {
	in.mu.Lock()
	in.queue = append(in.queue, ev)
	in.mu.Unlock()
}

// Pending returns the number of queued events.
func (in *Injector) Pending() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.queue)
}

// Step delivers the oldest queued event. It reports false if the queue was empty.
func (in *Injector) Step() bool {
	in.mu.Lock()
	if len(in.queue) == 0 {
		in.mu.Unlock()
		return false
	}
	ev := in.queue[0]
	copy(in.queue, in.queue[1:])
	in.queue = in.queue[:len(in.queue)-1]
	in.mu.Unlock()

	in.Dispatch(ev)
	return true
}

// Drain delivers every queued event, including those queued by listeners
// while draining, and returns how many were delivered.
func (in *Injector) Drain() int {
	n := 0
	for in.Step() {
		n++
	}
	return n
}

// Press queues a left button press at client coordinates (x, y).
func (in *Injector) Press(x, y float64) {
	in.Enqueue(RawEvent{Kind: RawPress, ClientX: x, ClientY: y, Button: MouseButtonLeft})
}

// Move queues a pointer move to client coordinates (x, y).
func (in *Injector) Move(x, y float64) {
	in.Enqueue(RawEvent{Kind: RawMove, ClientX: x, ClientY: y})
}

// Release queues a left button release at client coordinates (x, y).
func (in *Injector) Release(x, y float64) {
	in.Enqueue(RawEvent{Kind: RawRelease, ClientX: x, ClientY: y, Button: MouseButtonLeft})
}

// Click is a convenience that queues a press followed by a release at the
// same coordinates.
func (in *Injector) Click(x, y float64) {
	in.Press(x, y)
	in.Release(x, y)
}

// Wheel queues a wheel turn at (x, y). Positive deltaY scrolls down.
func (in *Injector) Wheel(x, y, deltaY float64) {
	in.Enqueue(RawEvent{Kind: RawWheel, ClientX: x, ClientY: y, DeltaY: deltaY})
}

// Drag queues a press at (fromX, fromY), steps linearly interpolated moves
// and a release at (toX, toY).
func (in *Injector) Drag(fromX, fromY, toX, toY float64, steps int) {
	in.Press(fromX, fromY)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		in.Move(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	in.Release(toX, toY)
}
