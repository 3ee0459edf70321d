package pencil

// FrameID identifies a requested frame. The zero value never names a frame.
type FrameID uint64

// FrameFunc is run once for a requested frame. A returned error is handed to
// whoever drives the scheduler.
type FrameFunc func() error

// Scheduler runs frame callbacks at the host's refresh rate.
type Scheduler interface {
	// RequestFrame schedules fn for the next frame.
	RequestFrame(fn FrameFunc) FrameID
	// CancelFrame drops a frame that has not run yet. Unknown or already
	// run IDs are ignored.
	CancelFrame(id FrameID)
}

type queuedFrame struct {
	id FrameID
	fn FrameFunc
}

// FrameQueue is a Scheduler driven explicitly by calling Flush, once per
// display refresh. It is not safe for concurrent use: requests and flushes
// must happen on the loop goroutine.
type FrameQueue struct {
	frames []queuedFrame
	nextID FrameID
}

// NewFrameQueue creates an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame queues fn for the next Flush.
func (q *FrameQueue) RequestFrame(fn FrameFunc) FrameID {
	q.nextID++
	q.frames = append(q.frames, queuedFrame{id: q.nextID, fn: fn})
	return q.nextID
}

// CancelFrame removes a queued frame.
func (q *FrameQueue) CancelFrame(id FrameID) {
	for i := range q.frames {
		if q.frames[i].id == id {
			copy(q.frames[i:], q.frames[i+1:])
			q.frames[len(q.frames)-1] = queuedFrame{}
			q.frames = q.frames[:len(q.frames)-1]
			return
		}
	}
}

// Pending returns the number of queued frames.
func (q *FrameQueue) Pending() int {
	return len(q.frames)
}

// Flush runs every frame queued before the call, in request order. Frames
// requested while flushing wait for the next Flush. A frame cancelled by an
// earlier one in the same flush does not run. Flush stops at the first
// error and returns it; the remaining frames stay queued.
func (q *FrameQueue) Flush() error {
	if len(q.frames) == 0 {
		return nil
	}
	last := q.frames[len(q.frames)-1].id
	for len(q.frames) > 0 && q.frames[0].id <= last {
		f := q.frames[0]
		copy(q.frames, q.frames[1:])
		q.frames[len(q.frames)-1] = queuedFrame{}
		q.frames = q.frames[:len(q.frames)-1]
		if err := f.fn(); err != nil {
			return err
		}
	}
	return nil
}
