package pencil

import (
	"errors"
	"slices"
	"testing"
)

func TestFrameQueue_FlushOrder(t *testing.T) {
	q := NewFrameQueue()
	var got []int
	for i := 1; i <= 3; i++ {
		q.RequestFrame(func() error { got = append(got, i); return nil })
	}
	if err := q.Flush(); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("order = %v, want [1 2 3]", got)
	}
	if q.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", q.Pending())
	}
}

func TestFrameQueue_Cancel(t *testing.T) {
	q := NewFrameQueue()
	ran := 0
	a := q.RequestFrame(func() error { ran++; return nil })
	q.RequestFrame(func() error { ran += 10; return nil })
	q.CancelFrame(a)
	q.CancelFrame(a)     // already cancelled
	q.CancelFrame(12345) // unknown
	if err := q.Flush(); err != nil {
		t.Fatal(err)
	}
	if ran != 10 {
		t.Errorf("ran = %d, want only the second frame", ran)
	}
}

func TestFrameQueue_RequestDuringFlushWaits(t *testing.T) {
	q := NewFrameQueue()
	runs := 0
	var frame FrameFunc
	frame = func() error {
		runs++
		q.RequestFrame(frame)
		return nil
	}
	q.RequestFrame(frame)
	q.Flush()
	q.Flush()
	if runs != 2 {
		t.Errorf("runs = %d, want 2 (one per flush)", runs)
	}
	if q.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", q.Pending())
	}
}

func TestFrameQueue_CancelFromEarlierFrame(t *testing.T) {
	q := NewFrameQueue()
	var second FrameID
	ran := false
	q.RequestFrame(func() error { q.CancelFrame(second); return nil })
	second = q.RequestFrame(func() error { ran = true; return nil })
	q.Flush()
	if ran {
		t.Error("frame cancelled during the flush should not run")
	}
}

func TestFrameQueue_ErrorStopsFlush(t *testing.T) {
	q := NewFrameQueue()
	boom := errors.New("boom")
	ran := false
	q.RequestFrame(func() error { return boom })
	q.RequestFrame(func() error { ran = true; return nil })

	if err := q.Flush(); !errors.Is(err, boom) {
		t.Errorf("Flush = %v, want boom", err)
	}
	if ran || q.Pending() != 1 {
		t.Errorf("ran = %v pending = %d, want the second frame still queued", ran, q.Pending())
	}
}
