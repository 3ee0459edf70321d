package remote

import (
	"errors"

	"github.com/phanxgames/pencil"
)

// ErrBadMessage is returned for client messages that can't be decoded.
var ErrBadMessage = errors.New("remote: bad message")

// Source is an InputSource fed by websocket clients. Messages may arrive on
// any goroutine; they are queued and only reach the scene when the loop
// goroutine calls Drain.
type Source struct {
	in *pencil.Injector
}

// NewSource creates an empty source.
func NewSource() *Source {
	return &Source{in: pencil.NewInjector()}
}

// Subscribe implements pencil.InputSource.
func (s *Source) Subscribe(fn func(pencil.RawEvent)) func() {
	return s.in.Subscribe(fn)
}

// HandleMessage decodes data and queues the resulting event.
func (s *Source) HandleMessage(data []byte) error {
	ev, err := DecodeMessage(data)
	if err != nil {
		return err
	}
	s.in.Enqueue(ev)
	return nil
}

// Pending returns the number of queued events.
func (s *Source) Pending() int {
	return s.in.Pending()
}

// Drain delivers every queued event and returns how many were delivered.
func (s *Source) Drain() int {
	return s.in.Drain()
}
