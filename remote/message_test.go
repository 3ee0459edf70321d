package remote

import (
	"errors"
	"testing"

	"github.com/phanxgames/pencil"
)

func TestDecodeMessage(t *testing.T) {
	tests := []struct {
		name string
		data string
		want pencil.RawEvent
	}{
		{"press default button", `{"type":"press","x":3,"y":4}`,
			pencil.RawEvent{Kind: pencil.RawPress, ClientX: 3, ClientY: 4}},
		{"release right", `{"type":"release","x":1,"y":2,"button":"right"}`,
			pencil.RawEvent{Kind: pencil.RawRelease, ClientX: 1, ClientY: 2, Button: pencil.MouseButtonRight}},
		{"move", `{"type":"move","x":10.5,"y":7}`,
			pencil.RawEvent{Kind: pencil.RawMove, ClientX: 10.5, ClientY: 7}},
		{"wheel", `{"type":"wheel","x":0,"y":0,"deltaY":-100}`,
			pencil.RawEvent{Kind: pencil.RawWheel, DeltaY: -100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeMessage([]byte(tt.data))
			if err != nil {
				t.Fatalf("DecodeMessage: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecodeMessage_Invalid(t *testing.T) {
	for _, data := range []string{
		`not json`,
		`{"type":"teleport","x":1,"y":1}`,
		`{"type":"press","x":1,"y":1,"button":"fourth"}`,
	} {
		if _, err := DecodeMessage([]byte(data)); !errors.Is(err, ErrBadMessage) {
			t.Errorf("DecodeMessage(%s) error = %v, want ErrBadMessage", data, err)
		}
	}
}

func TestSource_QueuesUntilDrain(t *testing.T) {
	src := NewSource()
	var got []pencil.RawEvent
	unsubscribe := src.Subscribe(func(ev pencil.RawEvent) { got = append(got, ev) })
	defer unsubscribe()

	if err := src.HandleMessage([]byte(`{"type":"move","x":1,"y":1}`)); err != nil {
		t.Fatal(err)
	}
	if err := src.HandleMessage([]byte(`{"type":"press","x":1,"y":1}`)); err != nil {
		t.Fatal(err)
	}
	if err := src.HandleMessage([]byte(`{}`)); err == nil {
		t.Error("empty message should be rejected")
	}
	if len(got) != 0 {
		t.Fatalf("delivered %d events before Drain", len(got))
	}
	if src.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", src.Pending())
	}
	if n := src.Drain(); n != 2 {
		t.Errorf("Drain = %d, want 2", n)
	}
	if len(got) != 2 || got[0].Kind != pencil.RawMove || got[1].Kind != pencil.RawPress {
		t.Errorf("delivered %+v", got)
	}
}
