package remote

import (
	"encoding/json"
	"fmt"

	"github.com/phanxgames/pencil"
)

// Message is a pointer event sent by a client, in client coordinates.
//
//	{"type": "press", "x": 12, "y": 40, "button": "left"}
//	{"type": "wheel", "x": 12, "y": 40, "deltaY": -100}
type Message struct {
	Type   string  `json:"type"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	DeltaY float64 `json:"deltaY,omitempty"`
	Button string  `json:"button,omitempty"`
}

var messageKinds = map[string]pencil.RawEventKind{
	"press":   pencil.RawPress,
	"move":    pencil.RawMove,
	"release": pencil.RawRelease,
	"wheel":   pencil.RawWheel,
}

var messageButtons = map[string]pencil.MouseButton{
	"":       pencil.MouseButtonLeft,
	"left":   pencil.MouseButtonLeft,
	"right":  pencil.MouseButtonRight,
	"middle": pencil.MouseButtonMiddle,
}

// RawEvent converts the message to the event fed to the scene.
func (m Message) RawEvent() (pencil.RawEvent, error) {
	kind, ok := messageKinds[m.Type]
	if !ok {
		return pencil.RawEvent{}, fmt.Errorf("%w: unknown type %q", ErrBadMessage, m.Type)
	}
	button, ok := messageButtons[m.Button]
	if !ok {
		return pencil.RawEvent{}, fmt.Errorf("%w: unknown button %q", ErrBadMessage, m.Button)
	}
	return pencil.RawEvent{
		Kind:    kind,
		ClientX: m.X,
		ClientY: m.Y,
		DeltaY:  m.DeltaY,
		Button:  button,
	}, nil
}

// DecodeMessage parses one client message.
func DecodeMessage(data []byte) (pencil.RawEvent, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return pencil.RawEvent{}, fmt.Errorf("%w: %v", ErrBadMessage, err)
	}
	return m.RawEvent()
}
