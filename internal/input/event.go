// Package input defines the events the windowing layer hands to the frame loop.
package input

import "fmt"

// Key is a navigation key.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyZoomIn
	KeyZoomOut
	// KeyReset returns to the starting view when pressed.
	KeyReset
)

var keyNames = [...]string{
	KeyUp:      "up",
	KeyDown:    "down",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyZoomIn:  "zoom-in",
	KeyZoomOut: "zoom-out",
	KeyReset:   "reset",
}

func (k Key) String() string {
	if k >= 0 && int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Kind tags an Event.
type Kind int

const (
	// KeyChange reports a navigation key going down or up.
	KeyChange Kind = iota
	// WindowClose asks the frame loop to stop after the current frame.
	WindowClose
)

// Event is a tagged union: Key and Pressed are only meaningful for KeyChange.
type Event struct {
	Kind    Kind
	Key     Key
	Pressed bool
}

// Press returns the event of k going down.
func Press(k Key) Event {
	return Event{Kind: KeyChange, Key: k, Pressed: true}
}

// Release returns the event of k going up.
func Release(k Key) Event {
	return Event{Kind: KeyChange, Key: k}
}

// Close returns a window close event.
func Close() Event {
	return Event{Kind: WindowClose}
}

func (e Event) String() string {
	if e.Kind == WindowClose {
		return "close"
	}
	if e.Pressed {
		return "press " + e.Key.String()
	}
	return "release " + e.Key.String()
}
