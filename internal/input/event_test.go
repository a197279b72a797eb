package input

import "testing"

func TestEventString(t *testing.T) {
	tests := []struct {
		e    Event
		want string
	}{
		{Press(KeyZoomIn), "press zoom-in"},
		{Release(KeyLeft), "release left"},
		{Press(KeyReset), "press reset"},
		{Close(), "close"},
		{Event{Kind: KeyChange, Key: Key(42), Pressed: true}, "press Key(42)"},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
