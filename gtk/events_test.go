package multitermgtk

import (
	"testing"

	"github.com/gotk3/gotk3/gdk"
	"github.com/phroun/multiterm"
)

func TestKeyFromKeyval(t *testing.T) {
	tests := []struct {
		keyval uint
		want   multiterm.Key
	}{
		{gdk.KEY_Return, multiterm.KeyReturn},
		{gdk.KEY_KP_Enter, multiterm.KeyOther},
		{gdk.KEY_Tab, multiterm.KeyOther},
		{gdk.KEY_a, multiterm.KeyOther},
	}
	for _, tt := range tests {
		if got := keyFromKeyval(tt.keyval); got != tt.want {
			t.Errorf("keyval %#x: expected %v, got %v", tt.keyval, tt.want, got)
		}
	}
}

func TestModsFromState(t *testing.T) {
	tests := []struct {
		name  string
		state uint
		want  multiterm.Modifier
	}{
		{"none", 0, 0},
		{"control", uint(gdk.CONTROL_MASK), multiterm.ModControl},
		{"shift", uint(gdk.SHIFT_MASK), multiterm.ModShift},
		{"alt", uint(gdk.MOD1_MASK), multiterm.ModAlt},
		{"control shift", uint(gdk.CONTROL_MASK | gdk.SHIFT_MASK), multiterm.ModControl | multiterm.ModShift},
		{"caps lock ignored", uint(gdk.LOCK_MASK), 0},
		{"num lock with control", uint(gdk.MOD2_MASK | gdk.CONTROL_MASK), multiterm.ModControl},
	}
	for _, tt := range tests {
		if got := modsFromState(tt.state); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestButtonTypeFrom(t *testing.T) {
	tests := []struct {
		typ  gdk.EventType
		want multiterm.ButtonEventType
		ok   bool
	}{
		{gdk.EVENT_BUTTON_PRESS, multiterm.ButtonPress, true},
		{gdk.EVENT_2BUTTON_PRESS, multiterm.ButtonDoublePress, true},
		{gdk.EVENT_3BUTTON_PRESS, multiterm.ButtonTriplePress, true},
		{gdk.EVENT_BUTTON_RELEASE, multiterm.ButtonRelease, true},
		{gdk.EVENT_KEY_PRESS, multiterm.ButtonOther, false},
		{gdk.EVENT_MOTION_NOTIFY, multiterm.ButtonOther, false},
	}
	for _, tt := range tests {
		got, ok := buttonTypeFrom(tt.typ)
		if got != tt.want || ok != tt.ok {
			t.Errorf("event type %d: expected (%v, %v), got (%v, %v)", tt.typ, tt.want, tt.ok, got, ok)
		}
	}
}
