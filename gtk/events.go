package multitermgtk

import (
	"github.com/gotk3/gotk3/gdk"
	"github.com/phroun/multiterm"
)

// keyEventFrom converts a GDK key press
func keyEventFrom(ev *gdk.Event) multiterm.KeyEvent {
	key := gdk.EventKeyNewFromEvent(ev)
	return multiterm.KeyEvent{
		Key:  keyFromKeyval(key.KeyVal()),
		Mods: modsFromState(key.State()),
	}
}

func keyFromKeyval(keyval uint) multiterm.Key {
	if keyval == gdk.KEY_Return {
		return multiterm.KeyReturn
	}
	return multiterm.KeyOther
}

func modsFromState(state uint) multiterm.Modifier {
	var mods multiterm.Modifier
	if state&uint(gdk.SHIFT_MASK) != 0 {
		mods |= multiterm.ModShift
	}
	if state&uint(gdk.CONTROL_MASK) != 0 {
		mods |= multiterm.ModControl
	}
	if state&uint(gdk.MOD1_MASK) != 0 { // Alt
		mods |= multiterm.ModAlt
	}
	if state&uint(gdk.SUPER_MASK) != 0 {
		mods |= multiterm.ModSuper
	}
	return mods
}

// buttonEventFrom converts a GDK button event. ok is false for events
// that are not button events.
func buttonEventFrom(ev *gdk.Event) (bev multiterm.ButtonEvent, ok bool) {
	// The event type is the first field of every GdkEvent variant, so
	// reading it through the button view is valid for any event.
	btn := gdk.EventButtonNewFromEvent(ev)
	typ, ok := buttonTypeFrom(btn.Type())
	if !ok {
		return bev, false
	}
	return multiterm.ButtonEvent{
		Type:   typ,
		Button: uint(btn.Button()),
		Source: ev,
	}, true
}

func buttonTypeFrom(t gdk.EventType) (multiterm.ButtonEventType, bool) {
	switch t {
	case gdk.EVENT_BUTTON_PRESS:
		return multiterm.ButtonPress, true
	case gdk.EVENT_2BUTTON_PRESS:
		return multiterm.ButtonDoublePress, true
	case gdk.EVENT_3BUTTON_PRESS:
		return multiterm.ButtonTriplePress, true
	case gdk.EVENT_BUTTON_RELEASE:
		return multiterm.ButtonRelease, true
	}
	return multiterm.ButtonOther, false
}
