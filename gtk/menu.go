package multitermgtk

import (
	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/gtk"
	"github.com/phroun/multiterm"
)

// ContextMenu is the terminal's right-click menu with a single Copy item
type ContextMenu struct {
	menu *gtk.Menu
}

// NewContextMenu creates the menu; onCopy runs when Copy is activated
func NewContextMenu(onCopy func()) (*ContextMenu, error) {
	menu, err := gtk.MenuNew()
	if err != nil {
		return nil, err
	}
	copyItem, err := gtk.MenuItemNewWithLabel("Copy")
	if err != nil {
		return nil, err
	}
	copyItem.Connect("activate", func() {
		onCopy()
	})
	menu.Append(copyItem)
	menu.ShowAll()

	return &ContextMenu{menu: menu}, nil
}

// Popup shows the menu at the pointer of the event that triggered it
func (m *ContextMenu) Popup(ev multiterm.ButtonEvent) {
	trigger, _ := ev.Source.(*gdk.Event)
	m.menu.PopupAtPointer(trigger)
}
