package multitermgtk

import (
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
)

// mainLoop runs callbacks on the GTK main loop
type mainLoop struct{}

func (mainLoop) Post(fn func()) {
	glib.IdleAdd(func() bool {
		fn()
		return false // Don't repeat
	})
}

func (mainLoop) Quit() {
	gtk.MainQuit()
}
