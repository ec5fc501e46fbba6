// multiterm: a terminal window with a separate multi-line command box.
//
// Plain Enter in the command box sends its contents to the shell;
// Ctrl+Enter inserts a newline. Right-click the terminal to copy.
//
// Prerequisites:
//   Linux: sudo apt install libgtk-3-dev
//   macOS: brew install gtk+3
//
// Run from the directory holding style.css to pick up the stylesheet.
package main

import (
	"log"
	"runtime"

	"github.com/gotk3/gotk3/gtk"
	"github.com/phroun/multiterm"
	multitermgtk "github.com/phroun/multiterm/gtk"
)

func main() {
	// Lock main thread for GTK (required on macOS)
	runtime.LockOSThread()

	gtk.Init(nil)

	win, err := multitermgtk.New(multiterm.DefaultOptions(), multiterm.NewLogger())
	if err != nil {
		log.Fatal("Unable to create window: ", err)
	}
	win.Show()

	gtk.Main()
}
