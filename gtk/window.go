// Package multitermgtk is the GTK3 front-end: a window with a terminal pane
// above an input pane, driven by a multiterm.App.
package multitermgtk

import (
	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
	"github.com/phroun/multiterm"
)

// Window is the top-level application window
type Window struct {
	win   *gtk.Window
	term  *Terminal
	input *Input
	menu  *ContextMenu
	app   *multiterm.App
}

// New builds the window and its panes and registers all handlers.
// gtk.Init must have been called. A nil log writes to the console.
func New(opts multiterm.Options, log *multiterm.Logger) (*Window, error) {
	if err := opts.Normalize(); err != nil {
		return nil, err
	}

	win, err := gtk.WindowNew(gtk.WINDOW_TOPLEVEL)
	if err != nil {
		return nil, err
	}
	win.SetTitle(opts.Title)
	win.SetDefaultSize(opts.Width, opts.Height)

	vbox, err := gtk.BoxNew(gtk.ORIENTATION_VERTICAL, 0)
	if err != nil {
		return nil, err
	}
	win.Add(vbox)

	term, err := NewTerminal(opts)
	if err != nil {
		return nil, err
	}
	vbox.PackStart(term.Widget(), true, true, 0)

	input, err := NewInput(opts)
	if err != nil {
		return nil, err
	}
	vbox.PackStart(input.Label(), false, false, 0)
	vbox.PackStart(input.Widget(), false, false, 0)

	w := &Window{
		win:   win,
		term:  term,
		input: input,
	}

	w.menu, err = NewContextMenu(func() {
		w.app.Copy()
	})
	if err != nil {
		return nil, err
	}

	w.app, err = multiterm.NewApp(opts, multiterm.Components{
		Loop:     mainLoop{},
		Terminal: term,
		Input:    input,
		Menu:     w.menu,
		Log:      log,
	})
	if err != nil {
		return nil, err
	}

	h := w.app.Handlers()
	win.Connect("destroy", func() {
		h.FireWindowDestroyed()
	})
	input.ConnectKeyPress(h.FireKeyPressed)
	term.ConnectButtonPress(h.FireButtonPressed)

	w.app.LoadStylesheet(loadStylesheet)

	return w, nil
}

// App returns the application state behind the window
func (w *Window) App() *multiterm.App {
	return w.app
}

// Input returns the input pane
func (w *Window) Input() *Input {
	return w.input
}

// Show shows the window and spawns the shell once the terminal is realized
func (w *Window) Show() {
	w.win.ShowAll()

	glib.IdleAdd(func() bool {
		w.app.Start()
		return false
	})
}

// loadStylesheet installs the CSS file at path for the default screen
func loadStylesheet(path string) error {
	provider, err := gtk.CssProviderNew()
	if err != nil {
		return err
	}
	if err := provider.LoadFromPath(path); err != nil {
		return err
	}
	screen, err := gdk.ScreenGetDefault()
	if err != nil {
		return err
	}
	gtk.AddProviderForScreen(screen, provider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)
	return nil
}
