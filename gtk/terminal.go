package multitermgtk

import (
	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/gtk"
	"github.com/phroun/multiterm"
	terminal "github.com/phroun/purfecterm/gtk"
)

// Terminal is the terminal pane: a purfecterm widget inside a scrolled window
type Terminal struct {
	widget    *terminal.Widget
	scroll    *gtk.ScrolledWindow
	clipboard *gtk.Clipboard

	size     gridSize
	onResize func(cols, rows int)
}

// gridSize remembers the last grid size reported to the resize callback
type gridSize struct {
	cols, rows int
}

// update records cols x rows and reports whether it differs from the last
// recorded size
func (g *gridSize) update(cols, rows int) bool {
	if cols == g.cols && rows == g.rows {
		return false
	}
	g.cols, g.rows = cols, rows
	return true
}

// NewTerminal creates the terminal pane with the colors and font in opts
func NewTerminal(opts multiterm.Options) (*Terminal, error) {
	widget, err := terminal.NewWidget(opts.Cols, opts.Rows, opts.ScrollbackSize)
	if err != nil {
		return nil, err
	}
	widget.SetFont(opts.FontFamily, opts.FontSize)
	widget.SetColorScheme(opts.ColorScheme())

	scroll, err := gtk.ScrolledWindowNew(nil, nil)
	if err != nil {
		return nil, err
	}
	scroll.SetPolicy(gtk.POLICY_AUTOMATIC, gtk.POLICY_AUTOMATIC)
	scroll.Add(widget.Box())

	clipboard, err := gtk.ClipboardGet(gdk.SELECTION_CLIPBOARD)
	if err != nil {
		return nil, err
	}

	t := &Terminal{
		widget:    widget,
		scroll:    scroll,
		clipboard: clipboard,
	}
	t.size.update(widget.GetSize())

	// The widget resizes its buffer in its own configure handler, so the
	// new grid size is readable once that handler has run.
	widget.DrawingArea().ConnectAfter("configure-event", func(da *gtk.DrawingArea, ev *gdk.Event) bool {
		t.checkResize()
		return false
	})

	return t, nil
}

func (t *Terminal) checkResize() {
	if !t.size.update(t.widget.GetSize()) {
		return
	}
	if t.onResize != nil {
		t.onResize(t.size.cols, t.size.rows)
	}
}

// Widget returns the scrolled window holding the terminal
func (t *Terminal) Widget() *gtk.ScrolledWindow {
	return t.scroll
}

// Feed writes child output to the terminal display
func (t *Terminal) Feed(data []byte) {
	t.widget.Feed(data)
}

// Size returns the terminal size in cells
func (t *Terminal) Size() (cols, rows int) {
	return t.widget.GetSize()
}

// SetInputCallback sets where keystrokes typed into the terminal are sent
func (t *Terminal) SetInputCallback(fn func([]byte)) {
	t.widget.SetInputCallback(fn)
}

// SetResizeCallback sets a callback that's called on the GTK thread when
// the terminal's grid size changes
func (t *Terminal) SetResizeCallback(fn func(cols, rows int)) {
	t.onResize = fn
}

// CopySelection copies selected text to the clipboard as plain text
func (t *Terminal) CopySelection() bool {
	buf := t.widget.Buffer()
	if !buf.HasSelection() {
		return false
	}
	t.clipboard.SetText(buf.GetSelectedText())
	return true
}

// ConnectButtonPress routes mouse button events on the terminal to h.
//
// The handler is attached to the generic "event" signal, which GTK emits
// before "button-press-event"; when h consumes an event the widget's own
// button handling (and its built-in menu) does not run.
func (t *Terminal) ConnectButtonPress(h func(multiterm.ButtonEvent) bool) {
	t.widget.DrawingArea().Connect("event", func(da *gtk.DrawingArea, ev *gdk.Event) bool {
		bev, ok := buttonEventFrom(ev)
		if !ok {
			return false
		}
		return h(bev)
	})
}
