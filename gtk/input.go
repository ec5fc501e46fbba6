package multitermgtk

import (
	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/gtk"
	"github.com/phroun/multiterm"
)

// CSS classes for styling the input pane from style.css
const (
	InputLabelClass  = "input-panel-label"
	InputScrollClass = "input-scroll-window"
)

// Input is the input pane: a label above a multi-line text view
type Input struct {
	label  *gtk.Label
	view   *gtk.TextView
	scroll *gtk.ScrolledWindow
}

// NewInput creates the input pane
func NewInput(opts multiterm.Options) (*Input, error) {
	label, err := gtk.LabelNew(opts.InputLabel)
	if err != nil {
		return nil, err
	}
	label.SetHAlign(gtk.ALIGN_START)
	label.SetMarginStart(5)
	label.SetMarginEnd(5)
	label.SetMarginTop(5)
	label.SetMarginBottom(2)
	if err := addClass(label, InputLabelClass); err != nil {
		return nil, err
	}

	view, err := gtk.TextViewNew()
	if err != nil {
		return nil, err
	}
	view.SetWrapMode(gtk.WRAP_WORD_CHAR)
	view.SetSizeRequest(-1, opts.InputHeight)

	scroll, err := gtk.ScrolledWindowNew(nil, nil)
	if err != nil {
		return nil, err
	}
	scroll.SetPolicy(gtk.POLICY_AUTOMATIC, gtk.POLICY_AUTOMATIC)
	scroll.Add(view)
	if err := addClass(scroll, InputScrollClass); err != nil {
		return nil, err
	}

	return &Input{
		label:  label,
		view:   view,
		scroll: scroll,
	}, nil
}

type styled interface {
	GetStyleContext() (*gtk.StyleContext, error)
}

func addClass(w styled, class string) error {
	ctx, err := w.GetStyleContext()
	if err != nil {
		return err
	}
	ctx.AddClass(class)
	return nil
}

// Label returns the caption widget
func (i *Input) Label() *gtk.Label {
	return i.label
}

// Widget returns the scrolled window holding the text view
func (i *Input) Widget() *gtk.ScrolledWindow {
	return i.scroll
}

// Text returns the whole buffer
func (i *Input) Text() string {
	buf, err := i.view.GetBuffer()
	if err != nil {
		return ""
	}
	start, end := buf.GetBounds()
	text, err := buf.GetText(start, end, false)
	if err != nil {
		return ""
	}
	return text
}

// SetText replaces the buffer contents
func (i *Input) SetText(text string) {
	buf, err := i.view.GetBuffer()
	if err != nil {
		return
	}
	buf.SetText(text)
}

// GrabFocus moves keyboard focus to the text view
func (i *Input) GrabFocus() {
	i.view.GrabFocus()
}

// HasFocus reports whether the text view has keyboard focus
func (i *Input) HasFocus() bool {
	return i.view.HasFocus()
}

// ConnectKeyPress routes key presses on the text view to h. Returning false
// from h lets the text view insert the key as usual.
func (i *Input) ConnectKeyPress(h func(multiterm.KeyEvent) bool) {
	i.view.Connect("key-press-event", func(tv *gtk.TextView, ev *gdk.Event) bool {
		return h(keyEventFrom(ev))
	})
}
