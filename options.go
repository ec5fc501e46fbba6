package multiterm

import (
	"fmt"

	"github.com/phroun/purfecterm"
)

// Defaults for the window and both panes.
const (
	DefaultTitle          = "Multi-Terminal"
	DefaultWidth          = 800
	DefaultHeight         = 600
	DefaultStylesheet     = "style.css"
	DefaultShell          = "/bin/bash"
	DefaultBackground     = "#272727"
	DefaultForeground     = "#eeeeec"
	DefaultCursor         = "#ffffff"
	DefaultFontFamily     = "Monospace"
	DefaultFontSize       = 11
	DefaultCols           = 80
	DefaultRows           = 24
	DefaultScrollbackSize = 10000
	DefaultInputLabel     = "Input Command: Ctrl+Enter for new line"
	DefaultInputHeight    = 60
)

// Options configures the application window
type Options struct {
	Title      string // Window title (default: "Multi-Terminal")
	Width      int    // Default window width (default: 800)
	Height     int    // Default window height (default: 600)
	Stylesheet string // CSS file, relative to the working directory (default: "style.css")

	Shell     string   // Program run in the terminal (default: /bin/bash)
	ShellArgs []string // Arguments passed to Shell (default: none)

	Background string // Terminal background "#RRGGBB" (default: #272727)
	Foreground string // Terminal foreground (default: #eeeeec)
	Cursor     string // Cursor color (default: #ffffff)
	FontFamily string // Terminal font family (default: Monospace)
	FontSize   int    // Terminal font size in points (default: 11)

	Cols           int // Initial terminal columns (default: 80)
	Rows           int // Initial terminal rows (default: 24)
	ScrollbackSize int // Scrollback lines (default: 10000)

	InputLabel  string // Text above the input box
	InputHeight int    // Requested input box height in pixels (default: 60)
}

// DefaultOptions returns the options the application runs with.
func DefaultOptions() Options {
	var o Options
	o.applyDefaults()
	return o
}

func (o *Options) applyDefaults() {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Stylesheet == "" {
		o.Stylesheet = DefaultStylesheet
	}
	if o.Shell == "" {
		o.Shell = DefaultShell
	}
	if o.Background == "" {
		o.Background = DefaultBackground
	}
	if o.Foreground == "" {
		o.Foreground = DefaultForeground
	}
	if o.Cursor == "" {
		o.Cursor = DefaultCursor
	}
	if o.FontFamily == "" {
		o.FontFamily = DefaultFontFamily
	}
	if o.FontSize <= 0 {
		o.FontSize = DefaultFontSize
	}
	if o.Cols <= 0 {
		o.Cols = DefaultCols
	}
	if o.Rows <= 0 {
		o.Rows = DefaultRows
	}
	if o.ScrollbackSize <= 0 {
		o.ScrollbackSize = DefaultScrollbackSize
	}
	if o.InputLabel == "" {
		o.InputLabel = DefaultInputLabel
	}
	if o.InputHeight <= 0 {
		o.InputHeight = DefaultInputHeight
	}
}

// Normalize fills unset fields with defaults and checks the color strings.
func (o *Options) Normalize() error {
	o.applyDefaults()
	for _, c := range []struct{ name, value string }{
		{"background", o.Background},
		{"foreground", o.Foreground},
		{"cursor", o.Cursor},
	} {
		if _, ok := purfecterm.ParseHexColor(c.value); !ok {
			return fmt.Errorf("invalid %s color %q", c.name, c.value)
		}
	}
	return nil
}

// FontDescription returns the font in Pango notation, e.g. "Monospace 11".
func (o Options) FontDescription() string {
	return fmt.Sprintf("%s %d", o.FontFamily, o.FontSize)
}

// ColorScheme builds the terminal color scheme. Light screen mode (DECSCNM)
// swaps the configured foreground and background; the ANSI palette is the
// library default.
func (o Options) ColorScheme() purfecterm.ColorScheme {
	scheme := purfecterm.DefaultColorScheme()
	if bg, ok := purfecterm.ParseHexColor(o.Background); ok {
		scheme.DarkBackground = bg
		scheme.LightForeground = bg
	}
	if fg, ok := purfecterm.ParseHexColor(o.Foreground); ok {
		scheme.DarkForeground = fg
		scheme.LightBackground = fg
	}
	if cur, ok := purfecterm.ParseHexColor(o.Cursor); ok {
		scheme.Cursor = cur
	}
	return scheme
}
