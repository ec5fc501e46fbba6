// Package multiterm is the toolkit-independent core of a desktop terminal
// window: a terminal pane running a shell, a multi-line input box whose
// contents are sent to the shell on Enter, and a right-click Copy menu.
//
// The GUI toolkit is hidden behind small view interfaces (TerminalView,
// InputView, Menu) and a Loop. All App methods must be called on the
// loop's thread; work that blocks runs on goroutines and re-enters the
// loop through Loop.Post.
//
// The GTK front-end lives in the gtk subpackage.
package multiterm

import (
	"errors"
)

// Loop is the single-threaded event loop driving the application.
type Loop interface {
	// Post schedules fn to run on the loop's thread. Safe from any goroutine.
	Post(fn func())

	// Quit makes the loop return.
	Quit()
}

// TerminalView is the terminal emulator widget.
type TerminalView interface {
	// Feed displays child output. Safe from any goroutine.
	Feed(data []byte)

	// Size returns the grid size in cells.
	Size() (cols, rows int)

	// SetInputCallback sets where keystrokes typed into the terminal go.
	SetInputCallback(fn func(data []byte))

	// SetResizeCallback is called when the grid size changes.
	SetResizeCallback(fn func(cols, rows int))

	// CopySelection copies the selected text to the clipboard as plain
	// text and reports whether anything was selected.
	CopySelection() bool
}

// InputView is the multi-line command box.
type InputView interface {
	Text() string
	SetText(text string)
	GrabFocus()
}

// Menu is the terminal's context menu.
type Menu interface {
	// Popup shows the menu at the pointer position of ev.
	Popup(ev ButtonEvent)
}

// Child is the process running inside the terminal. *Session implements it.
type Child interface {
	Start(cols, rows int) error
	Write(data []byte) (int, error)
	Resize(cols, rows int) error
	SetOutputCallback(fn func(data []byte))
	Pid() int
	Done() <-chan struct{}
	ExitStatus() ExitStatus
	Close() error
}

// Components are the parts an App is assembled from. Child and Log may be
// left nil to get a Session running Options.Shell and a console Logger.
type Components struct {
	Loop     Loop
	Terminal TerminalView
	Input    InputView
	Menu     Menu
	Child    Child
	Log      *Logger
}

// App is the application state: one terminal, one input box, one child.
// It lives as long as the window.
type App struct {
	opts Options
	log  *Logger

	loop  Loop
	term  TerminalView
	input InputView
	menu  Menu
	child Child

	handlers Handlers

	started  bool
	spawned  bool
	quitting bool
}

// NewApp assembles an App. Loop, Terminal and Input are required.
func NewApp(opts Options, c Components) (*App, error) {
	if err := opts.Normalize(); err != nil {
		return nil, err
	}
	if c.Loop == nil {
		return nil, errors.New("multiterm: nil loop")
	}
	if c.Terminal == nil {
		return nil, errors.New("multiterm: nil terminal view")
	}
	if c.Input == nil {
		return nil, errors.New("multiterm: nil input view")
	}
	if c.Child == nil {
		c.Child = NewSession(opts.Shell, opts.ShellArgs...)
	}
	if c.Log == nil {
		c.Log = NewLogger()
	}

	a := &App{
		opts:  opts,
		log:   c.Log,
		loop:  c.Loop,
		term:  c.Terminal,
		input: c.Input,
		menu:  c.Menu,
		child: c.Child,
	}
	a.handlers = Handlers{
		WindowDestroyed: a.onWindowDestroyed,
		KeyPressed:      a.onInputKey,
		ButtonPressed:   a.onTerminalButton,
		ChildExited:     a.onChildExited,
		SpawnCompleted:  a.onSpawnCompleted,
	}
	return a, nil
}

// Options returns the normalized options.
func (a *App) Options() Options {
	return a.opts
}

// Handlers returns the event table bound to this App.
func (a *App) Handlers() Handlers {
	return a.handlers
}

// Spawned reports whether the child was started successfully.
func (a *App) Spawned() bool {
	return a.spawned
}

// Quitting reports whether the App has asked the loop to quit.
func (a *App) Quitting() bool {
	return a.quitting
}

// LoadStylesheet runs load on the configured stylesheet path and logs the
// outcome. A failure only costs the custom styling.
func (a *App) LoadStylesheet(load func(path string) error) {
	path := a.opts.Stylesheet
	if err := load(path); err != nil {
		a.log.Warn("Failed to load %s: %v. Make sure it's in the working directory.", path, err)
		return
	}
	a.log.Info("Loaded %s successfully.", path)
}

// Start connects the terminal to the child and spawns the child in the
// background. The outcome arrives on the loop as a SpawnCompleted event.
func (a *App) Start() {
	if a.started {
		return
	}
	a.started = true

	a.child.SetOutputCallback(a.term.Feed)
	a.term.SetInputCallback(func(data []byte) {
		if a.spawned {
			a.child.Write(data)
		}
	})
	a.term.SetResizeCallback(func(cols, rows int) {
		a.child.Resize(cols, rows)
	})

	cols, rows := a.term.Size()
	child := a.child
	go func() {
		err := child.Start(cols, rows)
		res := SpawnResult{Err: err}
		if err == nil {
			res.Pid = child.Pid()
		}
		a.loop.Post(func() {
			a.handlers.FireSpawnCompleted(res)
		})
	}()
}

func (a *App) onSpawnCompleted(res SpawnResult) {
	if a.quitting {
		// The window went away while spawning and already closed the child
		return
	}
	if res.Err != nil {
		a.log.Error("Failed to spawn child process: %v", res.Err)
		a.quit()
		return
	}
	a.log.Info("Child process spawned successfully (pid %d).", res.Pid)
	a.spawned = true

	done := a.child.Done()
	go func() {
		<-done
		status := a.child.ExitStatus()
		a.loop.Post(func() {
			a.handlers.FireChildExited(status)
		})
	}()

	a.input.GrabFocus()
}

func (a *App) onChildExited(status ExitStatus) {
	if a.quitting {
		return
	}
	a.spawned = false
	a.log.Info("Child process exited with status: %s", status)
	a.quit()
}

// onWindowDestroyed closes the child, also when its spawn is still in
// flight, and quits.
func (a *App) onWindowDestroyed() {
	if a.started {
		a.spawned = false
		if err := a.child.Close(); err != nil {
			a.log.Warn("Closing child process: %v", err)
		}
	}
	a.quit()
}

// onInputKey sends the input box on plain Enter. Ctrl+Enter and every
// other key fall through to the text view.
func (a *App) onInputKey(ev KeyEvent) bool {
	if ev.Key != KeyReturn || ev.Has(ModControl) {
		return false
	}
	if !a.spawned {
		return true
	}

	line := a.input.Text() + "\n"
	if _, err := a.child.Write([]byte(line)); err != nil {
		a.log.Error("Failed to send input: %v", err)
	}
	a.input.SetText("")
	a.input.GrabFocus()
	return true
}

func (a *App) onTerminalButton(ev ButtonEvent) bool {
	if ev.Type != ButtonPress || ev.Button != ButtonSecondary {
		return false
	}
	if a.menu != nil {
		a.menu.Popup(ev)
	}
	return true
}

// Copy copies the terminal selection to the clipboard. Bound to the
// context menu's Copy item.
func (a *App) Copy() {
	if a.term.CopySelection() {
		a.log.Info("Text copied to clipboard.")
		return
	}
	a.log.Info("Nothing selected to copy.")
}

func (a *App) quit() {
	if a.quitting {
		return
	}
	a.quitting = true
	a.loop.Quit()
}
