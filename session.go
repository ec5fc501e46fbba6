package multiterm

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"
)

var (
	// ErrNotRunning is returned when writing to a session whose child has
	// not been started or has already exited.
	ErrNotRunning = errors.New("child process not running")

	// ErrAlreadyStarted is returned by Start on a session that was started before.
	ErrAlreadyStarted = errors.New("session already started")

	// ErrSessionClosed is returned by Start on a session that was closed first.
	ErrSessionClosed = errors.New("session closed")
)

// How long Close waits for the child to react to SIGHUP before killing it.
const closeGrace = 200 * time.Millisecond

// Session is a child process attached to a pseudo-terminal.
// A session is started at most once.
type Session struct {
	mu sync.Mutex

	shell string
	args  []string
	env   []string

	tty *os.File // PTY master
	cmd *exec.Cmd

	// size requested by Resize before the PTY existed
	pendingCols, pendingRows int

	started  bool
	closed   bool
	running  bool
	launched chan struct{} // closed when Start returns
	done     chan struct{}
	status  ExitStatus

	output func([]byte)
}

// NewSession prepares a session that will run shell with args. Nothing is
// spawned until Start.
func NewSession(shell string, args ...string) *Session {
	return &Session{
		shell: shell,
		args:  args,
		env: []string{
			"TERM=xterm-256color",
			"COLORTERM=truecolor",
		},
		launched: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// SetOutputCallback sets the function receiving child output. It runs on
// the session's reader goroutine and data is only valid during the call.
func (s *Session) SetOutputCallback(fn func(data []byte)) {
	s.mu.Lock()
	s.output = fn
	s.mu.Unlock()
}

// Start opens a PTY of the given size and starts the child on it. The
// child inherits the working directory and environment of this process.
func (s *Session) Start(cols, rows int) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	s.started = true
	s.mu.Unlock()
	defer close(s.launched)

	cmd := exec.Command(s.shell, s.args...)
	cmd.Env = append(os.Environ(), s.env...)

	tty, err := startOnPTY(cmd, cols, rows)
	if err != nil {
		s.finish(ExitStatus{Code: -1})
		return fmt.Errorf("start %s: %w", s.shell, err)
	}

	s.mu.Lock()
	s.tty = tty
	s.cmd = cmd
	s.running = true
	pendingCols, pendingRows := s.pendingCols, s.pendingRows
	s.mu.Unlock()

	if pendingCols > 0 && (pendingCols != cols || pendingRows != rows) {
		setWinsize(tty, pendingCols, pendingRows)
	}

	go s.readLoop(tty)

	go func() {
		cmd.Wait()
		s.finish(exitStatusOf(cmd.ProcessState))
	}()

	return nil
}

func (s *Session) finish(status ExitStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.done:
		return
	default:
	}
	s.running = false
	s.status = status
	close(s.done)
}

func (s *Session) readLoop(tty *os.File) {
	buf := make([]byte, 4096)
	for {
		n, err := tty.Read(buf)
		if n > 0 {
			s.mu.Lock()
			output := s.output
			s.mu.Unlock()
			if output != nil {
				output(buf[:n])
			}
		}
		if err != nil {
			// EIO once the last slave fd is gone
			return
		}
	}
}

// Write sends raw bytes to the child's input.
func (s *Session) Write(data []byte) (int, error) {
	s.mu.Lock()
	tty := s.tty
	running := s.running
	s.mu.Unlock()
	if tty == nil || !running {
		return 0, ErrNotRunning
	}
	return tty.Write(data)
}

// Resize updates the PTY window size. A resize that arrives while Start is
// still creating the PTY is applied once it exists.
func (s *Session) Resize(cols, rows int) error {
	s.mu.Lock()
	tty := s.tty
	if tty == nil && s.started {
		s.pendingCols, s.pendingRows = cols, rows
	}
	s.mu.Unlock()
	if tty == nil {
		return nil
	}
	return setWinsize(tty, cols, rows)
}

// Pid returns the child's process id, or 0 before a successful Start.
func (s *Session) Pid() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cmd == nil || s.cmd.Process == nil {
		return 0
	}
	return s.cmd.Process.Pid
}

// Running reports whether the child has been started and has not exited.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Done is closed once the child has exited or failed to start.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// ExitStatus returns the child's exit status. Valid after Done is closed.
func (s *Session) ExitStatus() ExitStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Wait blocks until the child exits and returns its status.
func (s *Session) Wait() ExitStatus {
	<-s.done
	return s.ExitStatus()
}

// Close hangs up the child's process group, kills the group if the child
// is still alive after a short grace period, and closes the PTY. A Start in
// progress is waited for, and a later Start fails with ErrSessionClosed.
func (s *Session) Close() error {
	s.mu.Lock()
	s.closed = true
	started := s.started
	s.mu.Unlock()
	if !started {
		return nil
	}
	<-s.launched

	s.mu.Lock()
	tty := s.tty
	cmd := s.cmd
	running := s.running
	s.mu.Unlock()

	if running && cmd != nil && cmd.Process != nil {
		pid := cmd.Process.Pid
		hangup(pid)
		select {
		case <-s.done:
		case <-time.After(closeGrace):
			killGroup(pid)
			cmd.Process.Kill()
		}
	}
	if tty != nil {
		return tty.Close()
	}
	return nil
}
