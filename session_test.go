//go:build !windows
// +build !windows

package multiterm

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

// lockedBuffer collects output from the session's reader goroutine.
type lockedBuffer struct {
	mu  sync.Mutex
	buf strings.Builder
}

func (b *lockedBuffer) write(p []byte) {
	b.mu.Lock()
	b.buf.Write(p)
	b.mu.Unlock()
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitDone(t *testing.T, s *Session) ExitStatus {
	t.Helper()
	select {
	case <-s.Done():
		return s.ExitStatus()
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for child to exit")
	}
	return ExitStatus{}
}

func waitFor(t *testing.T, b *lockedBuffer, want string) {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(b.String(), want) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected output to contain %q, got %q", want, b.String())
}

func TestSessionExitCode(t *testing.T) {
	tests := []struct {
		script string
		code   int
	}{
		{"exit 0", 0},
		{"exit 3", 3},
		{"exit 42", 42},
	}
	for _, tt := range tests {
		s := NewSession("/bin/sh", "-c", tt.script)
		if err := s.Start(80, 24); err != nil {
			t.Fatalf("%s: Start: %v", tt.script, err)
		}
		st := waitDone(t, s)
		if st.Code != tt.code || st.Signaled {
			t.Errorf("%s: expected exit code %d, got %+v", tt.script, tt.code, st)
		}
		if s.Running() {
			t.Errorf("%s: session still running after exit", tt.script)
		}
		s.Close()
	}
}

func TestSessionWriteReachesChild(t *testing.T) {
	var out lockedBuffer
	s := NewSession("/bin/sh", "-c", "read line; echo got:$line")
	s.SetOutputCallback(out.write)
	if err := s.Start(80, 24); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Close()

	if _, err := s.Write([]byte("hello\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	waitFor(t, &out, "got:hello")
	waitDone(t, s)
}

func TestSessionGetsTerminalEnvironment(t *testing.T) {
	var out lockedBuffer
	s := NewSession("/bin/sh", "-c", "echo term=$TERM; stty size")
	s.SetOutputCallback(out.write)
	if err := s.Start(132, 43); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Close()

	waitFor(t, &out, "term=xterm-256color")
	waitFor(t, &out, "43 132")
	waitDone(t, s)
}

func TestSessionPid(t *testing.T) {
	s := NewSession("/bin/sh", "-c", "exit 0")
	if s.Pid() != 0 {
		t.Errorf("expected pid 0 before start, got %d", s.Pid())
	}
	if err := s.Start(80, 24); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.Pid() <= 0 {
		t.Errorf("expected positive pid, got %d", s.Pid())
	}
	waitDone(t, s)
	s.Close()
}

func TestSessionStartFailure(t *testing.T) {
	s := NewSession("/nonexistent/shell")
	if err := s.Start(80, 24); err == nil {
		t.Fatal("expected error starting a missing program")
	}
	select {
	case <-s.Done():
	default:
		t.Error("expected Done to be closed after a failed start")
	}
	if _, err := s.Write([]byte("ls\n")); !errors.Is(err, ErrNotRunning) {
		t.Errorf("expected ErrNotRunning, got %v", err)
	}
}

func TestSessionStartTwice(t *testing.T) {
	s := NewSession("/bin/sh", "-c", "exit 0")
	if err := s.Start(80, 24); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Close()
	if err := s.Start(80, 24); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("expected ErrAlreadyStarted, got %v", err)
	}
	waitDone(t, s)
}

func TestSessionWriteBeforeStart(t *testing.T) {
	s := NewSession("/bin/sh")
	if _, err := s.Write([]byte("x")); !errors.Is(err, ErrNotRunning) {
		t.Errorf("expected ErrNotRunning, got %v", err)
	}
	if err := s.Resize(80, 24); err != nil {
		t.Errorf("resize before start should be a no-op, got %v", err)
	}
}

func TestSessionCloseTerminatesChild(t *testing.T) {
	s := NewSession("/bin/sh", "-c", "sleep 30")
	if err := s.Start(80, 24); err != nil {
		t.Fatalf("Start: %v", err)
	}

	start := time.Now()
	s.Close()
	st := waitDone(t, s)

	if !st.Signaled {
		t.Errorf("expected child terminated by a signal, got %+v", st)
	}
	if time.Since(start) > 5*time.Second {
		t.Errorf("close took too long: %v", time.Since(start))
	}
}

// processGone reports whether pid has exited. A zombie counts as gone.
func processGone(pid int) bool {
	if errors.Is(unix.Kill(pid, 0), unix.ESRCH) {
		return true
	}
	stat, err := os.ReadFile("/proc/" + strconv.Itoa(pid) + "/stat")
	if err != nil {
		return false
	}
	// state follows the parenthesized command name
	fields := strings.Fields(string(stat[strings.LastIndexByte(string(stat), ')')+1:]))
	return len(fields) > 0 && fields[0] == "Z"
}

func TestSessionCloseKillsProcessGroup(t *testing.T) {
	// Both the shell and its background job ignore SIGHUP.
	s := NewSession("/bin/sh", "-c", `trap "" HUP; sleep 30 & echo "bg:$!"; wait`)
	var out lockedBuffer
	s.SetOutputCallback(out.write)
	if err := s.Start(80, 24); err != nil {
		t.Fatalf("Start: %v", err)
	}
	waitFor(t, &out, "\n")

	text := out.String()
	i := strings.Index(text, "bg:")
	if i < 0 {
		t.Fatalf("expected background pid in output, got %q", text)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(strings.SplitN(text[i+3:], "\n", 2)[0]))
	if err != nil {
		t.Fatalf("parse background pid from %q: %v", text, err)
	}

	s.Close()
	st := waitDone(t, s)
	if !st.Signaled {
		t.Errorf("expected shell killed by a signal, got %+v", st)
	}

	deadline := time.Now().Add(5 * time.Second)
	for !processGone(pid) {
		if time.Now().After(deadline) {
			unix.Kill(pid, unix.SIGKILL)
			t.Fatalf("background job %d survived Close", pid)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestSessionStartAfterClose(t *testing.T) {
	s := NewSession("/bin/sh", "-c", "sleep 30")
	if err := s.Close(); err != nil {
		t.Fatalf("Close before Start: %v", err)
	}
	if err := s.Start(80, 24); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
	if s.Pid() != 0 {
		t.Errorf("expected no child, got pid %d", s.Pid())
	}
}

func TestSessionCloseWaitsForStart(t *testing.T) {
	s := NewSession("/bin/sh", "-c", "sleep 30")
	started := make(chan error, 1)
	go func() {
		started <- s.Start(80, 24)
	}()

	// Close either runs first and blocks the start, or waits for it and
	// then terminates the child. No child may outlive it.
	s.Close()
	err := <-started
	if err != nil && !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("Start: %v", err)
	}
	if err == nil {
		st := waitDone(t, s)
		if !st.Signaled {
			t.Errorf("expected child terminated by a signal, got %+v", st)
		}
	}
}
