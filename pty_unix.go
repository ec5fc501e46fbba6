//go:build !windows
// +build !windows

package multiterm

import (
	"errors"
	"os"
	"os/exec"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"
)

// startOnPTY starts cmd as a session leader whose controlling terminal is a
// new PTY of cols x rows, and returns the master side.
func startOnPTY(cmd *exec.Cmd, cols, rows int) (*os.File, error) {
	return pty.StartWithAttrs(cmd, winsize(cols, rows), &syscall.SysProcAttr{
		Setsid:  true,
		Setctty: true,
	})
}

// setWinsize resizes the PTY behind master. Sizes below one cell are ignored.
func setWinsize(master *os.File, cols, rows int) error {
	ws := winsize(cols, rows)
	if ws == nil {
		return nil
	}
	return pty.Setsize(master, ws)
}

func winsize(cols, rows int) *pty.Winsize {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	return &pty.Winsize{Cols: uint16(cols), Rows: uint16(rows)}
}

// hangup sends SIGHUP to the process group led by pid, the way a terminal
// does when its window goes away.
func hangup(pid int) error {
	return signalGroup(pid, unix.SIGHUP)
}

// killGroup sends SIGKILL to the process group led by pid.
func killGroup(pid int) error {
	return signalGroup(pid, unix.SIGKILL)
}

func signalGroup(pid int, sig unix.Signal) error {
	if pid <= 0 {
		return nil
	}
	err := unix.Kill(-pid, sig)
	if errors.Is(err, unix.ESRCH) {
		return nil
	}
	return err
}

func exitStatusOf(state *os.ProcessState) ExitStatus {
	if state == nil {
		return ExitStatus{Code: -1}
	}
	st := ExitStatus{Code: state.ExitCode()}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		st.Signaled = true
		st.Signal = ws.Signal()
	}
	return st
}
