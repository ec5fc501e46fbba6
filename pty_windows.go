//go:build windows
// +build windows

package multiterm

import (
	"os"
	"os/exec"
)

func startOnPTY(cmd *exec.Cmd, cols, rows int) (*os.File, error) {
	return nil, ErrPTYUnsupported
}

func setWinsize(master *os.File, cols, rows int) error {
	return nil
}

func hangup(pid int) error {
	return nil
}

func killGroup(pid int) error {
	return nil
}

func exitStatusOf(state *os.ProcessState) ExitStatus {
	if state == nil {
		return ExitStatus{Code: -1}
	}
	return ExitStatus{Code: state.ExitCode()}
}
