package multiterm

import (
	"errors"
	"os"
	"strconv"
)

// ErrPTYUnsupported is returned by Session.Start on platforms without a
// pseudo-terminal backend.
var ErrPTYUnsupported = errors.New("pseudo-terminal not supported on this platform")

// ExitStatus describes how the child process ended.
type ExitStatus struct {
	Code     int       // exit code, -1 when killed by a signal
	Signaled bool      // true when a signal terminated the process
	Signal   os.Signal // the terminating signal, if Signaled
}

func (s ExitStatus) String() string {
	if s.Signaled && s.Signal != nil {
		return "signal " + s.Signal.String()
	}
	return strconv.Itoa(s.Code)
}
