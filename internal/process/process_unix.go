//go:build !windows

// Package process provides helpers for managing external renderer processes.
package process

import (
	"os/exec"
	"syscall"
)

// SetGroup places the command in its own process group so the whole tree
// can be killed on timeout.
func SetGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// KillGroup kills a process and all its children by sending SIGKILL to the
// process group (negative PID).
func KillGroup(pid int) {
	// Best-effort cleanup; error ignored as the exec layer reaps the child.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
