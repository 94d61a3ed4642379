//go:build windows

package media

import (
	"os/exec"
	"syscall"
)

// createNoWindow is the CREATE_NO_WINDOW process-creation flag. Without it
// every encoder invocation from a GUI host flashes a console window.
const createNoWindow = 0x08000000

// hideCommandWindow marks the child process so Windows creates it without a
// console window.
func hideCommandWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: createNoWindow,
	}
}
