//go:build !windows

package media

import "os/exec"

// hideCommandWindow is a no-op outside Windows: no special process-creation
// flags are needed there.
func hideCommandWindow(_ *exec.Cmd) {}
