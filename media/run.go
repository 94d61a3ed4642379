// Package media provides the low-level primitives used to drive an
// external command-line media encoder.
package media

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Private functions (alphabetical)

// sinkPrint writes a progress line to the console sink when enabled is
// true. The sink is expected to be unbuffered so lines appear immediately;
// os.Stdout satisfies that without any extra flushing.
func sinkPrint(enabled bool, sink io.Writer, s string) {
	if enabled {
		fmt.Fprint(sink, s)
	}
}

// Public functions (alphabetical)

// RunCommand executes the external command described by tokens and blocks
// until it terminates. tokens[0] names the program, resolved through the
// host's standard executable search; the remaining tokens are passed as the
// argument vector with no shell interpretation.
//
// The child's standard input and standard output are bound to the null
// device: commands run through this wrapper must never wait on interactive
// input, and their useful output is the progress and diagnostics they write
// to the error stream. That error stream is captured in memory.
//
// A zero exit status is success. Any nonzero exit status yields a
// *CommandError carrying the captured error-stream text, so a human can
// diagnose the failure without re-running with extra verbosity. When
// verbose is true a progress line is written to standard output before the
// command launches and after it succeeds; when reportErrors is true a
// diagnostic line is written when it fails.
//
// A single invocation produces a single pass/fail outcome. There are no
// retries and no timeout: once launched, the call returns only when the
// child exits.
func RunCommand(tokens []string, verbose, reportErrors bool) error {
	return RunCommandWithSink(tokens, verbose, reportErrors, os.Stdout)
}

// RunCommandWithSink behaves like RunCommand but writes its progress and
// diagnostic lines to the provided console sink instead of standard output.
// The sink must be safe for whatever concurrency the caller applies; the
// invocation itself shares no state between calls.
func RunCommandWithSink(tokens []string, verbose, reportErrors bool, sink io.Writer) error {
	if len(tokens) == 0 {
		return FormatError("no command tokens given")
	}

	sinkPrint(verbose, sink, "\n"+consoleTag+" Running:\n>>> "+strings.Join(tokens, " ")+"\n")

	cmd := exec.Command(tokens[0], tokens[1:]...)

	// A nil Stdin/Stdout connects the child to the null device, which is
	// exactly the binding this wrapper wants.
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	hideCommandWindow(cmd)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			sinkPrint(reportErrors, sink, "\n"+consoleTag+" This command returned an error !\n")
			return &CommandError{
				Tokens:   tokens,
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderr.String(),
			}
		}
		// The command never launched: missing binary, permission problem.
		return FormatError("failed to launch %q: %w", tokens[0], err)
	}

	sinkPrint(verbose, sink, "\n... command successful.\n")
	return nil
}
