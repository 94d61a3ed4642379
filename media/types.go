// Package media provides the low-level primitives used to drive an
// external command-line media encoder.
package media

import (
	"errors"
	"fmt"
	"strings"
)

// Public variables (alphabetical)

// ErrMalformedTimecode is returned when a textual time value does not match
// the HH:MM:SS[.,]fraction grammar accepted by ParseTimecode.
var ErrMalformedTimecode = errors.New(errorPrefix + "malformed timecode")

// ErrUnknownCodec is returned when no registry entry lists the requested
// codec name.
var ErrUnknownCodec = errors.New(errorPrefix + "unknown codec")

// Public types (alphabetical)

// CommandError describes an external encoder command that terminated with a
// nonzero exit status. It carries the command tokens, the exit code, and
// the text the child process wrote to its error stream, so a failure can be
// diagnosed without re-running the command with extra verbosity.
type CommandError struct {
	// Tokens is the command line that failed, program path first.
	Tokens []string

	// ExitCode is the exit status reported by the operating system.
	ExitCode int

	// Stderr is the child's error-stream output decoded as UTF-8.
	Stderr string
}

// Error returns a human-readable description of the failed command,
// including the captured error-stream text.
func (e *CommandError) Error() string {
	return fmt.Sprintf("%scommand %q exited with code %d: %s",
		errorPrefix, strings.Join(e.Tokens, " "), e.ExitCode, e.Stderr)
}

// EncoderInfo contains information about the encoder installation.
type EncoderInfo struct {
	// Installed is true if the encoder binary is found on the system.
	Installed bool

	// Path is the full path to the encoder executable.
	Path string

	// Version is the version reported by the encoder.
	Version string
}

// ExtensionInfo describes one entry of the extension registry: a file
// extension, the kind of media it holds, and the encoder codec names it
// accepts. Entries with no codec names are containers the toolkit writes
// with a default codec choice.
type ExtensionInfo struct {
	// Ext is the lower-case file extension without the leading dot.
	Ext string

	// Kind is the kind of media stored under this extension.
	Kind MediaKind

	// Codecs lists the encoder codec names acceptable for this extension.
	Codecs []string
}

// MediaKind identifies the broad category of media a file extension holds.
type MediaKind string

// Media kind constants.
const (
	// KindAudio marks extensions that carry audio payloads.
	KindAudio MediaKind = "audio"

	// KindImage marks extensions that carry still images.
	KindImage MediaKind = "image"

	// KindVideo marks extensions that carry video payloads.
	KindVideo MediaKind = "video"
)

// String returns the string representation of the media kind.
func (k MediaKind) String() string {
	return string(k)
}
