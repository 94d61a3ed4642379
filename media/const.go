// Package media provides the low-level primitives used to drive an
// external command-line media encoder. It offers tolerant timecode
// normalization, a synchronous external-command invoker with structured
// error reporting, and a static registry mapping file extensions to media
// kinds and acceptable encoder codec names.
package media

import (
	"fmt"
	"time"
)

// Private constants (alphabetical)
const (
	// consoleTag is the bracketed product tag prefixed to every
	// human-readable progress line written to the console sink.
	consoleTag = "[ClipForge]"

	// defaultTimeout is the standard timeout for encoder discovery
	// operations such as version probing. Commands launched through
	// RunCommand are never subject to it: an invocation blocks until the
	// child exits.
	defaultTimeout = 30 * time.Second

	// errorPrefix is used as a prefix for all error messages from this
	// package. This ensures consistent error formatting across the package.
	errorPrefix = "media: "
)

// Public functions (alphabetical)

// FormatError creates a standardized error message with the package prefix.
// It ensures all errors from this package have a consistent format and can
// be easily identified as originating from the media package.
func FormatError(format string, args ...interface{}) error {
	return fmt.Errorf(errorPrefix+format, args...)
}

// GetDefaultTimeout returns the standard timeout duration for encoder
// discovery operations. Applications can use this when creating contexts
// for version probing.
func GetDefaultTimeout() time.Duration {
	return defaultTimeout
}
