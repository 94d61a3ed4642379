// Package media provides the low-level primitives used to drive an
// external command-line media encoder.
package media

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
)

// Private constants (alphabetical)
const (
	// encoderEnvVar names the environment variable that overrides encoder
	// discovery with an explicit binary path.
	encoderEnvVar = "FFMPEG_BINARY"

	// encoderName is the base name of the encoder executable this toolkit
	// drives.
	encoderName = "ffmpeg"
)

// Private variables (alphabetical)

// encoderVersionRegex extracts the numeric version (e.g. 4.4.1) from the
// encoder's -version output, tolerating git "n" prefixes.
var encoderVersionRegex = regexp.MustCompile(`(?i)version\s+n?(\d+\.\d+(?:\.\d+)?)`)

// Private functions (alphabetical)

// checkEncoderExistence confirms the encoder is installed by searching for
// its executable. The FFMPEG_BINARY environment variable wins when set;
// otherwise the user's PATH is consulted, then common per-OS install
// directories.
func checkEncoderExistence() (string, bool) {
	if override := os.Getenv(encoderEnvVar); override != "" {
		if _, err := os.Stat(override); err == nil {
			return override, true
		}
		return "", false
	}

	if path, err := exec.LookPath(encoderName); err == nil {
		return path, true
	}

	for _, path := range getCommonInstallPaths() {
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}

	return "", false
}

// getCommonInstallPaths returns common encoder installation paths for the
// current operating system, used as a fallback when the binary is not on
// the PATH.
func getCommonInstallPaths() []string {
	execName := encoderName
	if runtime.GOOS == "windows" {
		execName += ".exe"
	}

	switch runtime.GOOS {
	case "windows":
		paths := []string{
			filepath.Join("C:", "Program Files", "FFmpeg", "bin", execName),
			filepath.Join("C:", "Program Files (x86)", "FFmpeg", "bin", execName),
			filepath.Join("C:", "FFmpeg", "bin", execName),
		}
		if programFiles := os.Getenv("ProgramFiles"); programFiles != "" {
			paths = append(paths, filepath.Join(programFiles, "FFmpeg", "bin", execName))
		}
		return paths
	case "darwin":
		return []string{
			filepath.Join("/usr", "local", "bin", execName),
			filepath.Join("/opt", "local", "bin", execName),
			filepath.Join("/opt", "homebrew", "bin", execName),
		}
	default:
		return []string{
			filepath.Join("/usr", "bin", execName),
			filepath.Join("/usr", "local", "bin", execName),
			filepath.Join("/opt", "ffmpeg", "bin", execName),
		}
	}
}

// getEncoderVersion runs the encoder with -version and extracts the version
// string from its output.
func getEncoderVersion(encoderPath string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), GetDefaultTimeout())
	defer cancel()

	cmd := exec.CommandContext(ctx, encoderPath, "-version")
	output, err := cmd.Output()
	if err != nil {
		return "", FormatError("error getting encoder version: %w", err)
	}

	return parseEncoderVersion(string(output)), nil
}

// parseEncoderVersion extracts the numeric version from -version output,
// returning "unknown" when no version can be recognized.
func parseEncoderVersion(output string) string {
	matches := encoderVersionRegex.FindStringSubmatch(output)
	if len(matches) >= 2 {
		return matches[1]
	}

	// Fallback: take the token after " version " on the first line and
	// strip git decorations.
	lines := strings.SplitN(output, "\n", 2)
	if parts := strings.Split(lines[0], " version "); len(parts) > 1 {
		if fields := strings.Fields(parts[1]); len(fields) > 0 {
			version := strings.TrimPrefix(fields[0], "n")
			if idx := strings.Index(version, "-dev"); idx > 0 {
				version = version[:idx]
			}
			if version != "" {
				return version
			}
		}
	}

	return "unknown"
}

// Public functions (alphabetical)

// DetectEncoder locates the encoder installation on the system. It returns
// an EncoderInfo with the resolved path and version. When the encoder
// cannot be found, Installed is false and no error is returned; an error
// means a binary was found but could not be interrogated.
func DetectEncoder() (*EncoderInfo, error) {
	encoderPath, found := checkEncoderExistence()
	if !found {
		return &EncoderInfo{Installed: false, Version: "unknown"}, nil
	}

	version, err := getEncoderVersion(encoderPath)
	if err != nil {
		return &EncoderInfo{Installed: false, Version: "unknown"}, err
	}

	return &EncoderInfo{
		Installed: true,
		Path:      encoderPath,
		Version:   version,
	}, nil
}

// FindEncoder is an alias for DetectEncoder kept for callers of the
// earlier API. New code should call DetectEncoder.
func FindEncoder() (*EncoderInfo, error) {
	return DetectEncoder()
}
