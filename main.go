// Package main provides the entry point for the clipforge application.
// It exposes the media toolkit's primitives on the command line: running
// external encoder commands, normalizing timecodes, and inspecting the
// codec/extension registry.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gertd/go-pluralize"
	"github.com/schollz/progressbar/v3"
	"github.com/torre76/clipforge/media"
	"github.com/urfave/cli/v2"
)

// Public variables (alphabetical)

// BuildDate contains the date when the binary was built.
// This value is set during build using ldflags.
var BuildDate = "unknown"

// Commit contains the git commit hash that the binary was built from.
// This value is set during build using ldflags.
var Commit = "unknown"

// Version contains the current version of the application.
// This value can be overridden during build using ldflags:
// go build -ldflags="-X 'main.Version=v1.0.0'"
var Version = "Development Version"

// Private functions (alphabetical)

// formatSeconds renders a seconds value without trailing zeros, so whole
// values print as integers and fractional values keep their precision.
func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}

// newSpinner builds the indeterminate spinner shown on stderr while an
// encoder command runs.
func newSpinner(description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
}

// parseTimeArg converts a command-line time argument into a TimeSpec.
// Arguments containing a colon are treated as textual timecodes; anything
// else must be a plain number of seconds.
func parseTimeArg(arg string) (media.TimeSpec, error) {
	if strings.Contains(arg, ":") {
		return media.Timecode(arg), nil
	}

	seconds, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return nil, fmt.Errorf("not a number of seconds or a timecode: %q", arg)
	}
	return media.Seconds(seconds), nil
}

func versionPrinter(_ *cli.Context) {
	summaryStyle := color.New(color.FgCyan, color.Bold)
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)

	summaryStyle.Printf("🎬 ClipForge %s\n", Version)
	regularStyle.Printf("  🛠️ Build date: ")
	valueStyle.Printf("%s\n", BuildDate)
	regularStyle.Printf("  🔍 Commit: ")
	valueStyle.Printf("%s\n", Commit)
}

// Public functions (alphabetical)

// codecsCommand lists the extension registry: every known extension with
// its media kind and acceptable encoder codec names, followed by a summary
// of entry counts per kind.
func codecsCommand(_ *cli.Context) error {
	summaryStyle := color.New(color.FgCyan, color.Bold)
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)

	pluralizeClient := pluralize.NewClient()

	summaryStyle.Println("📼 KNOWN EXTENSIONS")
	regularStyle.Println("-------------------")

	counts := map[media.MediaKind]int{}
	for _, info := range media.Extensions() {
		counts[info.Kind]++

		regularStyle.Printf("%-5s ", info.Ext)
		valueStyle.Printf("%-6s", info.Kind)
		if len(info.Codecs) > 0 {
			regularStyle.Printf("  %s", strings.Join(info.Codecs, ", "))
		}
		fmt.Println()
	}

	fmt.Println()
	for _, kind := range []media.MediaKind{media.KindVideo, media.KindAudio, media.KindImage} {
		regularStyle.Printf("%d ", counts[kind])
		valueStyle.Println(pluralizeClient.Pluralize(kind.String()+" extension", counts[kind], false))
	}

	return nil
}

// detectCommand locates the encoder installation and reports its path and
// version.
func detectCommand(_ *cli.Context) error {
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)
	errorStyle := color.New(color.FgRed)

	info, err := media.DetectEncoder()
	if err != nil {
		return fmt.Errorf("error detecting encoder: %w", err)
	}
	if !info.Installed {
		errorStyle.Println("❌ No encoder found on this system")
		return fmt.Errorf("encoder not found")
	}

	regularStyle.Printf("🔧 Using encoder at ")
	valueStyle.Printf("%s\n", info.Path)
	regularStyle.Printf("🔖 Encoder version: ")
	valueStyle.Printf("%s\n", info.Version)
	return nil
}

// runCommand executes the encoder command given as arguments, showing a
// spinner while the child process runs.
func runCommand(c *cli.Context) error {
	successStyle := color.New(color.FgGreen)
	errorStyle := color.New(color.FgRed)

	tokens := c.Args().Slice()
	if len(tokens) == 0 {
		return fmt.Errorf("missing required argument: COMMAND")
	}

	quiet := c.Bool("quiet")
	reportErrors := !c.Bool("no-report")

	if quiet {
		return media.RunCommand(tokens, false, reportErrors)
	}

	spinner := newSpinner("⚙️ encoding")
	done := make(chan error, 1)
	go func() {
		done <- media.RunCommand(tokens, true, reportErrors)
	}()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case err := <-done:
			_ = spinner.Finish()
			if err != nil {
				errorStyle.Printf("❌ Command failed\n")
				return err
			}
			successStyle.Printf("✅ Command finished\n")
			return nil
		case <-ticker.C:
			_ = spinner.Add(1)
		}
	}
}

// timeCommand normalizes a time argument to seconds and prints the result.
func timeCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("missing required argument: TIME")
	}

	spec, err := parseTimeArg(c.Args().Get(0))
	if err != nil {
		return err
	}

	seconds, err := media.NormalizeTime(spec)
	if err != nil {
		return err
	}

	fmt.Println(formatSeconds(seconds))
	return nil
}

// main is the entry point of the application.
func main() {
	// Override the default version printer
	cli.VersionPrinter = versionPrinter

	app := &cli.App{
		Name:  "clipforge",
		Usage: "A toolkit for driving an external media encoder",
		Description: "ClipForge wraps an external command-line media encoder with " +
			"timecode normalization, synchronous command execution with structured " +
			"error reporting, and a registry of extensions and codecs.",
		Authors: []*cli.Author{
			{
				Name: "Gian Luca Dalla Torre",
			},
		},
		Version: Version,
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "Run an encoder command and report its outcome",
				ArgsUsage: "COMMAND [ARG...]",
				Action:    runCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "Suppress progress output",
					},
					&cli.BoolFlag{
						Name:  "no-report",
						Usage: "Suppress the diagnostic line printed when the command fails",
					},
				},
			},
			{
				Name:      "time",
				Usage:     "Normalize a timecode or seconds value to seconds",
				ArgsUsage: "TIME",
				Action:    timeCommand,
			},
			{
				Name:   "codecs",
				Usage:  "List known extensions, media kinds, and codecs",
				Action: codecsCommand,
			},
			{
				Name:   "detect",
				Usage:  "Locate the encoder binary and show its version",
				Action: detectCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		errorStyle := color.New(color.FgRed)
		errorStyle.Fprintf(os.Stderr, "⚠️ Error: %v\n", err)
		os.Exit(1)
	}
}
