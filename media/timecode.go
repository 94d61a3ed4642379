// Package media provides the low-level primitives used to drive an
// external command-line media encoder.
package media

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Private variables (alphabetical)

// timecodeRegex matches the textual timecode grammar HH:MM:SS followed by a
// fractional part introduced by either a dot or a comma. Only the first
// match in the input is used.
var timecodeRegex = regexp.MustCompile(`(\d+):(\d+):(\d+)[.,](\d+)`)

// Public types (alphabetical)

// HourMinSec is a time value expressed as hours, minutes and seconds.
type HourMinSec struct {
	// Hour is the whole number of hours.
	Hour int

	// Min is the whole number of minutes.
	Min int

	// Sec is the number of seconds, possibly fractional.
	Sec float64
}

// Seconds returns 3600*Hour + 60*Min + Sec. It never fails.
func (t HourMinSec) Seconds() (float64, error) {
	return 3600*float64(t.Hour) + 60*float64(t.Min) + t.Sec, nil
}

// MinSec is a time value expressed as minutes and seconds.
type MinSec struct {
	// Min is the whole number of minutes.
	Min int

	// Sec is the number of seconds, possibly fractional.
	Sec float64
}

// Seconds returns 60*Min + Sec. It never fails.
func (t MinSec) Seconds() (float64, error) {
	return 60*float64(t.Min) + t.Sec, nil
}

// Seconds is a time value already expressed in seconds.
type Seconds float64

// Seconds returns the value unchanged. It never fails, which lets callers
// pass plain second counts through the same normalization path as every
// other representation.
func (t Seconds) Seconds() (float64, error) {
	return float64(t), nil
}

// Timecode is a textual time value in the grammar HH:MM:SS[.,]fraction.
// A bare HH:MM:SS is treated as having zero fractional seconds.
type Timecode string

// Seconds parses the timecode text and returns its value in seconds.
// It returns ErrMalformedTimecode when the text does not match the grammar.
func (t Timecode) Seconds() (float64, error) {
	return ParseTimecode(string(t))
}

// TimeSpec is a time value in one of the accepted representations: Seconds,
// MinSec, HourMinSec, or Timecode. Downstream callers normalize arbitrary
// user and configuration time specifications into plain seconds at the
// boundary through this interface, so unit confusion cannot creep into the
// layers below.
type TimeSpec interface {
	// Seconds converts the value to seconds. Only Timecode can fail.
	Seconds() (float64, error)
}

// Public functions (alphabetical)

// NormalizeTime converts any accepted time representation into seconds.
//
// Here are the accepted forms:
//
//	NormalizeTime(Seconds(15.4))                      -> 15.4
//	NormalizeTime(MinSec{1, 21.5})                    -> 81.5
//	NormalizeTime(HourMinSec{1, 1, 2})                -> 3662
//	NormalizeTime(Timecode("01:01:33.5"))             -> 3693.5
//	NormalizeTime(Timecode("01:01:33.045"))           -> 3693.045
//	NormalizeTime(Timecode("01:01:33,5"))             -> 3693.5 (comma works too)
//
// The only failure mode is a Timecode whose text does not match the
// grammar, reported as ErrMalformedTimecode.
func NormalizeTime(t TimeSpec) (float64, error) {
	return t.Seconds()
}

// ParseTimecode converts a textual timecode in the grammar
// HH:MM:SS[.,]fraction to seconds. Text containing neither a dot nor a
// comma is treated as having a zero fractional part. The fractional digits
// are scaled by their count, so "01:01:33.5" and "01:01:33.045" parse to
// 3693.5 and 3693.045 respectively. Input that does not match the grammar
// yields ErrMalformedTimecode.
func ParseTimecode(s string) (float64, error) {
	text := s
	if !strings.ContainsAny(text, ".,") {
		text += ".0"
	}

	match := timecodeRegex.FindStringSubmatch(text)
	if match == nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimecode, s)
	}

	// The pattern only admits digit runs, so these conversions cannot fail.
	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	seconds, _ := strconv.Atoi(match[3])
	fraction, err := strconv.ParseFloat(match[4], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimecode, s)
	}

	fraction /= math.Pow(10, float64(len(match[4])))
	return 3600*float64(hours) + 60*float64(minutes) + float64(seconds) + fraction, nil
}
