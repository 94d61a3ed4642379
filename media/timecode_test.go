// Package media provides the low-level primitives used to drive an
// external command-line media encoder.
package media

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// TimecodeTestSuite defines the test suite for time normalization.
// It covers every accepted representation and the malformed-input path.
type TimecodeTestSuite struct {
	suite.Suite
}

// TestNormalizeTime verifies that each TimeSpec representation converts to
// the expected number of seconds.
func (s *TimecodeTestSuite) TestNormalizeTime() {
	testCases := []struct {
		name     string
		input    TimeSpec
		expected float64
	}{
		{
			name:     "plain seconds pass through unchanged",
			input:    Seconds(15.4),
			expected: 15.4,
		},
		{
			name:     "minutes and seconds",
			input:    MinSec{Min: 1, Sec: 21.5},
			expected: 81.5,
		},
		{
			name:     "hours minutes and seconds",
			input:    HourMinSec{Hour: 1, Min: 1, Sec: 2},
			expected: 3662.0,
		},
		{
			name:     "timecode with dot fraction",
			input:    Timecode("01:01:33.5"),
			expected: 3693.5,
		},
		{
			name:     "timecode with wide fraction",
			input:    Timecode("01:01:33.045"),
			expected: 3693.045,
		},
		{
			name:     "timecode with comma fraction",
			input:    Timecode("01:01:33,5"),
			expected: 3693.5,
		},
		{
			name:     "timecode without fraction",
			input:    Timecode("01:01:33"),
			expected: 3693.0,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got, err := NormalizeTime(tc.input)
			require.NoError(s.T(), err)
			assert.InDelta(s.T(), tc.expected, got, 1e-9)
		})
	}
}

// TestParseTimecodeFractionWidth verifies that the fractional denominator
// depends on the digit count, so ".5" and ".050" are different values.
func (s *TimecodeTestSuite) TestParseTimecodeFractionWidth() {
	narrow, err := ParseTimecode("00:00:00.5")
	require.NoError(s.T(), err)
	wide, err := ParseTimecode("00:00:00.050")
	require.NoError(s.T(), err)

	assert.InDelta(s.T(), 0.5, narrow, 1e-9)
	assert.InDelta(s.T(), 0.05, wide, 1e-9)
	assert.NotEqual(s.T(), narrow, wide)
}

// TestParseTimecodeMalformed verifies that input not matching the grammar
// yields the typed ErrMalformedTimecode instead of a crash.
func (s *TimecodeTestSuite) TestParseTimecodeMalformed() {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "no digits or colons", input: "abc"},
		{name: "empty string", input: ""},
		{name: "hourless form is not accepted", input: "01:33"},
		{name: "separators only", input: "::,"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := ParseTimecode(tc.input)
			require.Error(s.T(), err)
			assert.ErrorIs(s.T(), err, ErrMalformedTimecode)
			assert.Contains(s.T(), err.Error(), fmt.Sprintf("%q", tc.input),
				"error should quote the offending input")
		})
	}
}

// TestParseTimecodeFirstMatchWins verifies that only the first grammar
// match in the text is used.
func (s *TimecodeTestSuite) TestParseTimecodeFirstMatchWins() {
	got, err := ParseTimecode("01:01:33.5 and then 02:02:02.2")
	require.NoError(s.T(), err)
	assert.InDelta(s.T(), 3693.5, got, 1e-9)
}

// TestTimecodeSuite runs the time normalization test suite.
func TestTimecodeSuite(t *testing.T) {
	suite.Run(t, new(TimecodeTestSuite))
}
