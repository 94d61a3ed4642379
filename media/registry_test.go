// Package media provides the low-level primitives used to drive an
// external command-line media encoder.
package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RegistryTestSuite defines the test suite for the extension registry.
type RegistryTestSuite struct {
	suite.Suite
}

// TestExtensionForCodec verifies the codec-to-extension lookup for known
// codec names across media kinds.
func (s *RegistryTestSuite) TestExtensionForCodec() {
	testCases := []struct {
		name     string
		codec    string
		expected string
	}{
		{name: "h264 video", codec: "libx264", expected: "mp4"},
		{name: "mpeg4 shares the mp4 entry", codec: "libmpeg4", expected: "mp4"},
		{name: "theora video", codec: "libtheora", expected: "ogv"},
		{name: "vorbis audio", codec: "libvorbis", expected: "ogg"},
		{name: "16-bit pcm audio", codec: "pcm_s16le", expected: "wav"},
		{name: "32-bit pcm audio", codec: "pcm_s32le", expected: "wav"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			ext, err := ExtensionForCodec(tc.codec)
			require.NoError(s.T(), err)
			assert.Equal(s.T(), tc.expected, ext)
		})
	}
}

// TestExtensionForCodecUnknown verifies that an unregistered codec name
// yields the typed ErrUnknownCodec.
func (s *RegistryTestSuite) TestExtensionForCodecUnknown() {
	_, err := ExtensionForCodec("no-such-codec")
	require.Error(s.T(), err)
	assert.ErrorIs(s.T(), err, ErrUnknownCodec)
	assert.Contains(s.T(), err.Error(), "no-such-codec")
}

// TestLookupExtension verifies direct extension lookups, including
// case-insensitive matching and leading-dot tolerance.
func (s *RegistryTestSuite) TestLookupExtension() {
	info, ok := LookupExtension("mp4")
	require.True(s.T(), ok)
	assert.Equal(s.T(), KindVideo, info.Kind)
	assert.Contains(s.T(), info.Codecs, "libx264")

	info, ok = LookupExtension(".WAV")
	require.True(s.T(), ok)
	assert.Equal(s.T(), KindAudio, info.Kind)

	info, ok = LookupExtension("png")
	require.True(s.T(), ok)
	assert.Equal(s.T(), KindImage, info.Kind)
	assert.Empty(s.T(), info.Codecs, "image entries carry no codec list")

	_, ok = LookupExtension("xyz")
	assert.False(s.T(), ok)
}

// TestExtensionsIsACopy verifies that mutating the slice returned by
// Extensions does not affect later lookups.
func (s *RegistryTestSuite) TestExtensionsIsACopy() {
	entries := Extensions()
	require.NotEmpty(s.T(), entries)
	assert.Equal(s.T(), "mp4", entries[0].Ext, "declared order starts with mp4")

	entries[0] = ExtensionInfo{Ext: "bogus", Kind: KindVideo}
	ext, err := ExtensionForCodec("libx264")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "mp4", ext)
}

// TestRegistrySuite runs the extension registry test suite.
func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}
