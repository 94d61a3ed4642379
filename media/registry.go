// Package media provides the low-level primitives used to drive an
// external command-line media encoder.
package media

import (
	"fmt"
	"strings"
)

// Private variables (alphabetical)

// extensionTable is the non-exhaustive registry of default file-extension
// information, built once and never mutated; lookups are pure reads. The
// declared order is significant: ExtensionForCodec returns the first entry
// whose codec list contains the requested name, so a codec shared by two
// extensions always resolves to the one declared first.
//
// Note that gif is hard to place: from a video clip's point of view it is a
// video, from an HTML point of view an image. It is left out until a caller
// actually needs it.
var extensionTable = []ExtensionInfo{
	{Ext: "mp4", Kind: KindVideo, Codecs: []string{"libx264", "libmpeg4"}},
	{Ext: "ogv", Kind: KindVideo, Codecs: []string{"libtheora"}},
	{Ext: "webm", Kind: KindVideo, Codecs: []string{"libvpx"}},
	{Ext: "avi", Kind: KindVideo},
	{Ext: "mov", Kind: KindVideo},

	{Ext: "ogg", Kind: KindAudio, Codecs: []string{"libvorbis"}},
	{Ext: "mp3", Kind: KindAudio, Codecs: []string{"libmp3lame"}},
	{Ext: "wav", Kind: KindAudio, Codecs: []string{"pcm_s16le", "pcm_s32le"}},
	{Ext: "m4a", Kind: KindAudio, Codecs: []string{"libfdk_aac"}},

	{Ext: "jpg", Kind: KindImage},
	{Ext: "jpeg", Kind: KindImage},
	{Ext: "png", Kind: KindImage},
	{Ext: "bmp", Kind: KindImage},
	{Ext: "tiff", Kind: KindImage},
}

// Public functions (alphabetical)

// ExtensionForCodec returns the file extension whose registry entry lists
// the given codec name. Entries are scanned in declared table order and the
// first match wins, which makes the result deterministic even for codec
// names shared by several extensions. When no entry lists the codec, the
// error wraps ErrUnknownCodec.
func ExtensionForCodec(codec string) (string, error) {
	for _, info := range extensionTable {
		for _, c := range info.Codecs {
			if c == codec {
				return info.Ext, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCodec, codec)
}

// Extensions returns a copy of the registry in declared order, for display
// and enumeration. Mutating the result does not affect the registry.
func Extensions() []ExtensionInfo {
	out := make([]ExtensionInfo, len(extensionTable))
	copy(out, extensionTable)
	return out
}

// LookupExtension returns the registry entry for a file extension. The
// extension is matched case-insensitively and may carry a leading dot.
func LookupExtension(ext string) (ExtensionInfo, bool) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, info := range extensionTable {
		if info.Ext == ext {
			return info, true
		}
	}
	return ExtensionInfo{}, false
}
