package disk

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// ExtractString reads the NUL-terminated text field starting at offset. A field
// without a terminator runs to the end of the buffer. Ill-formed UTF-8 is
// replaced with U+FFFD and surrounding whitespace is trimmed. Offsets outside
// the buffer yield an empty string.
func ExtractString(buffer []byte, offset int) string {
	if offset < 0 || offset >= len(buffer) {
		return ""
	}

	field := buffer[offset:]
	if end := bytes.IndexByte(field, 0); end >= 0 {
		field = field[:end]
	}

	text, err := unicode.UTF8.NewDecoder().Bytes(field)
	if err != nil {
		// The decoder replaces rather than rejects, but never fail on device data.
		return strings.TrimSpace(strings.ToValidUTF8(string(field), "\uFFFD"))
	}
	return strings.TrimSpace(string(text))
}

// stringAt applies the descriptor offset rules: zero means absent, and an
// offset at or past the end of the response is ignored.
func stringAt(raw []byte, offset uint32) *string {
	if offset == 0 || uint64(offset) >= uint64(len(raw)) {
		return nil
	}
	s := ExtractString(raw, int(offset))
	return &s
}
