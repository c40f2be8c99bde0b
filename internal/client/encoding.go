package client

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"

	"github.com/fivetwenty-io/memsource/internal/constants"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// detectEncoding guesses the text encoding of an upload. A byte order mark
// decides first; otherwise valid UTF-8 is UTF-8 and anything else is
// treated as ISO-8859-1, which accepts every byte sequence.
func detectEncoding(data []byte) encoding.Encoding {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return unicode.UTF8
	case bytes.HasPrefix(data, bomUTF16LE):
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case bytes.HasPrefix(data, bomUTF16BE):
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case utf8.Valid(data):
		return unicode.UTF8
	default:
		return charmap.ISO8859_1
	}
}

// encodingName returns the registered charset name of enc.
func encodingName(enc encoding.Encoding) string {
	for _, index := range []*ianaindex.Index{ianaindex.MIME, ianaindex.IANA} {
		name, err := index.Name(enc)
		if err == nil && name != "" {
			return name
		}
	}

	return constants.EncodingUTF8
}

// contentDisposition builds an RFC 5987 extended filename parameter:
// filename*=<charset>''<percent-encoded bytes>. The filename is encoded in
// the upload's charset, falling back to UTF-8 when it cannot be represented.
func contentDisposition(filename string, enc encoding.Encoding) string {
	charset := encodingName(enc)

	encoded, err := enc.NewEncoder().Bytes([]byte(filename))
	if err != nil {
		charset = constants.EncodingUTF8
		encoded = []byte(filename)
	}

	return fmt.Sprintf("filename*=%s''%s", charset, percentEncode(encoded))
}

func percentEncode(data []byte) string {
	var builder strings.Builder

	for _, b := range data {
		if isAttrChar(b) {
			builder.WriteByte(b)

			continue
		}

		fmt.Fprintf(&builder, "%%%02X", b)
	}

	return builder.String()
}

// isAttrChar reports whether b may appear unescaped in an RFC 5987 value.
func isAttrChar(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	}

	return strings.IndexByte("!#$&+-.^_`|~", b) >= 0
}
