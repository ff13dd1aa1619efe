package parser

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding names a text encoding accepted for input tables.
type Encoding string

const (
	EncodingAuto        Encoding = "auto" // Sniff BOM, then UTF-8 validity (default).
	EncodingUTF8        Encoding = "utf-8"
	EncodingUTF8BOM     Encoding = "utf-8-bom"
	EncodingUTF16LE     Encoding = "utf-16le"
	EncodingUTF16BE     Encoding = "utf-16be"
	EncodingWindows1252 Encoding = "windows-1252"
	EncodingLatin1      Encoding = "latin-1"
)

// BOM constants
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// sniffSize is how much of the input is inspected to guess its encoding.
const sniffSize = 64 * 1024

// ParseEncoding maps a user-supplied name onto an Encoding. Empty means auto.
func ParseEncoding(name string) (Encoding, error) {
	switch e := Encoding(strings.ToLower(strings.TrimSpace(name))); e {
	case "":
		return EncodingAuto, nil
	case EncodingAuto, EncodingUTF8, EncodingUTF8BOM, EncodingUTF16LE, EncodingUTF16BE, EncodingWindows1252, EncodingLatin1:
		return e, nil
	case "utf8":
		return EncodingUTF8, nil
	case "cp1252":
		return EncodingWindows1252, nil
	case "iso-8859-1", "latin1":
		return EncodingLatin1, nil
	default:
		return "", fmt.Errorf("unsupported encoding %q", name)
	}
}

// DetectEncoding guesses the encoding of an input prefix:
//  1. A BOM decides outright
//  2. Valid UTF-8 (ignoring a rune cut off at the end of the prefix) is UTF-8
//  3. Anything else falls back to Windows-1252, a superset of Latin-1's
//     printable range that also covers typographic quotes
func DetectEncoding(prefix []byte) Encoding {
	switch {
	case bytes.HasPrefix(prefix, bomUTF8):
		return EncodingUTF8BOM
	case bytes.HasPrefix(prefix, bomUTF16LE):
		return EncodingUTF16LE
	case bytes.HasPrefix(prefix, bomUTF16BE):
		return EncodingUTF16BE
	case utf8.Valid(trimPartialRune(prefix)):
		return EncodingUTF8
	default:
		return EncodingWindows1252
	}
}

// NewDecodingReader wraps r so that it yields UTF-8 without a BOM. With
// EncodingAuto the first 64 KiB are sniffed. The detected encoding is returned.
func NewDecodingReader(r io.Reader, enc Encoding) (io.Reader, Encoding, error) {
	br := bufio.NewReaderSize(r, sniffSize)
	if enc == EncodingAuto || enc == "" {
		prefix, err := br.Peek(sniffSize)
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
			return nil, "", fmt.Errorf("encoding detection failed: %w", err)
		}
		enc = DetectEncoding(prefix)
	}

	var dec *encoding.Decoder
	switch enc {
	case EncodingUTF8, EncodingUTF8BOM:
		// Strip a BOM if present, pass the rest through.
		dec = unicode.UTF8BOM.NewDecoder()
	case EncodingUTF16LE:
		dec = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	case EncodingUTF16BE:
		dec = unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
	case EncodingWindows1252:
		dec = charmap.Windows1252.NewDecoder()
	case EncodingLatin1:
		dec = charmap.ISO8859_1.NewDecoder()
	default:
		return nil, "", fmt.Errorf("unsupported encoding %q", enc)
	}
	return transform.NewReader(br, dec), enc, nil
}

// trimPartialRune drops an incomplete UTF-8 sequence at the end of b, which
// happens when the sniff window splits a multi-byte rune.
func trimPartialRune(b []byte) []byte {
	for i := 1; i < utf8.UTFMax && i <= len(b); i++ {
		start := len(b) - i
		if utf8.RuneStart(b[start]) {
			if !utf8.FullRune(b[start:]) {
				return b[:start]
			}
			return b
		}
	}
	return b
}
