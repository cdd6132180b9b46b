package parser

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// BOM constants
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DetectAndDecode detects the encoding of the input data, strips any
// BOM, and returns UTF-8 bytes along with the detected encoding name.
// YAML sources exported from Windows tooling arrive as UTF-16 or with
// a UTF-8 BOM often enough that the parser normalizes them here before
// decoding. Anything that is not a Unicode encoding is rejected.
func DetectAndDecode(data []byte) ([]byte, string, error) {
	if len(data) == 0 {
		return data, "utf-8", nil
	}

	if bytes.HasPrefix(data, bomUTF8) {
		return data[3:], "utf-8-bom", nil
	}

	if bytes.HasPrefix(data, bomUTF16LE) {
		return decodeUTF16(data[2:], binary.LittleEndian), "utf-16le", nil
	}

	if bytes.HasPrefix(data, bomUTF16BE) {
		return decodeUTF16(data[2:], binary.BigEndian), "utf-16be", nil
	}

	if utf8.Valid(data) {
		return data, "utf-8", nil
	}

	return nil, "", fmt.Errorf("input is not valid UTF-8 and carries no recognized BOM")
}

// decodeUTF16 converts UTF-16 bytes in the given byte order to UTF-8.
// Unpaired surrogates become U+FFFD; a trailing odd byte is dropped.
func decodeUTF16(data []byte, order binary.ByteOrder) []byte {
	if len(data)%2 != 0 {
		data = data[:len(data)-1]
	}

	var buf bytes.Buffer
	buf.Grow(len(data))

	for i := 0; i < len(data); i += 2 {
		codeUnit := order.Uint16(data[i : i+2])

		if codeUnit >= 0xD800 && codeUnit <= 0xDBFF {
			// High surrogate — needs a low surrogate to follow.
			if i+3 < len(data) {
				lowUnit := order.Uint16(data[i+2 : i+4])
				if lowUnit >= 0xDC00 && lowUnit <= 0xDFFF {
					codePoint := 0x10000 + (rune(codeUnit-0xD800)<<10 | rune(lowUnit-0xDC00))
					buf.WriteRune(codePoint)
					i += 2
					continue
				}
			}
			buf.WriteRune(0xFFFD)
			continue
		}

		if codeUnit >= 0xDC00 && codeUnit <= 0xDFFF {
			// Lone low surrogate.
			buf.WriteRune(0xFFFD)
			continue
		}

		buf.WriteRune(rune(codeUnit))
	}

	return buf.Bytes()
}
