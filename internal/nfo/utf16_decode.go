package nfo

import (
	"strings"
	"unicode/utf16"

	"github.com/stlalpha/nfoview/internal/nfo/internal/nlog"
)

func hasASCIILetter(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			return true
		}
	}
	return false
}

// decodeUTF16Units turns a little/big-endian byte slice (after the BOM)
// into a string, or reports an embedded NUL.
func decodeUTF16Units(body []byte, bigEndian bool) (string, bool) {
	if len(body)%2 != 0 {
		body = body[:len(body)-1]
	}
	units := make([]uint16, len(body)/2)
	for i := range units {
		if bigEndian {
			units[i] = uint16(body[2*i])<<8 | uint16(body[2*i+1])
		} else {
			units[i] = uint16(body[2*i]) | uint16(body[2*i+1])<<8
		}
		if units[i] == 0 {
			return "", true
		}
	}
	return string(utf16.Decode(units)), false
}

// utf16DoubleEncodeMatch is the UTF-16 analogue of utf8DoubleEncodeMatch,
// operating on decoded scalar values rather than raw bytes.
func utf16DoubleEncodeMatch(s string) bool {
	cond1 := strings.ContainsRune(s, 0x00DF) || strings.ContainsRune(s, 0x00CD)
	cond2 := strings.Contains(s, "ÜÜ") || strings.Contains(s, "ÛÛ")
	cond3 := strings.ContainsRune(s, 0x00B1) || strings.ContainsRune(s, 0x00B2)
	return cond1 && cond2 && cond3
}

// narrowFromUTF16 re-encodes each scalar as a single byte (its low 8
// bits), the UTF-16 analogue of utf8ToLatin9's byte-bag recovery step.
func narrowFromUTF16(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		out = append(out, byte(r))
	}
	return out
}

// tryUTF16LE implements TryUTF16LE (C4 step 2): requires the FF FE BOM,
// rejects embedded NUL or a spurious-BOM signal, and recovers
// double-encoded CP437 when the heuristic matches.
func tryUTF16LE(data []byte, cfg loadConfig, approach Approach) (string, SourceCharset, bool, *NFOError) {
	return tryUTF16(data, cfg, approach, false)
}

// tryUTF16BE implements TryUTF16BE (C4 step 3): analogous to LE with
// the FE FF BOM and byte-swapped units.
func tryUTF16BE(data []byte, cfg loadConfig, approach Approach) (string, SourceCharset, bool, *NFOError) {
	return tryUTF16(data, cfg, approach, true)
}

func tryUTF16(data []byte, cfg loadConfig, approach Approach, bigEndian bool) (string, SourceCharset, bool, *NFOError) {
	if len(data) < 2 {
		return "", 0, false, newErr(EncodingProblem, "too short for UTF-16 BOM")
	}
	if bigEndian {
		if data[0] != 0xFE || data[1] != 0xFF {
			return "", 0, false, newErr(EncodingProblem, "missing UTF-16BE BOM")
		}
	} else {
		if data[0] != 0xFF || data[1] != 0xFE {
			return "", 0, false, newErr(EncodingProblem, "missing UTF-16LE BOM")
		}
	}

	text, embeddedNUL := decodeUTF16Units(data[2:], bigEndian)
	if embeddedNUL {
		return "", 0, false, newErr(UnrecognizedFileFormat, "embedded NUL in UTF-16 content")
	}

	// Spurious-BOM heuristic: if the decoded text has no ASCII letters
	// at all but the raw bytes, read as Latin text, do contain letters,
	// the BOM was probably not really a BOM.
	if approach == ApproachTry && !hasASCIILetter(text) && hasASCIILetter(string(data[2:])) {
		return "", 0, false, newErr(EncodingProblem, "spurious UTF-16 BOM")
	}

	if approach == ApproachForce || (approach == ApproachTry && utf16DoubleEncodeMatch(text)) {
		nlog.Debug("UTF-16 double-encode heuristic matched, recovering CP437")
		narrow := narrowFromUTF16(text)
		inner := decodeCP437(narrow, ApproachTry, false)
		ansi := detectAnsi(false, cfg.filename, inner.text)
		return inner.text, CP437InUTF16, ansi, nil
	}

	ansi := detectAnsi(false, cfg.filename, text)
	return text, UTF16, ansi, nil
}
