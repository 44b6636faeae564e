package nfo

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// validUTF8 reports whether b is entirely well-formed UTF-8.
func validUTF8(b []byte) bool {
	return utf8.Valid(b)
}

// nextRune returns the rune starting at b[0] plus its width in bytes,
// mirroring the original's utf8_find_next_char iteration contract.
func nextRune(b []byte) (rune, int) {
	return utf8.DecodeRune(b)
}

// utf8ToLatin9 round-trips UTF-8 text through ISO-8859-15 (Latin-9): it
// decodes each rune, re-encodes it as a Latin-9 byte, and returns the
// resulting narrow byte slice. This is the step the double-encode
// recovery heuristics use to peel a UTF-8 layer off bytes that are
// "really" CP437 that got treated as Latin-1/Latin-9 on its way into
// UTF-8. Runes with no Latin-9 representation are replaced with '?'.
func utf8ToLatin9(s string) []byte {
	enc := charmap.ISO8859_15.NewEncoder()
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, err := enc.Bytes([]byte(string(r)))
		if err != nil || len(b) == 0 {
			out = append(out, '?')
			continue
		}
		out = append(out, b[0])
	}
	return out
}

// windows1252ToUTF8 decodes bytes using the Windows-1252 code page, the
// only charset this module decodes solely on explicit request (AUTO
// never selects it).
func windows1252ToUTF8(b []byte) (string, error) {
	dec := charmap.Windows1252.NewDecoder()
	out, err := dec.Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// encodeMinimalUTF8 returns the minimal UTF-8 encoding of r, used to
// populate Document.UTF8OfCodepoint.
func encodeMinimalUTF8(r rune) []byte {
	buf := make([]byte, utf8.UTFMax)
	n := utf8.EncodeRune(buf, r)
	return buf[:n]
}
