package nfo

import (
	"bytes"

	"github.com/stlalpha/nfoview/internal/nfo/internal/nlog"
)

// utf8DoubleEncodeMatch implements the exact UTF-8 double-encode
// heuristic: CP437 bytes that were mistakenly treated as Latin-1/
// Latin-9 on their way into UTF-8 leave behind a recognizable digraph
// signature.
func utf8DoubleEncodeMatch(b []byte) bool {
	cond1 := bytes.Contains(b, []byte{0xC3, 0x9F}) || bytes.Contains(b, []byte{0xC3, 0x8D})
	cond2 := bytes.Contains(b, []byte{0xC3, 0x9C, 0xC3, 0x9C}) || bytes.Contains(b, []byte{0xC3, 0x9B, 0xC3, 0x9B})
	cond3 := bytes.Contains(b, []byte{0xC2, 0xB1}) || bytes.Contains(b, []byte{0xC2, 0xB2})
	if cond1 && cond2 && cond3 {
		return true
	}
	alt := bytes.Contains(b, []byte{0xC2, 0x9A, 0xC2, 0x9A}) && bytes.Contains(b, []byte{0xC3, 0xA1, 0xC3, 0xA1})
	return alt
}

// tryUTF8Signature implements TryUTF8Signature (C4 step 1): requires a
// literal EF BB BF prefix, then recurses into the plain UTF-8 attempt
// on the remainder and promotes its UTF8 tag to UTF8_SIG on success.
func tryUTF8Signature(data []byte, cfg loadConfig) (string, SourceCharset, bool, *NFOError) {
	if len(data) < 3 || data[0] != 0xEF || data[1] != 0xBB || data[2] != 0xBF {
		return "", 0, false, newErr(EncodingProblem, "no UTF-8 signature")
	}
	text, tag, isAnsi, err := tryUTF8(data[3:], cfg, ApproachTry)
	if err != nil {
		return "", 0, false, err
	}
	if tag == UTF8 {
		tag = UTF8Sig
	}
	return text, tag, isAnsi, nil
}

// tryUTF8 implements TryUTF8 (C4 step 4 / C5): validates UTF-8, then
// decides whether the bytes are really double-encoded CP437.
func tryUTF8(data []byte, cfg loadConfig, approach Approach) (string, SourceCharset, bool, *NFOError) {
	if !validUTF8(data) {
		return "", 0, false, newErr(EncodingProblem, "invalid UTF-8")
	}

	match := utf8DoubleEncodeMatch(data)
	if approach == ApproachForce || (approach == ApproachTry && match) {
		nlog.Debug("UTF-8 double-encode heuristic matched, recovering CP437")
		narrow := utf8ToLatin9(string(data))
		inner := decodeCP437(narrow, ApproachTry, false)
		tag := CP437InUTF8
		if inner.upgraded {
			tag = CP437InCP437InUTF8
		}
		ansi := detectAnsi(false, cfg.filename, inner.text)
		if inner.foundBinary && !ansi && binaryShortFileRe.MatchString(inner.text) {
			nlog.Debug("binary-short-file heuristic matched after CP437-in-UTF8 recovery")
			return "", 0, false, newErr(UnrecognizedFileFormat, "binary content detected")
		}
		return inner.text, tag, ansi, nil
	}

	text := string(data)
	ansi := detectAnsi(false, cfg.filename, text)
	return text, UTF8, ansi, nil
}
