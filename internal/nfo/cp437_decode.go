package nfo

import (
	"strings"

	"github.com/stlalpha/nfoview/internal/nfo/internal/nlog"
)

// cp437DecodeResult carries everything the CP437 attempt discovers
// about the bytes it decoded, needed by callers (ANSI detection,
// double-encode promotion, the UNRECOGNIZED_FILE_FORMAT check).
type cp437DecodeResult struct {
	text        string
	foundBinary bool
	upgraded    bool // pre-pass upgraded TRY to FORCE
}

// isAlnumByte reports whether b looks like part of an ordinary word,
// used to avoid upgrading a bare U/Y/_ to a block glyph when it is
// plausibly just a letter in running text.
func isAlnumByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}

// decodeCP437 implements the CP437 attempt (C4/C5): pre-pass for
// CRLF/LF-only detection and double-encode upgrade signals, then a
// per-byte decode using either the lenient or strict table.
func decodeCP437(data []byte, approach Approach, strict bool) cp437DecodeResult {
	// Pre-pass: strip trailing NULs, optionally strip a leading UTF-8
	// BOM under TRY, and look for the double-encode upgrade signal.
	end := len(data)
	for end > 0 && data[end-1] == 0x00 {
		end--
	}
	buf := data[:end]

	if !strict && approach == ApproachTry && len(buf) >= 3 &&
		buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF {
		buf = buf[3:]
	}

	hasLF, hasCRLF, crOnly := scanLineEndings(buf)

	upgraded := false
	if !strict && approach == ApproachTry && (len(buf) == 0 || buf[0] != 0x1B) {
		if containsPair(buf, 0x9A, 0x9A) || containsPair(buf, 0xFD, 0xFD) || containsPair(buf, 0xE1, 0xE1) {
			approach = ApproachForce
			upgraded = true
			nlog.Debug("CP437 double-encode signal detected, upgrading TRY to FORCE")
		}
	}

	var sb strings.Builder
	sb.Grow(len(buf))
	foundBinary := false

	table := &cp437LenientTable
	if strict {
		table = &cp437StrictTable
	}

	for i := 0; i < len(buf); i++ {
		p := buf[i]

		switch {
		case p >= 0x7F:
			r := table[p]
			if !strict && approach == ApproachForce && r >= 0x80 && r <= 0xFF {
				// Re-map once more: the first mapping landed back in
				// the high-bit byte range, meaning it is itself a
				// double-encoded byte.
				r = table[byte(r)]
			}
			sb.WriteRune(r)

		case p <= 0x1F:
			switch {
			case strict:
				if p == 0x00 {
					// Strict: NUL is a decode error. It is written as
					// the replacement rune and flagged via foundBinary;
					// the strict caller rejects the decode on that flag.
					sb.WriteRune(0xFFFD)
					foundBinary = true
					continue
				}
				if p == 0x0D && i+1 < len(buf) && buf[i+1] == 0x0A {
					sb.WriteByte('\r')
					i++
					continue
				}
				sb.WriteRune(table[p])
			case p == 0x00:
				sb.WriteByte(' ')
				foundBinary = true
			case p == 0x0D && i+1 < len(buf) && buf[i+1] == 0x0A:
				sb.WriteByte('\r')
			case p == 0x0D && i+2 < len(buf) && buf[i+1] == 0x0D && buf[i+2] == 0x0A:
				sb.WriteByte(' ')
			case p == 0x0D && (crOnly || (hasCRLF && hasLF)):
				sb.WriteByte('\n')
			case p == 0x0A:
				sb.WriteByte('\n')
			default:
				sb.WriteRune(table[p])
			}

		default:
			if !strict && approach == ApproachForce && (p == 'U' || p == 'Y' || p == '_') {
				prevAlnum := i > 0 && isAlnumByte(buf[i-1])
				nextAlnum := i+1 < len(buf) && isAlnumByte(buf[i+1])
				if !prevAlnum && !nextAlnum {
					switch p {
					case 'U':
						sb.WriteRune(0x2588) // full block
					case 'Y':
						sb.WriteRune(0x258C) // left half block
					case '_':
						sb.WriteRune(0x2590) // right half block
					}
					continue
				}
			}
			sb.WriteByte(p)
		}
	}

	return cp437DecodeResult{text: sb.String(), foundBinary: foundBinary, upgraded: upgraded}
}

func scanLineEndings(b []byte) (hasLF, hasCRLF, crOnly bool) {
	sawCR, sawLFAlone := false, false
	for i := 0; i < len(b); i++ {
		if b[i] == 0x0D {
			sawCR = true
			if i+1 < len(b) && b[i+1] == 0x0A {
				hasCRLF = true
				i++
			}
		} else if b[i] == 0x0A {
			hasLF = true
			sawLFAlone = true
		}
	}
	crOnly = sawCR && !sawLFAlone
	return
}

func containsPair(b []byte, x, y byte) bool {
	for i := 0; i+1 < len(b); i++ {
		if b[i] == x && b[i+1] == y {
			return true
		}
	}
	return false
}
