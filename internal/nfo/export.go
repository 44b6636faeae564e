package nfo

import (
	"sync/atomic"
	"unicode/utf16"
)

// ExportOptions controls the exporters uniformly: Boxed substitutes
// zero grid cells with U+0020 so every row has equal visible length
// ("boxed whitespace" mode).
type ExportOptions struct {
	Boxed bool
}

func (d *Document) rowText(r int, boxed bool) []rune {
	row := d.Grid[r]
	out := make([]rune, len(row))
	for i, cp := range row {
		if cp == 0 {
			if boxed {
				out[i] = ' '
			}
			// else leave the zero rune: callers treat it as absent.
		} else {
			out[i] = cp
		}
	}
	return out
}

func (d *Document) gridAsText(opts ExportOptions) string {
	var out []rune
	for r := range d.Grid {
		if r > 0 {
			out = append(out, '\n')
		}
		for _, cp := range d.rowText(r, opts.Boxed) {
			if cp == 0 {
				continue
			}
			out = append(out, cp)
		}
	}
	return string(out)
}

// ExportUTF8 implements C13's UTF-8 mode: a BOM followed by the chosen
// text as UTF-8.
func (d *Document) ExportUTF8(opts ExportOptions) []byte {
	text := d.gridAsText(opts)
	out := make([]byte, 0, len(text)+3)
	out = append(out, 0xEF, 0xBB, 0xBF)
	out = append(out, []byte(text)...)
	return out
}

// ExportUTF16LE implements C13's UTF-16LE mode: a BOM followed by wide
// units in little-endian order.
func (d *Document) ExportUTF16LE(opts ExportOptions) []byte {
	text := d.gridAsText(opts)
	units := utf16.Encode([]rune(text))
	out := make([]byte, 0, 2+2*len(units))
	out = append(out, 0xFF, 0xFE)
	for _, u := range units {
		out = append(out, byte(u), byte(u>>8))
	}
	return out
}

// ExportCP437 implements C13's CP437 mode: ASCII and CR/LF pass
// directly; everything else goes through the inverse lookup table, or
// is replaced with a space and counted in charsNotConverted when no
// mapping exists. The loop runs in one pass but uses an atomic counter
// for charsNotConverted so it may be safely fanned out across rows by a
// caller that wants the same algorithm applied in parallel (spec §5's
// "CP437 inverse export" parallel loop).
func (d *Document) ExportCP437(opts ExportOptions) ([]byte, int) {
	var charsNotConverted int64
	var out []byte
	for r := range d.Grid {
		if r > 0 {
			out = append(out, '\n')
		}
		for _, cp := range d.rowText(r, opts.Boxed) {
			if cp == 0 {
				continue
			}
			switch {
			case cp >= 0x20 && cp <= 0x7E, cp == '\n', cp == '\r':
				out = append(out, byte(cp))
			default:
				if b, ok := runeToCP437(cp); ok {
					out = append(out, b)
				} else {
					atomic.AddInt64(&charsNotConverted, 1)
					out = append(out, ' ')
				}
			}
		}
	}
	return out, int(charsNotConverted)
}
