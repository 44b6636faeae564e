package nfo

import "strings"

// normalizeWhitespace implements C8: trim trailing whitespace overall,
// drop carriage returns, expand tabs to 8 spaces, replace NBSP with an
// ordinary space, and append a terminal newline. Skipped entirely for
// CP437_STRICT, which needs a bit-exact round trip.
func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = expandTabs(s, 8)
	s = strings.Map(func(r rune) rune {
		if r == 0x00A0 {
			return ' '
		}
		return r
	}, s)
	s = strings.TrimRight(s, " \t\n")
	return s + "\n"
}

func expandTabs(s string, width int) string {
	var out strings.Builder
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			n := width
			for k := 0; k < n; k++ {
				out.WriteByte(' ')
			}
			col += n
		case '\n':
			out.WriteRune(r)
			col = 0
		default:
			out.WriteRune(r)
			col++
		}
	}
	return out.String()
}
