package nfo

import "strings"

// wrapLongLines implements C10: heuristic word-wrap that refuses to
// damage ASCII/ANSI art. Lines at or below MAX_SOFT are left alone;
// lines containing block-drawing glyphs are always left alone; lines at
// or below MAX_HARD are also left alone if they contain a long run of
// one repeated non-leading-space character (interpreted as art, e.g. a
// rule drawn with dashes). Everything else is broken at the last space
// at-or-before MAX_SOFT (or hard-cut there if no space exists), with
// continuation lines indented two spaces past the original line's
// leading-space count.
func wrapLongLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, wrapOne(line)...)
	}
	return out
}

func wrapOne(line string) []string {
	runes := []rune(line)
	if len(runes) <= maxSoftWrap {
		return []string{line}
	}
	if containsBlockDrawing(runes) {
		return []string{line}
	}
	if len(runes) <= maxHardWrap && hasLongEqualRun(runes) {
		return []string{line}
	}

	leading := countLeadingSpaces(runes)
	indent := strings.Repeat(" ", leading+2)

	var result []string
	rest := runes
	first := true
	for {
		limit := maxSoftWrap
		if !first {
			limit = maxSoftWrap - len(indent)
			if limit < 1 {
				limit = 1
			}
		}
		if len(rest) <= limit {
			result = append(result, prefixFor(first, indent)+string(rest))
			break
		}
		cut := lastSpaceAtOrBefore(rest, limit)
		if cut <= 0 || cut < leading {
			cut = limit
		}
		chunk := rest[:cut]
		result = append(result, prefixFor(first, indent)+string(chunk))
		rest = trimLeadingSpace(rest[cut:])
		first = false
	}
	return result
}

func prefixFor(first bool, indent string) string {
	if first {
		return ""
	}
	return indent
}

func containsBlockDrawing(runes []rune) bool {
	for _, r := range runes {
		if blockDrawingRunes[r] {
			return true
		}
	}
	return false
}

func hasLongEqualRun(runes []rune) bool {
	leading := countLeadingSpaces(runes)
	run := 1
	for i := leading + 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			run++
			if run > equalRunMax {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

func countLeadingSpaces(runes []rune) int {
	n := 0
	for n < len(runes) && runes[n] == ' ' {
		n++
	}
	return n
}

func lastSpaceAtOrBefore(runes []rune, limit int) int {
	if limit > len(runes) {
		limit = len(runes)
	}
	for i := limit; i > 0; i-- {
		if runes[i-1] == ' ' {
			return i - 1
		}
	}
	return -1
}

func trimLeadingSpace(runes []rune) []rune {
	i := 0
	for i < len(runes) && runes[i] == ' ' {
		i++
	}
	return runes[i:]
}
