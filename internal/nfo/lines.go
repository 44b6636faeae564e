package nfo

import (
	"strings"

	"github.com/stlalpha/nfoview/internal/nfo/internal/nlog"
)

// splitLines implements C9's first half: split on '\n', right-trim each
// line, and report the maximum line length.
func splitLines(s string) ([]string, int) {
	raw := strings.Split(s, "\n")
	lines := make([]string, 0, len(raw))
	maxLen := 0
	for _, l := range raw {
		l = strings.TrimRight(l, " \t")
		lines = append(lines, l)
		if n := len([]rune(l)); n > maxLen {
			maxLen = n
		}
	}
	// splitting "a\nb\n" yields a trailing "" entry; drop exactly one
	// trailing empty line produced by the terminal newline normalize
	// added, matching the original split-then-heal input shape.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, maxLen
}

// healLFLF implements C9's second half: detect a file where every other
// line is spuriously blank (a classic symptom of CRLF/LF confusion) and
// drop the blank lines on the noisy parity.
func healLFLF(lines []string) []string {
	if len(lines) < 4 {
		return lines
	}
	var evenEmpty, oddEmpty int
	for i, l := range lines {
		if l != "" {
			continue
		}
		if i%2 == 0 {
			evenEmpty++
		} else {
			oddEmpty++
		}
	}
	evenRatio := ratio(evenEmpty, len(lines))
	oddRatio := ratio(oddEmpty, len(lines))

	var noisyIsOdd bool
	switch {
	case evenRatio <= 0.10 && oddRatio >= 0.40 && oddRatio <= 0.60:
		noisyIsOdd = true
	case oddRatio <= 0.10 && evenRatio >= 0.40 && evenRatio <= 0.60:
		noisyIsOdd = false
	default:
		return lines
	}

	nlog.Debug("LF/LF heal triggered: evenRatio=%.2f oddRatio=%.2f noisyIsOdd=%v", evenRatio, oddRatio, noisyIsOdd)

	out := make([]string, 0, len(lines))
	for i, l := range lines {
		isNoisyParity := (i%2 == 1) == noisyIsOdd
		if isNoisyParity && l == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}

func ratio(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}
