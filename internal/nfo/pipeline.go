package nfo

import "strings"

// postProcess implements the C6-C12 pipeline described in SPEC_FULL.md
// §4.3: branch on IsAnsi, reduce the decoded text to a line sequence,
// validate it against the grid limits, then build the grid, UTF-8 side
// map, and hyperlink set onto doc.
func postProcess(doc *Document, text string) *NFOError {
	var lines []string
	var maxLen int

	if doc.IsAnsi {
		proc := newAnsiArtProcessor(WidthLimit, LinesLimit, doc.AnsiHintWidth, doc.AnsiHintHeight)
		ok, err := proc.Parse(text)
		if err != nil || !ok {
			return newErr(AnsiInternal, "ANSI art parse failed")
		}
		ok, err = proc.Process()
		if err != nil || !ok {
			return newErr(AnsiInternal, "ANSI art processing failed")
		}
		lines = proc.Lines()
		maxLen = proc.MaxLineLength()
		doc.Text = proc.PlainText() + "\n"
		cm := proc.ColorMap()
		doc.colorMap = cm
	} else {
		strict := doc.SourceCharset == CP437Strict
		if !strict {
			text = normalizeWhitespace(text)
			text = scrubInlineAnsi(text)
		}
		lines, maxLen = splitLines(text)
		if !strict {
			lines = healLFLF(lines)
			maxLen = recomputeMaxLen(lines)
		}
		if doc.LineWrapEnabled && !strict {
			lines = wrapLongLines(lines)
			maxLen = recomputeMaxLen(lines)
		}
		doc.Text = strings.Join(lines, "\n") + "\n"
	}

	if len(lines) == 0 || maxLen == 0 {
		return newErr(EmptyFile, "no usable lines after normalization")
	}
	if maxLen > WidthLimit {
		return newErr(MaximumLineLengthExceeded, "line length %d exceeds limit %d", maxLen, WidthLimit)
	}
	if len(lines) > LinesLimit {
		return newErr(MaximumNumberOfLinesExceeded, "line count %d exceeds limit %d", len(lines), LinesLimit)
	}

	grid, utf8Map := buildGrid(lines, maxLen)
	doc.Grid = grid
	doc.UTF8OfCodepoint = utf8Map
	doc.Links = extractLinks(lines)

	return nil
}

func recomputeMaxLen(lines []string) int {
	max := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > max {
			max = n
		}
	}
	return max
}
