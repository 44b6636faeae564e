package nfo

import (
	"sort"
	"strings"
)

// GridWidth returns the number of columns in the grid.
func (d *Document) GridWidth() int {
	if len(d.Grid) == 0 {
		return 0
	}
	return len(d.Grid[0])
}

// GridHeight returns the number of rows in the grid.
func (d *Document) GridHeight() int {
	return len(d.Grid)
}

// GridChar returns the code point at (r,c), or the zero code point if
// out of range.
func (d *Document) GridChar(r, c int) rune {
	if r < 0 || r >= len(d.Grid) || c < 0 || c >= len(d.Grid[r]) {
		return 0
	}
	return d.Grid[r][c]
}

// GridCharUTF8 returns the original UTF-8 byte sequence for the code
// point at (r,c).
func (d *Document) GridCharUTF8(r, c int) []byte {
	cp := d.GridChar(r, c)
	return d.UTF8OfCodepoint[cp]
}

// TextUTF8 returns the canonical normalized text.
func (d *Document) TextUTF8() string {
	return d.Text
}

// CharsetName returns the localized label for the document's detected
// charset.
func (d *Document) CharsetName() string {
	return d.SourceCharset.String()
}

// IsAnsiArt reports whether the document was loaded as ANSI art.
func (d *Document) IsAnsiArt() bool {
	return d.IsAnsi
}

// ColorMap returns the per-cell attribute grid, or nil when the
// document is not ANSI art.
func (d *Document) ColorMap() *ColorMap {
	return d.colorMap
}

// LastError returns the (code, description) pair left by the most
// recent load; nil on success.
func (d *Document) LastError() *NFOError {
	return d.lastError
}

// GetFileName returns the virtual or real filename the document was
// loaded with.
func (d *Document) GetFileName() string {
	return d.filename
}

// LinkAt returns the link covering column c on row r, if any.
func (d *Document) LinkAt(r, c int) (HyperLink, bool) {
	for _, l := range d.Links[r] {
		if c >= l.ColStart && c < l.ColStart+l.Len {
			return l, true
		}
	}
	return HyperLink{}, false
}

// LinkURLUTF8 is LinkAt plus extracting just the resolved Href.
func (d *Document) LinkURLUTF8(r, c int) (string, bool) {
	l, ok := d.LinkAt(r, c)
	if !ok {
		return "", false
	}
	return l.Href, true
}

// LinksForRow returns every link on row r, in column order.
func (d *Document) LinksForRow(r int) []HyperLink {
	links := append([]HyperLink(nil), d.Links[r]...)
	sort.Slice(links, func(i, j int) bool { return links[i].ColStart < links[j].ColStart })
	return links
}

// allLinksOrdered returns every link across the document in row-major,
// then column order, the order LinkByIndex indexes into.
func (d *Document) allLinksOrdered() []HyperLink {
	rows := make([]int, 0, len(d.Links))
	for r := range d.Links {
		rows = append(rows, r)
	}
	sort.Ints(rows)
	var out []HyperLink
	for _, r := range rows {
		out = append(out, d.LinksForRow(r)...)
	}
	return out
}

// LinkByIndex returns the i-th link in row-major order.
func (d *Document) LinkByIndex(i int) (HyperLink, bool) {
	all := d.allLinksOrdered()
	if i < 0 || i >= len(all) {
		return HyperLink{}, false
	}
	return all[i], true
}

// StrippedText reflows the text into paragraph-joined prose: each line
// is trimmed of surrounding whitespace, blank lines and lines made only
// of block-drawing/punctuation filler end a paragraph and are dropped,
// and the lines of a paragraph are joined with single spaces. Hyphens
// and box-drawing characters inside a prose line are kept as they are.
// This supplements the spec's named accessors with the original loader's
// "raw stripper" feature for feeding rendered documents to something
// that wants plain prose rather than a fixed grid (a search indexer, a
// summarizer).
func (d *Document) StrippedText() string {
	lines := strings.Split(d.Text, "\n")
	var paragraphs []string
	var cur []string
	for _, l := range lines {
		trimmed := strings.TrimSpace(l)
		if trimmed == "" || isDecorativeLine(trimmed) {
			if len(cur) > 0 {
				paragraphs = append(paragraphs, strings.Join(cur, " "))
				cur = nil
			}
			continue
		}
		cur = append(cur, trimmed)
	}
	if len(cur) > 0 {
		paragraphs = append(paragraphs, strings.Join(cur, " "))
	}
	return strings.Join(paragraphs, "\n\n")
}

// isDecorativeLine reports whether a trimmed line is made up entirely
// of box-drawing/punctuation filler rather than prose.
func isDecorativeLine(s string) bool {
	for _, r := range s {
		if blockDrawingRunes[r] {
			continue
		}
		switch r {
		case '-', '=', '_', '*', '#', '~', '.', '+', '|', '/', '\\':
			continue
		}
		return false
	}
	return true
}
