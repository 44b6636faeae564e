package nfo

import "strconv"

// ansiCell is one cell of the art buffer: a rune plus its attributes.
type ansiCell struct {
	r    rune
	attr CellAttr
}

// ansiArtProcessor implements the C7 contract: Parse/Process turn raw
// decoded text containing CSI escape sequences into a plain-text reflow
// plus a parallel color map, following a CSI state machine generalized
// from a live-terminal emulator into a one-shot batch pass.
type ansiArtProcessor struct {
	raw           string
	widthLimit    int
	heightLimit   int
	hintWidth     int
	hintHeight    int
	buf           [][]ansiCell
	cur           CellAttr
	row, col      int
	savedRow      int
	savedCol      int
	maxCol        int
	maxRow        int
}

func newAnsiArtProcessor(widthLimit, heightLimit, hintWidth, hintHeight int) *ansiArtProcessor {
	w := hintWidth
	if w <= 0 {
		w = 80
	}
	if w > widthLimit {
		w = widthLimit
	}
	return &ansiArtProcessor{widthLimit: widthLimit, heightLimit: heightLimit, hintWidth: w, hintHeight: hintHeight}
}

// Parse stores raw for Process and accepts any input, including empty
// text; the real lexing happens in Process.
func (p *ansiArtProcessor) Parse(raw string) (bool, error) {
	p.raw = raw
	return true, nil
}

// Process runs the CSI state machine over the parsed text.
func (p *ansiArtProcessor) Process() (bool, error) {
	p.buf = [][]ansiCell{p.newRow()}
	runes := []rune(p.raw)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case (r == 0x1B || r == 0x2190) && i+1 < len(runes) && runes[i+1] == '[':
			consumed := p.handleCSI(runes[i+2:])
			i += 1 + consumed
		case r == '\r':
			p.col = 0
		case r == '\n':
			p.newline()
		case r == '\t':
			n := 8 - (p.col % 8)
			for k := 0; k < n; k++ {
				p.put(' ')
			}
		default:
			p.put(r)
		}
		if p.row >= p.heightLimit {
			break
		}
	}
	// A final newline leaves an empty row behind; it is not part of the art.
	if n := len(p.buf); n > 1 && len(p.buf[n-1]) == 0 {
		p.buf = p.buf[:n-1]
	}
	return true, nil
}

func (p *ansiArtProcessor) newRow() []ansiCell {
	return make([]ansiCell, 0, p.hintWidth)
}

func (p *ansiArtProcessor) newline() {
	p.row++
	p.col = 0
	if p.row > p.maxRow {
		p.maxRow = p.row
	}
	for len(p.buf) <= p.row {
		p.buf = append(p.buf, p.newRow())
	}
}

func (p *ansiArtProcessor) put(r rune) {
	for len(p.buf) <= p.row {
		p.buf = append(p.buf, p.newRow())
	}
	row := p.buf[p.row]
	for len(row) <= p.col {
		row = append(row, ansiCell{r: 0})
	}
	row[p.col] = ansiCell{r: r, attr: p.cur}
	p.buf[p.row] = row
	p.col++
	if p.col > p.maxCol {
		p.maxCol = p.col
	}
	if p.col >= p.widthLimit {
		p.newline()
	}
}

// handleCSI parses parameters up to the final byte starting at rest[0],
// executes the corresponding cursor/erase/SGR action, and returns how
// many runes (including the final byte) were consumed after "ESC [".
func (p *ansiArtProcessor) handleCSI(rest []rune) int {
	j := 0
	for j < len(rest) && (rest[j] == ';' || (rest[j] >= '0' && rest[j] <= '9')) {
		j++
	}
	if j >= len(rest) {
		return j
	}
	final := rest[j]
	params := parseCSIParams(string(rest[:j]))

	switch final {
	case 'A':
		p.row -= param(params, 0, 1)
		if p.row < 0 {
			p.row = 0
		}
	case 'B':
		p.row += param(params, 0, 1)
	case 'C':
		p.col += param(params, 0, 1)
	case 'D':
		p.col -= param(params, 0, 1)
		if p.col < 0 {
			p.col = 0
		}
	case 'H', 'f':
		p.row = param(params, 0, 1) - 1
		p.col = param(params, 1, 1) - 1
		if p.row < 0 {
			p.row = 0
		}
		if p.col < 0 {
			p.col = 0
		}
	case 'J', 'K':
		// erase operations: no-op against a growing buffer; a batch
		// renderer has no "existing screen" to clear meaningfully.
	case 's':
		p.savedRow, p.savedCol = p.row, p.col
	case 'u':
		p.row, p.col = p.savedRow, p.savedCol
	case 'm':
		p.applySGR(params)
	}
	return j + 1
}

func parseCSIParams(s string) []int {
	if s == "" {
		return nil
	}
	parts := splitSemicolon(s)
	out := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			n = 0
		}
		out[i] = n
	}
	return out
}

func splitSemicolon(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ';' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

func param(params []int, idx, def int) int {
	if idx >= len(params) || params[idx] == 0 {
		return def
	}
	return params[idx]
}

func (p *ansiArtProcessor) applySGR(params []int) {
	if len(params) == 0 {
		params = []int{0}
	}
	for i := 0; i < len(params); i++ {
		n := params[i]
		switch {
		case n == 0:
			p.cur = CellAttr{}
		case n == 1:
			p.cur.Bold = true
		case n == 2:
			p.cur.Faint = true
		case n == 4:
			p.cur.Underline = true
		case n == 5 || n == 6:
			p.cur.Blink = true
		case n == 7:
			p.cur.Inverse = true
		case n == 9:
			p.cur.Strikethrough = true
		case n >= 21 && n <= 29:
			// reset variants: best-effort, clear the matching flag
			switch n {
			case 21, 22:
				p.cur.Bold, p.cur.Faint = false, false
			case 24:
				p.cur.Underline = false
			case 25:
				p.cur.Blink = false
			case 27:
				p.cur.Inverse = false
			case 29:
				p.cur.Strikethrough = false
			}
		case n >= 30 && n <= 37:
			p.cur.Foreground = uint8(n - 30)
		case n == 38 && i+2 < len(params) && params[i+1] == 5:
			p.cur.Foreground = uint8(params[i+2])
			i += 2
		case n == 39:
			p.cur.Foreground = 0
		case n >= 40 && n <= 47:
			p.cur.Background = uint8(n - 40)
		case n == 48 && i+2 < len(params) && params[i+1] == 5:
			p.cur.Background = uint8(params[i+2])
			i += 2
		case n == 49:
			p.cur.Background = 0
		case n >= 90 && n <= 97:
			p.cur.Foreground = uint8(n-90) + 8
		case n >= 100 && n <= 107:
			p.cur.Background = uint8(n-100) + 8
		}
	}
}

// Lines returns the plain-text reflow of the processed buffer.
func (p *ansiArtProcessor) Lines() []string {
	lines := make([]string, len(p.buf))
	for i, row := range p.buf {
		runes := make([]rune, len(row))
		for j, c := range row {
			r := c.r
			if r == 0 {
				r = ' '
			}
			runes[j] = r
		}
		lines[i] = string(runes)
	}
	return lines
}

// MaxLineLength returns the widest row produced.
func (p *ansiArtProcessor) MaxLineLength() int {
	return p.maxCol
}

// PlainText joins Lines with '\n'.
func (p *ansiArtProcessor) PlainText() string {
	lines := p.Lines()
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}

// ColorMap builds the final rows x cols attribute grid, padding short
// rows with the zero attribute.
func (p *ansiArtProcessor) ColorMap() *ColorMap {
	cols := p.maxCol
	if cols == 0 {
		cols = 1
	}
	cells := make([][]CellAttr, len(p.buf))
	for i, row := range p.buf {
		r := make([]CellAttr, cols)
		for j := 0; j < len(row) && j < cols; j++ {
			r[j] = row[j].attr
		}
		cells[i] = r
	}
	return &ColorMap{Rows: len(p.buf), Cols: cols, Cells: cells}
}
