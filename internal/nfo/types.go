package nfo

// SourceCharset tags how a document's bytes were actually decoded. AUTO
// is an input preference only and never appears as a final tag on a
// successfully loaded Document.
type SourceCharset int

const (
	Auto SourceCharset = iota
	UTF16
	UTF8Sig
	UTF8
	CP437
	CP437InUTF8
	CP437InUTF16
	CP437InCP437
	CP437InCP437InUTF8
	CP437Strict
	Windows1252
)

func (s SourceCharset) String() string {
	switch s {
	case Auto:
		return "(auto)"
	case UTF16:
		return "Unicode (UTF-16)"
	case UTF8Sig:
		return "UTF-8"
	case UTF8:
		return "UTF-8 (no signature)"
	case CP437:
		return "CP 437"
	case CP437InUTF8:
		return "CP 437 (double encoded)"
	case CP437InUTF16:
		return "CP 437 (double encoded, UTF-16)"
	case CP437InCP437:
		return "CP 437 (double encoded)"
	case CP437InCP437InUTF8:
		return "CP 437 (double encoded)"
	case CP437Strict:
		return "CP 437 (strict)"
	case Windows1252:
		return "Windows-1252"
	default:
		return "(huh?)"
	}
}

// Approach controls how aggressively a decoder attempts double-encode
// recovery.
type Approach int

const (
	ApproachFalse Approach = iota
	ApproachTry
	ApproachForce
)

// HyperLink is a single detected link span. Links sharing a LinkID form
// a continuation group spanning successive rows; Href on every record in
// the group is the group's fully resolved URL.
type HyperLink struct {
	LinkID   int
	Href     string
	Row      int
	ColStart int
	Len      int
}

// CellAttr is one grid cell's ANSI attributes, present only when the
// source document is ANSI art.
type CellAttr struct {
	Foreground  uint8
	Background  uint8
	Bold        bool
	Underline   bool
	Blink       bool
	Inverse     bool
	Faint       bool
	Strikethrough bool
}

// ColorMap is a rows x cols attribute grid parallel to Document.Grid.
type ColorMap struct {
	Rows  int
	Cols  int
	Cells [][]CellAttr
}

// At returns the attribute at (r,c), or the zero value when out of
// bounds.
func (m *ColorMap) At(r, c int) CellAttr {
	if m == nil || r < 0 || r >= m.Rows || c < 0 || c >= len(m.Cells[r]) {
		return CellAttr{}
	}
	return m.Cells[r][c]
}

// Document is the primary aggregate produced by Load/LoadFile. It is
// immutable after construction: reloading a Document replaces every
// field atomically by returning a brand new value, never by mutating an
// existing one in place, so partial failure can never leave a caller
// holding an inconsistent mix of old and new fields.
type Document struct {
	Text             string
	Grid             [][]rune
	UTF8OfCodepoint  map[rune][]byte
	Links            map[int][]HyperLink
	colorMap         *ColorMap
	SourceCharset    SourceCharset
	IsAnsi           bool
	AnsiHintWidth    int
	AnsiHintHeight   int
	LineWrapEnabled  bool
	filename         string
	lastError        *NFOError
}

// emptyDocument returns the empty-but-valid Document a failed load
// leaves behind, with lastError set.
func emptyDocument(err *NFOError) *Document {
	return &Document{
		Text:            "",
		Grid:            nil,
		UTF8OfCodepoint: map[rune][]byte{},
		Links:           map[int][]HyperLink{},
		lastError:       err,
	}
}
