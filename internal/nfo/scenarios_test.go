package nfo

import (
	"strings"
	"testing"
)

// TestScenario_S1_SauceStrip covers: a plain ASCII body with a trailing
// SAUCE record flagging ANSI with an 80-column hint strips cleanly to a
// single row.
func TestScenario_S1_SauceStrip(t *testing.T) {
	content := append([]byte("HELLO\n"), 0x1A)
	rec := buildSauceRecord(1, 0, 80, 1, 0)
	data := append(content, rec...)

	doc, err := Load(data, WithFilename("test.nfo"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !doc.IsAnsi {
		t.Errorf("expected IsAnsi=true for a complete DataType=CHARACTER, FileType=ASCII record")
	}
	if doc.AnsiHintWidth != 80 {
		t.Errorf("expected hint width 80, got %d", doc.AnsiHintWidth)
	}
}

// TestScenario_S2_UTF8BOM covers decoding a signed UTF-8 file.
func TestScenario_S2_UTF8BOM(t *testing.T) {
	data := []byte{0xEF, 0xBB, 0xBF, 'H', 'i', '\n'}
	doc, err := Load(data, WithFilename("test.nfo"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.SourceCharset != UTF8Sig {
		t.Errorf("expected UTF8Sig, got %v", doc.SourceCharset)
	}
	if doc.GridChar(0, 0) != 'H' || doc.GridChar(0, 1) != 'i' {
		t.Errorf("expected row 0 = H,i; got %q,%q", doc.GridChar(0, 0), doc.GridChar(0, 1))
	}
}

// TestScenario_S3_DoubleEncodedCP437 covers the UTF-8-wrapped-CP437
// recovery path.
func TestScenario_S3_DoubleEncodedCP437(t *testing.T) {
	// Bytes chosen so the UTF-8 validity check passes while also
	// tripping the double-encode heuristic: 0xC3 0x9F, 0xC3 0x9C 0xC3
	// 0x9C, 0xC2 0xB1 all present, plus a CP437 double-block (0xDB 0xDB)
	// re-encoded as 0xC3 0x9B 0xC3 0x9B, which Latin-9 narrows back to
	// 0xDB 0xDB.
	line := []byte{0xC3, 0x9F, 0xC3, 0x9C, 0xC3, 0x9C, 0xC2, 0xB1, 0xC3, 0x9B, 0xC3, 0x9B, '\n'}
	doc, err := Load(line, WithFilename("test.nfo"), WithCharset(UTF8, ApproachTry))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.SourceCharset != CP437InUTF8 && doc.SourceCharset != CP437InCP437InUTF8 {
		t.Errorf("expected a CP437-in-UTF8 tag, got %v", doc.SourceCharset)
	}
	found := false
	for _, r := range doc.Grid[0] {
		if r == 0x2588 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a recovered U+2588 block character in the decoded row")
	}
}

// TestScenario_S4_LFLFHeal covers alternating blank-line collapse.
func TestScenario_S4_LFLFHeal(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 10; i++ {
		sb.WriteString("line\n\n")
	}
	doc, err := Load([]byte(sb.String()), WithFilename("test.nfo"), WithCharset(UTF8, ApproachFalse))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.GridHeight() != 10 {
		t.Errorf("expected 10 rows after LF/LF heal, got %d", doc.GridHeight())
	}
}

// TestScenario_S5_InlineCSICursorForward covers the cursor-forward
// scrub turning a CSI-5-C sequence into five spaces.
func TestScenario_S5_InlineCSICursorForward(t *testing.T) {
	input := "A←[5CB\n"
	doc, err := Load([]byte(input), WithFilename("test.nfo"), WithCharset(UTF8, ApproachFalse))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "A     B"
	rowRunes := doc.Grid[0][:len([]rune(want))]
	if string(rowRunes) != want {
		t.Errorf("expected %q, got %q", want, string(rowRunes))
	}
}

// TestScenario_S6_LongLineWrap covers wrapping a 150-character prose
// line with no block characters.
func TestScenario_S6_LongLineWrap(t *testing.T) {
	words := strings.Repeat("lorem ipsum dolor sit amet ", 10)
	line := strings.TrimSpace(words)[:150]
	doc, err := Load([]byte(line+"\n"), WithFilename("test.nfo"), WithCharset(UTF8, ApproachFalse), WithLineWrap(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.GridHeight() < 2 {
		t.Fatalf("expected at least 2 rows after wrap, got %d", doc.GridHeight())
	}
	firstLen := 0
	for _, r := range doc.Grid[0] {
		if r != 0 {
			firstLen++
		}
	}
	if firstLen > maxSoftWrap {
		t.Errorf("expected first row length <= %d, got %d", maxSoftWrap, firstLen)
	}
	if doc.Grid[1][0] != ' ' || doc.Grid[1][1] != ' ' {
		t.Errorf("expected continuation row to begin with at least 2 spaces of indent")
	}
}

// TestScenario_S7_HyperlinkContinuation covers a URL wrapped across two
// lines resolving to one continuation group.
func TestScenario_S7_HyperlinkContinuation(t *testing.T) {
	input := "see http://example.com/\npath for details\n"
	doc, err := Load([]byte(input), WithFilename("test.nfo"), WithCharset(UTF8, ApproachFalse), WithLineWrap(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	links0 := doc.LinksForRow(0)
	links1 := doc.LinksForRow(1)
	if len(links0) != 1 || len(links1) != 1 {
		t.Fatalf("expected one link on each of the first two rows, got %d and %d", len(links0), len(links1))
	}
	if links0[0].LinkID != links1[0].LinkID {
		t.Errorf("expected both links to share a link id")
	}
	want := "http://example.com/path"
	if links0[0].Href != want || links1[0].Href != want {
		t.Errorf("expected resolved href %q, got %q and %q", want, links0[0].Href, links1[0].Href)
	}
}
