package nfo

import (
	"strings"
	"testing"
)

func TestInvariant_GridColsMatchMaxLine(t *testing.T) {
	doc, err := Load([]byte("ab\nc\n"), WithFilename("t.nfo"), WithCharset(UTF8, ApproachFalse), WithLineWrap(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.GridWidth() != 2 {
		t.Fatalf("expected cols=2 (max over rows), got %d", doc.GridWidth())
	}
	if doc.GridChar(1, 1) != 0 {
		t.Errorf("expected zero cell beyond line 2's original length")
	}
}

func TestInvariant_Utf8MapComplete(t *testing.T) {
	doc, err := Load([]byte("héllo\n"), WithFilename("t.nfo"), WithCharset(UTF8, ApproachFalse), WithLineWrap(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for r := 0; r < doc.GridHeight(); r++ {
		for c := 0; c < doc.GridWidth(); c++ {
			cp := doc.GridChar(r, c)
			if cp == 0 {
				continue
			}
			b, ok := doc.UTF8OfCodepoint[cp]
			if !ok {
				t.Fatalf("missing UTF8OfCodepoint entry for %q", cp)
			}
			if string(b) != string(cp) {
				t.Errorf("UTF8OfCodepoint[%q] = %q, want minimal encoding %q", cp, b, string(cp))
			}
		}
	}
}

func TestInvariant_LinkBounds(t *testing.T) {
	doc, err := Load([]byte("go to http://example.com now\n"), WithFilename("t.nfo"), WithCharset(UTF8, ApproachFalse), WithLineWrap(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for r := 0; r < doc.GridHeight(); r++ {
		for _, l := range doc.LinksForRow(r) {
			if l.ColStart < 0 || l.ColStart+l.Len > doc.GridWidth() {
				t.Errorf("link %+v out of grid bounds (cols=%d)", l, doc.GridWidth())
			}
			if l.Row >= doc.GridHeight() {
				t.Errorf("link row %d out of range (rows=%d)", l.Row, doc.GridHeight())
			}
		}
	}
}

func TestInvariant_Utf8RoundTrip(t *testing.T) {
	src := "hello world\n"
	doc, err := Load([]byte(src), WithFilename("t.nfo"), WithCharset(UTF8, ApproachFalse), WithLineWrap(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	exported := doc.ExportUTF8(ExportOptions{})
	if exported[0] != 0xEF || exported[1] != 0xBB || exported[2] != 0xBF {
		t.Fatalf("expected UTF-8 BOM prefix")
	}
	if string(exported[3:]) != strings.TrimRight(src, "\n") {
		t.Errorf("expected round-tripped text %q, got %q", src, exported[3:])
	}
}

func TestInvariant_ReloadStable(t *testing.T) {
	doc, err := Load([]byte("abc\ndef\n"), WithFilename("t.nfo"), WithCharset(UTF8, ApproachFalse), WithLineWrap(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	exported := doc.ExportUTF8(ExportOptions{})
	reloaded, err := Load(exported, WithFilename("t.nfo"), WithCharset(UTF8Sig, ApproachFalse), WithLineWrap(false))
	if err != nil {
		t.Fatalf("unexpected error reloading export: %v", err)
	}
	if reloaded.GridWidth() != doc.GridWidth() || reloaded.GridHeight() != doc.GridHeight() {
		t.Errorf("expected stable grid dimensions across reload, got %dx%d vs %dx%d",
			reloaded.GridWidth(), reloaded.GridHeight(), doc.GridWidth(), doc.GridHeight())
	}
}

func TestInvariant_WidthLimitExceeded(t *testing.T) {
	line := strings.Repeat("x", WidthLimit+1)
	_, err := Load([]byte(line+"\n"), WithFilename("t.nfo"), WithCharset(UTF8, ApproachFalse), WithLineWrap(false))
	if err == nil {
		t.Fatal("expected an error for an over-width line")
	}
	nerr, ok := err.(*NFOError)
	if !ok || nerr.Code != MaximumLineLengthExceeded {
		t.Fatalf("expected MAXIMUM_LINE_LENGTH_EXCEEDED, got %v", err)
	}
}
