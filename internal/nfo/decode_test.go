package nfo

import "testing"

func TestDecode_CP437StrictPreservesControlRunes(t *testing.T) {
	// 0x01 maps to a smiley glyph under the lenient table but to the
	// literal control rune U+0001 under the strict table.
	doc, err := Load([]byte{0x01, 'A', '\n'}, WithFilename("t.nfo"), WithCharset(CP437Strict, ApproachFalse))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.SourceCharset != CP437Strict {
		t.Errorf("expected CP437Strict tag, got %v", doc.SourceCharset)
	}
	if doc.Grid[0][0] != rune(0x01) {
		t.Errorf("expected strict decode to preserve raw control rune U+0001, got %q", doc.Grid[0][0])
	}
}

func TestDecode_Windows1252Explicit(t *testing.T) {
	// 0x93/0x94 are Windows-1252's curly double quotes, unmapped in
	// plain Latin-1/UTF-8.
	data := []byte{0x93, 'h', 'i', 0x94, '\n'}
	doc, err := Load(data, WithFilename("t.nfo"), WithCharset(Windows1252, ApproachFalse), WithLineWrap(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.SourceCharset != Windows1252 {
		t.Errorf("expected Windows1252 tag, got %v", doc.SourceCharset)
	}
	if doc.Grid[0][0] != '“' || doc.Grid[0][3] != '”' {
		t.Errorf("expected curly quotes U+201C/U+201D, got %q/%q", doc.Grid[0][0], doc.Grid[0][3])
	}
}

func TestDecode_CP437InUTF8ExplicitRoutesThroughUTF8Validation(t *testing.T) {
	// 0xC3 0x9B is the valid UTF-8 encoding of U+00DB (Û); Latin-9
	// narrows it back to byte 0xDB, CP437's full-block glyph.
	data := []byte{0xC3, 0x9B}
	doc, err := Load(data, WithFilename("t.nfo"), WithCharset(CP437InUTF8, ApproachFalse), WithLineWrap(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.SourceCharset != CP437InUTF8 {
		t.Errorf("expected CP437InUTF8 tag, got %v", doc.SourceCharset)
	}
	if doc.Grid[0][0] != 0x2588 {
		t.Errorf("expected recovered full-block glyph U+2588, got %q", doc.Grid[0][0])
	}

	// Invalid UTF-8 must fail this explicit preference rather than
	// silently falling back to a raw CP437 decode of the wrapper bytes.
	_, err = Load([]byte{0xFF, 0xFE}, WithFilename("t.nfo"), WithCharset(CP437InUTF8, ApproachFalse))
	if err == nil {
		t.Fatalf("expected an error decoding invalid UTF-8 under the CP437InUTF8 preference")
	}
}

func TestDecode_CP437InUTF16ExplicitRoutesThroughUTF16Validation(t *testing.T) {
	// FF FE BOM + little-endian unit 0x00DB (Û); narrowing back to a
	// single byte 0xDB recovers CP437's full-block glyph.
	data := []byte{0xFF, 0xFE, 0xDB, 0x00}
	doc, err := Load(data, WithFilename("t.nfo"), WithCharset(CP437InUTF16, ApproachFalse), WithLineWrap(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.SourceCharset != CP437InUTF16 {
		t.Errorf("expected CP437InUTF16 tag, got %v", doc.SourceCharset)
	}
	if doc.Grid[0][0] != 0x2588 {
		t.Errorf("expected recovered full-block glyph U+2588, got %q", doc.Grid[0][0])
	}

	// A missing BOM must fail this explicit preference rather than
	// silently falling back to a raw CP437 decode of the wrapper bytes.
	_, err = Load([]byte{0xDB, 0x00}, WithFilename("t.nfo"), WithCharset(CP437InUTF16, ApproachFalse))
	if err == nil {
		t.Fatalf("expected an error decoding BOM-less content under the CP437InUTF16 preference")
	}
}

func TestDecode_UTF16LEExplicit(t *testing.T) {
	data := []byte{0xFF, 0xFE, 'H', 0x00, 'i', 0x00, '\n', 0x00}
	doc, err := Load(data, WithFilename("t.nfo"), WithCharset(UTF16, ApproachFalse), WithLineWrap(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.SourceCharset != UTF16 {
		t.Errorf("expected UTF16 tag, got %v", doc.SourceCharset)
	}
	if doc.Grid[0][0] != 'H' || doc.Grid[0][1] != 'i' {
		t.Errorf("expected H,i; got %q,%q", doc.Grid[0][0], doc.Grid[0][1])
	}
}
