package nfo

import "testing"

func TestExtractLinks_SingleLinkNoContinuation(t *testing.T) {
	lines := []string{"see http://example.com for info"}
	links := extractLinks(lines)
	if len(links[0]) != 1 {
		t.Fatalf("expected exactly one link, got %d", len(links[0]))
	}
	l := links[0][0]
	if l.Href != "http://example.com" {
		t.Errorf("expected href http://example.com, got %q", l.Href)
	}
	if l.ColStart != 4 {
		t.Errorf("expected ColStart=4, got %d", l.ColStart)
	}
}

func TestExtractLinks_TwoLinksOnOneLine(t *testing.T) {
	lines := []string{"http://a.example and http://b.example"}
	links := extractLinks(lines)
	if len(links[0]) != 2 {
		t.Fatalf("expected two links, got %d", len(links[0]))
	}
	if links[0][0].LinkID == links[0][1].LinkID {
		t.Errorf("expected distinct link ids for unrelated links")
	}
}

func TestExtractLinks_ContinuationStopsAtTrailingText(t *testing.T) {
	lines := []string{
		"get it at http://example.com/a/",
		"b/c trailing prose on this row",
	}
	links := extractLinks(lines)
	if len(links[0]) != 1 || len(links[1]) != 1 {
		t.Fatalf("expected a link record on rows 0 and 1, got %d and %d", len(links[0]), len(links[1]))
	}
	want := "http://example.com/a/b/c"
	if links[0][0].Href != want {
		t.Errorf("row 0 href = %q, want %q", links[0][0].Href, want)
	}
	if links[1][0].Href != want {
		t.Errorf("row 1 href = %q, want %q", links[1][0].Href, want)
	}
	if links[0][0].LinkID != links[1][0].LinkID {
		t.Errorf("expected shared link id across the continuation group")
	}
	if links[1][0].ColStart != 0 || links[1][0].Len != 3 {
		t.Errorf("expected the continuation fragment to be columns [0,3), got ColStart=%d Len=%d", links[1][0].ColStart, links[1][0].Len)
	}
}

func TestExtractLinks_NoLinks(t *testing.T) {
	links := extractLinks([]string{"nothing to see here"})
	if len(links) != 0 {
		t.Fatalf("expected no link rows, got %d", len(links))
	}
}
