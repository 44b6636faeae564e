package nfo

import "regexp"

// linkRe is the URL-shaped scan used by the link finder contract. It
// matches http(s)/ftp URLs and continues across non-whitespace runs so
// that a URL broken across a wrapped line can be detected as a
// continuation by the caller.
var linkRe = regexp.MustCompile(`(?i)(https?|ftp)://[^\s]+`)

// findLink is the FindLink(line, offset) contract from C12: find the
// next link at-or-after offset in line, returning its position, length,
// URL text, and whether it looks like a continuation of a link from the
// previous line (a URL starting at column 0 with no scheme, appended to
// a previous line that ended mid-URL).
func findLink(line string, offset int, prevContinuing bool) (pos, length int, url string, continued bool, ok bool) {
	runes := []rune(line)
	if offset > len(runes) {
		return 0, 0, "", false, false
	}
	sub := string(runes[offset:])

	if prevContinuing {
		// A continuation link consumes the leading non-whitespace run
		// of the next line as more of the same URL, with no scheme
		// required.
		end := 0
		for end < len(runes)-offset && runes[offset+end] != ' ' && runes[offset+end] != '\t' {
			end++
		}
		if end > 0 {
			return offset, end, string(runes[offset : offset+end]), true, true
		}
		return 0, 0, "", false, false
	}

	loc := linkRe.FindStringIndex(sub)
	if loc == nil {
		return 0, 0, "", false, false
	}
	matchRunes := []rune(sub[loc[0]:loc[1]])
	start := offset + len([]rune(sub[:loc[0]]))
	return start, len(matchRunes), string(matchRunes), false, true
}

// endsWithLinkBreak reports whether a link ends at (or past) the end of
// its line -- the only test extractLinks applies to decide whether the
// next line should be treated as a continuation of this link. The URL
// text itself (e.g. trailing punctuation) is not examined.
func endsWithLinkBreak(lineLen, linkEnd int) bool {
	return linkEnd >= lineLen
}

// extractLinks implements the full C12 algorithm: per line, repeatedly
// invoke findLink, assigning link ids (new unless continued) and, after
// every fragment added to a continuation group, rewriting the Href of
// every record in the group to the URL concatenated so far.
func extractLinks(lines []string) map[int][]HyperLink {
	links := make(map[int][]HyperLink)
	nextID := 0
	continuing := false
	var groupIdx [][2]int // (row, index-within-row) for the open group
	var groupHref string

	updateGroup := func() {
		for _, ri := range groupIdx {
			links[ri[0]][ri[1]].Href = groupHref
		}
	}

	for row, line := range lines {
		offset := 0
		foundAny := false
		for {
			pos, length, url, cont, ok := findLink(line, offset, continuing && offset == 0)
			if !ok {
				break
			}
			foundAny = true
			var id int
			if cont {
				id = nextID - 1
				groupHref += url
			} else {
				id = nextID
				nextID++
				groupIdx = nil
				groupHref = url
			}
			links[row] = append(links[row], HyperLink{
				LinkID: id, Href: url, Row: row, ColStart: pos, Len: length,
			})
			groupIdx = append(groupIdx, [2]int{row, len(links[row]) - 1})
			updateGroup()
			offset = pos + length
			continuing = endsWithLinkBreak(len([]rune(line)), offset)
		}
		if !foundAny {
			continuing = false
			groupIdx = nil
		}
	}
	return links
}
