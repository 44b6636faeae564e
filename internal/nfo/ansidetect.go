package nfo

import (
	"regexp"
	"strings"
)

// csiLikeRe matches a CSI-shaped sequence using the graphic arrow form
// ←[ that bytes decode to once CP437/ISO control glyphs are mapped to
// their Unicode counterparts, e.g. "←[31m".
var csiLikeRe = regexp.MustCompile(`\x{2190}\[[0-9;]+m`)

// binaryShortFileRe is the narrow, deliberately-suspect heuristic named
// in the design notes for flagging a short garbage-looking decode as
// not actually text.
var binaryShortFileRe = regexp.MustCompile(`^\s+[A-Z][a-z]+\s+$`)

// detectAnsi implements the ANSI-detection rule shared by the CP437
// attempts: already-flagged ANSI (from SAUCE), a ".ans" filename
// containing the graphic escape arrow, or any non-".nfo" filename
// containing a CSI-shaped sequence.
func detectAnsi(alreadyAnsi bool, filename, text string) bool {
	if alreadyAnsi {
		return true
	}
	lower := strings.ToLower(filename)
	if strings.HasSuffix(lower, ".ans") && strings.Contains(text, "←[") {
		return true
	}
	if !strings.HasSuffix(lower, ".nfo") && csiLikeRe.MatchString(text) {
		return true
	}
	return false
}
