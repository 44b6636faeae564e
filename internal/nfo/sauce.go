package nfo

import "github.com/stlalpha/nfoview/internal/nfo/internal/nlog"

const sauceRecordLen = 128

// sauceInfo is everything the loader needs out of a trailing SAUCE
// record: whether one was present, how many trailing bytes to strip,
// and the hints it carried.
type sauceInfo struct {
	present     bool
	stripBytes  int
	isAnsi      bool
	hintWidth   int
	hintHeight  int
}

// readSAUCE implements the SAUCE reader (C3): detect and strip a
// trailing 128-byte SAUCE record (plus its comment block and EOF
// marker), extracting the ANSI/ASCII hint and the TInfo1/TInfo2
// width/height hints.
func readSAUCE(data []byte) (sauceInfo, *NFOError) {
	if len(data) <= sauceRecordLen {
		return sauceInfo{}, nil
	}

	tail := data[len(data)-sauceRecordLen:]
	var rec []byte
	var complete bool

	if len(tail) >= 5 && string(tail[:5]) == "SAUCE" {
		rec = tail
		complete = true
	} else {
		idx := indexOf(tail, []byte("SAUCE00"))
		if idx < 0 {
			return sauceInfo{}, nil
		}
		rec = tail[idx:]
		complete = false
	}

	if len(rec) < 7 || string(rec[5:7]) != "00" {
		return sauceInfo{}, newErr(SauceInternal, "unsupported SAUCE version")
	}

	var dataType, fileType byte
	var tinfo1, tinfo2 int
	var comments int

	if complete && len(rec) >= sauceRecordLen {
		dataType = rec[94]
		fileType = rec[95]
		tinfo1 = int(rec[96]) | int(rec[97])<<8
		tinfo2 = int(rec[98]) | int(rec[99])<<8
		comments = int(rec[104])
	}
	// The fixed fields of an incomplete record (found mid-tail, short of
	// the full 128 bytes) are not read: DataType and FileType stay 0, so
	// an incomplete record always takes the tolerant ANSI-guess case.

	isAnsi := false
	switch {
	case !complete && dataType == 0 && fileType == 0:
		isAnsi = true // tolerant case: guess ANSI
	case complete && dataType == 1 && (fileType == 0 || fileType == 1):
		isAnsi = true
	case complete && dataType == 1 && fileType == 0x20 && rec[104] == 0x20:
		isAnsi = false // tolerant case: not-ANSI
		comments = 0   // the 0x20 Comments byte is filler, not a count
	default:
		if complete {
			return sauceInfo{}, newErr(SauceInternal, "unsupported SAUCE DataType/FileType combination")
		}
	}

	if comments > 255 {
		return sauceInfo{}, newErr(SauceInternal, "comments count out of range")
	}

	commentBlockLen := 0
	if comments > 0 {
		commentBlockLen = comments*64 + 5
	}
	strip := len(rec) + commentBlockLen
	if strip > len(data) {
		return sauceInfo{}, newErr(SauceInternal, "not enough bytes for SAUCE comment block")
	}

	remaining := len(data) - strip
	for remaining > 0 && data[remaining-1] == 0x1A {
		remaining--
	}

	info := sauceInfo{present: true, stripBytes: len(data) - remaining, isAnsi: isAnsi}
	if tinfo1 > 0 && tinfo1 < 2*WidthLimit {
		info.hintWidth = tinfo1
	}
	if tinfo2 > 0 && tinfo2 < 2*LinesLimit {
		info.hintHeight = tinfo2
	}
	nlog.Debug("SAUCE record found: isAnsi=%v hintWidth=%d hintHeight=%d strip=%d", isAnsi, info.hintWidth, info.hintHeight, info.stripBytes)
	return info, nil
}

// stripSAUCE removes a trailing SAUCE record (if any) from data and
// returns the remaining bytes plus the extracted hints.
func stripSAUCE(data []byte) ([]byte, sauceInfo, *NFOError) {
	info, err := readSAUCE(data)
	if err != nil {
		return nil, sauceInfo{}, err
	}
	if !info.present {
		return data, info, nil
	}
	return data[:len(data)-info.stripBytes], info, nil
}

func indexOf(haystack, needle []byte) int {
	n := len(needle)
	if n == 0 || len(haystack) < n {
		return -1
	}
	for i := 0; i+n <= len(haystack); i++ {
		if string(haystack[i:i+n]) == string(needle) {
			return i
		}
	}
	return -1
}
