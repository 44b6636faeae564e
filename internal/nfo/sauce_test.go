package nfo

import "testing"

func buildSauceRecord(dataType, fileType byte, tinfo1, tinfo2 int, comments byte) []byte {
	rec := make([]byte, sauceRecordLen)
	copy(rec, []byte("SAUCE00"))
	copy(rec[7:42], []byte("Title"))
	copy(rec[42:62], []byte("Author"))
	copy(rec[62:82], []byte("Group"))
	copy(rec[82:90], []byte("20260101"))
	rec[94] = dataType
	rec[95] = fileType
	rec[96] = byte(tinfo1)
	rec[97] = byte(tinfo1 >> 8)
	rec[98] = byte(tinfo2)
	rec[99] = byte(tinfo2 >> 8)
	rec[104] = comments
	return rec
}

func TestReadSAUCE(t *testing.T) {
	t.Run("no SAUCE in short file", func(t *testing.T) {
		info, err := readSAUCE([]byte("short"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.present {
			t.Fatalf("expected no SAUCE record")
		}
	})

	t.Run("ANSI record with hints", func(t *testing.T) {
		content := append([]byte("HELLO\n"), 0x1A)
		rec := buildSauceRecord(1, 1, 80, 25, 0)
		data := append(content, rec...)

		info, err := readSAUCE(data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !info.present || !info.isAnsi {
			t.Fatalf("expected present ANSI record, got %+v", info)
		}
		if info.hintWidth != 80 || info.hintHeight != 25 {
			t.Fatalf("expected hints 80x25, got %dx%d", info.hintWidth, info.hintHeight)
		}

		stripped, _, serr := stripSAUCE(data)
		if serr != nil {
			t.Fatalf("unexpected strip error: %v", serr)
		}
		if string(stripped) != "HELLO\n" {
			t.Fatalf("expected stripped content %q, got %q", "HELLO\n", stripped)
		}
	})

	t.Run("bad version rejected", func(t *testing.T) {
		rec := buildSauceRecord(1, 1, 80, 25, 0)
		rec[5], rec[6] = '0', '1'
		data := append([]byte("content"), rec...)
		_, err := readSAUCE(data)
		if err == nil || err.Code != SauceInternal {
			t.Fatalf("expected SAUCE_INTERNAL, got %v", err)
		}
	})

	t.Run("tolerant not-ansi special case", func(t *testing.T) {
		rec := buildSauceRecord(1, 0x20, 0, 0, 0x20)
		data := append([]byte("content"), rec...)
		info, err := readSAUCE(data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.isAnsi {
			t.Fatalf("expected not-ansi")
		}
	})
}
