package nfo

import (
	"os"
	"strings"

	"github.com/stlalpha/nfoview/internal/nfo/internal/nlog"
)

// Load decodes an in-memory buffer into a fully built Document. On
// failure it returns a non-nil error and an empty-but-valid Document
// with LastError() set to the same error.
func Load(data []byte, opts ...Option) (*Document, error) {
	return load(data, resolveOptions(opts), false)
}

// LoadFile opens path, enforces the 3 MiB size cap, and decodes it.
func LoadFile(path string, opts ...Option) (*Document, error) {
	cfg := resolveOptions(opts)
	if cfg.filename == "" {
		cfg.filename = path
	}
	data, err := readFile(path)
	if err != nil {
		return emptyDocument(err), err
	}
	return load(data, cfg, false)
}

// LoadRaw decodes a buffer but skips the C6-C12 post-processing
// pipeline, returning only the decoded text and charset/SAUCE
// information. Useful for callers that want encoding/SAUCE work without
// paying for grid construction (e.g. a metadata scanner).
func LoadRaw(data []byte, opts ...Option) (*Document, error) {
	return load(data, resolveOptions(opts), true)
}

// LoadFileRaw is LoadFile's LoadRaw counterpart.
func LoadFileRaw(path string, opts ...Option) (*Document, error) {
	cfg := resolveOptions(opts)
	if cfg.filename == "" {
		cfg.filename = path
	}
	data, err := readFile(path)
	if err != nil {
		return emptyDocument(err), err
	}
	return load(data, cfg, true)
}

func readFile(path string) ([]byte, *NFOError) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, newErr(UnableToOpenPhysical, "%v", err)
	}
	if fi.Size() < 0 {
		return nil, newErr(FailedToDetermineSize, "negative size")
	}
	if fi.Size() > MaxFileSize {
		return nil, newErr(SizeExceedsLimit, "%d bytes exceeds %d byte limit", fi.Size(), MaxFileSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newErr(FError, "%v", err)
	}
	return data, nil
}

func load(raw []byte, cfg loadConfig, rawOnly bool) (*Document, error) {
	if len(raw) > MaxFileSize {
		e := newErr(SizeExceedsLimit, "%d bytes exceeds %d byte limit", len(raw), MaxFileSize)
		return emptyDocument(e), e
	}

	stripped, sinfo, serr := stripSAUCE(raw)
	if serr != nil {
		return emptyDocument(serr), serr
	}

	text, tag, isAnsi, derr := decodeBytes(stripped, cfg, sinfo.isAnsi)
	if derr != nil {
		return emptyDocument(derr), derr
	}

	doc := &Document{
		SourceCharset:   tag,
		IsAnsi:          isAnsi,
		AnsiHintWidth:   sinfo.hintWidth,
		AnsiHintHeight:  sinfo.hintHeight,
		LineWrapEnabled: cfg.lineWrap,
		filename:        cfg.filename,
		UTF8OfCodepoint: map[rune][]byte{},
		Links:           map[int][]HyperLink{},
	}

	if rawOnly {
		doc.Text = text
		return doc, nil
	}

	if perr := postProcess(doc, text); perr != nil {
		return emptyDocument(perr), perr
	}
	return doc, nil
}

// decodeBytes runs the ordered AUTO attempts, or a single explicit
// attempt when cfg.charset is not Auto.
func decodeBytes(data []byte, cfg loadConfig, alreadyAnsi bool) (string, SourceCharset, bool, *NFOError) {
	if cfg.charset != Auto {
		return decodeExplicit(data, cfg, alreadyAnsi)
	}

	if text, tag, ansi, err := tryUTF8Signature(data, cfg); err == nil {
		return text, tag, ansi || alreadyAnsi, nil
	}
	if text, tag, ansi, err := tryUTF16LE(data, cfg, ApproachTry); err == nil {
		return text, tag, ansi || alreadyAnsi, nil
	}
	if text, tag, ansi, err := tryUTF16BE(data, cfg, ApproachTry); err == nil {
		return text, tag, ansi || alreadyAnsi, nil
	}
	lower := strings.ToLower(cfg.filename)
	if strings.HasSuffix(lower, ".nfo") || strings.HasSuffix(lower, ".diz") {
		if text, tag, ansi, err := tryUTF8(data, cfg, ApproachTry); err == nil {
			return text, tag, ansi || alreadyAnsi, nil
		}
	}

	inner := decodeCP437(data, ApproachTry, false)
	ansi := detectAnsi(alreadyAnsi, cfg.filename, inner.text)
	if inner.foundBinary && !ansi && binaryShortFileRe.MatchString(inner.text) {
		nlog.Debug("binary-short-file heuristic matched on CP437 AUTO attempt")
		return "", 0, false, newErr(UnrecognizedFileFormat, "binary content detected")
	}
	tag := CP437
	if inner.upgraded {
		tag = CP437InCP437
	}
	return inner.text, tag, ansi, nil
}

func decodeExplicit(data []byte, cfg loadConfig, alreadyAnsi bool) (string, SourceCharset, bool, *NFOError) {
	switch cfg.charset {
	case UTF8Sig:
		return tryUTF8Signature(data, cfg)
	case UTF8:
		return tryUTF8(data, cfg, cfg.approach)
	case UTF16:
		if text, tag, ansi, err := tryUTF16LE(data, cfg, cfg.approach); err == nil {
			return text, tag, ansi || alreadyAnsi, nil
		}
		return tryUTF16BE(data, cfg, cfg.approach)
	case CP437, CP437InCP437:
		inner := decodeCP437(data, cfg.approach, false)
		ansi := detectAnsi(alreadyAnsi, cfg.filename, inner.text)
		if inner.foundBinary && !ansi && binaryShortFileRe.MatchString(inner.text) {
			nlog.Debug("binary-short-file heuristic matched on explicit CP437 attempt")
			return "", 0, false, newErr(UnrecognizedFileFormat, "binary content detected")
		}
		return inner.text, cfg.charset, ansi, nil
	case CP437InUTF8, CP437InCP437InUTF8:
		// These preferences assert a UTF-8 wrapper around the CP437
		// bytes: validate/peel that layer for real via tryUTF8 instead
		// of CP437-decoding the raw (still-UTF-8-encoded) bytes
		// directly.
		text, tag, ansi, err := tryUTF8(data, cfg, ApproachForce)
		if err != nil {
			return "", 0, false, err
		}
		return text, tag, ansi || alreadyAnsi, nil
	case CP437InUTF16:
		text, tag, ansi, err := tryUTF16LE(data, cfg, ApproachForce)
		if err != nil {
			return "", 0, false, err
		}
		return text, tag, ansi || alreadyAnsi, nil
	case CP437Strict:
		inner := decodeCP437(data, ApproachFalse, true)
		if inner.foundBinary {
			return "", 0, false, newErr(UnrecognizedFileFormat, "NUL byte in strict CP437 content")
		}
		ansi := detectAnsi(alreadyAnsi, cfg.filename, inner.text)
		return inner.text, CP437Strict, ansi, nil
	case Windows1252:
		text, err := windows1252ToUTF8(data)
		if err != nil {
			return "", 0, false, newErr(EncodingProblem, "%v", err)
		}
		ansi := detectAnsi(alreadyAnsi, cfg.filename, text)
		return text, Windows1252, ansi, nil
	default:
		return "", 0, false, newErr(EncodingProblem, "unsupported explicit charset preference")
	}
}
