package nfo

// Implementation constants reused across components, per the spec's
// resource model. WidthLimit/LinesLimit bound the grid; MaxFileSize
// bounds the input buffer.
const (
	WidthLimit  = 4096
	LinesLimit  = 32768
	MaxFileSize = 3 * 1024 * 1024 // 3 MiB

	maxSoftWrap   = 100
	maxHardWrap   = 160
	equalRunMax   = 3
)

// blockDrawingRunes are the glyphs that mark a line as art rather than
// prose; such lines are never long-line-wrapped.
var blockDrawingRunes = map[rune]bool{
	0x2580: true, 0x2584: true, 0x2588: true, 0x258C: true,
	0x2590: true, 0x2591: true, 0x2592: true, 0x2593: true,
}
