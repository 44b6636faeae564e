package nfo

import (
	"runtime"
	"sync"
	"unicode/utf8"
)

// parallelRowThreshold is the row count above which buildGrid fans row
// copying out across goroutines. Below it, serial execution is both
// simpler and faster once goroutine setup cost is accounted for.
const parallelRowThreshold = 256

// buildGrid implements C11: allocate a rows x cols rune grid from lines
// already known to fit within the limits, and populate the code-point
// -> UTF-8-bytes side map by walking each line's UTF-8 encoding in
// lock-step with its runes.
func buildGrid(lines []string, maxLen int) ([][]rune, map[rune][]byte) {
	rows := len(lines)
	grid := make([][]rune, rows)
	utf8Map := make(map[rune][]byte)
	var mapMu sync.Mutex

	copyRow := func(i int) {
		row := make([]rune, maxLen)
		line := lines[i]
		col := 0
		for _, r := range line {
			if col >= maxLen {
				break
			}
			row[col] = r
			col++
		}
		grid[i] = row

		mapMu.Lock()
		for _, r := range line {
			if _, seen := utf8Map[r]; !seen {
				buf := make([]byte, utf8.UTFMax)
				n := utf8.EncodeRune(buf, r)
				utf8Map[r] = append([]byte(nil), buf[:n]...)
			}
		}
		mapMu.Unlock()
	}

	if rows < parallelRowThreshold || runtime.NumCPU() < 2 {
		for i := 0; i < rows; i++ {
			copyRow(i)
		}
		return grid, utf8Map
	}

	workers := runtime.NumCPU()
	var wg sync.WaitGroup
	chunk := (rows + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if start >= rows {
			break
		}
		if end > rows {
			end = rows
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				copyRow(i)
			}
		}(start, end)
	}
	wg.Wait()
	return grid, utf8Map
}
