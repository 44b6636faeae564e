package nfo

import "testing"

func TestHealLFLF_DropsAlternatingBlanksOnNoisyParity(t *testing.T) {
	var lines []string
	for i := 0; i < 10; i++ {
		lines = append(lines, "line", "")
	}
	lines = lines[:len(lines)-1] // drop the final blank, as splitLines would
	out := healLFLF(lines)
	if len(out) != 10 {
		t.Fatalf("expected 10 lines after heal, got %d: %v", len(out), out)
	}
	for _, l := range out {
		if l != "line" {
			t.Errorf("expected every surviving line to be %q, got %q", "line", l)
		}
	}
}

func TestHealLFLF_LeavesNonAlternatingInputAlone(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e", "f"}
	out := healLFLF(lines)
	if len(out) != len(lines) {
		t.Fatalf("expected no change, got %v", out)
	}
}

func TestHealLFLF_SkipsShortInput(t *testing.T) {
	lines := []string{"a", "", "b"}
	out := healLFLF(lines)
	if len(out) != len(lines) {
		t.Fatalf("expected input under 4 lines to pass through unchanged, got %v", out)
	}
}
