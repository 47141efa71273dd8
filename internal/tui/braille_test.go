package tui

import "testing"

func TestBrailleCellBits(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.setPixel(0, 0) // first cell, top-left dot
	b.setPixel(3, 3) // second cell, bottom-right dot

	lines := b.toLines()
	want := string([]rune{0x2801, 0x2880})
	if lines[0] != want {
		t.Errorf("toLines()[0] = %q, want %q", lines[0], want)
	}
}

func TestBrailleOutOfRangeDropped(t *testing.T) {
	b := newBrailleBuf(2, 2)
	b.setPixel(-1, 0)
	b.setPixel(0, -3)
	b.setPixel(4, 0) // cell x = 2, past the buffer
	b.setPixel(0, 8) // cell y = 2, past the buffer

	for _, line := range b.toLines() {
		if line != "  " {
			t.Fatalf("out-of-range pixels landed in the buffer: %q", line)
		}
	}
}

func TestBrailleLineHitsEndpoints(t *testing.T) {
	b := newBrailleBuf(4, 2)
	b.drawLineMicro(0, 0, 7, 7)

	lines := b.toLines()
	start := []rune(lines[0])
	end := []rune(lines[1])
	if start[0] == ' ' {
		t.Error("line start cell is empty")
	}
	if end[3] == ' ' {
		t.Error("line end cell is empty")
	}
}
