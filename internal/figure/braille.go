package figure

import (
	"math"
	"strings"

	"github.com/san-kum/tumorkit/internal/vessels"
)

const brailleBlank = 0x2800

// dot bits of a braille cell, indexed by [row][col] of its 4x2 grid.
var brailleDots = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// braille is a character grid where each cell holds 2x4 dots.
type braille struct {
	cols, rows int
	cells      [][]rune
}

func newBraille(cols, rows int) *braille {
	b := &braille{cols: cols, rows: rows, cells: make([][]rune, rows)}
	for i := range b.cells {
		b.cells[i] = []rune(strings.Repeat(string(rune(brailleBlank)), cols))
	}
	return b
}

// dot sets the dot at (x, y) in dot coordinates, origin top left.
func (b *braille) dot(x, y int) {
	if x < 0 || y < 0 || x >= 2*b.cols || y >= 4*b.rows {
		return
	}
	b.cells[y/4][x/2] |= brailleDots[y%4][x%2]
}

// line draws with Bresenham's algorithm.
func (b *braille) line(x0, y0, x1, y1 int) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		b.dot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (b *braille) String() string {
	lines := make([]string, b.rows)
	for i, row := range b.cells {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// SegmentsBraille projects the segments onto a cols×rows braille grid for
// a terminal preview.
func SegmentsBraille(segs []vessels.Segment, cols, rows int, pr Projection) string {
	if len(segs) == 0 || cols < 1 || rows < 1 {
		return ""
	}
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	type flat struct{ x1, y1, x2, y2 float64 }
	flats := make([]flat, len(segs))
	for i, s := range segs {
		x1, y1 := pr.Project(s.Start)
		x2, y2 := pr.Project(s.End)
		flats[i] = flat{x1, y1, x2, y2}
		minX, maxX = math.Min(minX, math.Min(x1, x2)), math.Max(maxX, math.Max(x1, x2))
		minY, maxY = math.Min(minY, math.Min(y1, y2)), math.Max(maxY, math.Max(y1, y2))
	}
	w, h := float64(2*cols-1), float64(4*rows-1)
	scale := math.Min(w/math.Max(maxX-minX, 1e-12), h/math.Max(maxY-minY, 1e-12))

	b := newBraille(cols, rows)
	px := func(x float64) int { return int(math.Round((x - minX) * scale)) }
	py := func(y float64) int { return int(math.Round(h - (y-minY)*scale)) }
	for _, f := range flats {
		b.line(px(f.x1), py(f.y1), px(f.x2), py(f.y2))
	}
	return b.String()
}
