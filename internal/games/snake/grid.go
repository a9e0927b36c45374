package snake

import (
	"fmt"
	"math/rand"
	"strings"
)

// Default board size in cells.
const (
	DefaultWidth  = 36
	DefaultHeight = 20
)

// Cell is the occupancy of one grid cell.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellApple
	CellSnake
)

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellApple:
		return "apple"
	case CellSnake:
		return "snake"
	default:
		return "unknown"
	}
}

// Grid is a fixed-size board of cells stored row-major (index y*width + x).
// It is shared by the snake, which writes its body into it, and the
// renderer, which draws cell outlines from it.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates an empty grid. Dimensions must be positive.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("snake: invalid grid size %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Size returns the number of cells.
func (g *Grid) Size() int {
	return len(g.cells)
}

// At returns the cell at flat index i. Indices outside the board read as
// empty; the renderer relies on this when probing past the last row.
func (g *Grid) At(i int) Cell {
	if i < 0 || i >= len(g.cells) {
		return CellEmpty
	}
	return g.cells[i]
}

// Set writes the cell at flat index i. Out-of-range writes are ignored.
func (g *Grid) Set(i int, c Cell) {
	if i < 0 || i >= len(g.cells) {
		return
	}
	g.cells[i] = c
}

// Index converts a position to a flat index. The result is only meaningful
// when Contains(p) is true.
func (g *Grid) Index(p Position) int {
	return p.Y*g.width + p.X
}

// Contains reports whether p lies on the board.
func (g *Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// CellAt returns the cell at p, or CellEmpty when p is off the board.
func (g *Grid) CellAt(p Position) Cell {
	if !g.Contains(p) {
		return CellEmpty
	}
	return g.cells[g.Index(p)]
}

// Put writes c at p. Positions off the board are ignored.
func (g *Grid) Put(p Position, c Cell) {
	if !g.Contains(p) {
		return
	}
	g.cells[g.Index(p)] = c
}

// Count returns how many cells hold c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, cell := range g.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// SpawnFood places an apple on a uniformly chosen empty cell and returns its
// position. It never overwrites the snake; ok is false when no cell is free.
func (g *Grid) SpawnFood(rng *rand.Rand) (pos Position, ok bool) {
	free := make([]int, 0, len(g.cells))
	for i, c := range g.cells {
		if c == CellEmpty {
			free = append(free, i)
		}
	}
	if len(free) == 0 {
		return Position{X: -1, Y: -1}, false
	}

	i := free[rng.Intn(len(free))]
	g.cells[i] = CellApple
	return Position{X: i % g.width, Y: i / g.width}, true
}

// RenderSize returns the dimensions of Render's output in terminal columns
// and rows.
func (g *Grid) RenderSize() (cols, rows int) {
	return (g.width+1)*2 - 1, g.height + 1
}

// Render draws the board as box-drawing text. Every occupied cell is
// outlined and adjacent outlines share their edges; the board itself is
// framed. Each row ends with a newline.
func (g *Grid) Render() string {
	cols, rows := g.RenderSize()

	var sb strings.Builder
	sb.Grow(rows * (cols*3 + 1))

	for y := 0; y <= g.height; y++ {
		for x := 0; x <= g.width; x++ {
			glyph := g.latticePoint(x, y).Glyph()
			if x == g.width {
				// The last column has no right arm; drop its padding.
				glyph = strings.TrimSuffix(glyph, " ")
			}
			sb.WriteString(glyph)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// latticePoint builds the bitmap of the grid-line intersection at the
// top-left corner of cell (x, y). x and y range over [0, width] and
// [0, height].
func (g *Grid) latticePoint(x, y int) Bitmap {
	var b Bitmap
	w, h := g.width, g.height

	switch {
	case x == 0 && y == 0:
		b.Combine(patternTopLeft)
	case x == w && y == 0:
		b.Combine(patternTopRight)
	case x == 0 && y == h:
		b.Combine(patternBottomLeft)
	case x == w && y == h:
		b.Combine(patternBottomRight)
	case y == 0 || y == h:
		b.Combine(patternHorizontal)
	case x == 0 || x == w:
		b.Combine(patternVertical)
	}

	// Each occupied neighbour contributes the corner of its own outline
	// that meets this point.
	if x > 0 && y > 0 && g.At((y-1)*w+(x-1)) != CellEmpty {
		b.Combine(patternBottomRight)
	}
	if y > 0 && x < w && g.At((y-1)*w+x) != CellEmpty {
		b.Combine(patternBottomLeft)
	}
	if x > 0 && g.At(y*w+(x-1)) != CellEmpty {
		b.Combine(patternTopRight)
	}
	if x < w && y < h && g.At(y*w+x) != CellEmpty {
		b.Combine(patternTopLeft)
	}

	return b
}
