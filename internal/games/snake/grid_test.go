package snake

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

func readGolden(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name+".golden"))
	if err != nil {
		t.Fatalf("read golden %s: %v", name, err)
	}
	return string(data)
}

func checkGolden(t *testing.T, name, got string) {
	t.Helper()
	expected := readGolden(t, name)
	if got == expected {
		return
	}
	gotLines := strings.Split(got, "\n")
	expLines := strings.Split(expected, "\n")
	for i := 0; i < len(gotLines) && i < len(expLines); i++ {
		if gotLines[i] != expLines[i] {
			t.Fatalf("render differs from %s.golden at line %d:\n got: %q\nwant: %q", name, i, gotLines[i], expLines[i])
		}
	}
	t.Fatalf("render differs from %s.golden: got %d lines, expected %d", name, len(gotLines), len(expLines))
}

func TestGridAtAndSetBounds(t *testing.T) {
	g := NewGrid(4, 3)

	g.Set(-1, CellSnake)
	g.Set(g.Size(), CellSnake)
	g.Set(100, CellApple)
	if n := g.Count(CellEmpty); n != 12 {
		t.Errorf("out-of-range Set changed the board: %d empty cells", n)
	}

	for _, i := range []int{-5, -1, 12, 13, 1000} {
		if c := g.At(i); c != CellEmpty {
			t.Errorf("At(%d) = %s, expected empty", i, c)
		}
	}

	g.Set(5, CellApple)
	if c := g.At(5); c != CellApple {
		t.Errorf("At(5) = %s, expected apple", c)
	}
	if c := g.CellAt(Position{X: 1, Y: 1}); c != CellApple {
		t.Errorf("CellAt(1,1) = %s, expected apple", c)
	}
}

func TestGridContains(t *testing.T) {
	g := NewGrid(4, 3)
	tests := []struct {
		p        Position
		expected bool
	}{
		{Position{X: 0, Y: 0}, true},
		{Position{X: 3, Y: 2}, true},
		{Position{X: -1, Y: 0}, false},
		{Position{X: 0, Y: -1}, false},
		{Position{X: 4, Y: 0}, false},
		{Position{X: 0, Y: 3}, false},
	}

	for _, tc := range tests {
		if got := g.Contains(tc.p); got != tc.expected {
			t.Errorf("Contains(%+v) = %v, expected %v", tc.p, got, tc.expected)
		}
	}
}

func TestNewGridPanicsOnInvalidSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGrid(0, 5) should panic")
		}
	}()
	NewGrid(0, 5)
}

func TestGridRender(t *testing.T) {
	w, h := DefaultWidth, DefaultHeight

	tests := []struct {
		name  string
		setup func(g *Grid)
	}{
		{
			name:  "empty",
			setup: func(g *Grid) {},
		},
		{
			name: "apple",
			setup: func(g *Grid) {
				g.Set((h/2-1)*w+w/2-1, CellApple)
			},
		},
		{
			name: "snake",
			setup: func(g *Grid) {
				for _, i := range []int{74, 75, 76, 112, 148, 184, 220, 221, 222, 223} {
					g.Set(i, CellSnake)
				}
			},
		},
		{
			name: "walls",
			setup: func(g *Grid) {
				for _, i := range []int{
					72, 73, 74, 38, 2, 3, 4, 40, 76, 112, 148, 184, 220, 221, 222, 223,
					224, 225, 226, 227, 228, 264, 300, 336, 372, 408, 444, 480, 516, 552,
					588, 624, 660, 696, 697, 698, 699, 700, 701, 702, 703, 704, 705, 706,
					707, 708, 709, 710, 711, 675, 639, 603, 567, 531, 532, 533, 534, 535,
					536, 537, 538, 539, 503, 467, 431,
				} {
					g.Set(i, CellSnake)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(w, h)
			tc.setup(g)
			checkGolden(t, tc.name, g.Render())
		})
	}
}

func TestGridRenderSize(t *testing.T) {
	g := NewGrid(DefaultWidth, DefaultHeight)
	g.Put(Position{X: 0, Y: 0}, CellSnake)
	g.Put(Position{X: DefaultWidth - 1, Y: DefaultHeight - 1}, CellApple)

	cols, rows := g.RenderSize()
	lines := strings.Split(strings.TrimSuffix(g.Render(), "\n"), "\n")
	if len(lines) != rows {
		t.Fatalf("Render() has %d lines, RenderSize says %d", len(lines), rows)
	}
	for i, line := range lines {
		if n := utf8.RuneCountInString(line); n != cols {
			t.Errorf("line %d is %d columns wide, expected %d", i, n, cols)
		}
	}
}

func TestGridRenderDoesNotMutate(t *testing.T) {
	g := NewGrid(8, 6)
	g.Put(Position{X: 2, Y: 2}, CellSnake)
	g.Put(Position{X: 5, Y: 1}, CellApple)

	first := g.Render()
	second := g.Render()
	if first != second {
		t.Errorf("consecutive renders differ:\n%s\n%s", first, second)
	}
	if g.Count(CellSnake) != 1 || g.Count(CellApple) != 1 {
		t.Error("Render changed the board")
	}
}

func TestGridSpawnFood(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 50; round++ {
		g := NewGrid(6, 4)
		// Leave a few holes in an otherwise full board
		for i := 0; i < g.Size(); i++ {
			if i%5 != 0 {
				g.Set(i, CellSnake)
			}
		}
		snakeCells := g.Count(CellSnake)

		pos, ok := g.SpawnFood(rng)
		if !ok {
			t.Fatal("SpawnFood() reported a full board with free cells left")
		}
		if g.Index(pos)%5 != 0 {
			t.Fatalf("SpawnFood() placed food on the snake at %+v", pos)
		}
		if g.CellAt(pos) != CellApple {
			t.Fatalf("SpawnFood() returned %+v but the cell is %s", pos, g.CellAt(pos))
		}
		if g.Count(CellSnake) != snakeCells {
			t.Fatal("SpawnFood() overwrote a snake cell")
		}
	}
}

func TestGridSpawnFoodFullBoard(t *testing.T) {
	g := NewGrid(3, 3)
	for i := 0; i < g.Size(); i++ {
		g.Set(i, CellSnake)
	}

	if _, ok := g.SpawnFood(rand.New(rand.NewSource(1))); ok {
		t.Error("SpawnFood() on a full board should report !ok")
	}
	if g.Count(CellSnake) != g.Size() {
		t.Error("SpawnFood() on a full board changed it")
	}
}

func TestGridSpawnFoodDeterministic(t *testing.T) {
	spawn := func() Position {
		g := NewGrid(DefaultWidth, DefaultHeight)
		pos, _ := g.SpawnFood(rand.New(rand.NewSource(99)))
		return pos
	}
	if a, b := spawn(), spawn(); a != b {
		t.Errorf("same seed spawned food at %+v and %+v", a, b)
	}
}
