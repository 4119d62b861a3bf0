// Package tetris contains the rules of the game: pieces, the playfield,
// collisions, row clearing and the per-frame state machine.
package tetris

import (
	"image/color"
	"maps"
	"math/rand/v2"
)

type State int

const (
	Running State = iota
	Lost
	Quit
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Lost:
		return "lost"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// Rand is the source used to pick shapes and colors.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a seeded random source.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed)) //nolint:gosec
}

// Tetris is the state of a single session.
type Tetris struct {
	Locked       Locked
	Grid         Grid
	Tetromino    *Tetromino
	NexTetromino *Tetromino
	LinesClear   int
	State        State

	columns, rows int
	rand          Rand
}

func newTetris(r Rand) *Tetris {
	t := &Tetris{
		// every session gets its own map.
		Locked:  make(Locked),
		columns: Columns,
		rows:    Rows,
		rand:    r,
	}
	t.refresh()
	t.Tetromino = t.draw()
	t.NexTetromino = t.draw()
	return t
}

// draw picks a shape and, independently, a color.
func (t *Tetris) draw() *Tetromino {
	s := Shapes[t.rand.IntN(len(Shapes))]
	c := Palette[t.rand.IntN(len(Palette))]
	return newTetromino(s, c, t.columns)
}

func (t *Tetris) refresh() {
	t.Grid = newGrid(t.Locked, t.columns, t.rows)
}

func (t *Tetris) move(dx, dy int) bool {
	t.Tetromino.X += dx
	t.Tetromino.Y += dy
	if !isValid(t.Tetromino, t.Grid) {
		t.Tetromino.X -= dx
		t.Tetromino.Y -= dy
		return false
	}
	return true
}

func (t *Tetris) left() bool  { return t.move(-1, 0) }
func (t *Tetris) right() bool { return t.move(1, 0) }

// down is the soft drop. It never locks the tetromino, even on the floor.
func (t *Tetris) down() bool { return t.move(0, 1) }

// rotate turns the tetromino clockwise and restores the previous grid
// when the rotated one doesn't fit.
func (t *Tetris) rotate() bool {
	prev := t.Tetromino.Grid
	t.Tetromino.rotate()
	if !isValid(t.Tetromino, t.Grid) {
		t.Tetromino.Grid = prev
		return false
	}
	return true
}

// fall moves the tetromino one row down and reports whether it has landed.
func (t *Tetris) fall() bool {
	t.Tetromino.Y++
	if !isValid(t.Tetromino, t.Grid) && t.Tetromino.Y > 0 {
		t.Tetromino.Y--
		return true
	}
	return false
}

// lock moves the current tetromino into the locked positions, promotes the
// next one and checks for game over. Full rows are cleared only while the
// game is still running.
func (t *Tetris) lock() {
	for _, p := range t.Tetromino.cells() {
		t.Locked[p] = t.Tetromino.Color
	}
	t.Tetromino = t.NexTetromino
	t.NexTetromino = t.draw()
	t.refresh()

	if isLost(t.Locked) {
		t.State = Lost
		return
	}
	// several full rows in one lock are cleared from a single grid, see
	// the adjacent rows case in TestClearRows.
	if n := clearRows(t.Grid, t.Locked); n > 0 {
		t.LinesClear += n
		t.refresh()
	}
}

// At returns the color the cell should be rendered with, current tetromino included.
func (t *Tetris) At(x, y int) color.RGBA {
	if t.Tetromino != nil {
		ix, iy := x-t.Tetromino.X, y-t.Tetromino.Y
		if iy >= 0 && iy < len(t.Tetromino.Grid) && ix >= 0 && ix < len(t.Tetromino.Grid[iy]) && t.Tetromino.Grid[iy][ix] {
			return t.Tetromino.Color
		}
	}
	if y < 0 || y >= len(t.Grid) || x < 0 || x >= len(t.Grid[y]) {
		return Background
	}
	return t.Grid[y][x]
}

func (t *Tetris) copy() *Tetris {
	grid := make(Grid, len(t.Grid))
	for i := range t.Grid {
		grid[i] = make([]color.RGBA, len(t.Grid[i]))
		copy(grid[i], t.Grid[i])
	}
	return &Tetris{
		Locked:       maps.Clone(t.Locked),
		Grid:         grid,
		Tetromino:    t.Tetromino.copy(),
		NexTetromino: t.NexTetromino.copy(),
		LinesClear:   t.LinesClear,
		State:        t.State,
		columns:      t.columns,
		rows:         t.rows,
	}
}
