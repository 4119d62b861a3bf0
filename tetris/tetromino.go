package tetris

import "image/color"

// Shape names one of the seven base matrices.
type Shape string

const (
	I Shape = "I"
	T Shape = "T"
	O Shape = "O"
	S Shape = "S"
	Z Shape = "Z"
	L Shape = "L"
	J Shape = "J"
)

// Shapes lists every shape in draw order.
var Shapes = []Shape{I, T, O, S, Z, L, J}

/*
.	Base matrices. X marks an occupied cell.

.	I			T			O		S			Z			L			J
.	X X X X		X X X		X X		. X X		X X .		X X X		X X X
.				. X .		X X		X X .		. X X		X . .		. . X
*/
var shapeMap = map[Shape][][]bool{
	I: {
		{true, true, true, true},
	},
	T: {
		{true, true, true},
		{false, true, false},
	},
	O: {
		{true, true},
		{true, true},
	},
	S: {
		{false, true, true},
		{true, true, false},
	},
	Z: {
		{true, true, false},
		{false, true, true},
	},
	L: {
		{true, true, true},
		{true, false, false},
	},
	J: {
		{true, true, true},
		{false, false, true},
	},
}

// Point is a grid cell. X grows to the right, Y grows downwards.
type Point struct {
	X, Y int
}

type Tetromino struct {
	Grid  [][]bool
	Shape Shape
	Color color.RGBA
	X, Y  int
}

// newTetromino spawns a piece at the top of a board with the given amount
// of columns. Only the width of the first row is used to center it.
func newTetromino(s Shape, c color.RGBA, columns int) *Tetromino {
	base := shapeMap[s]
	return &Tetromino{
		Grid:  copyGrid(base),
		Shape: s,
		Color: c,
		X:     columns/2 - len(base[0])/2,
		Y:     0,
	}
}

// rotate turns the grid 90 degrees clockwise: rows are reversed, then transposed.
//
//	X X X		X X
//	X . .	->	. X
//				. X
func (t *Tetromino) rotate() {
	rows := len(t.Grid)
	cols := len(t.Grid[0])
	rotated := make([][]bool, cols)
	for c := range cols {
		rotated[c] = make([]bool, rows)
		for r := range rows {
			rotated[c][r] = t.Grid[rows-1-r][c]
		}
	}
	t.Grid = rotated
}

// cells returns the absolute coordinates of every occupied cell.
func (t *Tetromino) cells() []Point {
	var p []Point
	for iy, row := range t.Grid {
		for ix, c := range row {
			if c {
				p = append(p, Point{X: t.X + ix, Y: t.Y + iy})
			}
		}
	}
	return p
}

func (t *Tetromino) copy() *Tetromino {
	if t == nil {
		return nil
	}
	return &Tetromino{
		Grid:  copyGrid(t.Grid),
		Shape: t.Shape,
		Color: t.Color,
		X:     t.X,
		Y:     t.Y,
	}
}

func copyGrid(g [][]bool) [][]bool {
	c := make([][]bool, len(g))
	for i := range g {
		c[i] = make([]bool, len(g[i]))
		copy(c[i], g[i])
	}
	return c
}
