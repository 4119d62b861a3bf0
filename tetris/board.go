package tetris

import (
	"image/color"
	"slices"
)

const (
	ScreenWidth  = 300
	ScreenHeight = 600
	BlockSize    = 30

	// Columns and Rows are the size of the playfield in cells.
	Columns = ScreenWidth / BlockSize
	Rows    = ScreenHeight / BlockSize
)

// Locked holds every block that has been placed, keyed by its cell.
type Locked map[Point]color.RGBA

// Grid is the playfield projected from the locked blocks.
//
//	.	0 1 2 3 4 5 6 7 8 9
//	0	. . . . . . . . . .		<- spawn row
//	1	. . . . . . . . . .
//	..
//	19	. . . . . . . . . .		<- floor
//
// Grid[y][x] is the color of a cell. Empty cells hold Background.
type Grid [][]color.RGBA

// newGrid builds a fresh grid out of the locked positions. Locked blocks
// outside of the playfield are not projected.
func newGrid(locked Locked, columns, rows int) Grid {
	g := make(Grid, rows)
	for y := range g {
		g[y] = make([]color.RGBA, columns)
		for x := range g[y] {
			g[y][x] = Background
		}
	}
	for p, c := range locked {
		if p.Y >= 0 && p.Y < rows && p.X >= 0 && p.X < columns {
			g[p.Y][p.X] = c
		}
	}
	return g
}

// isValid reports whether the tetromino fits in the grid: every occupied
// cell must be inside the playfield and on top of an empty cell.
func isValid(t *Tetromino, g Grid) bool {
	for iy, row := range t.Grid {
		for ix, c := range row {
			if !c {
				continue
			}
			x, y := t.X+ix, t.Y+iy
			if y < 0 || y >= len(g) || x < 0 || x >= len(g[y]) {
				return false
			}
			if g[y][x] != Background {
				return false
			}
		}
	}
	return true
}

// clearRows removes the full rows of the grid from the locked positions and
// moves everything above each of them one row down. Rows are visited from
// the bottom up and the amount of cleared rows is returned.
//
// The grid is not rebuilt while clearing: every row cleared below y has
// already moved row y down by one, so its blocks are found at y+cleared.
func clearRows(g Grid, locked Locked) int {
	var cleared int
	for y := len(g) - 1; y >= 0; y-- {
		if slices.Contains(g[y], Background) {
			continue
		}
		at := y + cleared
		cleared++

		for x := range g[y] {
			delete(locked, Point{X: x, Y: at})
		}

		// move from the lowest block upwards so a shifted block never
		// lands on one that hasn't been moved yet.
		var above []Point
		for p := range locked {
			if p.Y < at {
				above = append(above, p)
			}
		}
		slices.SortFunc(above, func(a, b Point) int { return b.Y - a.Y })
		for _, p := range above {
			locked[Point{X: p.X, Y: p.Y + 1}] = locked[p]
			delete(locked, p)
		}
	}
	return cleared
}

// isLost reports whether any block has been locked into the top row.
func isLost(locked Locked) bool {
	for p := range locked {
		if p.Y < 1 {
			return true
		}
	}
	return false
}
