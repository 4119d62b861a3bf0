// Package terminal renders sessions to an ANSI terminal.
package terminal

import (
	_ "embed"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"strings"
	"text/template"
	"unicode/utf8"

	"droptris/pb"
	"droptris/tetris"
)

const (
	clearScreen = "\033[2J\033[H"
	resetPos    = "\033[H" // Reset cursor position to 0,0
	clearLine   = "\033[K" // Clear from the cursor to the end of the line
	bold        = "\033[1m"
	reset       = "\033[0m"

	// width of the text inside the lobby box.
	boxWidth = 32
	// first line of the lobby box, counted from 1.
	boxTop = 9
)

//go:embed "layout.tmpl"
var layout string

type templateData struct {
	Rows       [tetris.Rows][tetris.Columns]string
	Next       [2]string
	LinesClear int
	Name       string
}

type Terminal struct {
	writer   io.Writer
	logger   *slog.Logger
	template *template.Template
	name     string
}

func New(w io.Writer, l *slog.Logger, name string) (*Terminal, error) {
	tmp, err := loadTemplate()
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	return &Terminal{
		writer:   w,
		logger:   l,
		template: tmp,
		name:     name,
	}, nil
}

// Lobby draws the lobby box with msg over whatever is on the screen.
func (t *Terminal) Lobby(msg string) {
	line := func(n int, s string) {
		fmt.Fprintf(t.writer, "\033[%d;2H%s", boxTop+n, s)
	}
	border := "+" + strings.Repeat("-", boxWidth) + "+"
	line(0, border)
	line(1, "|"+bold+center("Welcome to droptris", boxWidth)+reset+"|")
	line(2, "|"+center(msg, boxWidth)+"|")
	line(3, "|"+center("(p)lay  (w)atch  (q)uit", boxWidth)+"|")
	line(4, border)
}

func (t *Terminal) Local(tts *tetris.Tetris) {
	t.execute(&templateData{
		Rows:       localStack(tts),
		Next:       nextPiece(tts.NexTetromino),
		LinesClear: tts.LinesClear,
		Name:       t.name,
	})
}

func (t *Terminal) Remote(f *pb.Frame) {
	t.execute(&templateData{
		Rows:       remoteStack(f),
		Next:       remoteNext(f),
		LinesClear: int(f.GetLinesClear()),
		Name:       "watching " + f.GetName(),
	})
	if f.GetLost() {
		t.Lost()
	}
}

// Lost draws the game over banner in the middle of the board.
func (t *Terminal) Lost() {
	red := tetris.Red
	fmt.Fprintf(t.writer, "\033[%d;2H%s\x1b[38;2;%d;%d;%dm%s%s", tetris.Rows/2+1, bold, red.R, red.G, red.B, center("YOU LOST", tetris.Columns*2), reset)
}

func (t *Terminal) Reset() {
	fmt.Fprint(t.writer, clearScreen)
}

func (t *Terminal) execute(td *templateData) {
	fmt.Fprint(t.writer, resetPos)
	if err := t.template.Execute(t.writer, td); err != nil {
		t.logger.Error("unable to execute template", slog.String("error", err.Error()))
	}
}

func loadTemplate() (*template.Template, error) {
	// we use the console raw so new lines don't automatically transform into carriage return
	// to fix that we add a carriage return to every new line in the layout. Lines are cleared
	// to the end so shorter texts don't leave leftovers from the previous frame.
	l := strings.ReplaceAll(layout, "\n", clearLine+"\r\n")
	return template.New("layout").Parse(l)
}

func cell(c color.RGBA) string {
	if c == tetris.Background {
		g := tetris.Gray
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm. \x1b[0m", g.R, g.G, g.B)
	}
	return fmt.Sprintf("\x1b[7m\x1b[38;2;%d;%d;%dm[]\x1b[0m", c.R, c.G, c.B)
}

func localStack(tts *tetris.Tetris) [tetris.Rows][tetris.Columns]string {
	rendered := [tetris.Rows][tetris.Columns]string{}
	for y := range tetris.Rows {
		for x := range tetris.Columns {
			rendered[y][x] = cell(tts.At(x, y))
		}
	}
	return rendered
}

func remoteStack(f *pb.Frame) [tetris.Rows][tetris.Columns]string {
	rendered := [tetris.Rows][tetris.Columns]string{}
	rows := f.GetRows()
	for y := range tetris.Rows {
		var cells []uint32
		if y < len(rows) {
			cells = rows[y].GetCells()
		}
		for x := range tetris.Columns {
			var v uint32
			if x < len(cells) {
				v = cells[x]
			}
			rendered[y][x] = cell(tetris.FromRGB(v))
		}
	}
	return rendered
}

// nextPiece renders the first two rows of the next tetromino, 4 cells wide.
func nextPiece(tm *tetris.Tetromino) [2]string {
	rendered := [2]string{}
	for i := range rendered {
		row := []string{"  ", "  ", "  ", "  "}
		if tm != nil && i < len(tm.Grid) {
			for iv, v := range tm.Grid[i] {
				if v && iv < len(row) {
					row[iv] = cell(tm.Color)
				}
			}
		}
		rendered[i] = strings.Join(row, "")
	}
	return rendered
}

func remoteNext(f *pb.Frame) [2]string {
	rendered := [2]string{}
	next := f.GetNext()
	for i := range rendered {
		row := []string{"  ", "  ", "  ", "  "}
		if i < len(next) {
			for iv, v := range next[i].GetCells() {
				if v != 0 && iv < len(row) {
					row[iv] = cell(tetris.FromRGB(v))
				}
			}
		}
		rendered[i] = strings.Join(row, "")
	}
	return rendered
}

// center pads s with spaces to width, truncating it when it doesn't fit.
func center(s string, width int) string {
	if utf8.RuneCountInString(s) > width {
		s = string([]rune(s)[:width])
	}
	n := utf8.RuneCountInString(s)
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
