// Package window plays a session in a desktop window.
package window

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"droptris/tetris"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	welcomeMessage = "a falling blocks game"
	// previewBlock is the size of a cell of the next tetromino preview.
	previewBlock = 10
)

type state int

const (
	lobby state = iota
	playing
	lost
)

var keyActions = []struct {
	keys   []ebiten.Key
	action tetris.Action
}{
	{keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, action: tetris.MoveLeft},
	{keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, action: tetris.MoveRight},
	{keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, action: tetris.MoveDown},
	{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, action: tetris.Rotate},
	{keys: []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}, action: tetris.Exit},
}

type Options struct {
	Rand   tetris.Rand
	Logger *slog.Logger
}

// Game adapts a tetris.Game to ebiten. ebiten calls Update at a fixed
// rate, the time between calls is taken from the clock.
type Game struct {
	game      *tetris.Game
	tts       *tetris.Tetris
	state     state
	msg       string
	last      time.Time
	lostUntil time.Time
	face      font.Face
	logger    *slog.Logger

	now     func() time.Time
	pressed func(ebiten.Key) bool
}

func New(o *Options) *Game {
	return newGame(tetris.NewGame(o.Rand), o.Logger)
}

func newGame(g *tetris.Game, l *slog.Logger) *Game {
	return &Game{
		game:    g,
		tts:     g.Read(),
		msg:     welcomeMessage,
		face:    basicfont.Face7x13,
		logger:  l,
		now:     time.Now,
		pressed: inpututil.IsKeyJustPressed,
	}
}

// Run opens the window and blocks until it's closed or the player quits.
func Run(o *Options) error {
	ebiten.SetWindowSize(tetris.ScreenWidth, tetris.ScreenHeight)
	ebiten.SetWindowTitle("droptris")
	ebiten.SetTPS(tetris.FrameRate)
	if err := ebiten.RunGame(New(o)); err != nil {
		return fmt.Errorf("failed to run window: %w", err)
	}
	return nil
}

func (g *Game) Update() error {
	now := g.now()
	var elapsed time.Duration
	if !g.last.IsZero() {
		elapsed = now.Sub(g.last)
	}
	g.last = now

	switch g.state {
	case lobby:
		switch {
		case g.pressed(ebiten.KeyP):
			g.state = playing
		case g.pressed(ebiten.KeyQ) || g.pressed(ebiten.KeyEscape):
			return ebiten.Termination
		}
	case playing:
		s := g.game.Update(elapsed, actionsFrom(g.pressed))
		g.tts = g.game.Read()
		switch s {
		case tetris.Lost:
			g.logger.Debug("session lost", slog.Int("lines", g.tts.LinesClear))
			g.state = lost
			g.lostUntil = now.Add(tetris.LostPause)
		case tetris.Quit:
			g.logger.Debug("session quit", slog.Int("lines", g.tts.LinesClear))
			g.toLobby(welcomeMessage)
		}
	case lost:
		if !now.Before(g.lostUntil) {
			g.toLobby(fmt.Sprintf("you cleared %d lines", g.tts.LinesClear))
		}
	}
	return nil
}

func (g *Game) toLobby(msg string) {
	g.state = lobby
	g.msg = msg
	g.game.Restart()
}

// actionsFrom returns the actions of the keys pressed in this frame.
func actionsFrom(pressed func(ebiten.Key) bool) []tetris.Action {
	var actions []tetris.Action
	for _, ka := range keyActions {
		for _, k := range ka.keys {
			if pressed(k) {
				actions = append(actions, ka.action)
				break
			}
		}
	}
	return actions
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(tetris.Background)
	for y := range tetris.Rows {
		for x := range tetris.Columns {
			if c := g.tts.At(x, y); c != tetris.Background {
				drawBlock(screen, x*tetris.BlockSize, y*tetris.BlockSize, tetris.BlockSize, c)
			}
		}
	}
	drawGridLines(screen)

	if next := g.tts.NexTetromino; next != nil {
		left := tetris.ScreenWidth - 4*previewBlock - 5
		for iy, row := range next.Grid {
			for ix, v := range row {
				if v {
					drawBlock(screen, left+ix*previewBlock, 5+iy*previewBlock, previewBlock, next.Color)
				}
			}
		}
	}
	text.Draw(screen, fmt.Sprintf("Lines %d", g.tts.LinesClear), g.face, 5, 15, color.White)

	switch g.state {
	case lobby:
		g.drawCentered(screen, "droptris", tetris.ScreenHeight/2-20, color.White)
		g.drawCentered(screen, g.msg, tetris.ScreenHeight/2, color.White)
		g.drawCentered(screen, "(p)lay  (q)uit", tetris.ScreenHeight/2+20, color.White)
	case lost:
		g.drawCentered(screen, "YOU LOST", tetris.ScreenHeight/2, tetris.Red)
	}
}

func (g *Game) Layout(int, int) (int, int) {
	return tetris.ScreenWidth, tetris.ScreenHeight
}

func (g *Game) drawCentered(screen *ebiten.Image, s string, y int, clr color.Color) {
	w := font.MeasureString(g.face, s).Ceil()
	text.Draw(screen, s, g.face, (tetris.ScreenWidth-w)/2, y, clr)
}

func drawBlock(screen *ebiten.Image, x, y, size int, c color.RGBA) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(size), float32(size), c, false)
}

func drawGridLines(screen *ebiten.Image) {
	for x := 0; x <= tetris.Columns; x++ {
		fx := float32(x * tetris.BlockSize)
		vector.StrokeLine(screen, fx, 0, fx, tetris.ScreenHeight, 1, tetris.Gray, false)
	}
	for y := 0; y <= tetris.Rows; y++ {
		fy := float32(y * tetris.BlockSize)
		vector.StrokeLine(screen, 0, fy, tetris.ScreenWidth, fy, 1, tetris.Gray, false)
	}
}
