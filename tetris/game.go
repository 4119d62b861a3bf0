package tetris

import "time"

type Action string

const (
	MoveLeft  Action = "left"   // Moves the Tetromino one step to the left.
	MoveRight Action = "right"  // Moves the Tetromino one step to the right.
	MoveDown  Action = "down"   // Moves the Tetromino one step down.
	Rotate    Action = "rotate" // Rotates the Tetromino clockwise.
	Exit      Action = "exit"   // Ends the session right away.
)

const (
	// FallInterval is the time it takes gravity to move the Tetromino one row.
	FallInterval = 270 * time.Millisecond
	// LostPause is how long the game over message stays before the session ends.
	LostPause = 1500 * time.Millisecond
	// FrameRate is the amount of frames per second the drivers aim for.
	FrameRate = 60
)

// Ticker paces the frames of a game.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type wrappedTicker struct {
	ticker *time.Ticker
}

// NewTicker returns a Ticker that fires at the game's frame rate.
func NewTicker() Ticker {
	return &wrappedTicker{ticker: time.NewTicker(time.Second / FrameRate)}
}

func (t *wrappedTicker) C() <-chan time.Time { return t.ticker.C }
func (t *wrappedTicker) Stop()               { t.ticker.Stop() }

// Game runs the frames of a session. It is not safe for concurrent use:
// a single driver goroutine owns it and hands copies from Read() around.
type Game struct {
	tetris      *Tetris
	rand        Rand
	fallTime    time.Duration
	lockPending bool
}

func NewGame(r Rand) *Game {
	return &Game{
		tetris: newTetris(r),
		rand:   r,
	}
}

// Restart drops the current session and starts a new one with an empty playfield.
func (g *Game) Restart() {
	g.tetris = newTetris(g.rand)
	g.fallTime = 0
	g.lockPending = false
}

// Update runs a single frame. elapsed is the time since the previous frame
// and actions are the inputs received since then, in order.
//
// A frame rebuilds the grid, applies gravity, applies the actions and, if the
// Tetromino landed, locks it and brings in the next one.
func (g *Game) Update(elapsed time.Duration, actions []Action) State {
	t := g.tetris
	if t.State != Running {
		return t.State
	}
	t.refresh()

	g.fallTime += elapsed
	if g.fallTime >= FallInterval {
		if t.fall() {
			g.lockPending = true
		}
		g.fallTime = 0
	}

	for _, a := range actions {
		switch a {
		case Exit:
			t.State = Quit
			return t.State
		case MoveLeft:
			t.left()
		case MoveRight:
			t.right()
		case MoveDown:
			t.down()
		case Rotate:
			t.rotate()
		}
	}

	if g.lockPending {
		t.lock()
		g.lockPending = false
	}
	return t.State
}

func (g *Game) State() State {
	return g.tetris.State
}

// Read returns a copy of the current session that's safe to hand to other goroutines.
func (g *Game) Read() *Tetris {
	return g.tetris.copy()
}
