package tetris_test

import (
	"droptris/tetris"
	"testing"
	"time"
)

func repeat(a tetris.Action, n int) []tetris.Action {
	actions := make([]tetris.Action, n)
	for i := range actions {
		actions[i] = a
	}
	return actions
}

func TestGravity(t *testing.T) {
	t.Run("I tetromino falls until it locks on the floor", func(t *testing.T) {
		game := tetris.NewTestGame(tetris.NewTestTetris(tetris.I))
		for i := range tetris.Rows - 1 {
			game.Update(tetris.FallInterval, nil)
			if y := game.Read().Tetromino.Y; y != i+1 {
				t.Fatalf("wanted Y to be %d after %d ticks, got %d", i+1, i+1, y)
			}
		}
		if l := len(game.Read().Locked); l != 0 {
			t.Fatalf("wanted no locked positions before landing, got %d", l)
		}

		if s := game.Update(tetris.FallInterval, nil); s != tetris.Running {
			t.Errorf("wanted state running, got %v", s)
		}
		locked := game.Read().Locked
		if len(locked) != 4 {
			t.Fatalf("wanted 4 locked positions, got %d", len(locked))
		}
		for x := 3; x <= 6; x++ {
			c, ok := locked[tetris.Point{X: x, Y: tetris.Rows - 1}]
			if !ok || c != tetris.Palette[0] {
				t.Errorf("wanted %d,%d to be locked with %v, got %v", x, tetris.Rows-1, tetris.Palette[0], c)
			}
		}
		if y := game.Read().Tetromino.Y; y != 0 {
			t.Errorf("wanted next tetromino at the top, got Y %d", y)
		}
	})

	t.Run("elapsed time accumulates until the fall interval", func(t *testing.T) {
		game := tetris.NewTestGame(tetris.NewTestTetris(tetris.T))
		game.Update(100*time.Millisecond, nil)
		game.Update(100*time.Millisecond, nil)
		if y := game.Read().Tetromino.Y; y != 0 {
			t.Fatalf("wanted Y to be 0 before the fall interval, got %d", y)
		}
		game.Update(100*time.Millisecond, nil)
		if y := game.Read().Tetromino.Y; y != 1 {
			t.Fatalf("wanted Y to be 1 after the fall interval, got %d", y)
		}
		// the accumulator restarts after every fall.
		game.Update(200*time.Millisecond, nil)
		if y := game.Read().Tetromino.Y; y != 1 {
			t.Errorf("wanted Y to stay at 1, got %d", y)
		}
	})
}

func TestActions(t *testing.T) {
	tests := []struct {
		name         string
		actions      []tetris.Action
		wantX, wantY int
	}{
		{name: "left", actions: []tetris.Action{tetris.MoveLeft}, wantX: 3},
		{name: "left against the wall", actions: repeat(tetris.MoveLeft, 10), wantX: 0},
		{name: "right", actions: []tetris.Action{tetris.MoveRight}, wantX: 5},
		{name: "right against the wall", actions: repeat(tetris.MoveRight, 10), wantX: 7},
		{name: "down", actions: []tetris.Action{tetris.MoveDown}, wantX: 4, wantY: 1},
		{name: "rotate", actions: []tetris.Action{tetris.Rotate}, wantX: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			game := tetris.NewTestGame(tetris.NewTestTetris(tetris.T))
			game.Update(0, tt.actions)
			tm := game.Read().Tetromino
			if tm.X != tt.wantX || tm.Y != tt.wantY {
				t.Errorf("wanted tetromino at %d,%d, got %d,%d", tt.wantX, tt.wantY, tm.X, tm.Y)
			}
		})
	}

	t.Run("soft drop never locks the tetromino", func(t *testing.T) {
		game := tetris.NewTestGame(tetris.NewTestTetris(tetris.I))
		game.Update(0, repeat(tetris.MoveDown, tetris.Rows+5))
		if y := game.Read().Tetromino.Y; y != tetris.Rows-1 {
			t.Fatalf("wanted tetromino on the floor, got Y %d", y)
		}
		if l := len(game.Read().Locked); l != 0 {
			t.Fatalf("wanted no locked positions after soft drop, got %d", l)
		}
		// the next gravity tick locks it.
		game.Update(tetris.FallInterval, nil)
		if l := len(game.Read().Locked); l != 4 {
			t.Errorf("wanted 4 locked positions, got %d", l)
		}
	})

	t.Run("exit ends the session before locking", func(t *testing.T) {
		game := tetris.NewTestGame(tetris.NewTestTetris(tetris.I))
		game.Update(0, repeat(tetris.MoveDown, tetris.Rows))
		if s := game.Update(tetris.FallInterval, []tetris.Action{tetris.Exit, tetris.MoveLeft}); s != tetris.Quit {
			t.Fatalf("wanted state quit, got %v", s)
		}
		if l := len(game.Read().Locked); l != 0 {
			t.Errorf("wanted no locked positions, got %d", l)
		}
		if x := game.Read().Tetromino.X; x != 3 {
			t.Errorf("wanted actions after exit to be ignored, got X %d", x)
		}
	})

	t.Run("actions in the landing frame move the tetromino before it locks", func(t *testing.T) {
		game := tetris.NewTestGame(tetris.NewTestTetris(tetris.I))
		game.Update(0, repeat(tetris.MoveDown, tetris.Rows))
		game.Update(tetris.FallInterval, []tetris.Action{tetris.MoveLeft})
		locked := game.Read().Locked
		if _, ok := locked[tetris.Point{X: 2, Y: tetris.Rows - 1}]; !ok {
			t.Errorf("wanted the moved tetromino to be locked, got %v", locked)
		}
	})
}

func TestGameOver(t *testing.T) {
	// .	0 1 2 3 4 5 6 7 8 9
	// 0	. . . . O O . . . .
	// 1	. . . . O O . . . .
	// 2	. . . . X . . . . .
	tts := tetris.NewTestTetris(tetris.O)
	tts.Locked[tetris.Point{X: 4, Y: 2}] = tetris.Red
	game := tetris.NewTestGame(tts)

	if s := game.Update(tetris.FallInterval, nil); s != tetris.Lost {
		t.Fatalf("wanted state lost, got %v", s)
	}
	if game.State() != tetris.Lost {
		t.Errorf("wanted State() to be lost, got %v", game.State())
	}

	before := game.Read()
	if s := game.Update(tetris.FallInterval, []tetris.Action{tetris.MoveLeft}); s != tetris.Lost {
		t.Errorf("wanted a lost game to stay lost, got %v", s)
	}
	if after := game.Read(); after.Tetromino.X != before.Tetromino.X || after.Tetromino.Y != before.Tetromino.Y {
		t.Errorf("wanted a lost game to ignore updates")
	}
}

func TestRestart(t *testing.T) {
	game := tetris.NewGame(tetris.NewRand(1))
	game.Update(0, repeat(tetris.MoveDown, tetris.Rows))
	game.Update(tetris.FallInterval, nil)
	if len(game.Read().Locked) == 0 {
		t.Fatalf("wanted locked positions before restarting")
	}
	game.Restart()
	tts := game.Read()
	if len(tts.Locked) != 0 {
		t.Errorf("wanted no locked positions after restart, got %d", len(tts.Locked))
	}
	if tts.State != tetris.Running || tts.LinesClear != 0 {
		t.Errorf("wanted a new running session, got %v with %d lines", tts.State, tts.LinesClear)
	}
	if tts.Tetromino == nil || tts.NexTetromino == nil {
		t.Errorf("wanted current and next tetromino after restart")
	}
}

func TestReadIsACopy(t *testing.T) {
	game := tetris.NewTestGame(tetris.NewTestTetris(tetris.J))
	r := game.Read()
	r.Tetromino.X = 0
	r.Locked[tetris.Point{X: 0, Y: 0}] = tetris.Red
	if game.Read().Tetromino.X == 0 || len(game.Read().Locked) != 0 {
		t.Errorf("wanted Read() to return a copy")
	}
}

func TestMockTicker(t *testing.T) {
	ticker := tetris.NewMockTicker()
	go ticker.Advance(time.Second)
	first := <-ticker.C()
	go ticker.Advance(time.Second)
	second := <-ticker.C()
	if d := second.Sub(first); d != time.Second {
		t.Errorf("wanted ticks one second apart, got %v", d)
	}
	ticker.Stop()
	if !ticker.IsStop() {
		t.Errorf("Expected ticker to be stopped")
	}
}
