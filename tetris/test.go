package tetris

import (
	"sync"
	"time"
)

// MockTicker is a mock implementation of the Ticker interface.
// Every Advance() delivers a tick that is d later than the previous one.
type MockTicker struct {
	ch   chan time.Time
	now  time.Time
	stop bool
	mu   sync.Mutex
}

func NewMockTicker() *MockTicker {
	return &MockTicker{ch: make(chan time.Time), now: time.Unix(0, 0)}
}

func (m *MockTicker) C() <-chan time.Time { return m.ch }

func (m *MockTicker) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	now := m.now
	m.mu.Unlock()
	m.ch <- now
}

func (m *MockTicker) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stop = true
}

func (m *MockTicker) IsStop() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stop
}

// SequenceRand returns the given values in a loop, modulo n.
type SequenceRand struct {
	values []int
	i      int
}

func NewSequenceRand(values ...int) *SequenceRand {
	return &SequenceRand{values: values}
}

func (s *SequenceRand) IntN(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.i%len(s.values)]
	s.i++
	return v % n
}

// NewTestTetris creates an empty session where both the current and the next
// Tetromino are of the given shape, colored with the first palette color.
func NewTestTetris(shape Shape) *Tetris {
	t := &Tetris{
		Locked:  make(Locked),
		columns: Columns,
		rows:    Rows,
		rand:    NewSequenceRand(0),
	}
	t.refresh()
	t.Tetromino = newTetromino(shape, Palette[0], Columns)
	t.NexTetromino = newTetromino(shape, Palette[0], Columns)
	return t
}

// NewTestGame creates a game around a specific TestTetris.
func NewTestGame(t *Tetris) *Game {
	return &Game{tetris: t, rand: t.rand}
}
