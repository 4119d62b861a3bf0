// Package client drives a session from the keyboard: the lobby, the frame
// loop of a local game and watching the sessions of a spectator server.
package client

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"droptris/pb"
	"droptris/terminal"
	"droptris/tetris"

	"github.com/eiannone/keyboard"
)

const (
	welcomeMessage = "a falling blocks game"
	requestTimeout = 3 * time.Second
)

type renderer interface {
	Lobby(msg string)
	Local(*tetris.Tetris)
	Remote(*pb.Frame)
	Lost()
	Reset()
}

type game interface {
	Update(elapsed time.Duration, actions []tetris.Action) tetris.State
	Read() *tetris.Tetris
	Restart()
}

type Client struct {
	game   game
	render renderer
	ticker tetris.Ticker
	kbCh   <-chan keyboard.KeyEvent
	remote *Remote
	logger *slog.Logger
	sleep  func(time.Duration)
}

type Options struct {
	// Address of the spectator server. Empty disables publishing and watching.
	Address string
	Name    string
	Seed    uint64
}

func New(l *slog.Logger, o *Options) (*Client, error) {
	r, err := terminal.New(os.Stdout, l, o.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to load renderer: %w", err)
	}
	var remote *Remote
	if o.Address != "" {
		remote, err = NewRemote(o.Address, o.Name, l)
		if err != nil {
			return nil, fmt.Errorf("failed to create remote client: %w", err)
		}
	}
	kb, err := keyboard.GetKeys(20)
	if err != nil {
		return nil, fmt.Errorf("failed to open keyboard: %w", err)
	}
	return &Client{
		game:   tetris.NewGame(tetris.NewRand(o.Seed)),
		render: r,
		ticker: tetris.NewTicker(),
		kbCh:   kb,
		remote: remote,
		logger: l,
		sleep:  time.Sleep,
	}, nil
}

// Close releases the keyboard and the connection to the spectator server.
func (c *Client) Close() {
	c.ticker.Stop()
	if err := keyboard.Close(); err != nil {
		c.logger.Error("unable to close keyboard", slog.String("error", err.Error()))
	}
	if c.remote != nil {
		if err := c.remote.Close(); err != nil {
			c.logger.Error("unable to close gRPC client", slog.String("error", err.Error()))
		}
	}
}

// Start runs the lobby until the player quits.
func (c *Client) Start() {
	c.render.Reset()
	c.render.Local(c.game.Read())
	msg := welcomeMessage
	for {
		c.render.Lobby(msg)
		event, ok := <-c.kbCh
		if !ok {
			c.logger.Error("Keyboard events channel closed unexpectedly")
			return
		}
		if event.Err != nil {
			c.logger.Error("keysEvents error", slog.String("error", event.Err.Error()))
			return
		}
		switch {
		case event.Key == keyboard.KeyCtrlC || event.Key == keyboard.KeyEsc || event.Rune == 'q':
			return
		case event.Rune == 'p':
			msg = c.play()
		case event.Rune == 'w':
			msg = c.watch()
		}
	}
}

// play runs the frame loop of the current game until it's lost or the
// player quits, and returns the message for the lobby.
func (c *Client) play() string {
	c.render.Reset()
	defer c.game.Restart()

	var pub *Publisher
	if c.remote != nil {
		var err error
		pub, err = c.remote.Publish(context.Background())
		if err != nil {
			c.logger.Error("unable to publish the session", slog.String("error", err.Error()))
		}
	}
	defer pub.Close()

	var last time.Time
	for {
		now := <-c.ticker.C()
		var elapsed time.Duration
		if !last.IsZero() {
			elapsed = now.Sub(last)
		}
		last = now

		state := c.game.Update(elapsed, c.actions())
		tts := c.game.Read()
		switch state {
		case tetris.Quit:
			c.logger.Debug("session quit", slog.Int("lines", tts.LinesClear))
			return welcomeMessage
		case tetris.Lost:
			pub.Send(tts)
			c.render.Local(tts)
			c.render.Lost()
			c.logger.Debug("session lost", slog.Int("lines", tts.LinesClear))
			c.sleep(tetris.LostPause)
			// keys pressed during the pause don't belong to the lobby.
			c.actions()
			return fmt.Sprintf("you cleared %d lines", tts.LinesClear)
		default:
			pub.Send(tts)
			c.render.Local(tts)
		}
	}
}

// actions drains the keyboard events received since the previous frame.
func (c *Client) actions() []tetris.Action {
	var actions []tetris.Action
	for {
		select {
		case event, ok := <-c.kbCh:
			if !ok {
				c.logger.Error("Keyboard events channel closed unexpectedly")
				return append(actions, tetris.Exit)
			}
			if event.Err != nil {
				c.logger.Error("keysEvents error", slog.String("error", event.Err.Error()))
				return append(actions, tetris.Exit)
			}
			if a, ok := action(event); ok {
				actions = append(actions, a)
			}
		default:
			return actions
		}
	}
}

func action(event keyboard.KeyEvent) (tetris.Action, bool) {
	switch {
	case event.Key == keyboard.KeyArrowDown || event.Rune == 's':
		return tetris.MoveDown, true
	case event.Key == keyboard.KeyArrowLeft || event.Rune == 'a':
		return tetris.MoveLeft, true
	case event.Key == keyboard.KeyArrowRight || event.Rune == 'd':
		return tetris.MoveRight, true
	case event.Key == keyboard.KeyArrowUp || event.Rune == 'w':
		return tetris.Rotate, true
	case event.Key == keyboard.KeyCtrlC || event.Key == keyboard.KeyEsc || event.Rune == 'q':
		return tetris.Exit, true
	}
	return "", false
}

// watch renders the first running session of the server until it ends or
// the player leaves, and returns the message for the lobby.
func (c *Client) watch() string {
	if c.remote == nil {
		return "no server to watch from"
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	sessions, err := c.remote.List(ctx)
	cancel()
	if err != nil {
		c.logger.Error("unable to list sessions", slog.String("error", err.Error()))
		return "something went wrong :("
	}
	var target *pb.Session
	for _, s := range sessions {
		if !s.GetLost() {
			target = s
			break
		}
	}
	if target == nil {
		return "no sessions to watch"
	}

	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	frames, err := c.remote.Watch(ctx, target.GetId())
	if err != nil {
		c.logger.Error("unable to watch session", slog.String("error", err.Error()))
		return "something went wrong :("
	}
	c.render.Reset()
	for {
		select {
		case f, ok := <-frames:
			if !ok {
				return target.GetName() + " is gone"
			}
			c.render.Remote(f)
		case event, ok := <-c.kbCh:
			if !ok || event.Err != nil {
				c.logger.Error("keyboard failed while watching")
				return welcomeMessage
			}
			if a, ok := action(event); ok && a == tetris.Exit {
				return welcomeMessage
			}
		}
	}
}
