package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"droptris/client"
	"droptris/tetris"
	"droptris/window"

	"golang.org/x/term"
)

const (
	hideCursor = "\033[2J\033[?25l" // also clear screen
	showCursor = "\033[23;0H\n\r\033[?25h"

	logFile = "droptris.log"

	// smallest terminal the board and its side panel fit in.
	minWidth  = 40
	minHeight = 23
)

func main() {
	ui := flag.String("ui", "terminal", "user interface: terminal or window")
	addr := flag.String("addr", "", "spectator server address, empty plays offline")
	name := flag.String("name", os.Getenv("USER"), "player name shown to spectators")
	seed := flag.Uint64("seed", 0, "random seed, 0 uses the current time")
	debug := flag.Bool("debug", false, "write debug logs to "+logFile)
	flag.Parse()

	logger, closeLog := newLogger(*debug)
	defer closeLog()

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano()) //nolint:gosec
	}
	logger.Debug("starting", slog.String("ui", *ui), slog.Uint64("seed", s))

	var err error
	switch *ui {
	case "terminal":
		err = runTerminal(logger, &client.Options{Address: *addr, Name: *name, Seed: s})
	case "window":
		err = window.Run(&window.Options{Rand: tetris.NewRand(s), Logger: logger})
	default:
		err = fmt.Errorf("unknown ui %q", *ui)
	}
	if err != nil {
		closeLog()
		log.Fatal(err)
	}
}

func runTerminal(l *slog.Logger, o *client.Options) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("the terminal ui needs an interactive terminal")
	}
	if w, h, err := term.GetSize(fd); err == nil && (w < minWidth || h < minHeight) {
		return fmt.Errorf("terminal is %dx%d, at least %dx%d is needed", w, h, minWidth, minHeight)
	}

	c, err := client.New(l, o)
	if err != nil {
		return fmt.Errorf("unable to start client: %w", err)
	}
	restore, err := startRawConsole()
	if err != nil {
		c.Close()
		return err
	}
	c.Start()
	c.Close()
	return restore()
}

func newLogger(debug bool) (*slog.Logger, func()) {
	if !debug {
		return slog.New(slog.DiscardHandler), func() {}
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("unable to open log file: %v", err)
	}
	return slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})), func() { f.Close() }
}

func startRawConsole() (func() error, error) {
	fmt.Print(hideCursor)
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("error setting terminal to raw mode: %w", err)
	}

	return func() error {
		defer fmt.Print(showCursor)
		if err := term.Restore(int(os.Stdin.Fd()), oldState); err != nil {
			return fmt.Errorf("unable to restore the terminal original state: %w", err)
		}
		return nil
	}, nil
}
