package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"droptris/pb"
	"droptris/server"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
)

const defaultListen = ":9000"

func main() {
	// .env is optional, the environment wins over it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("failed to load .env: %v", err)
	}
	listen := os.Getenv("TETRIS_LISTEN")
	if listen == "" {
		listen = defaultListen
	}
	addr := flag.String("listen", listen, "address to listen on, overrides TETRIS_LISTEN")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}
	s := grpc.NewServer()
	pb.RegisterSpectatorServiceServer(s, server.New(logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		logger.Info("stopping server")
		// watchers never end on their own, so there's nothing to wait for.
		s.Stop()
	}()

	logger.Info("starting server", slog.String("addr", lis.Addr().String()))
	if err := s.Serve(lis); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
