package client

import (
	"context"
	"log"
	"log/slog"
	"net"
	"testing"
	"time"

	"droptris/pb"
	"droptris/server"
	"droptris/tetris"

	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
)

func TestFrame2Proto(t *testing.T) {
	tts := tetris.NewTestTetris(tetris.J)
	tts.Locked[tetris.Point{X: 0, Y: 19}] = tetris.Red
	tts.Grid[19][0] = tetris.Red
	tts.LinesClear = 2

	want := &pb.Frame{
		SessionId:  "id",
		Name:       "name",
		Rows:       make([]*pb.Row, tetris.Rows),
		LinesClear: 2,
		Next: []*pb.Row{
			{Cells: []uint32{0x00ffff, 0x00ffff, 0x00ffff}},
			{Cells: []uint32{0, 0, 0x00ffff}},
		},
	}
	for i := range want.Rows {
		want.Rows[i] = &pb.Row{Cells: make([]uint32, tetris.Columns)}
	}
	// the current tetromino is part of the rows.
	want.Rows[0].Cells[4] = 0x00ffff
	want.Rows[0].Cells[5] = 0x00ffff
	want.Rows[0].Cells[6] = 0x00ffff
	want.Rows[1].Cells[6] = 0x00ffff
	want.Rows[19].Cells[0] = 0xff0000

	got := frame2Proto(tts, "id", "name")
	if !proto.Equal(want, got) {
		t.Errorf("want %v, got %v", want, got)
	}

	tts.State = tetris.Lost
	if !frame2Proto(tts, "id", "name").GetLost() {
		t.Errorf("wanted a lost session to produce a lost frame")
	}
}

func TestNilPublisher(t *testing.T) {
	var p *Publisher
	p.Send(tetris.NewTestTetris(tetris.T))
	p.Close()
}

func TestPublishAndWatch(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	lis, stop := testServer(t)
	defer stop()
	player := testRemote(t, lis, "alice")
	spectator := testRemote(t, lis, "bob")

	pub, err := player.Publish(ctx)
	if err != nil {
		t.Fatalf("unable to publish: %v", err)
	}
	tts := tetris.NewTestTetris(tetris.T)
	pub.Send(tts)

	// wait for the first frame to reach the server.
	var sessions []*pb.Session
	for {
		sessions, err = spectator.List(ctx)
		if err != nil {
			t.Fatalf("unable to list sessions: %v", err)
		}
		if len(sessions) == 1 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if sessions[0].GetId() != pub.ID || sessions[0].GetName() != "alice" {
		t.Fatalf("wanted session %s of alice, got %v", pub.ID, sessions[0])
	}

	frames, err := spectator.Watch(ctx, pub.ID)
	if err != nil {
		t.Fatalf("unable to watch: %v", err)
	}
	first := <-frames
	if !proto.Equal(first, frame2Proto(tts, pub.ID, "alice")) {
		t.Errorf("wanted the latest frame first, got %v", first)
	}

	tts.LinesClear = 4
	pub.Send(tts)
	if f := <-frames; f.GetLinesClear() != 4 {
		t.Errorf("wanted 4 lines, got %d", f.GetLinesClear())
	}

	pub.Close()
	if _, ok := <-frames; ok {
		t.Errorf("wanted the watch channel to close with the session")
	}
}

func TestPublishWithoutFrames(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	lis, stop := testServer(t)
	defer stop()
	player := testRemote(t, lis, "alice")

	pub, err := player.Publish(ctx)
	if err != nil {
		t.Fatalf("unable to publish: %v", err)
	}
	// quitting before the first frame still ends the session.
	pub.Close()

	for {
		sessions, err := player.List(ctx)
		if err != nil {
			t.Fatalf("unable to list sessions: %v", err)
		}
		if len(sessions) == 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func testServer(t *testing.T) (*bufconn.Listener, func()) {
	t.Helper()
	lis := bufconn.Listen(1024 * 1024)
	s := grpc.NewServer()
	pb.RegisterSpectatorServiceServer(s, server.New(slog.New(slog.DiscardHandler)))
	go func() {
		if err := s.Serve(lis); err != nil {
			log.Printf("unable to serve: %v", err)
		}
	}()
	return lis, s.Stop
}

func testRemote(t *testing.T, lis *bufconn.Listener, name string) *Remote {
	t.Helper()
	r, err := NewRemote("passthrough:///bufnet", name, slog.New(slog.DiscardHandler),
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return lis.Dial()
		}))
	if err != nil {
		t.Fatalf("unable to create remote: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}
