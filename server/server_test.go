package server

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net"
	"testing"
	"time"

	"droptris/pb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func TestOpenAndList(t *testing.T) {
	ctx := context.Background()
	client, closer := testServer(ctx)
	defer closer()

	tests := []struct {
		name     string
		request  string
		wantName string
	}{
		{name: "named session", request: "alice", wantName: "alice"},
		{name: "empty name gets a default", request: "", wantName: defaultName},
	}
	ids := make(map[string]string)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := client.Open(ctx, &pb.OpenRequest{Name: tt.request})
			require.NoError(t, err)
			_, err = uuid.Parse(s.GetId())
			assert.NoError(t, err, "session id should be a uuid")
			assert.Equal(t, tt.wantName, s.GetName())
			ids[s.GetId()] = tt.wantName
		})
	}

	list, err := client.List(ctx, &pb.ListRequest{})
	require.NoError(t, err)
	require.Len(t, list.GetSessions(), len(ids))
	for _, s := range list.GetSessions() {
		assert.Equal(t, ids[s.GetId()], s.GetName())
	}
	// sorted by name.
	assert.Equal(t, "alice", list.GetSessions()[0].GetName())
}

func TestPublishUnknownSession(t *testing.T) {
	ctx := context.Background()
	client, closer := testServer(ctx)
	defer closer()

	stream, err := client.Publish(ctx)
	require.NoError(t, err)
	require.NoError(t, stream.Send(&pb.Frame{SessionId: "nope"}))
	_, err = stream.CloseAndRecv()
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestWatchUnknownSession(t *testing.T) {
	ctx := context.Background()
	client, closer := testServer(ctx)
	defer closer()

	stream, err := client.Watch(ctx, &pb.WatchRequest{SessionId: "nope"})
	require.NoError(t, err)
	_, err = stream.Recv()
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestPublishAndWatch(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, closer := testServer(ctx)
	defer closer()

	s, err := client.Open(ctx, &pb.OpenRequest{Name: "bob"})
	require.NoError(t, err)

	publish, err := client.Publish(ctx)
	require.NoError(t, err)
	first := &pb.Frame{SessionId: s.GetId(), Name: "bob", LinesClear: 1}
	require.NoError(t, publish.Send(first))

	// wait until the server has the first frame.
	require.Eventually(t, func() bool {
		list, err := client.List(ctx, &pb.ListRequest{})
		return err == nil && len(list.GetSessions()) == 1 && list.GetSessions()[0].GetLinesClear() == 1
	}, 2*time.Second, 10*time.Millisecond)

	watch, err := client.Watch(ctx, &pb.WatchRequest{SessionId: s.GetId()})
	require.NoError(t, err)

	got, err := watch.Recv()
	require.NoError(t, err)
	assert.Equal(t, int32(1), got.GetLinesClear(), "watcher should start with the latest frame")

	second := &pb.Frame{SessionId: s.GetId(), Name: "bob", LinesClear: 2, Lost: true}
	require.NoError(t, publish.Send(second))
	got, err = watch.Recv()
	require.NoError(t, err)
	assert.Equal(t, int32(2), got.GetLinesClear())
	assert.True(t, got.GetLost())

	summary, err := publish.CloseAndRecv()
	require.NoError(t, err)
	assert.Equal(t, int32(2), summary.GetFrames())

	_, err = watch.Recv()
	assert.ErrorIs(t, err, io.EOF, "watch should end with the publisher")

	list, err := client.List(ctx, &pb.ListRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.GetSessions(), "session should be removed when publishing ends")
}

func TestSecondPublisher(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, closer := testServer(ctx)
	defer closer()

	s, err := client.Open(ctx, &pb.OpenRequest{Name: "carol"})
	require.NoError(t, err)

	first, err := client.Publish(ctx)
	require.NoError(t, err)
	require.NoError(t, first.Send(&pb.Frame{SessionId: s.GetId(), LinesClear: 3}))
	require.Eventually(t, func() bool {
		list, err := client.List(ctx, &pb.ListRequest{})
		return err == nil && len(list.GetSessions()) == 1 && list.GetSessions()[0].GetLinesClear() == 3
	}, 2*time.Second, 10*time.Millisecond)

	second, err := client.Publish(ctx)
	require.NoError(t, err)
	require.NoError(t, second.Send(&pb.Frame{SessionId: s.GetId()}))
	_, err = second.CloseAndRecv()
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
}

func TestPublishWithoutFrames(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, closer := testServer(ctx)
	defer closer()

	s, err := client.Open(ctx, &pb.OpenRequest{Name: "quitter"})
	require.NoError(t, err)

	publish, err := client.Publish(metadata.AppendToOutgoingContext(ctx, SessionIDKey, s.GetId()))
	require.NoError(t, err)
	summary, err := publish.CloseAndRecv()
	require.NoError(t, err)
	assert.Zero(t, summary.GetFrames())

	list, err := client.List(ctx, &pb.ListRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.GetSessions(), "session should be removed when publishing ends")
}

func TestPublishUnknownSessionMetadata(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, closer := testServer(ctx)
	defer closer()

	publish, err := client.Publish(metadata.AppendToOutgoingContext(ctx, SessionIDKey, "nope"))
	require.NoError(t, err)
	_, err = publish.CloseAndRecv()
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestOpenedSessionExpires(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, closer := testServerWith(ctx, newServer(slog.New(slog.DiscardHandler), time.Second))
	defer closer()

	s, err := client.Open(ctx, &pb.OpenRequest{Name: "idle"})
	require.NoError(t, err)
	watch, err := client.Watch(ctx, &pb.WatchRequest{SessionId: s.GetId()})
	require.NoError(t, err)

	_, err = watch.Recv()
	assert.ErrorIs(t, err, io.EOF, "watch should end when the session expires")

	list, err := client.List(ctx, &pb.ListRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.GetSessions(), "session without a publisher should expire")
}

func TestPublishedSessionDoesNotExpire(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, closer := testServerWith(ctx, newServer(slog.New(slog.DiscardHandler), 50*time.Millisecond))
	defer closer()

	s, err := client.Open(ctx, &pb.OpenRequest{Name: "dave"})
	require.NoError(t, err)
	publish, err := client.Publish(ctx)
	require.NoError(t, err)
	require.NoError(t, publish.Send(&pb.Frame{SessionId: s.GetId(), LinesClear: 4}))
	require.Eventually(t, func() bool {
		list, err := client.List(ctx, &pb.ListRequest{})
		return err == nil && len(list.GetSessions()) == 1 && list.GetSessions()[0].GetLinesClear() == 4
	}, 2*time.Second, 10*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	list, err := client.List(ctx, &pb.ListRequest{})
	require.NoError(t, err)
	assert.Len(t, list.GetSessions(), 1)

	_, err = publish.CloseAndRecv()
	require.NoError(t, err)
}

func testServer(ctx context.Context) (pb.SpectatorServiceClient, func()) {
	return testServerWith(ctx, New(slog.New(slog.DiscardHandler)))
}

func testServerWith(_ context.Context, srv pb.SpectatorServiceServer) (pb.SpectatorServiceClient, func()) {
	buffer := 101024 * 1024
	lis := bufconn.Listen(buffer)

	s := grpc.NewServer()
	pb.RegisterSpectatorServiceServer(s, srv)
	go func() {
		if err := s.Serve(lis); err != nil {
			log.Printf("unable to serve: %v", err)
		}
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet", grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
		return lis.Dial()
	}), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Printf("error connecting to server: %v", err)
	}

	closer := func() {
		conn.Close()
		if err := lis.Close(); err != nil {
			log.Printf("error closing listener: %v", err)
		}
		s.Stop()
	}

	return pb.NewSpectatorServiceClient(conn), closer
}
