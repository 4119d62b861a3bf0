package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"droptris/pb"
	"droptris/server"
	"droptris/tetris"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	// publishBuffer is the amount of frames waiting to be sent before new
	// ones are dropped. The game loop never waits for the network.
	publishBuffer = 64
	// closeTimeout is how long Close waits for the pending frames to go out.
	closeTimeout = time.Second
)

// Remote talks to a spectator server.
type Remote struct {
	conn   *grpc.ClientConn
	client pb.SpectatorServiceClient
	name   string
	logger *slog.Logger
}

// NewRemote creates the client for the server at addr. Connecting is lazy,
// an unreachable server shows up on the first call.
func NewRemote(addr, name string, l *slog.Logger, opts ...grpc.DialOption) (*Remote, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create gRPC client: %w", err)
	}
	return &Remote{
		conn:   conn,
		client: pb.NewSpectatorServiceClient(conn),
		name:   name,
		logger: l,
	}, nil
}

func (r *Remote) Close() error {
	return r.conn.Close()
}

// List returns the sessions being played on the server.
func (r *Remote) List(ctx context.Context) ([]*pb.Session, error) {
	res, err := r.client.List(ctx, &pb.ListRequest{})
	if err != nil {
		return nil, fmt.Errorf("unable to list sessions: %w", err)
	}
	return res.GetSessions(), nil
}

// Publish opens a new session on the server and returns the Publisher
// to send its frames through.
func (r *Remote) Publish(ctx context.Context) (*Publisher, error) {
	ctx, cancel := context.WithCancel(ctx)
	s, err := r.client.Open(ctx, &pb.OpenRequest{Name: r.name})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("unable to open session: %w", err)
	}
	// the server binds the stream to the session before the first frame,
	// so a session that ends right away is still closed.
	stream, err := r.client.Publish(metadata.AppendToOutgoingContext(ctx, server.SessionIDKey, s.GetId()))
	if err != nil {
		cancel()
		return nil, fmt.Errorf("unable to create gRPC Publish stream: %w", err)
	}
	p := &Publisher{
		ID:     s.GetId(),
		name:   s.GetName(),
		frames: make(chan *pb.Frame, publishBuffer),
		done:   make(chan struct{}),
		cancel: cancel,
		logger: r.logger,
	}
	go p.run(stream)
	r.logger.Debug("session opened", slog.String("id", p.ID))
	return p, nil
}

// Watch streams the frames of the session with the given id. The channel
// is closed when the session ends or ctx is done.
func (r *Remote) Watch(ctx context.Context, id string) (<-chan *pb.Frame, error) {
	stream, err := r.client.Watch(ctx, &pb.WatchRequest{SessionId: id})
	if err != nil {
		return nil, fmt.Errorf("unable to create gRPC Watch stream: %w", err)
	}
	rcvCh := make(chan *pb.Frame)
	go func() {
		defer close(rcvCh)
		for {
			rcv, err := stream.Recv()
			if err != nil {
				logStreamError(r.logger, "stream.Recv()", err)
				return
			}
			select {
			case rcvCh <- rcv:
			case <-ctx.Done():
				return
			}
		}
	}()
	return rcvCh, nil
}

// Publisher sends the frames of a session in the background. A nil
// Publisher is valid and drops everything.
type Publisher struct {
	ID string

	name   string
	frames chan *pb.Frame
	done   chan struct{}
	cancel context.CancelFunc
	logger *slog.Logger
}

// Send queues a frame. It never blocks: the frame is dropped when the queue is full.
func (p *Publisher) Send(t *tetris.Tetris) {
	if p == nil {
		return
	}
	select {
	case p.frames <- frame2Proto(t, p.ID, p.name):
	default:
		p.logger.Debug("frame dropped", slog.String("id", p.ID))
	}
}

// Close sends the queued frames and ends the session on the server.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	close(p.frames)
	select {
	case <-p.done:
	case <-time.After(closeTimeout):
		p.logger.Error("timeout waiting for the publisher to finish", slog.String("id", p.ID))
	}
	p.cancel()
}

func (p *Publisher) run(stream grpc.ClientStreamingClient[pb.Frame, pb.PublishSummary]) {
	defer close(p.done)
	for f := range p.frames {
		if err := stream.Send(f); err != nil {
			// the actual error comes with CloseAndRecv.
			if !errors.Is(err, io.EOF) {
				logStreamError(p.logger, "stream.Send()", err)
			}
			break
		}
	}
	summary, err := stream.CloseAndRecv()
	if err != nil {
		logStreamError(p.logger, "stream.CloseAndRecv()", err)
		return
	}
	p.logger.Debug("session closed", slog.String("id", p.ID), slog.Int("frames", int(summary.GetFrames())))
}

// logStreamError logs the normal ends of a stream as debug and everything else as errors.
func logStreamError(l *slog.Logger, call string, err error) {
	if errors.Is(err, io.EOF) {
		l.Debug(call+" closed with EOF", slog.String("msg", err.Error()))
		return
	}
	st, ok := status.FromError(err)
	switch {
	case ok && st.Code() == codes.Canceled:
		l.Debug(call+" closed with Cancel", slog.String("msg", st.Message()))
	case ok && st.Code() == codes.DeadlineExceeded:
		l.Debug(call+" closed with DeadlineExceeded", slog.String("msg", st.Message()))
	default:
		l.Error(call+" failed", slog.String("error", err.Error()))
	}
}

// frame2Proto flattens a session into a frame: the current tetromino is
// painted over the grid and every cell is packed as 0xRRGGBB.
func frame2Proto(t *tetris.Tetris, id, name string) *pb.Frame {
	f := &pb.Frame{
		SessionId:  id,
		Name:       name,
		Rows:       make([]*pb.Row, tetris.Rows),
		LinesClear: int32(t.LinesClear), //nolint:gosec
		Lost:       t.State == tetris.Lost,
	}
	for y := range f.Rows {
		cells := make([]uint32, tetris.Columns)
		for x := range cells {
			cells[x] = tetris.RGB(t.At(x, y))
		}
		f.Rows[y] = &pb.Row{Cells: cells}
	}

	if t.NexTetromino != nil {
		for _, row := range t.NexTetromino.Grid {
			cells := make([]uint32, len(row))
			for x, v := range row {
				if v {
					cells[x] = tetris.RGB(t.NexTetromino.Color)
				}
			}
			f.Next = append(f.Next, &pb.Row{Cells: cells})
		}
	}
	return f
}
