// Package server relays the frames of running sessions to spectators.
package server

import (
	"cmp"
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"droptris/pb"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// watchBuffer is the amount of frames a slow watcher can fall behind before
// frames are dropped for it.
const watchBuffer = 16

const defaultName = "anonymous"

// SessionIDKey is the metadata key a publisher names its session with.
const SessionIDKey = "session-id"

// openTimeout is how long an opened session waits for its publisher.
const openTimeout = 10 * time.Second

type session struct {
	info       *pb.Session
	latest     *pb.Frame
	publishing bool
	watchers   map[chan *pb.Frame]struct{}
}

func newSession(id, name string) *session {
	return &session{
		info:     &pb.Session{Id: id, Name: name},
		watchers: make(map[chan *pb.Frame]struct{}),
	}
}

// broadcast must be called with the server lock held.
func (s *session) broadcast(f *pb.Frame) {
	s.latest = f
	s.info.LinesClear = f.GetLinesClear()
	s.info.Lost = f.GetLost()
	for ch := range s.watchers {
		select {
		case ch <- f:
		default:
		}
	}
}

// close must be called with the server lock held.
func (s *session) close() {
	for ch := range s.watchers {
		close(ch)
		delete(s.watchers, ch)
	}
}

type spectatorServer struct {
	pb.UnimplementedSpectatorServiceServer
	sessions    map[string]*session
	openTimeout time.Duration
	logger      *slog.Logger
	mu          sync.Mutex
}

func New(logger *slog.Logger) pb.SpectatorServiceServer {
	return newServer(logger, openTimeout)
}

func newServer(logger *slog.Logger, timeout time.Duration) *spectatorServer {
	return &spectatorServer{
		sessions:    make(map[string]*session),
		openTimeout: timeout,
		logger:      logger,
	}
}

func (s *spectatorServer) Open(_ context.Context, req *pb.OpenRequest) (*pb.Session, error) {
	name := req.GetName()
	if name == "" {
		name = defaultName
	}
	id := uuid.New().String()

	s.mu.Lock()
	s.sessions[id] = newSession(id, name)
	s.mu.Unlock()
	time.AfterFunc(s.openTimeout, func() { s.expire(id) })

	s.logger.Info("session opened", slog.String("id", id), slog.String("name", name))
	return &pb.Session{Id: id, Name: name}, nil
}

func (s *spectatorServer) List(context.Context, *pb.ListRequest) (*pb.ListResponse, error) {
	s.mu.Lock()
	sessions := make([]*pb.Session, 0, len(s.sessions))
	for _, ss := range s.sessions {
		sessions = append(sessions, &pb.Session{
			Id:         ss.info.GetId(),
			Name:       ss.info.GetName(),
			LinesClear: ss.info.GetLinesClear(),
			Lost:       ss.info.GetLost(),
		})
	}
	s.mu.Unlock()

	slices.SortFunc(sessions, func(a, b *pb.Session) int {
		return cmp.Or(cmp.Compare(a.GetName(), b.GetName()), cmp.Compare(a.GetId(), b.GetId()))
	})
	return &pb.ListResponse{Sessions: sessions}, nil
}

// Publish takes the session from the SessionIDKey metadata of the stream,
// or from its first frame when there's none. Every frame is relayed to the
// session watchers, whatever id it carries.
func (s *spectatorServer) Publish(stream grpc.ClientStreamingServer[pb.Frame, pb.PublishSummary]) error {
	var (
		ss     *session
		id     string
		frames int32
	)
	defer func() {
		if ss == nil {
			return
		}
		s.mu.Lock()
		ss.close()
		delete(s.sessions, id)
		s.mu.Unlock()
		s.logger.Info("session closed", slog.String("id", id), slog.Int("frames", int(frames)))
	}()

	if md, ok := metadata.FromIncomingContext(stream.Context()); ok {
		if v := md.Get(SessionIDKey); len(v) > 0 {
			found, err := s.claim(v[0])
			if err != nil {
				return err
			}
			ss, id = found, v[0]
		}
	}

	for {
		f, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return stream.SendAndClose(&pb.PublishSummary{Frames: frames})
			}
			return err
		}

		if ss == nil {
			found, err := s.claim(f.GetSessionId())
			if err != nil {
				return err
			}
			ss, id = found, f.GetSessionId()
		}

		s.mu.Lock()
		ss.broadcast(f)
		s.mu.Unlock()
		frames++
	}
}

// claim marks the session as published. A session takes a single publisher.
func (s *spectatorServer) claim(id string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ss, ok := s.sessions[id]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "session %q not found", id)
	}
	if ss.publishing {
		return nil, status.Errorf(codes.AlreadyExists, "session %q already has a publisher", id)
	}
	ss.publishing = true
	return ss, nil
}

// expire removes the session when no publisher claimed it in time.
func (s *spectatorServer) expire(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ss, ok := s.sessions[id]
	if !ok || ss.publishing {
		return
	}
	ss.close()
	delete(s.sessions, id)
	s.logger.Info("session expired", slog.String("id", id))
}

func (s *spectatorServer) Watch(req *pb.WatchRequest, stream grpc.ServerStreamingServer[pb.Frame]) error {
	id := req.GetSessionId()
	ch := make(chan *pb.Frame, watchBuffer)

	s.mu.Lock()
	ss, ok := s.sessions[id]
	if ok {
		ss.watchers[ch] = struct{}{}
		if ss.latest != nil {
			ch <- ss.latest
		}
	}
	s.mu.Unlock()
	if !ok {
		return status.Errorf(codes.NotFound, "session %q not found", id)
	}
	s.logger.Debug("watcher joined", slog.String("id", id))

	ctx := stream.Context()
	for {
		select {
		case f, ok := <-ch:
			if !ok {
				return nil
			}
			if err := stream.Send(f); err != nil {
				s.leave(ss, ch)
				return err
			}
		case <-ctx.Done():
			s.leave(ss, ch)
			return ctx.Err()
		}
	}
}

func (s *spectatorServer) leave(ss *session, ch chan *pb.Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := ss.watchers[ch]; ok {
		delete(ss.watchers, ch)
		close(ch)
	}
}
