package websocket

import (
	"context"
	"log/slog"
	"sync"

	"github.com/coder/websocket"

	"github.com/chatwire/chatwire/internal/chat"
	"github.com/chatwire/chatwire/internal/domain"
	"github.com/chatwire/chatwire/internal/hub"
)

// Session is the per-connection controller. It owns the connection's read
// and write sides for its whole lifetime: one inbound pump feeding the chat
// service and one outbound pump draining the hub subscription. The first
// pump to terminate cancels the other; the session then deregisters the
// participant and releases the connection. Transport errors are terminal for
// the session only — the client reconnects and receives a new identity.
type Session struct {
	conn        *websocket.Conn
	subscriber  *hub.Subscriber
	service     *chat.Service
	participant domain.Participant
	logger      *slog.Logger
}

// newSession wires a session around an accepted connection.
func newSession(conn *websocket.Conn, sub *hub.Subscriber, svc *chat.Service, p domain.Participant) *Session {
	return &Session{
		conn:        conn,
		subscriber:  sub,
		service:     svc,
		participant: p,
		logger:      slog.Default().With("userID", p.ID),
	}
}

// run drives both pumps until one of them stops, then waits for the sibling
// to wind down. It returns once neither pump touches the connection anymore.
func (s *Session) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer cancel()
		s.writePump(ctx)
	}()

	func() {
		defer cancel()
		s.readPump(ctx)
	}()

	wg.Wait()
}

// readPump pumps inbound frames from the connection to the chat service.
// There is at most one reader per connection: all reads happen here.
func (s *Session) readPump(ctx context.Context) {
	for {
		// Inbound text frames are raw chat content; no envelope is expected
		// from the client.
		_, data, err := s.conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway || ctx.Err() != nil {
				s.logger.Debug("inbound pump stopped", "status", status)
			} else {
				s.logger.Info("inbound pump stopped on error", "error", err)
			}
			return
		}
		s.service.Send(ctx, s.participant.ID, string(data))
	}
}

// writePump pumps event frames from the hub subscription to the connection.
// There is at most one writer per connection: all writes happen here.
func (s *Session) writePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case frame, ok := <-s.subscriber.Send:
			if !ok {
				return
			}
			if err := s.conn.Write(ctx, websocket.MessageText, frame); err != nil {
				s.logger.Info("outbound pump stopped on error", "error", err)
				return
			}
		}
	}
}
