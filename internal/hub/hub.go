// Package hub provides the fan-out primitive that distributes serialized
// event frames to every connected session. Delivery is best-effort and
// at-most-once: a subscriber that cannot keep up loses its oldest unread
// frames rather than stalling publication for everyone else.
package hub

import (
	"log/slog"
	"sync"
)

// DefaultBufferSize is the per-subscriber channel capacity used when the hub
// is constructed without an explicit size.
const DefaultBufferSize = 256

// Subscriber represents a single client attached to the Hub. The Hub sends
// frames to Send; the owning session is responsible for draining it. The
// channel is closed by Unsubscribe and must not be closed by the owner.
type Subscriber struct {
	// Send is a buffered channel of outbound frames.
	Send chan []byte
}

// Hub maintains the set of active subscribers and fans frames out to them.
// A single mutex serializes publication, so every subscriber observes frames
// in the same order publish calls were made.
type Hub struct {
	mu          sync.Mutex
	subscribers map[*Subscriber]struct{}
	bufferSize  int
}

// New creates a Hub whose subscribers buffer up to bufferSize frames each.
// Sizes below one fall back to DefaultBufferSize.
func New(bufferSize int) *Hub {
	if bufferSize < 1 {
		bufferSize = DefaultBufferSize
	}
	return &Hub{
		subscribers: make(map[*Subscriber]struct{}),
		bufferSize:  bufferSize,
	}
}

// Subscribe attaches a new subscriber. It observes only frames published
// after Subscribe returns; there is no replay of earlier traffic.
func (h *Hub) Subscribe() *Subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()

	s := &Subscriber{Send: make(chan []byte, h.bufferSize)}
	h.subscribers[s] = struct{}{}
	slog.Debug("subscriber attached", "total_subscribers", len(h.subscribers))
	return s
}

// Unsubscribe detaches a subscriber and closes its channel. Detaching a
// subscriber twice is harmless.
func (h *Hub) Unsubscribe(s *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subscribers[s]; !ok {
		return
	}
	delete(h.subscribers, s)
	close(s.Send)
	slog.Debug("subscriber detached", "total_subscribers", len(h.subscribers))
}

// Publish fans a single frame out to every subscriber. It never blocks: when
// a subscriber's buffer is full, its oldest unread frame is dropped to make
// room for the new one.
func (h *Hub) Publish(frame []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.fanOut(frame)
}

// PublishAll fans a batch of frames out while holding the publish lock, so
// the batch reaches every subscriber contiguously and is never interleaved
// with another publisher's frames.
func (h *Hub) PublishAll(frames ...[]byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, frame := range frames {
		h.fanOut(frame)
	}
}

// Len returns the current number of subscribers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subscribers)
}

// fanOut delivers a frame to every subscriber. Callers must hold h.mu, which
// also guarantees no channel close can race the sends below.
func (h *Hub) fanOut(frame []byte) {
	for s := range h.subscribers {
		for {
			select {
			case s.Send <- frame:
			default:
				// Buffer full: evict the oldest unread frame and retry. The
				// subscriber stays attached and simply misses that frame.
				select {
				case <-s.Send:
					slog.Warn("subscriber lagging, dropping oldest frame")
				default:
				}
				continue
			}
			break
		}
	}
}
