// Package chat implements the producer side of the relay core: participant
// registration, chat fan-in, and display name changes, all funnelled onto a
// single bus topic as serialized event envelopes.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"unicode"

	"github.com/google/uuid"

	"github.com/chatwire/chatwire/internal/domain"
	"github.com/chatwire/chatwire/internal/pubsub"
	"github.com/chatwire/chatwire/internal/registry"
)

// MaxNameLength is the upper bound on display name length, in runes.
const MaxNameLength = 20

// registerAttempts bounds the retry loop for default-name collisions at
// join time. With random identities a single attempt virtually always wins.
const registerAttempts = 5

// RenameOutcome classifies the result of a rename attempt.
type RenameOutcome int

const (
	// RenameApplied means the new name is now in effect.
	RenameApplied RenameOutcome = iota
	// RenameInvalidLength means the trimmed name was empty or too long.
	RenameInvalidLength
	// RenameInvalidCharacters means the name contained something other than
	// letters, digits or underscores.
	RenameInvalidCharacters
	// RenameNameTaken means another participant already holds the name.
	RenameNameTaken
	// RenameNotFound means the identity is not currently registered.
	RenameNotFound
)

// RenameResult reports a rename attempt. Name and OldName are only set when
// the outcome is RenameApplied.
type RenameResult struct {
	Outcome RenameOutcome
	Name    string
	OldName string
}

// Applied reports whether the rename took effect.
func (r RenameResult) Applied() bool {
	return r.Outcome == RenameApplied
}

// Service coordinates the registry and the bus. Every mutation publishes the
// corresponding event, with roster updates always following the event that
// caused them. A single mutex serializes mutation-plus-publish, so event
// pairs reach the bus contiguously and each roster frame reflects the
// snapshot taken immediately after its mutation.
type Service struct {
	registry  *registry.Registry
	publisher pubsub.Publisher
	logger    *slog.Logger

	mu sync.Mutex
}

// NewService creates a chat service publishing on TopicEvents.
func NewService(reg *registry.Registry, pub pubsub.Publisher) *Service {
	return &Service{
		registry:  reg,
		publisher: pub,
		logger:    slog.Default().With("service", "chat"),
	}
}

// Join registers a new participant with a fresh identity and a default
// display name, then publishes the join event and the updated roster.
func (s *Service) Join(ctx context.Context) (domain.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var p domain.Participant
	for attempt := 0; ; attempt++ {
		id := uuid.NewString()
		p = domain.Participant{ID: id, Name: "user_" + id[:8]}
		err := s.registry.Register(p.ID, p.Name)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrNameTaken) || attempt == registerAttempts-1 {
			return domain.Participant{}, fmt.Errorf("failed to register participant: %w", err)
		}
	}

	s.logger.Info("participant joined", "userID", p.ID, "username", p.Name, "participants", s.registry.Len())
	s.publishWithRoster(ctx, domain.NewJoinEvent(p.ID, p.Name))
	return p, nil
}

// Leave removes a participant and publishes the leave event and the updated
// roster. Leaving twice, or with an unknown identity, is a no-op.
func (s *Service) Leave(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, ok := s.registry.Deregister(id)
	if !ok {
		return
	}

	s.logger.Info("participant left", "userID", id, "username", name, "participants", s.registry.Len())
	s.publishWithRoster(ctx, domain.NewLeaveEvent(id, name))
}

// Send publishes a chat event carrying the sender's current display name.
// Messages from identities that already left are dropped silently.
func (s *Service) Send(ctx context.Context, id, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, ok := s.registry.Name(id)
	if !ok {
		s.logger.Debug("dropping message from unregistered sender", "userID", id)
		return
	}
	s.publish(ctx, domain.NewChatEvent(id, name, content))
}

// Rename validates a requested display name, applies it atomically against
// the registry, and on success publishes the rename event and the updated
// roster. Rejected attempts leave both the registry and the bus untouched.
func (s *Service) Rename(ctx context.Context, id, requested string) RenameResult {
	name := strings.TrimSpace(requested)
	if n := len([]rune(name)); n == 0 || n > MaxNameLength {
		return RenameResult{Outcome: RenameInvalidLength}
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return RenameResult{Outcome: RenameInvalidCharacters}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	old, err := s.registry.Rename(id, name)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return RenameResult{Outcome: RenameNotFound}
	case errors.Is(err, domain.ErrNameTaken):
		return RenameResult{Outcome: RenameNameTaken}
	case err != nil:
		s.logger.Error("rename failed", "userID", id, "error", err)
		return RenameResult{Outcome: RenameNotFound}
	}

	s.logger.Info("participant renamed", "userID", id, "old", old, "new", name)
	s.publishWithRoster(ctx, domain.NewRenameEvent(id, old, name))
	return RenameResult{Outcome: RenameApplied, Name: name, OldName: old}
}

// Roster returns the current display names.
func (s *Service) Roster() []string {
	return s.registry.Snapshot()
}

// publishWithRoster publishes an event followed by a fresh roster frame.
// Callers must hold s.mu so the pair cannot interleave with other publishes
// and the roster matches the mutation that produced the event.
func (s *Service) publishWithRoster(ctx context.Context, event domain.Event) {
	s.publish(ctx, event)

	roster, err := domain.NewRosterEvent(s.registry.Snapshot())
	if err != nil {
		s.logger.Error("failed to build roster event", "error", err)
		return
	}
	s.publish(ctx, roster)
}

// publish encodes a single envelope and hands it to the bus. Publish
// failures are logged, not surfaced: a lost frame is never fatal to the
// mutation that produced it.
func (s *Service) publish(ctx context.Context, event domain.Event) {
	payload, err := event.Encode()
	if err != nil {
		s.logger.Error("failed to encode event", "type", event.Type, "error", err)
		return
	}

	msg := pubsub.Message{
		Topic:   TopicEvents,
		UserID:  event.UserID,
		Payload: payload,
	}
	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.logger.Error("failed to publish event", "type", event.Type, "error", err)
	}
}
