package chat

import "github.com/chatwire/chatwire/internal/domain"

// TopicEvents is the bus topic every event envelope is published on. The
// event bridge subscribes to it and fans the frames out to all connected
// sessions.
const TopicEvents = "chat.events"

// TopicInfo describes a bus topic for documentation and tooling.
type TopicInfo struct {
	Name        string
	Description string
	Example     string
}

// KindInfo describes an event kind carried inside TopicEvents envelopes.
type KindInfo struct {
	Kind        string
	Description string
}

// BusTopics lists every topic the relay publishes on.
func BusTopics() []TopicInfo {
	return []TopicInfo{
		{
			Name:        TopicEvents,
			Description: "JSON event envelopes broadcast to every connected session",
			Example:     `{"user_id":"5f2b...","content":"hello","type":"chat","username":"alice"}`,
		},
	}
}

// EventKinds lists the envelope kinds published on TopicEvents.
func EventKinds() []KindInfo {
	return []KindInfo{
		{Kind: domain.KindChat, Description: "a text message from a participant"},
		{Kind: domain.KindJoin, Description: "a participant entered the chat"},
		{Kind: domain.KindLeave, Description: "a participant left the chat"},
		{Kind: domain.KindRename, Description: "a participant changed their display name"},
		{Kind: domain.KindUsers, Description: "roster update: JSON array of current display names"},
	}
}
