package domain

import (
	"encoding/json"
	"fmt"
)

// Event kinds carried on the broadcast bus. Every frame written to a client
// is exactly one JSON-encoded Event of one of these kinds.
const (
	KindChat   = "chat"
	KindJoin   = "join"
	KindLeave  = "leave"
	KindRename = "rename"
	// KindUsers is the roster update. Its content is a JSON-encoded array of
	// the display names of everyone currently connected.
	KindUsers = "users"
)

// SystemUserID is the origin used for events that are not attributed to a
// participant, such as roster updates.
const SystemUserID = "system"

// Event is the envelope broadcast to every connected session. Envelopes are
// ephemeral: they are constructed, published and forgotten. There is no
// history or replay.
type Event struct {
	// UserID is the identity of the participant the event originates from,
	// or SystemUserID for roster updates.
	UserID string `json:"user_id"`
	// Content is the message text for chat events, a human-readable
	// description for join/leave/rename events, and the JSON-encoded name
	// list for roster events.
	Content string `json:"content"`
	// Type is one of the Kind constants above.
	Type string `json:"type"`
	// Username carries the display name relevant to the event: the sender's
	// name at send time for chat, the joining/leaving/new name for
	// join/leave/rename. It is absent on roster events.
	Username string `json:"username,omitempty"`
}

// Encode serializes the event into its wire representation.
func (e Event) Encode() ([]byte, error) {
	return json.Marshal(e)
}

// DecodeEvent parses a wire frame back into an Event.
func DecodeEvent(data []byte) (Event, error) {
	var e Event
	err := json.Unmarshal(data, &e)
	return e, err
}

// NewChatEvent builds a chat event for a message sent by a participant.
func NewChatEvent(userID, username, content string) Event {
	return Event{
		UserID:   userID,
		Content:  content,
		Type:     KindChat,
		Username: username,
	}
}

// NewJoinEvent announces that a participant entered the chat.
func NewJoinEvent(userID, username string) Event {
	return Event{
		UserID:   userID,
		Content:  fmt.Sprintf("%s joined the chat", username),
		Type:     KindJoin,
		Username: username,
	}
}

// NewLeaveEvent announces that a participant left the chat.
func NewLeaveEvent(userID, username string) Event {
	return Event{
		UserID:   userID,
		Content:  fmt.Sprintf("%s left the chat", username),
		Type:     KindLeave,
		Username: username,
	}
}

// NewRenameEvent announces a display name change. Username carries the new
// name so clients can update their local state without parsing the content.
func NewRenameEvent(userID, oldName, newName string) Event {
	return Event{
		UserID:   userID,
		Content:  fmt.Sprintf("%s is now known as %s", oldName, newName),
		Type:     KindRename,
		Username: newName,
	}
}

// NewRosterEvent builds a roster update from the current list of display
// names. The list is serialized into the content field.
func NewRosterEvent(names []string) (Event, error) {
	payload, err := json.Marshal(names)
	if err != nil {
		return Event{}, fmt.Errorf("failed to encode roster: %w", err)
	}
	return Event{
		UserID:  SystemUserID,
		Content: string(payload),
		Type:    KindUsers,
	}, nil
}
