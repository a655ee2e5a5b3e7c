package domain

// Participant is a single connected chat participant. The ID is an opaque,
// process-unique token minted when the connection is accepted and never
// reused. The display name is mutable for the lifetime of the connection.
type Participant struct {
	ID   string
	Name string
}
