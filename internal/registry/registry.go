// Package registry holds the authoritative in-memory mapping from connection
// identity to display name. All mutations and reads run under a single lock
// so that no caller ever observes a partially applied change, and the
// critical sections never perform I/O.
package registry

import (
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/chatwire/chatwire/internal/domain"
)

// Registry tracks the display names of currently connected participants.
// Entries exist only while the owning connection is alive: they are inserted
// at connect time and removed at disconnect time. Display names are pairwise
// distinct among present entries at every observable point.
type Registry struct {
	mu    sync.Mutex
	names map[string]string // identity -> display name
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{names: make(map[string]string)}
}

// Register inserts a new participant. It fails with ErrAlreadyRegistered if
// the identity is present and with ErrNameTaken if another participant
// already holds the name.
func (r *Registry) Register(id, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.names[id]; ok {
		return domain.ErrAlreadyRegistered
	}
	if r.nameHeldByOther(name, id) {
		return domain.ErrNameTaken
	}
	r.names[id] = name
	return nil
}

// Deregister removes a participant and returns the departing display name.
// It reports ok=false if the identity was not present, which makes double
// removal on racy disconnect paths harmless.
func (r *Registry) Deregister(id string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name, ok := r.names[id]
	if ok {
		delete(r.names, id)
	}
	return name, ok
}

// Rename atomically replaces a participant's display name and returns the
// previous one. It fails with ErrNotFound if the identity is absent and with
// ErrNameTaken if a different participant holds the requested name. Renaming
// to one's own current name succeeds and is a no-op.
func (r *Registry) Rename(id, name string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.names[id]
	if !ok {
		return "", domain.ErrNotFound
	}
	if r.nameHeldByOther(name, id) {
		return "", domain.ErrNameTaken
	}
	r.names[id] = name
	return old, nil
}

// Name returns the current display name for an identity.
func (r *Registry) Name(id string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name, ok := r.names[id]
	return name, ok
}

// Snapshot returns the display names of everyone currently registered,
// sorted for deterministic roster frames. The copy is taken under the same
// lock as mutations, so it is never a torn view.
func (r *Registry) Snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := lo.Values(r.names)
	sort.Strings(names)
	return names
}

// Len returns the number of currently registered participants.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.names)
}

// nameHeldByOther reports whether any identity other than id currently holds
// the given display name. Callers must hold r.mu.
func (r *Registry) nameHeldByOther(name, id string) bool {
	for otherID, otherName := range r.names {
		if otherID != id && otherName == name {
			return true
		}
	}
	return false
}
