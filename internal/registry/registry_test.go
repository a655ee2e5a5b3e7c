package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatwire/chatwire/internal/domain"
)

func TestRegistry_RegisterAndDeregister(t *testing.T) {
	r := New()

	require.NoError(t, r.Register("id-1", "alice"))
	assert.Equal(t, 1, r.Len())

	name, ok := r.Name("id-1")
	assert.True(t, ok)
	assert.Equal(t, "alice", name)

	name, ok = r.Deregister("id-1")
	assert.True(t, ok)
	assert.Equal(t, "alice", name)
	assert.Equal(t, 0, r.Len())

	// Double removal must be harmless.
	name, ok = r.Deregister("id-1")
	assert.False(t, ok)
	assert.Empty(t, name)
}

func TestRegistry_RegisterRejectsDuplicates(t *testing.T) {
	r := New()

	require.NoError(t, r.Register("id-1", "alice"))

	err := r.Register("id-1", "bob")
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)

	err = r.Register("id-2", "alice")
	assert.ErrorIs(t, err, domain.ErrNameTaken)

	// The failed attempts must not have touched the mapping.
	assert.Equal(t, []string{"alice"}, r.Snapshot())
}

func TestRegistry_Rename(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("id-1", "alice"))
	require.NoError(t, r.Register("id-2", "bob"))

	old, err := r.Rename("id-1", "carol")
	require.NoError(t, err)
	assert.Equal(t, "alice", old)
	assert.Equal(t, []string{"bob", "carol"}, r.Snapshot())

	_, err = r.Rename("id-2", "carol")
	assert.ErrorIs(t, err, domain.ErrNameTaken)

	_, err = r.Rename("id-3", "dave")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Renaming to one's own current name is a successful no-op.
	old, err = r.Rename("id-1", "carol")
	require.NoError(t, err)
	assert.Equal(t, "carol", old)
	assert.Equal(t, []string{"bob", "carol"}, r.Snapshot())
}

func TestRegistry_SnapshotIsSortedCopy(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("id-1", "zoe"))
	require.NoError(t, r.Register("id-2", "amy"))

	snap := r.Snapshot()
	assert.Equal(t, []string{"amy", "zoe"}, snap)

	// Mutating the returned slice must not affect the registry.
	snap[0] = "mallory"
	assert.Equal(t, []string{"amy", "zoe"}, r.Snapshot())
}

func TestRegistry_ConcurrentRenameRace(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("id-1", "alice"))
	require.NoError(t, r.Register("id-2", "bob"))

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []string{"id-1", "id-2"} {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, errs[i] = r.Rename(id, "winner")
		}(i, id)
	}
	wg.Wait()

	var wins, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case err == domain.ErrNameTaken:
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, conflicts)

	holders := 0
	for _, name := range r.Snapshot() {
		if name == "winner" {
			holders++
		}
	}
	assert.Equal(t, 1, holders)
}

func TestRegistry_UniquenessInvariantUnderChurn(t *testing.T) {
	r := New()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("id-%d", i)
			if err := r.Register(id, fmt.Sprintf("user_%d", i)); err != nil {
				return
			}
			// Everyone fights over a small name space.
			r.Rename(id, fmt.Sprintf("name_%d", i%5)) //nolint:errcheck
			if i%2 == 0 {
				r.Deregister(id)
			}
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool)
	for _, name := range r.Snapshot() {
		assert.False(t, seen[name], "duplicate display name %q", name)
		seen[name] = true
	}
}
