package pubsub

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatermillBridge_RoundTrip(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var received []Message
	err := bridge.Subscribe(ctx, "test.topic", func(ctx context.Context, msg Message) error {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, msg)
		return nil
	})
	require.NoError(t, err)

	msg := Message{
		Topic:    "test.topic",
		UserID:   "user-1",
		Payload:  []byte("hello"),
		Metadata: map[string]string{"origin": "test"},
	}
	require.NoError(t, bridge.Publish(ctx, msg))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(received) == 1
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "test.topic", received[0].Topic)
	assert.Equal(t, "user-1", received[0].UserID)
	assert.Equal(t, []byte("hello"), received[0].Payload)
	assert.Equal(t, "test", received[0].Metadata["origin"])
}

func TestWatermillBridge_PreservesPublishOrder(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var received []string
	err := bridge.Subscribe(ctx, "ordered.topic", func(ctx context.Context, msg Message) error {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, string(msg.Payload))
		return nil
	})
	require.NoError(t, err)

	const n = 20
	for i := 0; i < n; i++ {
		require.NoError(t, bridge.Publish(ctx, Message{
			Topic:   "ordered.topic",
			Payload: []byte(fmt.Sprintf("msg-%d", i)),
		}))
	}

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(received) == n
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	for i := 0; i < n; i++ {
		assert.Equal(t, fmt.Sprintf("msg-%d", i), received[i])
	}
}

func TestWatermillBridge_NoDeliveryBeforeSubscribe(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, bridge.Publish(ctx, Message{Topic: "quiet.topic", Payload: []byte("early")}))

	var mu sync.Mutex
	var received []Message
	err := bridge.Subscribe(ctx, "quiet.topic", func(ctx context.Context, msg Message) error {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, msg)
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, bridge.Publish(ctx, Message{Topic: "quiet.topic", Payload: []byte("late")}))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(received) == 1
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "late", string(received[0].Payload))
}
