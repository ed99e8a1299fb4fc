package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(hub *Hub) *Client {
	client := &Client{
		hub:  hub,
		send: make(chan Envelope, sendBufferSize),
		done: make(chan struct{}),
	}
	hub.add(client)
	return client
}

func TestHubRegister(t *testing.T) {
	t.Run("LastRegistrationWins", func(t *testing.T) {
		hub := NewHub()
		first := newTestClient(hub)
		second := newTestClient(hub)

		hub.Register(7, first)
		hub.Register(7, second)

		assert.Same(t, second, hub.ConnectionFor(7))
	})

	t.Run("RemoveUnbindsOnlyCurrentConnection", func(t *testing.T) {
		hub := NewHub()
		first := newTestClient(hub)
		second := newTestClient(hub)

		hub.Register(7, first)
		hub.Register(7, second)

		// 舊連線關閉不應解除新連線的註冊
		hub.remove(first)
		assert.Same(t, second, hub.ConnectionFor(7))

		hub.remove(second)
		assert.Nil(t, hub.ConnectionFor(7))
	})
}

func TestHubNotifyUser(t *testing.T) {
	t.Run("DeliversToRegisteredClient", func(t *testing.T) {
		hub := NewHub()
		client := newTestClient(hub)
		hub.Register(7, client)

		sent := hub.NotifyUser(7, "bookingNotification", "payload")

		require.True(t, sent)
		envelope := <-client.send
		assert.Equal(t, "bookingNotification", envelope.Event)
		assert.Equal(t, "payload", envelope.Data)
	})

	t.Run("ReturnsFalseWhenNotConnected", func(t *testing.T) {
		hub := NewHub()

		sent := hub.NotifyUser(7, "bookingNotification", "payload")
		assert.False(t, sent)
	})

	t.Run("DropsWhenBufferFull", func(t *testing.T) {
		hub := NewHub()
		client := &Client{hub: hub, send: make(chan Envelope, 1), done: make(chan struct{})}
		hub.add(client)
		hub.Register(7, client)

		assert.True(t, hub.NotifyUser(7, "first", nil))
		// 佇列滿了直接丟棄，推播方不阻塞
		assert.True(t, hub.NotifyUser(7, "second", nil))

		envelope := <-client.send
		assert.Equal(t, "first", envelope.Event)

		select {
		case extra := <-client.send:
			t.Fatalf("expected dropped message, got %q", extra.Event)
		default:
		}
	})
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()
	first := newTestClient(hub)
	second := newTestClient(hub)
	// 未註冊的連線也會收到廣播
	hub.Register(7, first)

	hub.Broadcast("newEventMessage", "hello")

	for _, client := range []*Client{first, second} {
		envelope := <-client.send
		assert.Equal(t, "newEventMessage", envelope.Event)
		assert.Equal(t, "hello", envelope.Data)
	}
}
