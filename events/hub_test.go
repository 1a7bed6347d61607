package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/localstore"
	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/models"
)

type memSignals struct {
	data map[string]string
}

func (m *memSignals) Put(key, value string) error {
	if m.data == nil {
		m.data = map[string]string{}
	}
	m.data[key] = value
	return nil
}

func TestPublishWritesSignalAndNotifiesSubscribers(t *testing.T) {
	signals := &memSignals{}
	hub := NewHub(signals)

	var received []models.OrderStatusChange
	hub.Subscribe(func(ev models.OrderStatusChange) {
		received = append(received, ev)
	})

	ev := models.OrderStatusChange{
		OrderID:   "ord-7",
		NewStatus: string(models.OrderStatusCancelled),
		UserEmail: "a@example.com",
		Timestamp: time.Now(),
	}
	hub.PublishOrderStatus(ev)

	// the cross-page path: the signal key holds the event as JSON
	raw, ok := signals.data[localstore.KeyOrderStatusSignal]
	require.True(t, ok)
	var decoded models.OrderStatusChange
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	assert.Equal(t, "ord-7", decoded.OrderID)
	assert.Equal(t, "cancelled", decoded.NewStatus)
	assert.Equal(t, "a@example.com", decoded.UserEmail)

	// the same-tab path: subscribers see the event directly
	require.Len(t, received, 1)
	assert.Equal(t, ev.OrderID, received[0].OrderID)
}

func TestPublishWithoutSignalStore(t *testing.T) {
	hub := NewHub(nil)
	fired := false
	hub.Subscribe(func(models.OrderStatusChange) { fired = true })

	hub.PublishOrderStatus(models.OrderStatusChange{OrderID: "ord-1", NewStatus: "shipped"})
	assert.True(t, fired)
}
