package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishSubscribe(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := NewBus(8)
	defer bus.Close()

	messages, err := bus.Subscribe(ctx, TopicPurchaseRecorded)
	require.NoError(t, err)

	sent := PurchaseRecorded{TransactionID: "t1", TransactionNo: "INV-202401-ABCDEF-001", CustomerID: "c1", NetAmount: "107"}
	require.NoError(t, bus.Publish(ctx, TopicPurchaseRecorded, sent))

	select {
	case msg := <-messages:
		var got PurchaseRecorded
		require.NoError(t, json.Unmarshal(msg.Payload, &got))
		assert.Equal(t, sent.TransactionNo, got.TransactionNo)
		msg.Ack()
	case <-time.After(2 * time.Second):
		t.Fatal("evento não recebido")
	}
}
