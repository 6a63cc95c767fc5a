// Package events publica e consome eventos de domínio em memória.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const (
	TopicPurchaseRecorded = "purchase.recorded"
	TopicLifecycleCreated = "lifecycle.created"
	TopicScheduleFailed   = "schedule.failed"
)

// Bus encapsula o Pub/Sub em memória do watermill
type Bus struct {
	pubSub *gochannel.GoChannel
}

// NewBus cria um barramento de eventos em memória
func NewBus(bufferSize int64) *Bus {
	return &Bus{
		pubSub: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: bufferSize},
			watermill.NewStdLogger(false, false),
		),
	}
}

// Publish serializa o evento em JSON e publica no tópico
func (b *Bus) Publish(ctx context.Context, topic string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("erro ao serializar evento %s: %w", topic, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)

	if err := b.pubSub.Publish(topic, msg); err != nil {
		return fmt.Errorf("erro ao publicar evento %s: %w", topic, err)
	}
	return nil
}

// Subscribe retorna o canal de mensagens do tópico; ele é fechado quando ctx termina
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.pubSub.Subscribe(ctx, topic)
}

// Close encerra o barramento
func (b *Bus) Close() error {
	return b.pubSub.Close()
}
