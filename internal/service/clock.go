package service

import (
	"context"
	"time"
)

// Clock fornece a data/hora atual
type Clock interface {
	Now() time.Time
}

// SystemClock usa o relógio do sistema
type SystemClock struct{}

// Now implementa Clock
func (SystemClock) Now() time.Time { return time.Now() }

// EventPublisher publica eventos de domínio
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event any) error
}
