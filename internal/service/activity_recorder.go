package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/hugohenrick/erp-servicos/internal/domain/activity"
	"github.com/hugohenrick/erp-servicos/internal/infrastructure/events"
	"github.com/hugohenrick/erp-servicos/pkg/logger"
)

// EventSubscriber entrega as mensagens de um tópico
type EventSubscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
}

// ActivityRecorder grava no histórico do cliente os eventos de compra e ciclo de vida
type ActivityRecorder struct {
	subscriber EventSubscriber
	activities activity.Repository
	logger     logger.Logger
	retry      middleware.Retry
}

// NewActivityRecorder cria um ActivityRecorder
func NewActivityRecorder(subscriber EventSubscriber, activities activity.Repository, logger logger.Logger) *ActivityRecorder {
	r := &ActivityRecorder{
		subscriber: subscriber,
		activities: activities,
		logger:     logger,
	}
	r.retry = middleware.Retry{
		MaxRetries:      5,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		Multiplier:      2,
		Logger:          watermill.NopLogger{},
		OnRetryHook: func(retryNum int, delay time.Duration) {
			r.logger.Warn("Nova tentativa de registrar atividade", "attempt", retryNum, "delay", delay)
		},
	}
	return r
}

// Start assina os tópicos; o consumo termina quando ctx é cancelado
func (r *ActivityRecorder) Start(ctx context.Context) error {
	handlers := map[string]func(payload []byte) (*activity.Log, error){
		events.TopicPurchaseRecorded: purchaseRecordedLog,
		events.TopicLifecycleCreated: lifecycleCreatedLog,
		events.TopicScheduleFailed:   scheduleFailedLog,
	}

	for topic, handler := range handlers {
		messages, err := r.subscriber.Subscribe(ctx, topic)
		if err != nil {
			return fmt.Errorf("erro ao assinar tópico %s: %w", topic, err)
		}

		go func(topic string, messages <-chan *message.Message, handler func([]byte) (*activity.Log, error)) {
			for msg := range messages {
				r.process(ctx, topic, msg, handler)
			}
		}(topic, messages, handler)
	}

	return nil
}

func (r *ActivityRecorder) process(ctx context.Context, topic string, msg *message.Message, handler func([]byte) (*activity.Log, error)) {
	entry, err := handler(msg.Payload)
	if err != nil {
		r.logger.Error("Evento inválido descartado", "topic", topic, "message_id", msg.UUID, "error", err)
		msg.Ack()
		return
	}

	// esgotadas as tentativas a mensagem é confirmada, sem reentrega imediata
	msg.SetContext(ctx)
	save := r.retry.Middleware(func(msg *message.Message) ([]*message.Message, error) {
		return nil, r.activities.Create(msg.Context(), entry)
	})
	if _, err := save(msg); err != nil {
		r.logger.Error("Erro ao registrar atividade, evento descartado", "topic", topic, "message_id", msg.UUID, "error", err)
	}

	msg.Ack()
}

func purchaseRecordedLog(payload []byte) (*activity.Log, error) {
	var evt events.PurchaseRecorded
	if err := json.Unmarshal(payload, &evt); err != nil {
		return nil, err
	}
	return activity.NewLog(
		evt.CustomerID,
		activity.TypePurchaseRecorded,
		fmt.Sprintf("Compra %s registrada, total %s", evt.TransactionNo, evt.NetAmount),
		evt.TransactionID,
	), nil
}

func lifecycleCreatedLog(payload []byte) (*activity.Log, error) {
	var evt events.LifecycleCreated
	if err := json.Unmarshal(payload, &evt); err != nil {
		return nil, err
	}
	return activity.NewLog(
		evt.CustomerID,
		activity.TypeLifecycleCreated,
		fmt.Sprintf("Ciclo de vida criado com %d tarefas agendadas", evt.Touchpoints),
		evt.CustomerProductID,
	), nil
}

func scheduleFailedLog(payload []byte) (*activity.Log, error) {
	var evt events.ScheduleFailed
	if err := json.Unmarshal(payload, &evt); err != nil {
		return nil, err
	}
	return activity.NewLog(
		evt.CustomerID,
		activity.TypeScheduleMaterializationFailed,
		fmt.Sprintf("Falha ao agendar item %s: %s", evt.TransactionItemID, evt.Reason),
		evt.TransactionID,
	), nil
}
