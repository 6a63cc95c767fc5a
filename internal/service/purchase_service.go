package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hugohenrick/erp-servicos/internal/domain/customerproduct"
	"github.com/hugohenrick/erp-servicos/internal/domain/lifecycle"
	"github.com/hugohenrick/erp-servicos/internal/domain/touchpoint"
	"github.com/hugohenrick/erp-servicos/internal/domain/transaction"
	"github.com/hugohenrick/erp-servicos/internal/domain/unitofwork"
	"github.com/hugohenrick/erp-servicos/internal/infrastructure/events"
	"github.com/hugohenrick/erp-servicos/pkg/logger"
	"github.com/shopspring/decimal"
)

// ErrScheduleMaterialization indica que a compra foi gravada mas a agenda de
// serviços de ao menos um item não pôde ser criada
var ErrScheduleMaterialization = errors.New("falha ao gerar agenda de serviços")

// ItemScheduleFailure descreve a falha de agendamento de um item
type ItemScheduleFailure struct {
	TransactionItemID string
	ProductID         string
	Err               error
}

// ScheduleError reúne as falhas de agendamento de uma compra já gravada
type ScheduleError struct {
	TransactionID string
	Failures      []ItemScheduleFailure
}

func (e *ScheduleError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = fmt.Sprintf("item %s: %v", f.TransactionItemID, f.Err)
	}
	return fmt.Sprintf("%v na transação %s: %s", ErrScheduleMaterialization, e.TransactionID, strings.Join(parts, "; "))
}

// Is permite errors.Is(err, ErrScheduleMaterialization)
func (e *ScheduleError) Is(target error) bool {
	return target == ErrScheduleMaterialization
}

func (e *ScheduleError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f.Err
	}
	return errs
}

// PurchaseItemInput é um item de uma compra a registrar
type PurchaseItemInput struct {
	ProductID        string
	Quantity         int
	UnitPrice        *decimal.Decimal // nil usa o preço do produto
	ServiceStartDate *time.Time
}

// PurchaseInput são os dados de uma compra a registrar
type PurchaseInput struct {
	CustomerID      string
	TransactionNo   string
	TransactionDate *time.Time
	Items           []PurchaseItemInput
	Discount        decimal.Decimal
	PaymentMethod   string
	Notes           string
}

// PurchaseResult é o que foi gravado por RecordPurchase ou RetrySchedule
type PurchaseResult struct {
	Transaction      *transaction.Transaction
	CustomerProducts []*customerproduct.CustomerProduct
	Touchpoints      []*touchpoint.Touchpoint
}

// PurchaseService registra compras e cria o ciclo de vida dos itens
type PurchaseService struct {
	uow          unitofwork.UnitOfWork
	materializer *Materializer
	publisher    EventPublisher
	vat          transaction.VATSettings
	clock        Clock
	logger       logger.Logger
}

// NewPurchaseService cria um PurchaseService
func NewPurchaseService(
	uow unitofwork.UnitOfWork,
	materializer *Materializer,
	publisher EventPublisher,
	vat transaction.VATSettings,
	clock Clock,
	logger logger.Logger,
) *PurchaseService {
	return &PurchaseService{
		uow:          uow,
		materializer: materializer,
		publisher:    publisher,
		vat:          vat,
		clock:        clock,
		logger:       logger,
	}
}

// RecordPurchase grava a transação e, para cada item elegível, o cliente-produto
// com suas tarefas. Se a compra foi gravada e o agendamento falhou, retorna o
// resultado junto com um *ScheduleError.
func (s *PurchaseService) RecordPurchase(ctx context.Context, in PurchaseInput) (*PurchaseResult, error) {
	if _, err := s.uow.Customers().FindByID(ctx, in.CustomerID); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	items := make([]*transaction.Item, 0, len(in.Items))
	for _, itemIn := range in.Items {
		p, err := s.uow.Products().FindByID(ctx, itemIn.ProductID)
		if err != nil {
			return nil, fmt.Errorf("produto %s: %w", itemIn.ProductID, err)
		}

		price := p.Price
		if itemIn.UnitPrice != nil {
			price = *itemIn.UnitPrice
		}

		item, err := transaction.NewItem(p.ID, p.Name, itemIn.Quantity, price, itemIn.ServiceStartDate)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	txDate := now
	if in.TransactionDate != nil {
		txDate = *in.TransactionDate
	}

	t, err := transaction.NewTransaction(in.CustomerID, txDate, items)
	if err != nil {
		return nil, err
	}

	if err := t.ApplyTotals(in.Discount, s.vat); err != nil {
		return nil, err
	}
	t.PaymentMethod = in.PaymentMethod
	t.Notes = in.Notes

	t.TransactionNo = in.TransactionNo
	if t.TransactionNo == "" {
		existing, err := s.uow.Transactions().CountByNumberPrefix(ctx, transaction.NumberPrefix(t.TransactionDate, t.CustomerID))
		if err != nil {
			return nil, err
		}
		t.TransactionNo = transaction.FormatNumber(t.TransactionDate, t.CustomerID, existing)
	}

	err = s.uow.Do(ctx, func(repos unitofwork.Repositories) error {
		if err := repos.Transactions().Create(ctx, t); err != nil {
			return err
		}
		return repos.Customers().TouchLastPurchase(ctx, t.CustomerID, now)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Compra registrada",
		"transaction_id", t.ID,
		"transaction_no", t.TransactionNo,
		"customer_id", t.CustomerID,
		"net_amount", t.NetAmount.String())

	s.publish(ctx, events.TopicPurchaseRecorded, events.PurchaseRecorded{
		TransactionID: t.ID,
		TransactionNo: t.TransactionNo,
		CustomerID:    t.CustomerID,
		NetAmount:     t.NetAmount.String(),
		OccurredAt:    now,
	})

	return s.schedule(ctx, t)
}

// RetrySchedule tenta novamente criar o ciclo de vida dos itens de uma
// transação que ainda não o possuem
func (s *PurchaseService) RetrySchedule(ctx context.Context, transactionID string) (*PurchaseResult, error) {
	t, err := s.uow.Transactions().FindByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	return s.schedule(ctx, t)
}

// ChangePaymentStatus altera o status de pagamento de uma transação
func (s *PurchaseService) ChangePaymentStatus(ctx context.Context, transactionID string, status transaction.PaymentStatus) (*transaction.Transaction, error) {
	t, err := s.uow.Transactions().FindByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if err := t.ChangePaymentStatus(status); err != nil {
		return nil, err
	}

	if err := s.uow.Transactions().UpdatePaymentStatus(ctx, t.ID, t.PaymentStatus); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *PurchaseService) schedule(ctx context.Context, t *transaction.Transaction) (*PurchaseResult, error) {
	result := &PurchaseResult{
		Transaction:      t,
		CustomerProducts: make([]*customerproduct.CustomerProduct, 0),
		Touchpoints:      make([]*touchpoint.Touchpoint, 0),
	}
	scheduleErr := &ScheduleError{TransactionID: t.ID}
	today := lifecycle.DateOnly(s.clock.Now())

	for _, item := range t.Items {
		var cp *customerproduct.CustomerProduct
		var created []*touchpoint.Touchpoint

		err := s.uow.Do(ctx, func(repos unitofwork.Repositories) error {
			exists, err := repos.CustomerProducts().ExistsForItem(ctx, item.ID)
			if err != nil || exists {
				return err
			}

			cp, err = CaptureSnapshot(ctx, repos.Products(), t.CustomerID, item, today)
			if err != nil || cp == nil {
				return err
			}

			if err := repos.CustomerProducts().Create(ctx, cp); err != nil {
				return err
			}

			created, err = s.materializer.Materialize(ctx, repos, cp)
			return err
		})

		if err != nil {
			s.logger.Error("Erro ao gerar agenda do item",
				"transaction_id", t.ID,
				"transaction_item_id", item.ID,
				"product_id", item.ProductID,
				"error", err)
			scheduleErr.Failures = append(scheduleErr.Failures, ItemScheduleFailure{
				TransactionItemID: item.ID,
				ProductID:         item.ProductID,
				Err:               err,
			})
			s.publish(ctx, events.TopicScheduleFailed, events.ScheduleFailed{
				TransactionID:     t.ID,
				TransactionItemID: item.ID,
				CustomerID:        t.CustomerID,
				Reason:            err.Error(),
				OccurredAt:        s.clock.Now(),
			})
			continue
		}

		if cp == nil {
			continue
		}

		result.CustomerProducts = append(result.CustomerProducts, cp)
		result.Touchpoints = append(result.Touchpoints, created...)

		s.logger.Info("Ciclo de vida criado",
			"customer_product_id", cp.ID,
			"transaction_item_id", item.ID,
			"touchpoints", len(created))

		s.publish(ctx, events.TopicLifecycleCreated, events.LifecycleCreated{
			CustomerProductID: cp.ID,
			CustomerID:        cp.CustomerID,
			ProductID:         cp.ProductID,
			TransactionID:     t.ID,
			Touchpoints:       len(created),
			OccurredAt:        s.clock.Now(),
		})
	}

	if len(scheduleErr.Failures) > 0 {
		return result, scheduleErr
	}
	return result, nil
}

func (s *PurchaseService) publish(ctx context.Context, topic string, event any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, topic, event); err != nil {
		s.logger.Warn("Erro ao publicar evento", "topic", topic, "error", err)
	}
}
