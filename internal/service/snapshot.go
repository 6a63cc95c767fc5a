package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hugohenrick/erp-servicos/internal/domain/customerproduct"
	"github.com/hugohenrick/erp-servicos/internal/domain/product"
	"github.com/hugohenrick/erp-servicos/internal/domain/transaction"
)

// CaptureSnapshot copia a configuração atual do produto do item para um novo
// cliente-produto. Retorna nil, nil quando o produto não gera ciclo de vida.
func CaptureSnapshot(
	ctx context.Context,
	products product.Repository,
	customerID string,
	item *transaction.Item,
	processingDate time.Time,
) (*customerproduct.CustomerProduct, error) {
	p, err := products.FindByID(ctx, item.ProductID)
	if err != nil {
		return nil, fmt.Errorf("snapshot do item %s (produto %s): %w", item.ID, item.ProductID, err)
	}

	if !p.QualifiesForLifecycleRecord() {
		return nil, nil
	}

	return customerproduct.NewCustomerProduct(
		customerID,
		p.ID,
		item.TransactionID,
		item.ID,
		item.AnchorDate(processingDate),
		customerproduct.Snapshot{
			FlowConfig:            p.ServiceFlowConfig.Clone(),
			LifecycleMonths:       p.LifecycleMonths,
			ServiceIntervalMonths: p.ServiceIntervalMonths,
		},
		p.UsageDurationDays,
	)
}
