package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hugohenrick/erp-servicos/internal/domain/customerproduct"
	"github.com/hugohenrick/erp-servicos/internal/domain/lifecycle"
	"github.com/jackc/pgx/v5"
)

const customerProductColumns = `id, customer_id, product_id, transaction_id, transaction_item_id,
	installation_date, warranty_end_date, next_service_date, status,
	service_flow_config_snapshot, lifecycle_months_snapshot, service_interval_months_snapshot,
	created_at`

// CustomerProductRepository implementa a interface customerproduct.Repository
type CustomerProductRepository struct {
	db DBTX
}

// NewCustomerProductRepository cria uma nova instância de CustomerProductRepository
func NewCustomerProductRepository(db DBTX) customerproduct.Repository {
	return &CustomerProductRepository{db: db}
}

// Create implementa customerproduct.Repository.Create
func (r *CustomerProductRepository) Create(ctx context.Context, cp *customerproduct.CustomerProduct) error {
	snapshot, err := json.Marshal(cp.FlowConfig)
	if err != nil {
		return fmt.Errorf("erro ao converter snapshot do fluxo para JSON: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO customer_products (`+customerProductColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		cp.ID, cp.CustomerID, cp.ProductID, cp.TransactionID, cp.TransactionItemID,
		cp.InstallationDate, cp.WarrantyEndDate, cp.NextServiceDate, cp.Status,
		snapshot, cp.LifecycleMonths, cp.ServiceIntervalMonths, cp.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return customerproduct.ErrAlreadyExists
		}
		return fmt.Errorf("erro ao criar produto do cliente: %w", err)
	}

	return nil
}

// FindByID implementa customerproduct.Repository.FindByID
func (r *CustomerProductRepository) FindByID(ctx context.Context, id string) (*customerproduct.CustomerProduct, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+customerProductColumns+` FROM customer_products WHERE id = $1`, id)

	cp, err := scanCustomerProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customerproduct.ErrCustomerProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto do cliente: %w", err)
	}

	return cp, nil
}

// FindByCustomer implementa customerproduct.Repository.FindByCustomer
func (r *CustomerProductRepository) FindByCustomer(ctx context.Context, customerID string) ([]*customerproduct.CustomerProduct, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+customerProductColumns+` FROM customer_products
		WHERE customer_id = $1 ORDER BY installation_date DESC, created_at DESC`,
		customerID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos do cliente: %w", err)
	}
	defer rows.Close()

	result := make([]*customerproduct.CustomerProduct, 0)
	for rows.Next() {
		cp, err := scanCustomerProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto do cliente: %w", err)
		}
		result = append(result, cp)
	}

	return result, rows.Err()
}

// ExistsForItem implementa customerproduct.Repository.ExistsForItem
func (r *CustomerProductRepository) ExistsForItem(ctx context.Context, transactionItemID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM customer_products WHERE transaction_item_id = $1)`,
		transactionItemID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar ciclo de vida do item: %w", err)
	}
	return exists, nil
}

// UpdateStatus implementa customerproduct.Repository.UpdateStatus
func (r *CustomerProductRepository) UpdateStatus(ctx context.Context, id string, status customerproduct.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE customer_products SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status do produto do cliente: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return customerproduct.ErrCustomerProductNotFound
	}

	return nil
}

func scanCustomerProduct(row pgx.Row) (*customerproduct.CustomerProduct, error) {
	var cp customerproduct.CustomerProduct
	var snapshot []byte

	err := row.Scan(
		&cp.ID, &cp.CustomerID, &cp.ProductID, &cp.TransactionID, &cp.TransactionItemID,
		&cp.InstallationDate, &cp.WarrantyEndDate, &cp.NextServiceDate, &cp.Status,
		&snapshot, &cp.LifecycleMonths, &cp.ServiceIntervalMonths, &cp.CreatedAt)
	if err != nil {
		return nil, err
	}

	if cp.FlowConfig, err = lifecycle.ParseFlowConfig(snapshot); err != nil {
		return nil, err
	}

	return &cp, nil
}
