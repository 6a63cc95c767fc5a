package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hugohenrick/erp-servicos/internal/domain/lifecycle"
	"github.com/hugohenrick/erp-servicos/internal/domain/product"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const productColumns = `id, sku, name, description, price::text, product_type,
	lifecycle_months, service_interval_months, usage_duration_days,
	service_flow_config, active, created_at, updated_at`

// ProductRepository implementa a interface product.Repository
type ProductRepository struct {
	db DBTX
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db DBTX) product.Repository {
	return &ProductRepository{db: db}
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	flowConfig, err := json.Marshal(p.ServiceFlowConfig)
	if err != nil {
		return fmt.Errorf("erro ao converter configuração de fluxo para JSON: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO products (
			id, sku, name, description, price, product_type,
			lifecycle_months, service_interval_months, usage_duration_days,
			service_flow_config, active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		p.ID, p.SKU, p.Name, p.Description, p.Price.String(), p.ProductType,
		p.LifecycleMonths, p.ServiceIntervalMonths, p.UsageDurationDays,
		flowConfig, p.Active, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar produto: %w", err)
	}

	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	row := r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}

	return p, nil
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY name LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	products := make([]*product.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// Count implementa product.Repository.Count
func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}
	return count, nil
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	flowConfig, err := json.Marshal(p.ServiceFlowConfig)
	if err != nil {
		return fmt.Errorf("erro ao converter configuração de fluxo para JSON: %w", err)
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE products SET
			sku = $2, name = $3, description = $4, price = $5, product_type = $6,
			lifecycle_months = $7, service_interval_months = $8, usage_duration_days = $9,
			service_flow_config = $10, active = $11, updated_at = $12
		WHERE id = $1`,
		p.ID, p.SKU, p.Name, p.Description, p.Price.String(), p.ProductType,
		p.LifecycleMonths, p.ServiceIntervalMonths, p.UsageDurationDays,
		flowConfig, p.Active, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}

	return nil
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover produto: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}

	return nil
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product
	var price string
	var flowConfig []byte

	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &price, &p.ProductType,
		&p.LifecycleMonths, &p.ServiceIntervalMonths, &p.UsageDurationDays,
		&flowConfig, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if p.Price, err = decimal.NewFromString(price); err != nil {
		return nil, fmt.Errorf("erro ao converter preço: %w", err)
	}

	if p.ServiceFlowConfig, err = lifecycle.ParseFlowConfig(flowConfig); err != nil {
		return nil, err
	}

	return &p, nil
}
