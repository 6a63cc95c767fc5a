package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/erp-servicos/internal/domain/transaction"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const transactionColumns = `id, transaction_no, customer_id, transaction_date,
	subtotal::text, discount_amount::text, vat_rate::text, tax_amount::text, net_amount::text,
	payment_status, payment_method, notes, created_at, updated_at`

// TransactionRepository implementa a interface transaction.Repository
type TransactionRepository struct {
	db DBTX
}

// NewTransactionRepository cria uma nova instância de TransactionRepository
func NewTransactionRepository(db DBTX) transaction.Repository {
	return &TransactionRepository{db: db}
}

// Create implementa transaction.Repository.Create
func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	batch := &pgx.Batch{}
	batch.Queue(
		`INSERT INTO transactions (
			id, transaction_no, customer_id, transaction_date,
			subtotal, discount_amount, vat_rate, tax_amount, net_amount,
			payment_status, payment_method, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		t.ID, t.TransactionNo, t.CustomerID, t.TransactionDate,
		t.Subtotal.String(), t.DiscountAmount.String(), t.VATRate.String(),
		t.TaxAmount.String(), t.NetAmount.String(),
		t.PaymentStatus, t.PaymentMethod, t.Notes, t.CreatedAt, t.UpdatedAt)

	for i, item := range t.Items {
		batch.Queue(
			`INSERT INTO transaction_items (
				id, transaction_id, product_id, product_name, quantity,
				unit_price, total_price, service_start_date, position
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			item.ID, t.ID, item.ProductID, item.ProductName, item.Quantity,
			item.UnitPrice.String(), item.TotalPrice.String(), item.ServiceStartDate, i)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("erro ao criar transação: %w", err)
		}
	}

	return results.Close()
}

// FindByID implementa transaction.Repository.FindByID
func (r *TransactionRepository) FindByID(ctx context.Context, id string) (*transaction.Transaction, error) {
	row := r.db.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)

	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, transaction.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("erro ao buscar transação: %w", err)
	}

	if t.Items, err = r.findItems(ctx, t.ID); err != nil {
		return nil, err
	}

	return t, nil
}

// List implementa transaction.Repository.List
func (r *TransactionRepository) List(ctx context.Context, limit, offset int) ([]*transaction.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+transactionColumns+` FROM transactions
		ORDER BY transaction_date DESC, created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar transações: %w", err)
	}

	transactions := make([]*transaction.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("erro ao ler transação: %w", err)
		}
		transactions = append(transactions, t)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, t := range transactions {
		if t.Items, err = r.findItems(ctx, t.ID); err != nil {
			return nil, err
		}
	}

	return transactions, nil
}

// Count implementa transaction.Repository.Count
func (r *TransactionRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar transações: %w", err)
	}
	return count, nil
}

// CountByNumberPrefix implementa transaction.Repository.CountByNumberPrefix
func (r *TransactionRepository) CountByNumberPrefix(ctx context.Context, prefix string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM transactions WHERE transaction_no LIKE $1`,
		prefix+"%").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar numeração de transações: %w", err)
	}
	return count, nil
}

// UpdatePaymentStatus implementa transaction.Repository.UpdatePaymentStatus
func (r *TransactionRepository) UpdatePaymentStatus(ctx context.Context, id string, status transaction.PaymentStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE transactions SET payment_status = $2, updated_at = $3 WHERE id = $1`,
		id, status, time.Now())
	if err != nil {
		return fmt.Errorf("erro ao atualizar status de pagamento: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return transaction.ErrTransactionNotFound
	}

	return nil
}

func (r *TransactionRepository) findItems(ctx context.Context, transactionID string) ([]*transaction.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, transaction_id, product_id, product_name, quantity,
			unit_price::text, total_price::text, service_start_date
		FROM transaction_items WHERE transaction_id = $1 ORDER BY position`,
		transactionID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar itens da transação: %w", err)
	}
	defer rows.Close()

	items := make([]*transaction.Item, 0)
	for rows.Next() {
		var item transaction.Item
		var unitPrice, totalPrice string
		err := rows.Scan(
			&item.ID, &item.TransactionID, &item.ProductID, &item.ProductName, &item.Quantity,
			&unitPrice, &totalPrice, &item.ServiceStartDate)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler item da transação: %w", err)
		}

		if err := parseDecimals(
			decimalField{unitPrice, &item.UnitPrice},
			decimalField{totalPrice, &item.TotalPrice},
		); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}

	return items, rows.Err()
}

func scanTransaction(row pgx.Row) (*transaction.Transaction, error) {
	var t transaction.Transaction
	var subtotal, discount, vatRate, tax, net string

	err := row.Scan(
		&t.ID, &t.TransactionNo, &t.CustomerID, &t.TransactionDate,
		&subtotal, &discount, &vatRate, &tax, &net,
		&t.PaymentStatus, &t.PaymentMethod, &t.Notes, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}

	err = parseDecimals(
		decimalField{subtotal, &t.Subtotal},
		decimalField{discount, &t.DiscountAmount},
		decimalField{vatRate, &t.VATRate},
		decimalField{tax, &t.TaxAmount},
		decimalField{net, &t.NetAmount},
	)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

type decimalField struct {
	raw  string
	dest *decimal.Decimal
}

func parseDecimals(fields ...decimalField) error {
	for _, f := range fields {
		v, err := decimal.NewFromString(f.raw)
		if err != nil {
			return fmt.Errorf("erro ao converter valor monetário %q: %w", f.raw, err)
		}
		*f.dest = v
	}
	return nil
}
