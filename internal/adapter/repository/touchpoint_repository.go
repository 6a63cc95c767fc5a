package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/erp-servicos/internal/domain/touchpoint"
	"github.com/jackc/pgx/v5"
)

const touchpointColumns = `id, customer_product_id, customer_id, phase, month_offset,
	scheduled_date, task_name, message_template_id, status, sent_at, completed_at,
	created_at, updated_at`

// TouchpointRepository implementa a interface touchpoint.Repository
type TouchpointRepository struct {
	db DBTX
}

// NewTouchpointRepository cria uma nova instância de TouchpointRepository
func NewTouchpointRepository(db DBTX) touchpoint.Repository {
	return &TouchpointRepository{db: db}
}

// CreateBatch implementa touchpoint.Repository.CreateBatch
func (r *TouchpointRepository) CreateBatch(ctx context.Context, touchpoints []*touchpoint.Touchpoint) error {
	if len(touchpoints) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, t := range touchpoints {
		batch.Queue(
			`INSERT INTO scheduled_service_tasks (`+touchpointColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			t.ID, t.CustomerProductID, t.CustomerID, t.Phase, t.MonthOffset,
			t.ScheduledDate, t.TaskName, nullableString(t.MessageTemplateID), t.Status,
			t.SentAt, t.CompletedAt, t.CreatedAt, t.UpdatedAt)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range touchpoints {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("erro ao criar tarefas agendadas: %w", err)
		}
	}

	return results.Close()
}

// FindByID implementa touchpoint.Repository.FindByID
func (r *TouchpointRepository) FindByID(ctx context.Context, id string) (*touchpoint.Touchpoint, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+touchpointColumns+` FROM scheduled_service_tasks WHERE id = $1`, id)

	t, err := scanTouchpoint(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, touchpoint.ErrTouchpointNotFound
		}
		return nil, fmt.Errorf("erro ao buscar tarefa agendada: %w", err)
	}

	return t, nil
}

// FindByCustomerProduct implementa touchpoint.Repository.FindByCustomerProduct
func (r *TouchpointRepository) FindByCustomerProduct(ctx context.Context, customerProductID string) ([]*touchpoint.Touchpoint, error) {
	return r.query(ctx,
		`SELECT `+touchpointColumns+` FROM scheduled_service_tasks
		WHERE customer_product_id = $1 ORDER BY scheduled_date, month_offset`,
		customerProductID)
}

// List implementa touchpoint.Repository.List
func (r *TouchpointRepository) List(ctx context.Context, filter touchpoint.Filter) ([]*touchpoint.Touchpoint, error) {
	var where []string
	var args []any

	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}

	if filter.DueBefore != nil {
		args = append(args, *filter.DueBefore)
		where = append(where, fmt.Sprintf("scheduled_date <= $%d", len(args)))
	}

	sql := `SELECT ` + touchpointColumns + ` FROM scheduled_service_tasks`
	if len(where) > 0 {
		sql += ` WHERE ` + strings.Join(where, " AND ")
	}
	sql += ` ORDER BY scheduled_date, month_offset`

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		sql += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		sql += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	return r.query(ctx, sql, args...)
}

// UpdateStatus implementa touchpoint.Repository.UpdateStatus
func (r *TouchpointRepository) UpdateStatus(ctx context.Context, t *touchpoint.Touchpoint) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE scheduled_service_tasks SET
			status = $2, sent_at = $3, completed_at = $4, updated_at = $5
		WHERE id = $1`,
		t.ID, t.Status, t.SentAt, t.CompletedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao atualizar tarefa agendada: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return touchpoint.ErrTouchpointNotFound
	}

	return nil
}

func (r *TouchpointRepository) query(ctx context.Context, sql string, args ...any) ([]*touchpoint.Touchpoint, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar tarefas agendadas: %w", err)
	}
	defer rows.Close()

	touchpoints := make([]*touchpoint.Touchpoint, 0)
	for rows.Next() {
		t, err := scanTouchpoint(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler tarefa agendada: %w", err)
		}
		touchpoints = append(touchpoints, t)
	}

	return touchpoints, rows.Err()
}

func scanTouchpoint(row pgx.Row) (*touchpoint.Touchpoint, error) {
	var t touchpoint.Touchpoint
	err := row.Scan(
		&t.ID, &t.CustomerProductID, &t.CustomerID, &t.Phase, &t.MonthOffset,
		&t.ScheduledDate, &t.TaskName, &t.MessageTemplateID, &t.Status,
		&t.SentAt, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
