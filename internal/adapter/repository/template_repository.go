package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/erp-servicos/internal/domain/lifecycle"
	"github.com/hugohenrick/erp-servicos/internal/domain/template"
	"github.com/jackc/pgx/v5"
)

const templateColumns = `id, name, type, channel, body, variables, is_default, created_at, updated_at`

// TemplateRepository implementa a interface template.Repository
type TemplateRepository struct {
	db DBTX
}

// NewTemplateRepository cria uma nova instância de TemplateRepository
func NewTemplateRepository(db DBTX) template.Repository {
	return &TemplateRepository{db: db}
}

// Create implementa template.Repository.Create
func (r *TemplateRepository) Create(ctx context.Context, t *template.MessageTemplate) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO message_templates (`+templateColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		t.ID, t.Name, t.Type, t.Channel, t.Body, t.Variables, t.IsDefault, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar template: %w", err)
	}

	return nil
}

// FindByID implementa template.Repository.FindByID
func (r *TemplateRepository) FindByID(ctx context.Context, id string) (*template.MessageTemplate, error) {
	return r.findOne(ctx, `SELECT `+templateColumns+` FROM message_templates WHERE id = $1`, id)
}

// FindDefault implementa template.Repository.FindDefault
func (r *TemplateRepository) FindDefault(ctx context.Context, phase lifecycle.Phase) (*template.MessageTemplate, error) {
	return r.findOne(ctx,
		`SELECT `+templateColumns+` FROM message_templates
		WHERE type = $1 AND is_default ORDER BY updated_at DESC LIMIT 1`,
		phase)
}

// List implementa template.Repository.List
func (r *TemplateRepository) List(ctx context.Context, phase lifecycle.Phase) ([]*template.MessageTemplate, error) {
	sql := `SELECT ` + templateColumns + ` FROM message_templates`
	var args []any
	if phase != "" {
		sql += ` WHERE type = $1`
		args = append(args, phase)
	}
	sql += ` ORDER BY type, name`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar templates: %w", err)
	}
	defer rows.Close()

	templates := make([]*template.MessageTemplate, 0)
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler template: %w", err)
		}
		templates = append(templates, t)
	}

	return templates, rows.Err()
}

// Update implementa template.Repository.Update
func (r *TemplateRepository) Update(ctx context.Context, t *template.MessageTemplate) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE message_templates SET
			name = $2, type = $3, channel = $4, body = $5, variables = $6,
			is_default = $7, updated_at = $8
		WHERE id = $1`,
		t.ID, t.Name, t.Type, t.Channel, t.Body, t.Variables, t.IsDefault, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao atualizar template: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return template.ErrTemplateNotFound
	}

	return nil
}

// ClearDefault implementa template.Repository.ClearDefault
func (r *TemplateRepository) ClearDefault(ctx context.Context, phase lifecycle.Phase, exceptID string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE message_templates SET is_default = FALSE, updated_at = NOW()
		WHERE type = $1 AND is_default AND id::text <> $2`,
		phase, exceptID)
	if err != nil {
		return fmt.Errorf("erro ao limpar template padrão: %w", err)
	}
	return nil
}

func (r *TemplateRepository) findOne(ctx context.Context, sql string, args ...any) (*template.MessageTemplate, error) {
	t, err := scanTemplate(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, template.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("erro ao buscar template: %w", err)
	}
	return t, nil
}

func scanTemplate(row pgx.Row) (*template.MessageTemplate, error) {
	var t template.MessageTemplate
	err := row.Scan(
		&t.ID, &t.Name, &t.Type, &t.Channel, &t.Body, &t.Variables,
		&t.IsDefault, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
