package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/erp-servicos/internal/domain/activity"
)

// ActivityRepository implementa a interface activity.Repository
type ActivityRepository struct {
	db DBTX
}

// NewActivityRepository cria uma nova instância de ActivityRepository
func NewActivityRepository(db DBTX) activity.Repository {
	return &ActivityRepository{db: db}
}

// Create implementa activity.Repository.Create
func (r *ActivityRepository) Create(ctx context.Context, l *activity.Log) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO activity_logs (id, customer_id, activity_type, description, reference_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		l.ID, l.CustomerID, l.ActivityType, l.Description, l.ReferenceID, l.CreatedAt)
	if err != nil {
		return fmt.Errorf("erro ao registrar atividade: %w", err)
	}
	return nil
}

// FindByCustomer implementa activity.Repository.FindByCustomer
func (r *ActivityRepository) FindByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*activity.Log, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, customer_id, activity_type, description, reference_id, created_at
		FROM activity_logs WHERE customer_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar atividades: %w", err)
	}
	defer rows.Close()

	logs := make([]*activity.Log, 0)
	for rows.Next() {
		var l activity.Log
		if err := rows.Scan(&l.ID, &l.CustomerID, &l.ActivityType, &l.Description, &l.ReferenceID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler atividade: %w", err)
		}
		logs = append(logs, &l)
	}

	return logs, rows.Err()
}
