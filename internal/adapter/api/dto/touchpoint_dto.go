package dto

import (
	"time"

	"github.com/hugohenrick/erp-servicos/internal/domain/touchpoint"
)

// TouchpointStatusRequest representa a requisição de alteração de status da tarefa
type TouchpointStatusRequest struct {
	Status string `json:"status" binding:"required,touchpoint_status" example:"sent"`
}

// TouchpointResponse representa uma tarefa agendada
type TouchpointResponse struct {
	ID                string     `json:"id"`
	CustomerProductID string     `json:"customer_product_id"`
	CustomerID        string     `json:"customer_id"`
	Phase             string     `json:"phase"`
	MonthOffset       int        `json:"month_offset"`
	ScheduledDate     string     `json:"scheduled_date"`
	TaskName          string     `json:"task_name"`
	MessageTemplateID *string    `json:"message_template_id"`
	Status            string     `json:"status"`
	SentAt            *time.Time `json:"sent_at"`
	CompletedAt       *time.Time `json:"completed_at"`
}

// ToTouchpointResponse converte uma tarefa do domínio para DTO
func ToTouchpointResponse(t *touchpoint.Touchpoint) *TouchpointResponse {
	return &TouchpointResponse{
		ID:                t.ID,
		CustomerProductID: t.CustomerProductID,
		CustomerID:        t.CustomerID,
		Phase:             string(t.Phase),
		MonthOffset:       t.MonthOffset,
		ScheduledDate:     FormatDate(t.ScheduledDate),
		TaskName:          t.TaskName,
		MessageTemplateID: t.MessageTemplateID,
		Status:            string(t.Status),
		SentAt:            t.SentAt,
		CompletedAt:       t.CompletedAt,
	}
}

// ToTouchpointResponses converte uma lista de tarefas para DTO
func ToTouchpointResponses(touchpoints []*touchpoint.Touchpoint) []TouchpointResponse {
	items := make([]TouchpointResponse, len(touchpoints))
	for i, t := range touchpoints {
		items[i] = *ToTouchpointResponse(t)
	}
	return items
}
