package apiclient

import (
	"context"
	"net/http"

	"github.com/BruksfildServices01/barber-booking-web/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking-web/internal/models"
)

// =======================================================
// DIAS DE TRABALHO
// =======================================================

func (c *Client) ListOwnWorkDays(ctx context.Context, token string) ([]models.WorkDay, error) {
	var out []models.WorkDay
	err := c.do(ctx, request{
		op:       "list_work_days",
		method:   http.MethodGet,
		path:     "/schedule/",
		token:    token,
		auth:     true,
		fallback: "Erro ao buscar dias de trabalho",
	}, &out)
	return out, err
}

func (c *Client) GetWorkDay(ctx context.Context, token string, id uint) (*models.WorkDay, error) {
	var out models.WorkDay
	err := c.do(ctx, request{
		op:       "get_work_day",
		method:   http.MethodGet,
		path:     idPath("/schedule/%d/", id),
		token:    token,
		auth:     true,
		fallback: "Dia de trabalho não encontrado",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateWorkDay(ctx context.Context, token string, in models.WorkDayInput) (*models.WorkDay, error) {
	var out models.WorkDay
	err := c.do(ctx, request{
		op:       "create_work_day",
		method:   http.MethodPost,
		path:     "/schedule/",
		token:    token,
		auth:     true,
		body:     in,
		fallback: "Erro ao criar dia de trabalho",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateWorkDay(ctx context.Context, token string, id uint, in models.WorkDayInput) (*models.WorkDay, error) {
	var out models.WorkDay
	err := c.do(ctx, request{
		op:       "update_work_day",
		method:   http.MethodPut,
		path:     idPath("/schedule/%d/", id),
		token:    token,
		auth:     true,
		body:     in,
		fallback: "Erro ao atualizar dia de trabalho",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteWorkDay(ctx context.Context, token string, id uint) error {
	return c.do(ctx, request{
		op:       "delete_work_day",
		method:   http.MethodDelete,
		path:     idPath("/schedule/%d/", id),
		token:    token,
		auth:     true,
		fallback: "Erro ao excluir dia de trabalho",
	}, nil)
}

// =======================================================
// HORÁRIOS
// =======================================================

// ListSlots é a visão do barbeiro: todos os horários, livres ou não.
func (c *Client) ListSlots(ctx context.Context, token string, workDayID uint) ([]models.TimeSlot, error) {
	slots, err := c.listSlots(ctx, "list_slots", token, workDayID)
	if err != nil {
		return nil, err
	}
	return appointment.NormalizeSlots(slots), nil
}

func (c *Client) listSlots(ctx context.Context, op, token string, workDayID uint) ([]models.TimeSlot, error) {
	var out []models.TimeSlot
	err := c.do(ctx, request{
		op:       op,
		method:   http.MethodGet,
		path:     idPath("/schedule/available-time-slot/%d/", workDayID),
		token:    token,
		auth:     true,
		fallback: "Erro ao buscar horários",
	}, &out)
	return out, err
}

// GenerateSlots reativa todos os horários do dia.
func (c *Client) GenerateSlots(ctx context.Context, token string, workDayID uint) error {
	return c.do(ctx, request{
		op:       "generate_slots",
		method:   http.MethodPost,
		path:     idPath("/schedule/generate-slots/%d/", workDayID),
		token:    token,
		auth:     true,
		fallback: "Erro ao reativar horários",
	}, nil)
}

// DeleteSlots desativa todos os horários do dia.
func (c *Client) DeleteSlots(ctx context.Context, token string, workDayID uint) error {
	return c.do(ctx, request{
		op:       "delete_slots",
		method:   http.MethodDelete,
		path:     idPath("/schedule/delete-slots/%d/", workDayID),
		token:    token,
		auth:     true,
		fallback: "Erro ao desativar horários",
	}, nil)
}

func (c *Client) DeleteSlot(ctx context.Context, token string, slotID uint) error {
	return c.do(ctx, request{
		op:       "delete_slot",
		method:   http.MethodDelete,
		path:     idPath("/schedule/delete-time-slot/%d/", slotID),
		token:    token,
		auth:     true,
		fallback: "Erro ao excluir horário",
	}, nil)
}
