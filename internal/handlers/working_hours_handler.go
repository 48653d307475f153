package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking-web/internal/apiclient"
	"github.com/BruksfildServices01/barber-booking-web/internal/audit"
	"github.com/BruksfildServices01/barber-booking-web/internal/dto"
	"github.com/BruksfildServices01/barber-booking-web/internal/httperr"
	"github.com/BruksfildServices01/barber-booking-web/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking-web/internal/logging"
	"github.com/BruksfildServices01/barber-booking-web/internal/middleware"
	"github.com/BruksfildServices01/barber-booking-web/internal/models"
	"github.com/BruksfildServices01/barber-booking-web/internal/session"
	"github.com/BruksfildServices01/barber-booking-web/internal/validators"
)

// WorkingHoursHandler administra dias de trabalho e horários do barbeiro.
// Toda escrita busca a lista afetada de novo.
type WorkingHoursHandler struct {
	api    *apiclient.Client
	audit  *audit.Dispatcher
	logger *logging.Logger
}

func NewWorkingHoursHandler(api *apiclient.Client, audit *audit.Dispatcher, logger *logging.Logger) *WorkingHoursHandler {
	return &WorkingHoursHandler{api: api, audit: audit, logger: logger}
}

// ======================================================
// DIAS DE TRABALHO
// ======================================================

func (h *WorkingHoursHandler) ListDays(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	days, err := h.api.ListOwnWorkDays(c.Request.Context(), sess.Token)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, dto.NewWorkDays(days))
}

func (h *WorkingHoursHandler) GetDay(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	day, err := h.api.GetWorkDay(c.Request.Context(), sess.Token, id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.NewWorkDays([]models.WorkDay{*day})[0])
}

func (h *WorkingHoursHandler) CreateDay(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	in, ok := bindWorkDay(c)
	if !ok {
		return
	}

	day, err := h.api.CreateWorkDay(c.Request.Context(), sess.Token, in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	h.audit.Dispatch(auditEvent(c, sess.User, audit.ActionWorkDayCreated, "work_day", idRef(day.ID), in))
	h.respondDays(c, sess, http.StatusCreated, "Dia de trabalho criado com sucesso!")
}

func (h *WorkingHoursHandler) UpdateDay(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	in, ok := bindWorkDay(c)
	if !ok {
		return
	}

	if _, err := h.api.UpdateWorkDay(c.Request.Context(), sess.Token, id, in); err != nil {
		httperr.FromError(c, err)
		return
	}

	h.audit.Dispatch(auditEvent(c, sess.User, audit.ActionWorkDayUpdated, "work_day", idRef(id), in))
	h.respondDays(c, sess, http.StatusOK, "Dia de trabalho atualizado com sucesso!")
}

func (h *WorkingHoursHandler) DeleteDay(c *gin.Context) {
	h.destructive(c, "Tem certeza que deseja excluir este dia de trabalho? Todos os horários dele serão removidos.",
		func(ctx context.Context, sess *session.Session, id uint) (string, error) {
			if err := h.api.DeleteWorkDay(ctx, sess.Token, id); err != nil {
				return "", err
			}
			h.audit.Dispatch(auditEvent(c, sess.User, audit.ActionWorkDayDeleted, "work_day", idRef(id), nil))
			return "Dia de trabalho excluído com sucesso!", nil
		})
}

// ReactivateSlots pede à API para gerar de novo os horários do dia.
func (h *WorkingHoursHandler) ReactivateSlots(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.api.GenerateSlots(c.Request.Context(), sess.Token, id); err != nil {
		httperr.FromError(c, err)
		return
	}

	h.audit.Dispatch(auditEvent(c, sess.User, audit.ActionSlotsGenerated, "work_day", idRef(id), nil))
	h.respondDays(c, sess, http.StatusOK, "Horários reativados com sucesso!")
}

// DeactivateSlots remove todos os horários do dia.
func (h *WorkingHoursHandler) DeactivateSlots(c *gin.Context) {
	h.destructive(c, "Tem certeza que deseja desativar todos os horários deste dia?",
		func(ctx context.Context, sess *session.Session, id uint) (string, error) {
			if err := h.api.DeleteSlots(ctx, sess.Token, id); err != nil {
				return "", err
			}
			h.audit.Dispatch(auditEvent(c, sess.User, audit.ActionSlotsDeleted, "work_day", idRef(id), nil))
			return "Horários desativados com sucesso!", nil
		})
}

// destructive confirma, executa e devolve a lista de dias atualizada.
func (h *WorkingHoursHandler) destructive(
	c *gin.Context,
	prompt string,
	fn func(ctx context.Context, sess *session.Session, id uint) (string, error),
) {
	sess := middleware.SessionFrom(c)

	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !confirmed(c) {
		httpresp.Confirm(c, prompt)
		return
	}

	msg, err := fn(c.Request.Context(), sess, id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	h.respondDays(c, sess, http.StatusOK, msg)
}

func (h *WorkingHoursHandler) respondDays(c *gin.Context, sess *session.Session, status int, message string) {
	notice := models.SuccessNotice(message)

	days, err := h.api.ListOwnWorkDays(c.Request.Context(), sess.Token)
	if err != nil {
		h.logger.Warn("refetch work days failed", "error", err)
		httpresp.Stale(c, status, &notice)
		return
	}

	rows := dto.NewWorkDays(days)
	c.JSON(status, httpresp.ListResponse[dto.WorkDayDTO]{Data: rows, Total: len(rows), Notice: &notice})
}

func bindWorkDay(c *gin.Context) (models.WorkDayInput, bool) {
	var in models.WorkDayInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return in, false
	}
	if err := validators.WorkDay(in); err != nil {
		httperr.FromError(c, err)
		return in, false
	}
	return in, true
}

// ======================================================
// HORÁRIOS
// ======================================================

// ListSlots: todos os horários do dia, livres e ocupados.
func (h *WorkingHoursHandler) ListSlots(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	slots, err := h.api.ListSlots(c.Request.Context(), sess.Token, id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, dto.NewSlots(slots))
}

// DeleteSlot: DELETE /times/:id/slots/:slotId, devolve os horários restantes do dia.
func (h *WorkingHoursHandler) DeleteSlot(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	dayID, ok := parseID(c, "id")
	if !ok {
		return
	}
	slotID, ok := parseID(c, "slotId")
	if !ok {
		return
	}
	if !confirmed(c) {
		httpresp.Confirm(c, "Tem certeza que deseja excluir este horário? Você não poderá reverter essa ação!")
		return
	}

	if err := h.api.DeleteSlot(c.Request.Context(), sess.Token, slotID); err != nil {
		httperr.FromError(c, err)
		return
	}

	h.audit.Dispatch(auditEvent(c, sess.User, audit.ActionSlotDeleted, "time_slot", idRef(slotID), gin.H{
		"work_day_id": dayID,
	}))

	notice := models.SuccessNotice("Horário deletado com sucesso!")
	slots, err := h.api.ListSlots(c.Request.Context(), sess.Token, dayID)
	if err != nil {
		h.logger.Warn("refetch slots failed", "work_day_id", dayID, "error", err)
		httpresp.Stale(c, http.StatusOK, &notice)
		return
	}
	httpresp.ListWithNotice(c, dto.NewSlots(slots), &notice)
}
