package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking-web/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking-web/internal/dto"
	"github.com/BruksfildServices01/barber-booking-web/internal/httperr"
	"github.com/BruksfildServices01/barber-booking-web/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking-web/internal/listing"
	"github.com/BruksfildServices01/barber-booking-web/internal/logging"
	"github.com/BruksfildServices01/barber-booking-web/internal/middleware"
	"github.com/BruksfildServices01/barber-booking-web/internal/models"
	"github.com/BruksfildServices01/barber-booking-web/internal/session"
	usecase "github.com/BruksfildServices01/barber-booking-web/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

// AppointmentHandler serve a lista de agendamentos de um dos painéis.
type AppointmentHandler struct {
	view         domain.View
	store        session.Store
	list         *usecase.ListAppointments
	changeStatus *usecase.ChangeStatus
	logger       *logging.Logger
}

func NewAppointmentHandler(
	view domain.View,
	store session.Store,
	list *usecase.ListAppointments,
	changeStatus *usecase.ChangeStatus,
	logger *logging.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		view:         view,
		store:        store,
		list:         list,
		changeStatus: changeStatus,
		logger:       logger,
	}
}

type appointmentListResponse struct {
	Data    []dto.AppointmentListDTO `json:"data"`
	Total   int                      `json:"total"`
	Filters listing.FilterState      `json:"filters"`
	Notice  *models.Notice           `json:"notice,omitempty"`
	Stale   bool                     `json:"stale,omitempty"`
}

func newListResponse(rows []dto.AppointmentListDTO, fs listing.FilterState) appointmentListResponse {
	if rows == nil {
		rows = []dto.AppointmentListDTO{}
	}
	return appointmentListResponse{Data: rows, Total: len(rows), Filters: fs}
}

// ======================================================
// LISTAGEM
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	fs, err := loadFilters(c.Request.Context(), h.store, sess.ID, h.view)
	if err != nil {
		h.logger.Error("load filters failed", "sid", sess.ID, "error", err)
		stateFailed(c)
		return
	}

	h.respondList(c, sess, fs)
}

func (h *AppointmentHandler) respondList(c *gin.Context, sess *session.Session, fs listing.FilterState) {
	rows, err := h.list.Execute(c.Request.Context(), sess.Token, h.view, fs)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, newListResponse(rows, fs))
}

// ======================================================
// FILTROS
// ======================================================

// StageFilters só altera o rascunho; a lista não é buscada de novo.
func (h *AppointmentHandler) StageFilters(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	var req listing.Filters
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	fs, err := loadFilters(c.Request.Context(), h.store, sess.ID, h.view)
	if err != nil {
		stateFailed(c)
		return
	}
	if err := fs.Stage(req); err != nil {
		httperr.FromError(c, err)
		return
	}
	if err := saveFilters(c.Request.Context(), h.store, sess.ID, h.view, fs); err != nil {
		h.logger.Error("save filters failed", "sid", sess.ID, "error", err)
		stateFailed(c)
		return
	}

	httpresp.OK(c, gin.H{"filters": fs})
}

func (h *AppointmentHandler) ApplyFilters(c *gin.Context) {
	h.updateFilters(c, (*listing.FilterState).Apply)
}

func (h *AppointmentHandler) ClearFilters(c *gin.Context) {
	h.updateFilters(c, (*listing.FilterState).Clear)
}

func (h *AppointmentHandler) updateFilters(c *gin.Context, apply func(*listing.FilterState)) {
	sess := middleware.SessionFrom(c)

	fs, err := loadFilters(c.Request.Context(), h.store, sess.ID, h.view)
	if err != nil {
		stateFailed(c)
		return
	}
	apply(&fs)
	if err := saveFilters(c.Request.Context(), h.store, sess.ID, h.view, fs); err != nil {
		h.logger.Error("save filters failed", "sid", sess.ID, "error", err)
		stateFailed(c)
		return
	}

	h.respondList(c, sess, fs)
}

// ======================================================
// STATUS
// ======================================================

// ChangeStatus: POST /appointments/:id/:action. Sem confirmação responde 428 com o texto do diálogo.
func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	action, err := domain.ParseAction(c.Param("action"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	if h.view == domain.ViewCustomer && action != domain.ActionCancel {
		httperr.BadRequest(c, "action_not_allowed", "Ação não permitida.")
		return
	}

	if !confirmed(c) {
		httpresp.Confirm(c, action.Prompt())
		return
	}

	fs, err := loadFilters(c.Request.Context(), h.store, sess.ID, h.view)
	if err != nil {
		stateFailed(c)
		return
	}

	res, err := h.changeStatus.Execute(c.Request.Context(), usecase.ChangeStatusInput{
		Token:         sess.Token,
		View:          h.view,
		Actor:         sess.User,
		RequestID:     middleware.RequestIDFrom(c),
		AppointmentID: id,
		Action:        action,
		Filters:       fs,
	})
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.FromError(c, err)
		return
	}

	out := newListResponse(res.Rows, fs)
	out.Notice = &res.Notice
	out.Stale = res.Stale
	httpresp.OK(c, out)
}
