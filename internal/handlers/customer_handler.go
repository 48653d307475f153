package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking-web/internal/apiclient"
	"github.com/BruksfildServices01/barber-booking-web/internal/audit"
	"github.com/BruksfildServices01/barber-booking-web/internal/booking"
	"github.com/BruksfildServices01/barber-booking-web/internal/httperr"
	"github.com/BruksfildServices01/barber-booking-web/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking-web/internal/logging"
	"github.com/BruksfildServices01/barber-booking-web/internal/middleware"
	"github.com/BruksfildServices01/barber-booking-web/internal/models"
	"github.com/BruksfildServices01/barber-booking-web/internal/search"
	"github.com/BruksfildServices01/barber-booking-web/internal/session"
	"github.com/BruksfildServices01/barber-booking-web/internal/validators"
)

// CustomerHandler: diretório de barbeiros, agendamento e avaliação.
type CustomerHandler struct {
	api       *apiclient.Client
	booker    *booking.Booker
	debouncer *search.Debouncer
	store     session.Store
	audit     *audit.Dispatcher
	logger    *logging.Logger
}

func NewCustomerHandler(
	api *apiclient.Client,
	booker *booking.Booker,
	debouncer *search.Debouncer,
	store session.Store,
	audit *audit.Dispatcher,
	logger *logging.Logger,
) *CustomerHandler {
	return &CustomerHandler{
		api:       api,
		booker:    booker,
		debouncer: debouncer,
		store:     store,
		audit:     audit,
		logger:    logger,
	}
}

// --------- Requests ---------

type bookingSelection struct {
	BarberID  uint `json:"barber_id"`
	ServiceID uint `json:"service_id"`
	WorkDayID uint `json:"work_day_id"`
	SlotID    uint `json:"slot_id"`
}

// ======================================================
// DIRETÓRIO
// ======================================================

// Home devolve o diretório completo junto com o estado do agendamento.
func (h *CustomerHandler) Home(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	barbers, err := h.api.ListBarbers(c.Request.Context(), sess.Token, "")
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	w, err := loadWorkflow(c.Request.Context(), h.store, sess.ID)
	if err != nil {
		h.logger.Error("load booking failed", "sid", sess.ID, "error", err)
		stateFailed(c)
		return
	}

	if barbers == nil {
		barbers = []models.Barber{}
	}
	httpresp.OK(c, gin.H{
		"barbers": barbers,
		"booking": w,
	})
}

// SearchBarbers: GET /barbers?name=. Só a busca mais recente da sessão responde 200.
func (h *CustomerHandler) SearchBarbers(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	barbers, err := h.debouncer.Search(c.Request.Context(), sess.ID, c.Query("name"),
		func(ctx context.Context, name string) ([]models.Barber, error) {
			return h.api.ListBarbers(ctx, sess.Token, name)
		})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, barbers)
}

// ======================================================
// AGENDAMENTO
// ======================================================

func (h *CustomerHandler) GetBooking(c *gin.Context) {
	h.step(c, func(ctx context.Context, sess *session.Session, w *booking.Workflow) error {
		return nil
	})
}

func (h *CustomerHandler) ResetBooking(c *gin.Context) {
	h.step(c, func(ctx context.Context, sess *session.Session, w *booking.Workflow) error {
		w.Reset()
		return nil
	})
}

func (h *CustomerHandler) SelectBarber(c *gin.Context) {
	var req bookingSelection
	if !bindSelection(c, &req) {
		return
	}

	h.step(c, func(ctx context.Context, sess *session.Session, w *booking.Workflow) error {
		barbers, err := h.api.ListBarbers(ctx, sess.Token, "")
		if err != nil {
			return h.booker.BarberLookupFailed(w, err)
		}
		for _, b := range barbers {
			if b.ID == req.BarberID {
				return h.booker.SelectBarber(ctx, sess.Token, w, b)
			}
		}
		return booking.ErrUnknownSelection
	})
}

func (h *CustomerHandler) SelectService(c *gin.Context) {
	var req bookingSelection
	if !bindSelection(c, &req) {
		return
	}

	h.step(c, func(ctx context.Context, sess *session.Session, w *booking.Workflow) error {
		return h.booker.SelectService(ctx, sess.Token, w, req.ServiceID)
	})
}

func (h *CustomerHandler) SelectDay(c *gin.Context) {
	var req bookingSelection
	if !bindSelection(c, &req) {
		return
	}

	h.step(c, func(ctx context.Context, sess *session.Session, w *booking.Workflow) error {
		return h.booker.SelectDay(ctx, sess.Token, w, req.WorkDayID)
	})
}

func (h *CustomerHandler) SelectSlot(c *gin.Context) {
	var req bookingSelection
	if !bindSelection(c, &req) {
		return
	}

	h.step(c, func(ctx context.Context, sess *session.Session, w *booking.Workflow) error {
		return h.booker.SelectSlot(w, req.SlotID)
	})
}

// Submit envia o agendamento; em caso de sucesso o recibo fica no workflow.
func (h *CustomerHandler) Submit(c *gin.Context) {
	h.step(c, func(ctx context.Context, sess *session.Session, w *booking.Workflow) error {
		if err := h.booker.Submit(ctx, sess.Token, w, sess.User); err != nil {
			return err
		}
		if w.Receipt != nil {
			h.audit.Dispatch(auditEvent(c, sess.User, audit.ActionAppointmentBook, "appointment",
				idRef(w.Receipt.AppointmentID), gin.H{
					"barber":  w.Receipt.Barber,
					"service": w.Receipt.Service,
					"is_free": w.Receipt.IsFree,
				}))
		}
		return nil
	})
}

// step carrega o workflow da sessão, aplica fn e grava o resultado.
// Erro de fn não grava nada.
func (h *CustomerHandler) step(
	c *gin.Context,
	fn func(ctx context.Context, sess *session.Session, w *booking.Workflow) error,
) {
	sess := middleware.SessionFrom(c)
	ctx := c.Request.Context()

	w, err := loadWorkflow(ctx, h.store, sess.ID)
	if err != nil {
		h.logger.Error("load booking failed", "sid", sess.ID, "error", err)
		stateFailed(c)
		return
	}

	if err := fn(ctx, sess, w); err != nil {
		writeError(c, err)
		return
	}

	if err := saveWorkflow(ctx, h.store, sess.ID, w); err != nil {
		h.logger.Error("save booking failed", "sid", sess.ID, "error", err)
		stateFailed(c)
		return
	}

	httpresp.OK(c, w)
}

func bindSelection(c *gin.Context, req *bookingSelection) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return false
	}
	return true
}

// ======================================================
// AVALIAÇÃO
// ======================================================

func (h *CustomerHandler) Rate(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	var req models.Rating
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if err := validators.Rating(req); err != nil {
		httperr.FromError(c, err)
		return
	}

	if err := h.api.SubmitRating(c.Request.Context(), sess.Token, req); err != nil {
		httperr.FromError(c, err)
		return
	}

	h.audit.Dispatch(auditEvent(c, sess.User, audit.ActionRatingSubmitted, "barber", idRef(req.BarberID), gin.H{
		"rating": req.Rating,
	}))

	httpresp.OK(c, gin.H{"notice": models.SuccessNotice("Avaliação enviada com sucesso!")})
}
