package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking-web/internal/apiclient"
	"github.com/BruksfildServices01/barber-booking-web/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking-web/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking-web/internal/dto"
	"github.com/BruksfildServices01/barber-booking-web/internal/httperr"
	"github.com/BruksfildServices01/barber-booking-web/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking-web/internal/logging"
	"github.com/BruksfildServices01/barber-booking-web/internal/media"
	"github.com/BruksfildServices01/barber-booking-web/internal/middleware"
	"github.com/BruksfildServices01/barber-booking-web/internal/models"
	"github.com/BruksfildServices01/barber-booking-web/internal/session"
	"github.com/BruksfildServices01/barber-booking-web/internal/validators"
)

const mirrorKindService = "services"

// BarberHandler: painel e serviços do barbeiro.
type BarberHandler struct {
	api    *apiclient.Client
	mirror *media.Mirror
	audit  *audit.Dispatcher
	logger *logging.Logger
}

func NewBarberHandler(
	api *apiclient.Client,
	mirror *media.Mirror,
	audit *audit.Dispatcher,
	logger *logging.Logger,
) *BarberHandler {
	return &BarberHandler{
		api:    api,
		mirror: mirror,
		audit:  audit,
		logger: logger,
	}
}

// --------- Requests ---------

type serviceRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	Price       string `json:"price" form:"price"`
}

// ======================================================
// PAINEL
// ======================================================

func (h *BarberHandler) Dashboard(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	stats, err := h.api.BarberStatistics(c.Request.Context(), sess.Token)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"statistics": stats,
		"labels": gin.H{
			"last_30_days_revenue":   domain.FormatCurrency(stats.FinancialMetrics.Last30DaysRevenue),
			"lifetime_gross_revenue": domain.FormatCurrency(stats.FinancialMetrics.LifetimeGrossRevenue),
		},
	})
}

// ======================================================
// SERVIÇOS
// ======================================================

func (h *BarberHandler) ListServices(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	items, err := h.api.ListOwnServices(c.Request.Context(), sess.Token)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, dto.NewServices(items))
}

func (h *BarberHandler) GetService(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	svc, err := h.api.GetService(c.Request.Context(), sess.Token, id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.NewServices([]models.Service{*svc})[0])
}

func (h *BarberHandler) CreateService(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	in, ok := h.bindService(c)
	if !ok {
		return
	}

	svc, err := h.api.CreateService(c.Request.Context(), sess.Token, in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	h.afterServiceWrite(c, svc, in, audit.ActionServiceCreated)
	h.respondServices(c, sess, http.StatusCreated, "Serviço criado com sucesso!")
}

func (h *BarberHandler) UpdateService(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	in, ok := h.bindService(c)
	if !ok {
		return
	}

	svc, err := h.api.UpdateService(c.Request.Context(), sess.Token, id, in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	if svc.ID == 0 {
		svc.ID = id
	}

	h.afterServiceWrite(c, svc, in, audit.ActionServiceUpdated)
	h.respondServices(c, sess, http.StatusOK, "Serviço atualizado com sucesso!")
}

// DeleteService pede confirmação e devolve a lista atualizada.
func (h *BarberHandler) DeleteService(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !confirmed(c) {
		httpresp.Confirm(c, "Tem certeza que deseja excluir este serviço? Você não poderá reverter essa ação!")
		return
	}

	if err := h.api.DeleteService(c.Request.Context(), sess.Token, id); err != nil {
		httperr.FromError(c, err)
		return
	}

	h.audit.Dispatch(auditEvent(c, sess.User, audit.ActionServiceDeleted, "service", idRef(id), nil))

	h.respondServices(c, sess, http.StatusOK, "Serviço deletado com sucesso!")
}

// respondServices busca a lista de serviços de novo depois de uma escrita.
func (h *BarberHandler) respondServices(c *gin.Context, sess *session.Session, status int, message string) {
	notice := models.SuccessNotice(message)

	items, err := h.api.ListOwnServices(c.Request.Context(), sess.Token)
	if err != nil {
		h.logger.Warn("refetch services failed", "error", err)
		httpresp.Stale(c, status, &notice)
		return
	}

	rows := dto.NewServices(items)
	c.JSON(status, httpresp.ListResponse[dto.ServiceDTO]{Data: rows, Total: len(rows), Notice: &notice})
}

// bindService aceita JSON ou multipart; a imagem ("image") é opcional.
func (h *BarberHandler) bindService(c *gin.Context) (models.ServiceInput, bool) {
	var req serviceRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return models.ServiceInput{}, false
	}

	in, err := validators.Service(req.Name, req.Description, req.Price)
	if err != nil {
		httperr.FromError(c, err)
		return in, false
	}

	img, err := readUpload(c, "image", "image", media.ServiceMaxSide)
	if err != nil {
		writeError(c, err)
		return in, false
	}
	in.Image = img
	return in, true
}

func (h *BarberHandler) afterServiceWrite(c *gin.Context, svc *models.Service, in models.ServiceInput, action string) {
	sess := middleware.SessionFrom(c)

	if in.Image != nil {
		if _, err := h.mirror.Put(c.Request.Context(), mirrorKindService, sess.User.ID, *in.Image); err != nil {
			h.logger.Warn("service image mirror failed", "service_id", svc.ID, "error", err)
		}
	}

	h.audit.Dispatch(auditEvent(c, sess.User, action, "service", idRef(svc.ID), gin.H{
		"name":  in.Name,
		"price": in.Price.Decimal(),
	}))
}
