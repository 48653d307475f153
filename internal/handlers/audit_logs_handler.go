package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking-web/internal/audit"
	"github.com/BruksfildServices01/barber-booking-web/internal/httperr"
	"github.com/BruksfildServices01/barber-booking-web/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking-web/internal/logging"
	"github.com/BruksfildServices01/barber-booking-web/internal/middleware"
	"github.com/BruksfildServices01/barber-booking-web/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

// AuditLogsHandler mostra o histórico local do usuário logado.
// Sem DATABASE_URL o log fica desligado e a lista vem vazia.
type AuditLogsHandler struct {
	logs   *audit.Logger
	logger *logging.Logger
}

func NewAuditLogsHandler(logs *audit.Logger, logger *logging.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, logger: logger}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	q := audit.Query{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		From:   c.Query("from"),
		To:     c.Query("to"),
		Page:   page,
		Limit:  limit,
	}

	if h.logs == nil {
		httpresp.OK(c, audit.Page{Page: 1, Limit: 50, Logs: []models.AuditLog{}})
		return
	}

	res, err := h.logs.List(c.Request.Context(), sess.User.ID, q)
	if err != nil {
		h.logger.Error("audit list failed", "user_id", sess.User.ID, "error", err)
		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	httpresp.OK(c, res)
}
