package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/BruksfildServices01/barber-booking-web/internal/audit"
	"github.com/BruksfildServices01/barber-booking-web/internal/booking"
	"github.com/BruksfildServices01/barber-booking-web/internal/httperr"
	"github.com/BruksfildServices01/barber-booking-web/internal/media"
	"github.com/BruksfildServices01/barber-booking-web/internal/middleware"
	"github.com/BruksfildServices01/barber-booking-web/internal/models"
	"github.com/BruksfildServices01/barber-booking-web/internal/search"
	"github.com/BruksfildServices01/barber-booking-web/internal/session"
)

// ======================================================
// PARÂMETROS
// ======================================================

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return 0, false
	}
	return uint(id), true
}

type confirmRequest struct {
	Confirm bool `json:"confirm"`
}

// confirmed aceita {"confirm": true} no corpo ou ?confirm=true.
func confirmed(c *gin.Context) bool {
	if ok, _ := strconv.ParseBool(c.Query("confirm")); ok {
		return true
	}
	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return false
	}
	return req.Confirm
}

// ======================================================
// UPLOAD
// ======================================================

// readUpload lê o arquivo do form e normaliza para WebP. Sem arquivo devolve nil.
func readUpload(c *gin.Context, formField, apiField string, maxSide int) (*models.Upload, error) {
	if c.ContentType() != binding.MIMEMultipartPOSTForm {
		return nil, nil
	}
	fh, err := c.FormFile(formField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, httperr.ErrBusinessMsg("invalid_image", "Não foi possível ler a imagem")
	}
	if fh.Size > media.MaxUploadBytes {
		return nil, httperr.ErrBusinessMsg("image_too_large", "Imagem maior que 5MB")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, media.MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	up, err := media.Normalize(models.Upload{
		Field:       apiField,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, maxSide)
	if err != nil {
		return nil, err
	}
	return &up, nil
}

// ======================================================
// ERROS
// ======================================================

// writeError cobre os erros locais antes de cair no mapeamento padrão.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrInvalidTransition):
		httperr.Write(c, http.StatusConflict, "invalid_transition", "Etapa do agendamento fora de ordem.")
	case errors.Is(err, booking.ErrUnknownSelection):
		httperr.BadRequest(c, "unknown_selection", "Opção não encontrada na lista carregada.")
	case errors.Is(err, search.ErrSuperseded):
		httperr.Write(c, http.StatusConflict, "superseded", "Busca substituída por uma mais recente.")
	case errors.Is(err, session.ErrStateNotFound):
		httperr.NotFound(c, "state_not_found", "Estado da sessão não encontrado.")
	default:
		httperr.FromError(c, err)
	}
}

func stateFailed(c *gin.Context) {
	httperr.Internal(c, "session_state_failed", "Erro ao salvar o estado da sessão.")
}

// ======================================================
// AUDITORIA
// ======================================================

func auditEvent(c *gin.Context, user models.User, action, entity string, entityID *uint, meta any) audit.Event {
	return audit.Event{
		UserID:      user.ID,
		ProfileType: user.ProfileType,
		Action:      action,
		Entity:      entity,
		EntityID:    entityID,
		Metadata:    meta,
		RequestID:   middleware.RequestIDFrom(c),
	}
}

func idRef(id uint) *uint {
	return &id
}
