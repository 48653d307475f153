package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking-web/internal/apiclient"
	"github.com/BruksfildServices01/barber-booking-web/internal/audit"
	"github.com/BruksfildServices01/barber-booking-web/internal/httperr"
	"github.com/BruksfildServices01/barber-booking-web/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking-web/internal/logging"
	"github.com/BruksfildServices01/barber-booking-web/internal/media"
	"github.com/BruksfildServices01/barber-booking-web/internal/middleware"
	"github.com/BruksfildServices01/barber-booking-web/internal/models"
	"github.com/BruksfildServices01/barber-booking-web/internal/session"
)

const mirrorKindAvatar = "avatars"

// ProfileHandler atende /profile dos dois painéis.
type ProfileHandler struct {
	api      *apiclient.Client
	sessions *session.Manager
	mirror   *media.Mirror
	audit    *audit.Dispatcher
	logger   *logging.Logger
}

func NewProfileHandler(
	api *apiclient.Client,
	sessions *session.Manager,
	mirror *media.Mirror,
	audit *audit.Dispatcher,
	logger *logging.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		api:      api,
		sessions: sessions,
		mirror:   mirror,
		audit:    audit,
		logger:   logger,
	}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	user, err := h.api.GetProfile(c.Request.Context(), sess.Token)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, user)
}

// Update aceita JSON ou multipart (campo "avatar" opcional).
func (h *ProfileHandler) Update(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	var in apiclient.ProfileInput
	if err := c.ShouldBind(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	in.Username = strings.TrimSpace(in.Username)

	avatar, err := readUpload(c, "avatar", "avatar", media.AvatarMaxSide)
	if err != nil {
		writeError(c, err)
		return
	}
	in.Avatar = avatar

	user, err := h.api.UpdateProfile(c.Request.Context(), sess.Token, in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	if user.ID == 0 {
		user.ID = sess.User.ID
	}
	if user.ProfileType == "" {
		user.ProfileType = sess.User.ProfileType
	}

	if avatar != nil {
		if _, err := h.mirror.Put(c.Request.Context(), mirrorKindAvatar, user.ID, *avatar); err != nil {
			h.logger.Warn("avatar mirror failed", "user_id", user.ID, "error", err)
		}
	}

	if err := h.sessions.Refresh(c, *user); err != nil {
		h.logger.Warn("profile cookie refresh failed", "user_id", user.ID, "error", err)
	}

	h.audit.Dispatch(auditEvent(c, *user, audit.ActionProfileUpdated, "user", idRef(user.ID), gin.H{
		"avatar": avatar != nil,
	}))

	httpresp.OK(c, gin.H{
		"user":   user,
		"notice": models.SuccessNotice("Perfil atualizado com sucesso!"),
	})
}
