package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking-web/internal/apiclient"
	"github.com/BruksfildServices01/barber-booking-web/internal/audit"
	"github.com/BruksfildServices01/barber-booking-web/internal/httperr"
	"github.com/BruksfildServices01/barber-booking-web/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking-web/internal/logging"
	"github.com/BruksfildServices01/barber-booking-web/internal/middleware"
	"github.com/BruksfildServices01/barber-booking-web/internal/session"
	"github.com/BruksfildServices01/barber-booking-web/internal/validators"
)

type AuthHandler struct {
	api      *apiclient.Client
	sessions *session.Manager
	store    session.Store
	audit    *audit.Dispatcher
	logger   *logging.Logger
}

func NewAuthHandler(
	api *apiclient.Client,
	sessions *session.Manager,
	store session.Store,
	audit *audit.Dispatcher,
	logger *logging.Logger,
) *AuthHandler {
	return &AuthHandler{
		api:      api,
		sessions: sessions,
		store:    store,
		audit:    audit,
		logger:   logger,
	}
}

// --------- Requests ---------

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// --------- Handlers ---------

// Session responde quem está logado; sem sessão é 401.
func (h *AuthHandler) Session(c *gin.Context) {
	sess, err := h.sessions.Read(c)
	if err != nil {
		httperr.Unauthorized(c, "not_authenticated", "Sessão não encontrada.")
		return
	}
	httpresp.OK(c, gin.H{
		"user":     sess.User,
		"redirect": middleware.HomePath(sess.User.ProfileType),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req apiclient.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	if err := validators.Login(req); err != nil {
		httperr.FromError(c, err)
		return
	}

	res, err := h.api.Login(c.Request.Context(), req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	if err := h.sessions.Start(c, *res); err != nil {
		h.logger.Error("session start failed", "error", err)
		httperr.Internal(c, "session_failed", "Erro ao iniciar a sessão.")
		return
	}

	h.audit.Dispatch(auditEvent(c, res.User, audit.ActionLogin, "user", idRef(res.User.ID), nil))

	httpresp.OK(c, gin.H{
		"user":     res.User,
		"redirect": middleware.HomePath(res.User.ProfileType),
	})
}

// Register cria a conta. Se a API já devolver token, a sessão começa aqui;
// senão o usuário segue para o login.
func (h *AuthHandler) Register(c *gin.Context) {
	var req apiclient.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.City == "" {
		req.City = validators.CitySalinasMG
	}

	if err := validators.Registration(req); err != nil {
		httperr.FromError(c, err)
		return
	}

	res, err := h.api.Register(c.Request.Context(), req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	h.audit.Dispatch(auditEvent(c, res.User, audit.ActionRegister, "user", idRef(res.User.ID), gin.H{
		"profile_type": req.ProfileType,
	}))

	if res.Token == "" {
		httpresp.Created(c, gin.H{"user": res.User, "redirect": middleware.LoginPath})
		return
	}

	if err := h.sessions.Start(c, *res); err != nil {
		h.logger.Error("session start failed", "error", err)
		httperr.Internal(c, "session_failed", "Erro ao iniciar a sessão.")
		return
	}

	httpresp.Created(c, gin.H{
		"user":     res.User,
		"redirect": middleware.HomePath(res.User.ProfileType),
	})
}

// Logout nunca falha para o usuário: cookies e estado local são apagados
// mesmo se a API recusar.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sess, err := h.sessions.Read(c); err == nil {
		if err := h.api.Logout(c.Request.Context(), sess.Token); err != nil {
			h.logger.Warn("remote logout failed", "user_id", sess.User.ID, "error", err)
		}
		if err := clearState(c.Request.Context(), h.store, sess.ID); err != nil {
			h.logger.Warn("clear session state failed", "sid", sess.ID, "error", err)
		}
		h.audit.Dispatch(auditEvent(c, sess.User, audit.ActionLogout, "user", idRef(sess.User.ID), nil))
	}

	h.sessions.Clear(c)
	httpresp.OK(c, gin.H{"redirect": middleware.LoginPath})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	if err := validators.ForgotPassword(req.Email); err != nil {
		httperr.FromError(c, err)
		return
	}

	if err := h.api.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Enviamos um link de recuperação para o seu email.",
	})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	uid := c.Param("uid")
	token := c.Param("token")
	if uid == "" || token == "" {
		httperr.BadRequest(c, "invalid_reset_link", "Link de recuperação inválido.")
		return
	}

	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := validators.NewPassword(req.NewPassword); err != nil {
		httperr.FromError(c, err)
		return
	}
	if req.ConfirmPassword != "" && req.ConfirmPassword != req.NewPassword {
		c.JSON(http.StatusBadRequest, httperr.HTTPError{
			Code:    "invalid_request",
			Message: "As senhas não coincidem",
			Fields:  map[string][]string{"confirm_password": {"As senhas não coincidem"}},
		})
		return
	}

	if err := h.api.ConfirmPasswordReset(c.Request.Context(), uid, token, req.NewPassword); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message":  "Senha redefinida com sucesso!",
		"redirect": middleware.LoginPath,
	})
}
