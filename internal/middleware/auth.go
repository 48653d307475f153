package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking-web/internal/logging"
	"github.com/BruksfildServices01/barber-booking-web/internal/models"
	"github.com/BruksfildServices01/barber-booking-web/internal/session"
)

const (
	ContextSession = "session"

	LoginPath        = "/login"
	BarberHomePath   = "/dashboard/barbers"
	CustomerHomePath = "/dashboard/customers"
)

// HomePath é o painel de cada tipo de perfil.
func HomePath(profileType string) string {
	if profileType == models.ProfileBarber {
		return BarberHomePath
	}
	return CustomerHomePath
}

// RequireProfile protege /dashboard/barbers e /dashboard/customers. Sem cookies
// válidos vai para /login; perfil trocado vai para o painel certo.
func RequireProfile(sessions *session.Manager, profileType string, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := sessions.Read(c)
		if err != nil {
			if !session.IsInvalid(err) {
				logger.Warn("session read failed", "error", err)
			}
			sessions.Clear(c)
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		if sess.User.ProfileType != profileType {
			c.Redirect(http.StatusFound, HomePath(sess.User.ProfileType))
			c.Abort()
			return
		}

		c.Set(ContextSession, sess)
		c.Next()
	}
}

// SessionFrom só deve ser chamado em rotas atrás de RequireProfile.
func SessionFrom(c *gin.Context) *session.Session {
	return c.MustGet(ContextSession).(*session.Session)
}
