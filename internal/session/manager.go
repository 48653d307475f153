package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking-web/internal/models"
)

const (
	CookieToken = "token"
	CookieUser  = "user"
	CookieSID   = "sid"

	CookieTTL = 7 * 24 * time.Hour
)

// Session é o que o guard coloca no contexto de cada request autenticado.
type Session struct {
	ID    string
	Token string
	User  models.User
}

// Manager lê e grava os cookies de sessão.
type Manager struct {
	sealer *Sealer
	secret string
	secure bool
	now    func() time.Time
}

func NewManager(secret string, secure bool) (*Manager, error) {
	sealer, err := NewSealer(secret)
	if err != nil {
		return nil, err
	}
	return &Manager{
		sealer: sealer,
		secret: secret,
		secure: secure,
		now:    time.Now,
	}, nil
}

// Start grava token + perfil depois do login/registro.
func (m *Manager) Start(c *gin.Context, auth models.AuthResult) error {
	sealed, err := m.sealer.Seal(auth.Token)
	if err != nil {
		return err
	}
	profile, err := SignProfile(m.secret, auth.User, CookieTTL, m.now())
	if err != nil {
		return err
	}

	maxAge := int(CookieTTL / time.Second)
	m.setCookie(c, CookieToken, sealed, maxAge)
	m.setCookie(c, CookieUser, profile, maxAge)
	m.EnsureID(c)
	return nil
}

// Refresh regrava só o cookie de perfil (ex.: após editar o username).
func (m *Manager) Refresh(c *gin.Context, u models.User) error {
	profile, err := SignProfile(m.secret, u, CookieTTL, m.now())
	if err != nil {
		return err
	}
	m.setCookie(c, CookieUser, profile, int(CookieTTL/time.Second))
	return nil
}

// Read devolve a sessão; qualquer cookie ausente ou ilegível é ErrInvalidCookie.
func (m *Manager) Read(c *gin.Context) (*Session, error) {
	rawToken, err := c.Cookie(CookieToken)
	if err != nil || rawToken == "" {
		return nil, ErrInvalidCookie
	}
	rawUser, err := c.Cookie(CookieUser)
	if err != nil || rawUser == "" {
		return nil, ErrInvalidCookie
	}

	token, err := m.sealer.Open(rawToken)
	if err != nil {
		return nil, err
	}
	user, err := ParseProfile(m.secret, rawUser)
	if err != nil {
		return nil, err
	}

	return &Session{ID: m.EnsureID(c), Token: token, User: *user}, nil
}

// EnsureID devolve o sid do navegador, criando um se ainda não existir.
func (m *Manager) EnsureID(c *gin.Context) string {
	if sid, err := c.Cookie(CookieSID); err == nil {
		if _, perr := uuid.Parse(sid); perr == nil {
			return sid
		}
	}
	sid := uuid.NewString()
	m.setCookie(c, CookieSID, sid, int(CookieTTL/time.Second))
	c.Request.AddCookie(&http.Cookie{Name: CookieSID, Value: sid})
	return sid
}

func (m *Manager) Clear(c *gin.Context) {
	for _, name := range []string{CookieToken, CookieUser, CookieSID} {
		m.setCookie(c, name, "", -1)
	}
}

func (m *Manager) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", m.secure, true)
}

// IsInvalid é usado pelo guard para decidir o redirect para /login.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalidCookie)
}
