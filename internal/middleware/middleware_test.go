package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking-web/internal/logging"
	"github.com/BruksfildServices01/barber-booking-web/internal/models"
	"github.com/BruksfildServices01/barber-booking-web/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func loginCookies(t *testing.T, m *session.Manager, profile string) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, m.Start(c, models.AuthResult{
		Token: "tok",
		User:  models.User{ID: 1, Username: "ana", ProfileType: profile},
	}))
	return w.Result().Cookies()
}

func guardedRouter(m *session.Manager) *gin.Engine {
	r := gin.New()
	r.GET("/dashboard/customers", RequireProfile(m, models.ProfileCustomer, logging.Discard()), func(c *gin.Context) {
		c.String(http.StatusOK, SessionFrom(c).User.Username)
	})
	r.GET("/dashboard/barbers", RequireProfile(m, models.ProfileBarber, logging.Discard()), func(c *gin.Context) {
		c.String(http.StatusOK, "barber")
	})
	return r
}

func TestRequireProfile(t *testing.T) {
	m, err := session.NewManager("secret", false)
	require.NoError(t, err)
	r := guardedRouter(m)

	cases := []struct {
		name     string
		path     string
		profile  string
		wantCode int
		wantLoc  string
	}{
		{"no cookies", "/dashboard/customers", "", http.StatusFound, LoginPath},
		{"customer on customer tree", "/dashboard/customers", models.ProfileCustomer, http.StatusOK, ""},
		{"barber on customer tree", "/dashboard/customers", models.ProfileBarber, http.StatusFound, BarberHomePath},
		{"customer on barber tree", "/dashboard/barbers", models.ProfileCustomer, http.StatusFound, CustomerHomePath},
		{"barber on barber tree", "/dashboard/barbers", models.ProfileBarber, http.StatusOK, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.profile != "" {
				for _, ck := range loginCookies(t, m, tc.profile) {
					req.AddCookie(ck)
				}
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.wantCode, w.Code)
			if tc.wantLoc != "" {
				assert.Equal(t, tc.wantLoc, w.Header().Get("Location"))
			}
		})
	}
}

func TestRequireProfile_TamperedCookie(t *testing.T) {
	m, _ := session.NewManager("secret", false)
	r := guardedRouter(m)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/customers", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieToken, Value: "garbage"})
	req.AddCookie(&http.Cookie{Name: session.CookieUser, Value: "garbage"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, LoginPath, w.Header().Get("Location"))
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.POST("/login", RateLimit(NewRateLimiter(0.001, 2)), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{200, 200, 429}, codes)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, RequestIDFrom(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get(HeaderRequestID))

	const given = "0b9f3a53-8a3e-4c51-9d3a-2a5e5b1b7c11"
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, given)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, given, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware(nil))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSAllowedOrigins(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://barbearia.test/"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/x", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := preflight("https://barbearia.test")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://barbearia.test", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, HeaderRequestID, w.Header().Get("Access-Control-Expose-Headers"))

	w = preflight("https://outro.test")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://outro.test")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHTTPMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	r := gin.New()
	r.Use(m.Handler())
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/health", "200")))
}
