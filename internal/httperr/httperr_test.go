package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upstreamErr struct {
	status int
	msg    string
	fields map[string][]string
}

func (e upstreamErr) Error() string                    { return e.msg }
func (e upstreamErr) HTTPStatus() int                  { return e.status }
func (e upstreamErr) FieldErrors() map[string][]string { return e.fields }

func render(t *testing.T, err error) (*httptest.ResponseRecorder, HTTPError) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	FromError(c, err)

	var body HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestFromErrorMissingToken(t *testing.T) {
	w, body := render(t, fmt.Errorf("list barbers: %w", ErrMissingToken))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "missing_token", body.Code)
}

func TestFromErrorUpstream4xxPassesThrough(t *testing.T) {
	w, body := render(t, upstreamErr{
		status: http.StatusBadRequest,
		msg:    "Este dia já está cadastrado",
		fields: map[string][]string{"day_of_week": {"Este dia já está cadastrado"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Este dia já está cadastrado", body.Message)
	assert.Contains(t, body.Fields, "day_of_week")
}

func TestFromErrorUpstream5xxBecomesBadGateway(t *testing.T) {
	w, _ := render(t, upstreamErr{status: http.StatusInternalServerError, msg: "boom"})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestFromErrorBusiness(t *testing.T) {
	w, body := render(t, ErrBusiness("invalid_state"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_state", body.Code)
}

func TestFromErrorUnknownIsGeneric(t *testing.T) {
	w, body := render(t, errors.New("dial tcp: connection refused"))
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, GenericMessage, body.Message)
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", Message(nil))
	assert.Equal(t, "detalhe", Message(upstreamErr{status: 400, msg: "detalhe"}))
	assert.Equal(t, "Sem permissão", Message(ErrBusinessMsg("forbidden", "Sem permissão")))
	assert.Equal(t, GenericMessage, Message(errors.New("EOF")))
}
