package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const GenericMessage = "Não foi possível se comunicar com o servidor. Tente novamente."

type HTTPError struct {
	Code    string              `json:"error_code"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

// StatusError é implementado por erros que já sabem o status HTTP (ex.: resposta da API).
type StatusError interface {
	error
	HTTPStatus() int
}

// FieldError é implementado por erros de validação por campo.
type FieldError interface {
	error
	FieldErrors() map[string][]string
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func TooManyRequests(c *gin.Context, code, message string) {
	Write(c, http.StatusTooManyRequests, code, message)
}

// Message extrai o texto que vai para o toast.
func Message(err error) string {
	var se StatusError
	var fe FieldError
	var be BusinessError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingToken):
		return ErrMissingToken.Error()
	case errors.As(err, &se):
		return se.Error()
	case errors.As(err, &fe):
		return fe.Error()
	case errors.As(err, &be):
		return be.Error()
	}
	return GenericMessage
}

// FromError escolhe status e corpo a partir do tipo do erro.
func FromError(c *gin.Context, err error) {
	var se StatusError
	var fe FieldError
	var be BusinessError

	switch {
	case errors.Is(err, ErrMissingToken):
		Unauthorized(c, "missing_token", ErrMissingToken.Error())

	case errors.As(err, &se):
		status := se.HTTPStatus()
		if status < 400 || status >= 500 {
			status = http.StatusBadGateway
		}
		body := HTTPError{Code: "api_error", Message: se.Error()}
		if errors.As(err, &fe) {
			body.Fields = fe.FieldErrors()
		}
		c.JSON(status, body)

	case errors.As(err, &fe):
		c.JSON(http.StatusBadRequest, HTTPError{
			Code:    "invalid_request",
			Message: fe.Error(),
			Fields:  fe.FieldErrors(),
		})

	case errors.As(err, &be):
		BadRequest(c, be.Code, be.Error())

	default:
		Write(c, http.StatusBadGateway, "upstream_unavailable", GenericMessage)
	}
}
