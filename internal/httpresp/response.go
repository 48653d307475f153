package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking-web/internal/models"
)

type ListResponse[T any] struct {
	Data   []T            `json:"data"`
	Total  int            `json:"total"`
	Notice *models.Notice `json:"notice,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func List[T any](c *gin.Context, data []T) {
	ListWithNotice(c, data, nil)
}

func ListWithNotice[T any](c *gin.Context, data []T, notice *models.Notice) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:   data,
		Total:  len(data),
		Notice: notice,
	})
}

// StaleResponse: a escrita foi aceita mas a lista não veio na nova busca.
// Não leva "data"; quem chamou mantém as linhas que já tinha.
type StaleResponse struct {
	Notice *models.Notice `json:"notice,omitempty"`
	Stale  bool           `json:"stale"`
}

func Stale(c *gin.Context, status int, notice *models.Notice) {
	c.JSON(status, StaleResponse{Notice: notice, Stale: true})
}

// Confirm responde 428 com o texto da confirmação destrutiva.
func Confirm(c *gin.Context, prompt string) {
	c.JSON(http.StatusPreconditionRequired, gin.H{
		"error_code": "confirmation_required",
		"prompt":     prompt,
	})
}
