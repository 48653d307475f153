package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/barber-booking-web/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking-web/internal/models"
)

// ListBarbers lista o diretório. Nome em branco não vai na query.
func (c *Client) ListBarbers(ctx context.Context, token, name string) ([]models.Barber, error) {
	var q url.Values
	if name = strings.TrimSpace(name); name != "" {
		q = url.Values{"name": {name}}
	}

	var out []models.Barber
	err := c.do(ctx, request{
		op:       "list_barbers",
		method:   http.MethodGet,
		path:     "/auth/barbers/",
		query:    q,
		token:    token,
		auth:     true,
		fallback: "Erro ao buscar barbeiros",
	}, &out)
	return out, err
}

func (c *Client) ListBarberServices(ctx context.Context, token string, barberID uint) ([]models.Service, error) {
	var out []models.Service
	err := c.do(ctx, request{
		op:       "list_barber_services",
		method:   http.MethodGet,
		path:     "/services/public/",
		query:    barberQuery(barberID),
		token:    token,
		auth:     true,
		fallback: "Erro ao buscar serviços",
	}, &out)
	return out, err
}

func (c *Client) ListBarberWorkDays(ctx context.Context, token string, barberID uint) ([]models.WorkDay, error) {
	var out []models.WorkDay
	err := c.do(ctx, request{
		op:       "list_barber_work_days",
		method:   http.MethodGet,
		path:     "/schedule/public/",
		query:    barberQuery(barberID),
		token:    token,
		auth:     true,
		fallback: "Erro ao buscar dias de trabalho",
	}, &out)
	return out, err
}

// ListAvailableSlots é a visão do cliente: só horários livres.
func (c *Client) ListAvailableSlots(ctx context.Context, token string, workDayID uint) ([]models.TimeSlot, error) {
	slots, err := c.listSlots(ctx, "list_available_slots", token, workDayID)
	if err != nil {
		return nil, err
	}
	return appointment.AvailableSlots(slots), nil
}

func barberQuery(barberID uint) url.Values {
	return url.Values{"barber_id": {strconv.FormatUint(uint64(barberID), 10)}}
}
