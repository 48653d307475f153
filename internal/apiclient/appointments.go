package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/BruksfildServices01/barber-booking-web/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking-web/internal/models"
)

var _ appointment.Repository = (*Client)(nil)

func (c *Client) CreateAppointment(ctx context.Context, token string, in models.CreateAppointmentRequest) (*models.CreatedAppointment, error) {
	var out models.CreatedAppointment
	err := c.do(ctx, request{
		op:       "create_appointment",
		method:   http.MethodPost,
		path:     "/appointments/create/",
		token:    token,
		auth:     true,
		body:     in,
		fallback: "Erro ao criar o agendamento",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// MutateAppointmentStatus chama /appointments/{confirm|cancel|complete}/{id}/.
func (c *Client) MutateAppointmentStatus(ctx context.Context, token string, id uint, action appointment.Action) error {
	if _, err := appointment.ParseAction(string(action)); err != nil {
		return err
	}
	return c.do(ctx, request{
		op:       string(action) + "_appointment",
		method:   http.MethodPost,
		path:     idPath("/appointments/"+string(action)+"/%d/", id),
		token:    token,
		auth:     true,
		fallback: action.FailureMessage(),
	}, nil)
}

func (c *Client) ListAppointments(ctx context.Context, token string, view appointment.View, query url.Values) ([]models.Appointment, error) {
	path := "/appointments/client/appointments/"
	op := "list_client_appointments"
	if view == appointment.ViewBarber {
		path = "/appointments/barber/appointments/"
		op = "list_barber_appointments"
	}

	var out []models.Appointment
	err := c.do(ctx, request{
		op:       op,
		method:   http.MethodGet,
		path:     path,
		query:    query,
		token:    token,
		auth:     true,
		fallback: "Erro ao buscar agendamentos",
	}, &out)
	return out, err
}

func (c *Client) BarberStatistics(ctx context.Context, token string) (*models.Statistics, error) {
	var out models.Statistics
	err := c.do(ctx, request{
		op:       "barber_statistics",
		method:   http.MethodGet,
		path:     "/appointments/barber/statistics/",
		token:    token,
		auth:     true,
		fallback: "Erro ao buscar estatísticas",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
