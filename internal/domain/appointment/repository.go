package appointment

import (
	"context"
	"net/url"

	"github.com/BruksfildServices01/barber-booking-web/internal/models"
)

// View separa as duas listagens: a do barbeiro filtra por cliente, a do cliente por barbeiro.
type View string

const (
	ViewBarber   View = "barber"
	ViewCustomer View = "client"
)

func (v View) NameParam() string {
	if v == ViewBarber {
		return "client_name"
	}
	return "barber_name"
}

type Repository interface {
	// -------- Listagem --------
	ListAppointments(
		ctx context.Context,
		token string,
		view View,
		query url.Values,
	) ([]models.Appointment, error)

	// -------- Mudança de status --------
	MutateAppointmentStatus(
		ctx context.Context,
		token string,
		appointmentID uint,
		action Action,
	) error
}
