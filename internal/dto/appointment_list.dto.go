package dto

import (
	domain "github.com/BruksfildServices01/barber-booking-web/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking-web/internal/models"
)

// AppointmentListDTO é a linha das listas de agendamento, já com rótulos e as ações permitidas.
type AppointmentListDTO struct {
	ID          uint   `json:"id"`
	BarberName  string `json:"barber_name"`
	ClientName  string `json:"client_name"`
	ServiceName string `json:"service_name"`
	Day         string `json:"day"`
	Time        string `json:"time"`

	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`

	Price      models.Money `json:"price"`
	PriceLabel string       `json:"price_label"`
	IsFree     bool         `json:"is_free"`

	CanConfirm  bool `json:"can_confirm"`
	CanCancel   bool `json:"can_cancel"`
	CanComplete bool `json:"can_complete"`
}

func NewAppointmentList(items []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(items))
	for _, a := range items {
		out = append(out, NewAppointmentRow(a))
	}
	return out
}

func NewAppointmentRow(a models.Appointment) AppointmentListDTO {
	status := domain.Status(a.Status)

	row := AppointmentListDTO{
		ID:          a.ID,
		BarberName:  a.Barber.DisplayName("Barbeiro"),
		ClientName:  a.Client.DisplayName("Cliente"),
		ServiceName: a.Service.Name,
		Day:         dayLabel(a.DayOfWeek),
		Status:      a.Status,
		StatusLabel: status.Label(),
		Price:       a.Price,
		PriceLabel:  domain.PriceLabel(a.Price, a.IsFree),
		IsFree:      a.IsFree,
	}

	if a.TimeSlot != nil {
		row.Time = domain.FormatTime(a.TimeSlot.Normalize().Time)
	} else {
		row.Time = domain.FormatTime("")
	}

	for _, act := range domain.Allowed(status) {
		switch act {
		case domain.ActionConfirm:
			row.CanConfirm = true
		case domain.ActionCancel:
			row.CanCancel = true
		case domain.ActionComplete:
			row.CanComplete = true
		}
	}
	return row
}

func dayLabel(day string) string {
	if w := models.Weekday(day); w.Valid() {
		return w.Label()
	}
	return day
}
