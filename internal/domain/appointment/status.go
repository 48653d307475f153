package appointment

import "github.com/BruksfildServices01/barber-booking-web/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
	StatusCompleted Status = "completed"
)

var statusLabels = map[Status]string{
	StatusPending:   "Pendente",
	StatusConfirmed: "Confirmado",
	StatusCanceled:  "Cancelado",
	StatusCompleted: "Concluído",
}

func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Final: cancelado e concluído não voltam atrás.
func (s Status) Final() bool {
	return s == StatusCanceled || s == StatusCompleted
}

// ===============================
// Validations
// ===============================

// CanConfirm só a partir de pendente
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel enquanto o agendamento não foi encerrado
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete só depois de confirmado
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
