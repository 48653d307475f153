package models

type Appointment struct {
	ID uint `json:"id"`

	Barber *Person `json:"barber,omitempty"`
	Client *Person `json:"client,omitempty"`

	Service  Service   `json:"service"`
	TimeSlot *TimeSlot `json:"time_slot,omitempty"`

	DayOfWeek string `json:"day_of_week"`
	Price     Money  `json:"price"`
	Status    string `json:"status"`
	IsFree    bool   `json:"is_free"`
}

// CreateAppointmentRequest é exatamente a tupla enviada para /appointments/create/.
type CreateAppointmentRequest struct {
	ServiceID  uint `json:"service_id"`
	TimeSlotID uint `json:"time_slot_id"`
	BarberID   uint `json:"barber_id"`
	ClientID   uint `json:"client_id"`
}

// CreatedAppointment: só price e is_free são usados pelo recibo.
type CreatedAppointment struct {
	ID     uint   `json:"id"`
	Price  Money  `json:"price"`
	IsFree bool   `json:"is_free"`
	Status string `json:"status"`
}
