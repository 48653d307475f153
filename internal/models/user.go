package models

const (
	ProfileBarber   = "barbeiro"
	ProfileCustomer = "cliente"
)

// User é o perfil devolvido por /auth/login/ e /auth/profile/.
type User struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	ProfileType string `json:"profile_type"`
	Phone       string `json:"phone,omitempty"`
	City        string `json:"city,omitempty"`

	Avatar   string `json:"avatar,omitempty"`
	Whatsapp string `json:"whatsapp,omitempty"`
	PixKey   string `json:"pix_key,omitempty"`
	Address  string `json:"address,omitempty"`

	ConfirmedAppointmentsCount int `json:"confirmed_appointments_count,omitempty"`
}

func (u User) IsBarber() bool   { return u.ProfileType == ProfileBarber }
func (u User) IsCustomer() bool { return u.ProfileType == ProfileCustomer }

// AuthResult é a resposta de login/registro.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
