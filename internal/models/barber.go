package models

type Barber struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	City     string `json:"city"`
	Avatar   string `json:"avatar"`
	Whatsapp string `json:"whatsapp"`
	PixKey   string `json:"pix_key"`
	Address  string `json:"address"`

	AverageRating float64 `json:"average_rating"`
	TotalRatings  int     `json:"total_ratings"`

	// carregado sob demanda ao selecionar o barbeiro
	Services []Service `json:"services,omitempty"`
}

// DisplayName segue o fallback usado nas listagens.
func (b Barber) DisplayName() string {
	if b.Username != "" {
		return b.Username
	}
	return b.Email
}

// Person é a forma resumida de barbeiro/cliente embutida em agendamentos.
type Person struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (p *Person) DisplayName(fallback string) string {
	switch {
	case p == nil:
		return fallback
	case p.Username != "":
		return p.Username
	case p.Email != "":
		return p.Email
	}
	return fallback
}

type Rating struct {
	BarberID uint `json:"barber_id"`
	Rating   int  `json:"rating"`
}
