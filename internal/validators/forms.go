package validators

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/BruksfildServices01/barber-booking-web/internal/apiclient"
	domain "github.com/BruksfildServices01/barber-booking-web/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking-web/internal/httperr"
	"github.com/BruksfildServices01/barber-booking-web/internal/models"
)

const (
	msgInvalidEmail   = "Email inválido"
	msgShortPassword  = "A senha deve ter pelo menos 6 caracteres"
	msgInvalidClock   = "Horário inválido. Use o formato HH:MM:SS"
	minPasswordLength = 6
	maxEmailLength    = 254
	minUsernameLength = 3
	maxUsernameLength = 150
	CitySalinasMG     = "salinas_mg"
)

var phonePattern = regexp.MustCompile(`^\d{11}$`)

// =======================================================
// AUTENTICAÇÃO
// =======================================================

func Login(in apiclient.LoginInput) error {
	errs := Errors{}
	if !IsEmail(in.Email) {
		errs.Add("email", msgInvalidEmail)
	}
	if utf8.RuneCountInString(in.Password) < minPasswordLength {
		errs.Add("password", msgShortPassword)
	}
	return errs.Err()
}

func Registration(in apiclient.RegisterInput) error {
	errs := Errors{}

	switch n := utf8.RuneCountInString(in.Username); {
	case n < minUsernameLength:
		errs.Add("username", "O nome de usuário deve ter pelo menos 3 caracteres")
	case n > maxUsernameLength:
		errs.Add("username", "O nome de usuário não pode ter mais que 150 caracteres")
	}

	if !IsEmail(in.Email) {
		errs.Add("email", msgInvalidEmail)
	} else if len(in.Email) > maxEmailLength {
		errs.Add("email", "O email não pode ter mais de 254 caracteres")
	}

	if !phonePattern.MatchString(in.Phone) {
		errs.Add("phone", "Número de WhatsApp inválido")
	}
	if utf8.RuneCountInString(in.Password) < minPasswordLength {
		errs.Add("password", msgShortPassword)
	}
	if in.ProfileType != models.ProfileBarber && in.ProfileType != models.ProfileCustomer {
		errs.Add("profile_type", "Tipo de perfil inválido")
	}
	if in.City != CitySalinasMG {
		errs.Add("city", "Cidade inválida")
	}
	return errs.Err()
}

func ForgotPassword(email string) error {
	if !IsEmail(email) {
		return Errors{"email": {msgInvalidEmail}}
	}
	return nil
}

func NewPassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return Errors{"new_password": {msgShortPassword}}
	}
	return nil
}

// =======================================================
// SERVIÇOS
// =======================================================

// Service valida o formulário e já converte o preço ("35,50" ou "35.50").
func Service(name, description, price string) (models.ServiceInput, error) {
	errs := Errors{}
	in := models.ServiceInput{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}

	if in.Name == "" {
		errs.Add("name", "Nome é obrigatório")
	}
	if in.Description == "" {
		errs.Add("description", "Descrição é obrigatória")
	}

	p, err := models.ParseMoney(price)
	switch {
	case err != nil || strings.TrimSpace(price) == "":
		errs.Add("price", "Preço deve ser um número válido")
	case p <= 0:
		errs.Add("price", "Preço deve ser maior que zero")
	default:
		in.Price = p
	}

	return in, errs.Err()
}

// =======================================================
// DIAS DE TRABALHO
// =======================================================

func WorkDay(in models.WorkDayInput) error {
	errs := Errors{}

	switch {
	case in.DayOfWeek == "":
		errs.Add("day_of_week", "Selecione um dia da semana")
	case !in.DayOfWeek.Valid():
		errs.Add("day_of_week", "Selecione um dia válido")
	}

	clocks := map[string]string{
		"start_time":       in.StartTime,
		"end_time":         in.EndTime,
		"lunch_start_time": in.LunchStartTime,
		"lunch_end_time":   in.LunchEndTime,
	}
	badClock := false
	for field, v := range clocks {
		if !domain.ValidClock(v) {
			errs.Add(field, msgInvalidClock)
			badClock = true
		}
	}

	if in.SlotDuration <= 0 {
		errs.Add("slot_duration", "Informe a duração do atendimento")
	}

	if !badClock {
		if err := domain.CheckShift(in.StartTime, in.EndTime, in.LunchStartTime, in.LunchEndTime); err != nil {
			switch {
			case httperr.IsBusiness(err, "invalid_shift"):
				errs.Add("end_time", "O fim do expediente deve ser depois do início")
			case httperr.IsBusiness(err, "invalid_lunch"):
				errs.Add("lunch_end_time", "O fim do almoço deve ser depois do início")
			case httperr.IsBusiness(err, "lunch_outside_shift"):
				errs.Add("lunch_start_time", "O almoço deve estar dentro do expediente")
			}
		}
	}

	return errs.Err()
}

// =======================================================
// AVALIAÇÃO
// =======================================================

func Rating(r models.Rating) error {
	errs := Errors{}
	if r.BarberID == 0 {
		errs.Add("barber_id", "Selecione um barbeiro")
	}
	if r.Rating < 1 || r.Rating > 5 {
		errs.Add("rating", "A avaliação deve ser de 1 a 5 estrelas")
	}
	return errs.Err()
}
