package validators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking-web/internal/apiclient"
	"github.com/BruksfildServices01/barber-booking-web/internal/httperr"
	"github.com/BruksfildServices01/barber-booking-web/internal/models"
)

func fieldErrs(t *testing.T, err error) map[string][]string {
	t.Helper()
	var fe httperr.FieldError
	require.True(t, errors.As(err, &fe), "expected field errors, got %v", err)
	return fe.FieldErrors()
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("ana@barbearia.com"))
	assert.False(t, IsEmail("ana"))
	assert.False(t, IsEmail("ana@local"))
	assert.False(t, IsEmail("Ana <ana@x.com>"))
	assert.False(t, IsEmail(""))
}

func TestLogin(t *testing.T) {
	assert.NoError(t, Login(apiclient.LoginInput{Email: "a@b.com", Password: "123456"}))

	errs := fieldErrs(t, Login(apiclient.LoginInput{Email: "x", Password: "123"}))
	assert.Equal(t, []string{"Email inválido"}, errs["email"])
	assert.Equal(t, []string{"A senha deve ter pelo menos 6 caracteres"}, errs["password"])
}

func TestRegistration(t *testing.T) {
	ok := apiclient.RegisterInput{
		Username: "ana", Email: "ana@x.com", Phone: "38999990000",
		Password: "segredo", ProfileType: models.ProfileCustomer, City: CitySalinasMG,
	}
	assert.NoError(t, Registration(ok))

	bad := ok
	bad.Username = "an"
	bad.Phone = "(38) 9999"
	bad.ProfileType = "admin"
	bad.City = "bh"

	errs := fieldErrs(t, Registration(bad))
	assert.Contains(t, errs, "username")
	assert.Equal(t, []string{"Número de WhatsApp inválido"}, errs["phone"])
	assert.Equal(t, []string{"Tipo de perfil inválido"}, errs["profile_type"])
	assert.Equal(t, []string{"Cidade inválida"}, errs["city"])
	assert.NotContains(t, errs, "email")
}

func TestService(t *testing.T) {
	in, err := Service(" Corte ", "Tesoura", "35,50")
	require.NoError(t, err)
	assert.Equal(t, "Corte", in.Name)
	assert.Equal(t, models.Money(3550), in.Price)

	_, err = Service("", "", "abc")
	errs := fieldErrs(t, err)
	assert.Equal(t, []string{"Nome é obrigatório"}, errs["name"])
	assert.Equal(t, []string{"Descrição é obrigatória"}, errs["description"])
	assert.Equal(t, []string{"Preço deve ser um número válido"}, errs["price"])

	_, err = Service("Corte", "x", "0")
	assert.Equal(t, []string{"Preço deve ser maior que zero"}, fieldErrs(t, err)["price"])
}

func TestWorkDay(t *testing.T) {
	ok := models.WorkDayInput{
		DayOfWeek: models.Monday, StartTime: "08:00:00", EndTime: "18:00:00",
		LunchStartTime: "12:00:00", LunchEndTime: "13:00:00", SlotDuration: 30,
	}
	assert.NoError(t, WorkDay(ok))

	bad := ok
	bad.DayOfWeek = "funday"
	bad.StartTime = "8h"
	bad.SlotDuration = 0
	errs := fieldErrs(t, WorkDay(bad))
	assert.Equal(t, []string{"Selecione um dia válido"}, errs["day_of_week"])
	assert.Equal(t, []string{"Horário inválido. Use o formato HH:MM:SS"}, errs["start_time"])
	assert.Contains(t, errs, "slot_duration")

	lunch := ok
	lunch.LunchStartTime = "07:00:00"
	assert.Contains(t, fieldErrs(t, WorkDay(lunch)), "lunch_start_time")
}

func TestRating(t *testing.T) {
	assert.NoError(t, Rating(models.Rating{BarberID: 1, Rating: 5}))
	errs := fieldErrs(t, Rating(models.Rating{BarberID: 0, Rating: 6}))
	assert.Contains(t, errs, "barber_id")
	assert.Contains(t, errs, "rating")
}

func TestErrorsMessageIsSorted(t *testing.T) {
	e := Errors{}
	e.Add("b", "segundo")
	e.Add("a", "primeiro")
	assert.Equal(t, "primeiro, segundo", e.Error())
	assert.Nil(t, Errors{}.Err())
}
