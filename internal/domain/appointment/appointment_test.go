package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barber-booking-web/internal/httperr"
	"github.com/BruksfildServices01/barber-booking-web/internal/models"
)

func TestGuards(t *testing.T) {
	tests := []struct {
		status   Status
		confirm  bool
		cancel   bool
		complete bool
	}{
		{StatusPending, true, true, false},
		{StatusConfirmed, false, true, true},
		{StatusCanceled, false, false, false},
		{StatusCompleted, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.confirm, CanConfirm(tt.status) == nil)
			assert.Equal(t, tt.cancel, CanCancel(tt.status) == nil)
			assert.Equal(t, tt.complete, CanComplete(tt.status) == nil)
		})
	}
}

func TestGuardErrorIsInvalidState(t *testing.T) {
	err := ActionCancel.Guard(StatusCanceled)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestAllowed(t *testing.T) {
	assert.Equal(t, []Action{ActionConfirm, ActionCancel}, Allowed(StatusPending))
	assert.Equal(t, []Action{ActionCancel, ActionComplete}, Allowed(StatusConfirmed))
	assert.Empty(t, Allowed(StatusCanceled))
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("confirm")
	assert.NoError(t, err)
	assert.Equal(t, StatusConfirmed, a.Target())

	_, err = ParseAction("delete")
	assert.True(t, httperr.IsBusiness(err, "invalid_action"))
}

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "Concluído", StatusCompleted.Label())
	assert.Equal(t, "weird", Status("weird").Label())
	assert.True(t, StatusCanceled.Final())
	assert.False(t, StatusPending.Final())
}

func TestAvailableSlotsExcludesUnavailable(t *testing.T) {
	slots := []models.TimeSlot{
		{ID: 1, Time: "09:00:00", IsAvailable: true},
		{ID: 2, Time: "09:30:00", IsAvailable: false},
		{ID: 3, StartTime: "10:00:00", IsAvailable: true},
	}

	got := AvailableSlots(slots)

	assert.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].ID)
	assert.Equal(t, "10:00:00", got[1].Time)
	for _, s := range got {
		assert.True(t, s.IsAvailable)
	}
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "R$ 0,00", FormatCurrency(0))
	assert.Equal(t, "R$ 35,00", FormatCurrency(3500))
	assert.Equal(t, "R$ 12.345,67", FormatCurrency(1234567))
	assert.Equal(t, "-R$ 5,05", FormatCurrency(-505))
}

func TestPriceLabel(t *testing.T) {
	assert.Equal(t, FreeLabel, PriceLabel(0, true))
	assert.Equal(t, "Gratuito (Recompensa)", PriceLabel(0, true))
	assert.Equal(t, "R$ 0,00", PriceLabel(0, false))
	assert.Equal(t, "R$ 30,00", PriceLabel(3000, true))
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "14:30", FormatTime("14:30:00"))
	assert.Equal(t, "09:05", FormatTime("9:5"))
	assert.Equal(t, TimeUnavailableText, FormatTime(""))
}

func TestCheckShift(t *testing.T) {
	assert.NoError(t, CheckShift("08:00:00", "18:00:00", "12:00:00", "13:00:00"))
	assert.True(t, httperr.IsBusiness(CheckShift("8:00", "18:00:00", "12:00:00", "13:00:00"), "invalid_time_format"))
	assert.True(t, httperr.IsBusiness(CheckShift("18:00:00", "08:00:00", "12:00:00", "13:00:00"), "invalid_shift"))
	assert.True(t, httperr.IsBusiness(CheckShift("08:00:00", "18:00:00", "13:00:00", "12:00:00"), "invalid_lunch"))
	assert.True(t, httperr.IsBusiness(CheckShift("08:00:00", "12:00:00", "12:00:00", "13:00:00"), "lunch_outside_shift"))
}
