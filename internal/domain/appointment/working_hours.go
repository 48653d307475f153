package appointment

import (
	"regexp"
	"time"

	"github.com/BruksfildServices01/barber-booking-web/internal/httperr"
)

var clockPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]:[0-5][0-9]$`)

// ValidClock aceita HH:MM:SS, como o formulário de dias de trabalho.
func ValidClock(s string) bool {
	return clockPattern.MatchString(s)
}

func parseClock(s string) time.Time {
	t, _ := time.Parse("15:04:05", s)
	return t
}

// CheckShift valida expediente e almoço do template semanal
// (o almoço precisa caber dentro do expediente).
func CheckShift(start, end, lunchStart, lunchEnd string) error {
	for _, s := range []string{start, end, lunchStart, lunchEnd} {
		if !ValidClock(s) {
			return httperr.ErrBusiness("invalid_time_format")
		}
	}

	workStart := parseClock(start)
	workEnd := parseClock(end)
	if !workStart.Before(workEnd) {
		return httperr.ErrBusiness("invalid_shift")
	}

	ls := parseClock(lunchStart)
	le := parseClock(lunchEnd)
	if !ls.Before(le) {
		return httperr.ErrBusiness("invalid_lunch")
	}
	if ls.Before(workStart) || le.After(workEnd) {
		return httperr.ErrBusiness("lunch_outside_shift")
	}

	return nil
}
