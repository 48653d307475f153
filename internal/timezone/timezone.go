package timezone

import (
	"time"
	_ "time/tzdata"
)

// A API da barbearia trabalha em horário de Brasília; recibos e o log local seguem o mesmo fuso.
const DefaultTimezone = "America/Sao_Paulo"

const StampLayout = "02/01/2006 15:04"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.FixedZone("BRT", -3*60*60)
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// FormatStamp: "15/10/2026 14:30" no fuso local.
func FormatStamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(Location()).Format(StampLayout)
}

// DayRange devolve [início, fim) do dia "2006-01-02" no fuso local.
func DayRange(day string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02", day, Location())
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 0, 1), nil
}
