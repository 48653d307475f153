package models

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

var weekdayLabels = map[Weekday]string{
	Monday:    "Segunda-feira",
	Tuesday:   "Terça-feira",
	Wednesday: "Quarta-feira",
	Thursday:  "Quinta-feira",
	Friday:    "Sexta-feira",
	Saturday:  "Sábado",
	Sunday:    "Domingo",
}

func (w Weekday) Valid() bool {
	_, ok := weekdayLabels[w]
	return ok
}

func (w Weekday) Label() string {
	if l, ok := weekdayLabels[w]; ok {
		return l
	}
	return string(w)
}

// WorkDay é o template semanal a partir do qual a API gera os horários.
type WorkDay struct {
	ID               uint    `json:"id"`
	DayOfWeek        Weekday `json:"day_of_week"`
	DayOfWeekDisplay string  `json:"day_of_week_display,omitempty"`

	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	LunchStartTime string `json:"lunch_start_time"`
	LunchEndTime   string `json:"lunch_end_time"`
	SlotDuration   int    `json:"slot_duration"`

	FreeTimeCount int `json:"free_time_count"`
	BusyTimeCount int `json:"busy_time_count"`
}

func (d WorkDay) Label() string {
	if d.DayOfWeekDisplay != "" {
		return d.DayOfWeekDisplay
	}
	return d.DayOfWeek.Label()
}

// NeedsReactivation: sem horários livres, a tela oferece "Reativar horários".
func (d WorkDay) NeedsReactivation() bool {
	return d.FreeTimeCount <= 0
}

type WorkDayInput struct {
	DayOfWeek      Weekday `json:"day_of_week"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	LunchStartTime string  `json:"lunch_start_time"`
	LunchEndTime   string  `json:"lunch_end_time"`
	SlotDuration   int     `json:"slot_duration"`
}

type TimeSlot struct {
	ID          uint   `json:"id"`
	Time        string `json:"time"`
	StartTime   string `json:"start_time,omitempty"`
	EndTime     string `json:"end_time,omitempty"`
	IsAvailable bool   `json:"is_available"`
}

// Normalize preenche Time com start_time/end_time quando a API não envia time.
func (s TimeSlot) Normalize() TimeSlot {
	if s.Time == "" {
		if s.StartTime != "" {
			s.Time = s.StartTime
		} else {
			s.Time = s.EndTime
		}
	}
	return s
}
