package booking

import (
	"errors"

	"github.com/BruksfildServices01/barber-booking-web/internal/httperr"
	"github.com/BruksfildServices01/barber-booking-web/internal/models"
)

type Stage string

const (
	StageBrowsing        Stage = "browsing"
	StageBarberSelected  Stage = "barber_selected"
	StageServiceSelected Stage = "service_selected"
	StageDaySelected     Stage = "day_selected"
	StageSlotSelected    Stage = "slot_selected"
	StageSubmitting      Stage = "submitting"
	StageConfirmed       Stage = "confirmed"
)

var stageRank = map[Stage]int{
	StageBrowsing:        0,
	StageBarberSelected:  1,
	StageServiceSelected: 2,
	StageDaySelected:     3,
	StageSlotSelected:    4,
	StageSubmitting:      5,
	StageConfirmed:       6,
}

var (
	ErrInvalidTransition = errors.New("invalid booking transition")
	ErrUnknownSelection  = errors.New("selection not in the loaded list")
)

// Workflow é o estado do agendamento de uma sessão. Serializado em JSON no redis.
type Workflow struct {
	Stage Stage `json:"stage"`

	Barber  *models.Barber   `json:"barber,omitempty"`
	Service *models.Service  `json:"service,omitempty"`
	Day     *models.WorkDay  `json:"day,omitempty"`
	Slot    *models.TimeSlot `json:"slot,omitempty"`

	Services []models.Service  `json:"services"`
	WorkDays []models.WorkDay  `json:"work_days"`
	Slots    []models.TimeSlot `json:"slots"`

	Receipt *Receipt       `json:"receipt,omitempty"`
	Notice  *models.Notice `json:"notice,omitempty"`
}

func New() *Workflow {
	w := &Workflow{}
	w.Reset()
	return w
}

// Reset volta para Browsing e descarta tudo, inclusive o último recibo.
func (w *Workflow) Reset() {
	*w = Workflow{
		Stage:    StageBrowsing,
		Services: []models.Service{},
		WorkDays: []models.WorkDay{},
		Slots:    []models.TimeSlot{},
	}
}

// atLeast: a etapa atual permite escolher o próximo passo (Submitting e Confirmed não entram).
func (w *Workflow) atLeast(s Stage) bool {
	r, ok := stageRank[w.Stage]
	if !ok || w.Stage == StageSubmitting || w.Stage == StageConfirmed {
		return false
	}
	return r >= stageRank[s]
}

func (w *Workflow) clearFrom(s Stage) {
	switch s {
	case StageBarberSelected:
		w.Barber = nil
		w.Services = []models.Service{}
		fallthrough
	case StageServiceSelected:
		w.Service = nil
		w.WorkDays = []models.WorkDay{}
		fallthrough
	case StageDaySelected:
		w.Day = nil
		w.Slots = []models.TimeSlot{}
		fallthrough
	case StageSlotSelected:
		w.Slot = nil
	}
}

func (w *Workflow) findService(id uint) (models.Service, bool) {
	for _, s := range w.Services {
		if s.ID == id {
			return s, true
		}
	}
	return models.Service{}, false
}

func (w *Workflow) findDay(id uint) (models.WorkDay, bool) {
	for _, d := range w.WorkDays {
		if d.ID == id {
			return d, true
		}
	}
	return models.WorkDay{}, false
}

func (w *Workflow) findSlot(id uint) (models.TimeSlot, bool) {
	for _, s := range w.Slots {
		if s.ID == id {
			return s, true
		}
	}
	return models.TimeSlot{}, false
}

func (w *Workflow) fail(title string, err error) {
	n := models.ErrorNotice(title, httperr.Message(err))
	w.Notice = &n
}
