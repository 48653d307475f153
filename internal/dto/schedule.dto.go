package dto

import (
	domain "github.com/BruksfildServices01/barber-booking-web/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking-web/internal/models"
)

type WorkDayDTO struct {
	models.WorkDay
	Label             string `json:"label"`
	NeedsReactivation bool   `json:"needs_reactivation"`
}

func NewWorkDays(days []models.WorkDay) []WorkDayDTO {
	out := make([]WorkDayDTO, 0, len(days))
	for _, d := range days {
		out = append(out, WorkDayDTO{
			WorkDay:           d,
			Label:             d.Label(),
			NeedsReactivation: d.NeedsReactivation(),
		})
	}
	return out
}

type SlotDTO struct {
	ID          uint   `json:"id"`
	Time        string `json:"time"`
	Label       string `json:"label"`
	IsAvailable bool   `json:"is_available"`
}

func NewSlots(slots []models.TimeSlot) []SlotDTO {
	out := make([]SlotDTO, 0, len(slots))
	for _, s := range slots {
		s = s.Normalize()
		out = append(out, SlotDTO{
			ID:          s.ID,
			Time:        s.Time,
			Label:       domain.FormatTime(s.Time),
			IsAvailable: s.IsAvailable,
		})
	}
	return out
}

type ServiceDTO struct {
	models.Service
	PriceLabel string `json:"price_label"`
}

func NewServices(items []models.Service) []ServiceDTO {
	out := make([]ServiceDTO, 0, len(items))
	for _, s := range items {
		out = append(out, ServiceDTO{Service: s, PriceLabel: domain.FormatCurrency(s.Price)})
	}
	return out
}
