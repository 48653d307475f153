package appointment

import "github.com/BruksfildServices01/barber-booking-web/internal/models"

// AvailableSlots normaliza e descarta horários com is_available=false.
func AvailableSlots(slots []models.TimeSlot) []models.TimeSlot {
	out := make([]models.TimeSlot, 0, len(slots))
	for _, s := range slots {
		if !s.IsAvailable {
			continue
		}
		out = append(out, s.Normalize())
	}
	return out
}

func NormalizeSlots(slots []models.TimeSlot) []models.TimeSlot {
	out := make([]models.TimeSlot, len(slots))
	for i, s := range slots {
		out[i] = s.Normalize()
	}
	return out
}
