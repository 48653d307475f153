package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking-web/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking-web/internal/dto"
	"github.com/BruksfildServices01/barber-booking-web/internal/listing"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute busca com os filtros aplicados (os staged não entram na query).
func (uc *ListAppointments) Execute(
	ctx context.Context,
	token string,
	view domain.View,
	filters listing.FilterState,
) ([]dto.AppointmentListDTO, error) {

	items, err := uc.repo.ListAppointments(ctx, token, view, filters.Query(view))
	if err != nil {
		return nil, err
	}
	return dto.NewAppointmentList(items), nil
}
