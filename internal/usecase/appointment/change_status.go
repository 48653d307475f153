package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-booking-web/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking-web/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking-web/internal/dto"
	"github.com/BruksfildServices01/barber-booking-web/internal/httperr"
	"github.com/BruksfildServices01/barber-booking-web/internal/listing"
	"github.com/BruksfildServices01/barber-booking-web/internal/logging"
	"github.com/BruksfildServices01/barber-booking-web/internal/models"
)

type ChangeStatusInput struct {
	Token         string
	View          domain.View
	Actor         models.User
	RequestID     string
	AppointmentID uint
	Action        domain.Action
	Filters       listing.FilterState
}

type ChangeStatusResult struct {
	Rows   []dto.AppointmentListDTO `json:"data"`
	Notice models.Notice            `json:"notice"`
	// Stale: a mudança foi aceita mas a nova busca falhou; a lista é a anterior.
	Stale bool `json:"stale,omitempty"`
}

type ChangeStatus struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	logger *logging.Logger
}

func NewChangeStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	logger *logging.Logger,
) *ChangeStatus {
	if logger == nil {
		logger = logging.Default()
	}
	return &ChangeStatus{repo: repo, audit: audit, logger: logger}
}

// Execute confere o status atual na lista, pede a transição à API e busca a lista de novo.
// Falha da API vira notice de erro com a lista inalterada.
func (uc *ChangeStatus) Execute(ctx context.Context, in ChangeStatusInput) (*ChangeStatusResult, error) {
	if in.View == domain.ViewCustomer && in.Action != domain.ActionCancel {
		return nil, httperr.ErrBusiness("action_not_allowed")
	}

	query := in.Filters.Query(in.View)
	current, err := uc.repo.ListAppointments(ctx, in.Token, in.View, query)
	if err != nil {
		return nil, err
	}

	target, ok := find(current, in.AppointmentID)
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	if err := in.Action.Guard(domain.Status(target.Status)); err != nil {
		return nil, err
	}

	rows := dto.NewAppointmentList(current)

	if err := uc.repo.MutateAppointmentStatus(ctx, in.Token, in.AppointmentID, in.Action); err != nil {
		if errors.Is(err, httperr.ErrMissingToken) {
			return nil, err
		}
		return &ChangeStatusResult{
			Rows:   rows,
			Notice: models.ErrorNotice(in.Action.FailureMessage(), httperr.Message(err)),
		}, nil
	}

	uc.audit.Dispatch(audit.Event{
		UserID:      in.Actor.ID,
		ProfileType: in.Actor.ProfileType,
		Action:      audit.ActionAppointmentState,
		Entity:      "appointment",
		EntityID:    &in.AppointmentID,
		Metadata: map[string]string{
			"action": string(in.Action),
			"from":   target.Status,
			"to":     string(in.Action.Target()),
		},
		RequestID: in.RequestID,
	})

	result := &ChangeStatusResult{Notice: models.SuccessNotice(in.Action.SuccessMessage())}

	refreshed, err := uc.repo.ListAppointments(ctx, in.Token, in.View, query)
	if err != nil {
		uc.logger.Warn("refetch after status change failed",
			"appointment_id", in.AppointmentID,
			"error", err,
		)
		result.Rows = rows
		result.Stale = true
		return result, nil
	}

	result.Rows = dto.NewAppointmentList(refreshed)
	return result, nil
}

func find(items []models.Appointment, id uint) (models.Appointment, bool) {
	for _, a := range items {
		if a.ID == id {
			return a, true
		}
	}
	return models.Appointment{}, false
}
