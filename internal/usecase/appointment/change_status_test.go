package appointment

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-booking-web/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking-web/internal/httperr"
	"github.com/BruksfildServices01/barber-booking-web/internal/listing"
	"github.com/BruksfildServices01/barber-booking-web/internal/logging"
	"github.com/BruksfildServices01/barber-booking-web/internal/models"
)

type apiErr string

func (e apiErr) Error() string   { return string(e) }
func (e apiErr) HTTPStatus() int { return 400 }

type fakeRepo struct {
	lists     [][]models.Appointment
	listErrs  []error
	mutateErr error

	listCalls int
	queries   []url.Values
	mutations []domain.Action
}

func (f *fakeRepo) ListAppointments(_ context.Context, _ string, _ domain.View, q url.Values) ([]models.Appointment, error) {
	i := f.listCalls
	f.listCalls++
	f.queries = append(f.queries, q)
	var err error
	if i < len(f.listErrs) {
		err = f.listErrs[i]
	}
	if err != nil {
		return nil, err
	}
	if i < len(f.lists) {
		return f.lists[i], nil
	}
	return f.lists[len(f.lists)-1], nil
}

func (f *fakeRepo) MutateAppointmentStatus(_ context.Context, _ string, _ uint, a domain.Action) error {
	f.mutations = append(f.mutations, a)
	return f.mutateErr
}

func input(action domain.Action, view domain.View) ChangeStatusInput {
	return ChangeStatusInput{
		Token:         "tok",
		View:          view,
		Actor:         models.User{ID: 3, ProfileType: models.ProfileBarber},
		AppointmentID: 1,
		Action:        action,
		Filters:       listing.NewFilterState(),
	}
}

func TestChangeStatus_ConfirmRefetches(t *testing.T) {
	repo := &fakeRepo{lists: [][]models.Appointment{
		{{ID: 1, Status: "pending"}},
		{{ID: 1, Status: "confirmed"}},
	}}
	uc := NewChangeStatus(repo, nil, logging.Discard())

	res, err := uc.Execute(context.Background(), input(domain.ActionConfirm, domain.ViewBarber))
	require.NoError(t, err)

	assert.Equal(t, []domain.Action{domain.ActionConfirm}, repo.mutations)
	assert.Equal(t, 2, repo.listCalls)
	assert.Equal(t, models.NoticeSuccess, res.Notice.Kind)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "confirmed", res.Rows[0].Status)
	assert.False(t, res.Stale)
}

func TestChangeStatus_GuardBlocksWithoutCallingAPI(t *testing.T) {
	repo := &fakeRepo{lists: [][]models.Appointment{{{ID: 1, Status: "confirmed"}}}}
	uc := NewChangeStatus(repo, nil, logging.Discard())

	_, err := uc.Execute(context.Background(), input(domain.ActionConfirm, domain.ViewBarber))
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Empty(t, repo.mutations)

	repo.lists = [][]models.Appointment{{{ID: 1, Status: "canceled"}}}
	repo.listCalls = 0
	_, err = uc.Execute(context.Background(), input(domain.ActionCancel, domain.ViewBarber))
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Empty(t, repo.mutations)
}

func TestChangeStatus_APIFailureKeepsList(t *testing.T) {
	repo := &fakeRepo{
		lists:     [][]models.Appointment{{{ID: 1, Status: "pending"}}},
		mutateErr: apiErr("Agendamento já cancelado"),
	}
	uc := NewChangeStatus(repo, nil, logging.Discard())

	res, err := uc.Execute(context.Background(), input(domain.ActionCancel, domain.ViewCustomer))
	require.NoError(t, err)

	assert.Equal(t, 1, repo.listCalls)
	assert.Equal(t, models.NoticeError, res.Notice.Kind)
	assert.Equal(t, "Agendamento já cancelado", res.Notice.Description)
	assert.Equal(t, "pending", res.Rows[0].Status)
}

func TestChangeStatus_CustomerCanOnlyCancel(t *testing.T) {
	uc := NewChangeStatus(&fakeRepo{}, nil, logging.Discard())

	_, err := uc.Execute(context.Background(), input(domain.ActionComplete, domain.ViewCustomer))
	assert.True(t, httperr.IsBusiness(err, "action_not_allowed"))
}

func TestChangeStatus_NotInList(t *testing.T) {
	repo := &fakeRepo{lists: [][]models.Appointment{{{ID: 2, Status: "pending"}}}}
	uc := NewChangeStatus(repo, nil, logging.Discard())

	_, err := uc.Execute(context.Background(), input(domain.ActionConfirm, domain.ViewBarber))
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestChangeStatus_RefetchFailureMarksStale(t *testing.T) {
	repo := &fakeRepo{
		lists:    [][]models.Appointment{{{ID: 1, Status: "confirmed"}}},
		listErrs: []error{nil, errors.New("timeout")},
	}
	uc := NewChangeStatus(repo, nil, logging.Discard())

	res, err := uc.Execute(context.Background(), input(domain.ActionComplete, domain.ViewBarber))
	require.NoError(t, err)
	assert.True(t, res.Stale)
	assert.Equal(t, models.NoticeSuccess, res.Notice.Kind)
}

func TestListAppointments_UsesAppliedFilters(t *testing.T) {
	repo := &fakeRepo{lists: [][]models.Appointment{{}}}
	uc := NewListAppointments(repo)

	state := listing.NewFilterState()
	require.NoError(t, state.Stage(listing.Filters{Status: "confirmed", Name: "Ana", Day: "monday"}))

	_, err := uc.Execute(context.Background(), "tok", domain.ViewBarber, state)
	require.NoError(t, err)
	assert.Empty(t, repo.queries[0])

	state.Apply()
	rows, err := uc.Execute(context.Background(), "tok", domain.ViewBarber, state)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Equal(t, url.Values{"status": {"confirmed"}, "client_name": {"Ana"}, "day": {"monday"}}, repo.queries[1])
}
