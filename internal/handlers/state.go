package handlers

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-booking-web/internal/booking"
	"github.com/BruksfildServices01/barber-booking-web/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking-web/internal/listing"
	"github.com/BruksfildServices01/barber-booking-web/internal/session"
)

// Estado de tela por sessão: workflow de agendamento e filtros de cada lista.

func loadWorkflow(ctx context.Context, store session.Store, sid string) (*booking.Workflow, error) {
	w := booking.New()
	if err := store.Load(ctx, session.BookingKey(sid), w); err != nil {
		if errors.Is(err, session.ErrStateNotFound) {
			return booking.New(), nil
		}
		return nil, err
	}
	return w, nil
}

func saveWorkflow(ctx context.Context, store session.Store, sid string, w *booking.Workflow) error {
	return store.Save(ctx, session.BookingKey(sid), w)
}

func loadFilters(ctx context.Context, store session.Store, sid string, view appointment.View) (listing.FilterState, error) {
	fs := listing.NewFilterState()
	if err := store.Load(ctx, session.FiltersKey(sid, string(view)), &fs); err != nil {
		if errors.Is(err, session.ErrStateNotFound) {
			return listing.NewFilterState(), nil
		}
		return fs, err
	}
	return fs, nil
}

func saveFilters(ctx context.Context, store session.Store, sid string, view appointment.View, fs listing.FilterState) error {
	return store.Save(ctx, session.FiltersKey(sid, string(view)), fs)
}

// clearState apaga todo o estado da sessão (logout).
func clearState(ctx context.Context, store session.Store, sid string) error {
	return store.Delete(ctx,
		session.BookingKey(sid),
		session.FiltersKey(sid, string(appointment.ViewBarber)),
		session.FiltersKey(sid, string(appointment.ViewCustomer)),
	)
}
