package audit

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking-web/internal/logging"
)

func newMockLogger(t *testing.T) (*Logger, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return New(db), mock
}

func TestLogger_Log(t *testing.T) {
	l, mock := newMockLogger(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "audit_logs"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	id := uint(55)
	err := l.Log(context.Background(), Event{
		UserID:      11,
		ProfileType: "cliente",
		Action:      ActionAppointmentBook,
		Entity:      "appointment",
		EntityID:    &id,
		Metadata:    map[string]any{"service_id": 2},
		RequestID:   "req-1",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogger_List(t *testing.T) {
	l, mock := newMockLogger(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "audit_logs"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "audit_logs"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "profile_type", "action", "created_at"}).
			AddRow(2, 11, "barbeiro", ActionServiceCreated, now).
			AddRow(1, 11, "barbeiro", ActionLogin, now.Add(-time.Hour)))

	page, err := l.List(context.Background(), 11, Query{Action: "", From: "2026-10-01", Limit: 500})
	require.NoError(t, err)

	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 50, page.Limit)
	require.Len(t, page.Logs, 2)
	assert.Equal(t, ActionServiceCreated, page.Logs[0].Action)
	assert.NoError(t, mock.ExpectationsWereMet())
}

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (s *recordingSink) Log(_ context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return s.err
}

func TestDispatcher_DeliversAndDrainsOnClose(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, logging.Discard())

	d.Dispatch(Event{Action: ActionLogin})
	d.Dispatch(Event{Action: ActionLogout})
	d.Close()

	require.Len(t, sink.events, 2)
	assert.Equal(t, ActionLogin, sink.events[0].Action)
	assert.Equal(t, ActionLogout, sink.events[1].Action)
}

func TestDispatcher_SinkErrorDoesNotStopWorker(t *testing.T) {
	sink := &recordingSink{err: errors.New("db down")}
	d := NewDispatcher(sink, logging.Discard())

	d.Dispatch(Event{Action: ActionLogin})
	d.Dispatch(Event{Action: ActionLogin})
	d.Close()

	assert.Len(t, sink.events, 2)
}

func TestDispatcher_NilSafe(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: ActionLogin})
		d.Close()
	})
}
