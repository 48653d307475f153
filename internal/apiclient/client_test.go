package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking-web/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking-web/internal/logging"
	"github.com/BruksfildServices01/barber-booking-web/internal/metrics"
	"github.com/BruksfildServices01/barber-booking-web/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return New(ts.URL+"/", logging.Discard(), WithMetrics(metrics.NewAPIMetrics(prometheus.NewRegistry())))
}

func TestClient_MissingTokenFailsBeforeIO(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	})

	_, err := client.ListBarbers(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrMissingToken)

	err = client.MutateAppointmentStatus(context.Background(), "  ", 1, appointment.ActionCancel)
	assert.ErrorIs(t, err, ErrMissingToken)

	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestClient_ListBarbers_NameParam(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/barbers/", r.URL.Path)
		assert.Equal(t, "Token abc", r.Header.Get("Authorization"))
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`[{"id":7,"username":"Ana","average_rating":4.5,"total_ratings":2}]`))
	})

	barbers, err := client.ListBarbers(context.Background(), "abc", "  ")
	require.NoError(t, err)
	require.Len(t, barbers, 1)
	assert.Equal(t, uint(7), barbers[0].ID)
	_, has := gotQuery["name"]
	assert.False(t, has)

	_, err = client.ListBarbers(context.Background(), "abc", "Ana Paula")
	require.NoError(t, err)
	assert.Equal(t, "Ana Paula", gotQuery.Get("name"))
}

func TestClient_ListAvailableSlots_FiltersAndNormalizes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/schedule/available-time-slot/3/", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id":1,"time":"09:00:00","is_available":true},
			{"id":2,"start_time":"09:30:00","is_available":false},
			{"id":3,"start_time":"10:00:00","is_available":true},
			{"id":4,"end_time":"11:00:00","is_available":true}
		]`))
	})

	slots, err := client.ListAvailableSlots(context.Background(), "abc", 3)
	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.Equal(t, "09:00:00", slots[0].Time)
	assert.Equal(t, "10:00:00", slots[1].Time)
	assert.Equal(t, "11:00:00", slots[2].Time)

	all, err := client.ListSlots(context.Background(), "abc", 3)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "09:30:00", all[1].Time)
	assert.False(t, all[1].IsAvailable)
}

func TestClient_CreateAppointment_SendsTuple(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/appointments/create/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]uint
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]uint{
			"service_id": 2, "time_slot_id": 9, "barber_id": 7, "client_id": 11,
		}, body)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":55,"price":"0.00","is_free":true,"status":"pending"}`))
	})

	out, err := client.CreateAppointment(context.Background(), "abc", models.CreateAppointmentRequest{
		ServiceID: 2, TimeSlotID: 9, BarberID: 7, ClientID: 11,
	})
	require.NoError(t, err)
	assert.True(t, out.IsFree)
	assert.True(t, out.Price.IsZero())
}

func TestClient_ErrorMessageExtraction(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"detail", `{"detail":"Horário indisponível","non_field_errors":["x"]}`, "Horário indisponível"},
		{"non_field_errors", `{"non_field_errors":["Horário já reservado","Tente outro"]}`, "Horário já reservado, Tente outro"},
		{"error", `{"error":"Sem permissão"}`, "Sem permissão"},
		{"fields", `{"day_of_week":["Dia já cadastrado."],"end_time":["Inválido."]}`, "Dia já cadastrado., Inválido."},
		{"fallback on empty object", `{}`, "Erro ao criar o agendamento"},
		{"fallback on non-json", `<html>boom</html>`, "Erro ao criar o agendamento"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = io.WriteString(w, tc.body)
			})

			_, err := client.CreateAppointment(context.Background(), "abc", models.CreateAppointmentRequest{})
			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus())
			assert.Equal(t, tc.want, apiErr.Error())
		})
	}
}

func TestClient_FieldErrorsKept(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"day_of_week":["Dia já cadastrado."]}`))
	})

	_, err := client.CreateWorkDay(context.Background(), "abc", models.WorkDayInput{DayOfWeek: models.Monday})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, []string{"Dia já cadastrado."}, apiErr.FieldErrors()["day_of_week"])
}

func TestClient_MutateAppointmentStatus_Path(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"status":"confirmed"}`))
	})

	require.NoError(t, client.MutateAppointmentStatus(context.Background(), "abc", 12, appointment.ActionConfirm))
	assert.Equal(t, "/appointments/confirm/12/", gotPath)

	err := client.MutateAppointmentStatus(context.Background(), "abc", 12, appointment.Action("delete"))
	assert.Error(t, err)
	assert.Equal(t, "/appointments/confirm/12/", gotPath)
}

func TestClient_ListAppointments_ViewPath(t *testing.T) {
	var gotPath, gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.ListAppointments(context.Background(), "abc", appointment.ViewBarber, url.Values{"status": {"pending"}})
	require.NoError(t, err)
	assert.Equal(t, "/appointments/barber/appointments/", gotPath)
	assert.Equal(t, "status=pending", gotQuery)

	_, err = client.ListAppointments(context.Background(), "abc", appointment.ViewCustomer, nil)
	require.NoError(t, err)
	assert.Equal(t, "/appointments/client/appointments/", gotPath)
	assert.Empty(t, gotQuery)
}

func TestClient_DeleteWithEmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, client.DeleteSlots(context.Background(), "abc", 4))
	assert.NoError(t, client.DeleteSlot(context.Background(), "abc", 5))
	assert.NoError(t, client.DeleteService(context.Background(), "abc", 6))
}

func TestClient_CreateService_Multipart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Corte", r.FormValue("name"))
		assert.Equal(t, "35.00", r.FormValue("price"))

		f, hdr, err := r.FormFile("service_img")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "corte.webp", hdr.Filename)
		data, _ := io.ReadAll(f)
		assert.Equal(t, []byte("img"), data)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1,"name":"Corte","price":"35.00"}`))
	})

	svc, err := client.CreateService(context.Background(), "abc", models.ServiceInput{
		Name:        "Corte",
		Description: "Tesoura e máquina",
		Price:       3500,
		Image: &models.Upload{
			Field: "service_img", Filename: "corte.webp", ContentType: "image/webp", Data: []byte("img"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, models.Money(3500), svc.Price)
}

func TestClient_TransportErrorWrapped(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	client := New(ts.URL, logging.Discard())
	_, err := client.GetProfile(context.Background(), "abc")
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Contains(t, err.Error(), "get_profile")
}
