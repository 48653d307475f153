package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BruksfildServices01/barber-booking-web/internal/httperr"
	"github.com/BruksfildServices01/barber-booking-web/internal/logging"
	"github.com/BruksfildServices01/barber-booking-web/internal/models"
	"github.com/BruksfildServices01/barber-booking-web/internal/payments"
	"github.com/BruksfildServices01/barber-booking-web/internal/timezone"
)

const (
	titleBarbersFailed  = "Erro ao carregar os barbeiros"
	titleServicesFailed = "Erro ao carregar os serviços do barbeiro"
	titleWorkDaysFailed = "Erro ao carregar os dias de trabalho"
	titleSlotsFailed    = "Erro ao carregar os horários disponíveis"
	titleSubmitFailed   = "Erro ao criar o agendamento"
	titleConfirmed      = "Agendamento Confirmado!"
)

// API é o que o fluxo de agendamento precisa da API remota.
type API interface {
	ListBarberServices(ctx context.Context, token string, barberID uint) ([]models.Service, error)
	ListBarberWorkDays(ctx context.Context, token string, barberID uint) ([]models.WorkDay, error)
	ListAvailableSlots(ctx context.Context, token string, workDayID uint) ([]models.TimeSlot, error)
	CreateAppointment(ctx context.Context, token string, in models.CreateAppointmentRequest) (*models.CreatedAppointment, error)
}

// Charger gera a cobrança PIX opcional do recibo.
type Charger interface {
	Charge(ctx context.Context, req payments.ChargeRequest) (*payments.Charge, error)
}

// Booker aplica as transições do Workflow. Falhas da API viram Notice no próprio
// workflow; o erro retornado fica para transição inválida e falta de token.
type Booker struct {
	api     API
	charger Charger
	logger  *logging.Logger
	now     func() time.Time
}

func NewBooker(api API, charger Charger, logger *logging.Logger) *Booker {
	if logger == nil {
		logger = logging.Default()
	}
	return &Booker{api: api, charger: charger, logger: logger, now: timezone.Now}
}

// =======================================================
// SELEÇÃO
// =======================================================

// SelectBarber recomeça o fluxo com outro barbeiro.
func (b *Booker) SelectBarber(ctx context.Context, token string, w *Workflow, barber models.Barber) error {
	if w.Stage == StageSubmitting {
		return ErrInvalidTransition
	}

	services, err := b.api.ListBarberServices(ctx, token, barber.ID)
	w.Reset()
	if err != nil {
		return b.apiFailure(w, titleServicesFailed, err)
	}

	w.Barber = &barber
	w.Services = orEmpty(services)
	w.Stage = StageBarberSelected
	return nil
}

// BarberLookupFailed trata a falha ao buscar o barbeiro escolhido: a escolha
// anterior é descartada do mesmo jeito e o fluxo volta para Browsing com aviso.
func (b *Booker) BarberLookupFailed(w *Workflow, err error) error {
	if w.Stage == StageSubmitting {
		return ErrInvalidTransition
	}
	w.Reset()
	return b.apiFailure(w, titleBarbersFailed, err)
}

// SelectService não escolhe dia automaticamente.
func (b *Booker) SelectService(ctx context.Context, token string, w *Workflow, serviceID uint) error {
	w.Notice = nil
	if !w.atLeast(StageBarberSelected) {
		return ErrInvalidTransition
	}
	svc, ok := w.findService(serviceID)
	if !ok {
		return ErrUnknownSelection
	}

	days, err := b.api.ListBarberWorkDays(ctx, token, w.Barber.ID)
	if err != nil {
		return b.apiFailure(w, titleWorkDaysFailed, err)
	}

	w.clearFrom(StageServiceSelected)
	w.Service = &svc
	w.WorkDays = orEmpty(days)
	w.Stage = StageServiceSelected
	return nil
}

func (b *Booker) SelectDay(ctx context.Context, token string, w *Workflow, workDayID uint) error {
	w.Notice = nil
	if !w.atLeast(StageServiceSelected) {
		return ErrInvalidTransition
	}
	day, ok := w.findDay(workDayID)
	if !ok {
		return ErrUnknownSelection
	}

	slots, err := b.api.ListAvailableSlots(ctx, token, day.ID)
	if err != nil {
		return b.apiFailure(w, titleSlotsFailed, err)
	}

	w.clearFrom(StageDaySelected)
	w.Day = &day
	w.Slots = orEmpty(slots)
	w.Stage = StageDaySelected
	return nil
}

func (b *Booker) SelectSlot(w *Workflow, slotID uint) error {
	w.Notice = nil
	if !w.atLeast(StageDaySelected) {
		return ErrInvalidTransition
	}
	slot, ok := w.findSlot(slotID)
	if !ok {
		return ErrUnknownSelection
	}

	w.Slot = &slot
	w.Stage = StageSlotSelected
	return nil
}

// =======================================================
// CONFIRMAÇÃO
// =======================================================

// Submit envia a tupla (serviço, horário, barbeiro, cliente). Em caso de erro
// a seleção fica intacta em SlotSelected; não há nova tentativa automática.
func (b *Booker) Submit(ctx context.Context, token string, w *Workflow, client models.User) error {
	w.Notice = nil
	if w.Stage != StageSlotSelected {
		return ErrInvalidTransition
	}

	w.Stage = StageSubmitting
	created, err := b.api.CreateAppointment(ctx, token, models.CreateAppointmentRequest{
		ServiceID:  w.Service.ID,
		TimeSlotID: w.Slot.ID,
		BarberID:   w.Barber.ID,
		ClientID:   client.ID,
	})
	if err != nil {
		w.Stage = StageSlotSelected
		return b.apiFailure(w, titleSubmitFailed, err)
	}

	receipt := newReceipt(w, created, b.now())
	if b.charger != nil && !receipt.Free() && receipt.Price > 0 {
		charge, err := b.charger.Charge(ctx, payments.ChargeRequest{
			Amount:      receipt.Price,
			Description: fmt.Sprintf("%s - %s", receipt.Service, receipt.Barber),
			PayerEmail:  client.Email,
			Reference:   fmt.Sprintf("appointment-%d", created.ID),
		})
		if err != nil {
			b.logger.Warn("pix charge failed", "appointment_id", created.ID, "error", err)
		} else {
			receipt.Pix = charge
		}
	}

	w.Reset()
	w.Stage = StageConfirmed
	w.Receipt = receipt
	n := models.SuccessNotice(titleConfirmed)
	w.Notice = &n
	return nil
}

func (b *Booker) apiFailure(w *Workflow, title string, err error) error {
	if errors.Is(err, httperr.ErrMissingToken) {
		return err
	}
	b.logger.Warn("booking step failed", "stage", string(w.Stage), "title", title, "error", err)
	w.fail(title, err)
	return nil
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
