package payments

import (
	"context"
	"errors"
	"testing"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking-web/internal/httperr"
	"github.com/BruksfildServices01/barber-booking-web/internal/logging"
)

type fakeCreator struct {
	got  payment.Request
	resp *payment.Response
	err  error
}

func (f *fakeCreator) Create(_ context.Context, req payment.Request) (*payment.Response, error) {
	f.got = req
	return f.resp, f.err
}

func TestPixCharger_Charge(t *testing.T) {
	resp := &payment.Response{ID: 123, Status: "pending"}
	resp.PointOfInteraction.TransactionData.QRCode = "000201..."
	resp.PointOfInteraction.TransactionData.TicketURL = "https://mp/ticket"

	fake := &fakeCreator{resp: resp}
	charger := newPixCharger(fake, logging.Discard())

	charge, err := charger.Charge(context.Background(), ChargeRequest{
		Amount:      3550,
		Description: "Corte - Ana",
		PayerEmail:  " cliente@x.com ",
		Reference:   "appointment-9",
	})
	require.NoError(t, err)

	assert.Equal(t, 35.5, fake.got.TransactionAmount)
	assert.Equal(t, "pix", fake.got.PaymentMethodID)
	assert.Equal(t, "cliente@x.com", fake.got.Payer.Email)
	assert.Equal(t, "appointment-9", fake.got.ExternalReference)

	assert.Equal(t, 123, charge.PaymentID)
	assert.Equal(t, "000201...", charge.QRCode)
	assert.Equal(t, "https://mp/ticket", charge.TicketURL)
}

func TestPixCharger_Validation(t *testing.T) {
	fake := &fakeCreator{}
	charger := newPixCharger(fake, logging.Discard())

	_, err := charger.Charge(context.Background(), ChargeRequest{Amount: 0, PayerEmail: "a@b.c"})
	assert.True(t, httperr.IsBusiness(err, "invalid_amount"))

	_, err = charger.Charge(context.Background(), ChargeRequest{Amount: 100})
	assert.True(t, httperr.IsBusiness(err, "payer_email_required"))
}

func TestPixCharger_UpstreamError(t *testing.T) {
	fake := &fakeCreator{err: errors.New("401 unauthorized")}
	charger := newPixCharger(fake, logging.Discard())

	_, err := charger.Charge(context.Background(), ChargeRequest{Amount: 100, PayerEmail: "a@b.c"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mercadopago create pix")
}
