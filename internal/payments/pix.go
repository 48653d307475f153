package payments

import (
	"context"
	"fmt"
	"strings"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"

	"github.com/BruksfildServices01/barber-booking-web/internal/httperr"
	"github.com/BruksfildServices01/barber-booking-web/internal/logging"
	"github.com/BruksfildServices01/barber-booking-web/internal/models"
)

// paymentCreator é o pedaço do client do Mercado Pago que usamos.
type paymentCreator interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
}

type ChargeRequest struct {
	Amount      models.Money
	Description string
	PayerEmail  string
	Reference   string
}

// Charge é o QR code PIX mostrado no recibo.
type Charge struct {
	PaymentID    int    `json:"payment_id"`
	Status       string `json:"status"`
	QRCode       string `json:"qr_code"`
	QRCodeBase64 string `json:"qr_code_base64,omitempty"`
	TicketURL    string `json:"ticket_url,omitempty"`
}

type PixCharger struct {
	client paymentCreator
	logger *logging.Logger
}

func NewPixCharger(accessToken string, logger *logging.Logger) (*PixCharger, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}
	return newPixCharger(payment.NewClient(cfg), logger), nil
}

func newPixCharger(client paymentCreator, logger *logging.Logger) *PixCharger {
	if logger == nil {
		logger = logging.Default()
	}
	return &PixCharger{client: client, logger: logger}
}

func (p *PixCharger) Charge(ctx context.Context, req ChargeRequest) (*Charge, error) {
	if req.Amount <= 0 {
		return nil, httperr.ErrBusiness("invalid_amount")
	}
	email := strings.TrimSpace(req.PayerEmail)
	if email == "" {
		return nil, httperr.ErrBusiness("payer_email_required")
	}

	resp, err := p.client.Create(ctx, payment.Request{
		TransactionAmount: float64(req.Amount.Cents()) / 100,
		Description:       req.Description,
		PaymentMethodID:   "pix",
		ExternalReference: req.Reference,
		Payer: &payment.PayerRequest{
			Email: email,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("mercadopago create pix: %w", err)
	}

	td := resp.PointOfInteraction.TransactionData
	p.logger.Info("pix charge created",
		"payment_id", resp.ID,
		"status", resp.Status,
		"reference", req.Reference,
	)

	return &Charge{
		PaymentID:    resp.ID,
		Status:       resp.Status,
		QRCode:       td.QRCode,
		QRCodeBase64: td.QRCodeBase64,
		TicketURL:    td.TicketURL,
	}, nil
}
