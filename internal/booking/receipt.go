package booking

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode"

	domain "github.com/BruksfildServices01/barber-booking-web/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking-web/internal/models"
	"github.com/BruksfildServices01/barber-booking-web/internal/payments"
)

// Receipt é o resumo mostrado em "Agendamento Confirmado!".
type Receipt struct {
	AppointmentID uint   `json:"appointment_id"`
	Barber        string `json:"barber"`
	Service       string `json:"service"`
	Date          string `json:"date"`
	Time          string `json:"time"`

	Price      models.Money `json:"price"`
	PriceLabel string       `json:"price_label"`
	IsFree     bool         `json:"is_free"`

	Whatsapp     string `json:"whatsapp"`
	PixKey       string `json:"pix_key"`
	WhatsAppLink string `json:"whatsapp_link,omitempty"`

	Pix      *payments.Charge `json:"pix,omitempty"`
	IssuedAt time.Time        `json:"issued_at"`
}

// Free: recompensa só quando a API marca is_free e o preço veio zerado.
func (r Receipt) Free() bool {
	return r.IsFree && r.Price.IsZero()
}

func newReceipt(w *Workflow, created *models.CreatedAppointment, issuedAt time.Time) *Receipt {
	r := &Receipt{
		AppointmentID: created.ID,
		Barber:        w.Barber.Username,
		Service:       w.Service.Name,
		Date:          w.Day.Label(),
		Time:          domain.FormatTime(w.Slot.Time),
		Price:         created.Price,
		IsFree:        created.IsFree,
		Whatsapp:      w.Barber.Whatsapp,
		PixKey:        w.Barber.PixKey,
		IssuedAt:      issuedAt,
	}
	r.PriceLabel = domain.PriceLabel(r.Price, r.IsFree)
	r.WhatsAppLink = WhatsAppLink(*r)
	return r
}

// WhatsAppMessage é o texto de confirmação enviado ao barbeiro.
func WhatsAppMessage(r Receipt) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Olá %s! Gostaria de confirmar meu agendamento:\n\n", r.Barber)
	fmt.Fprintf(&b, "Serviço: %s\n", r.Service)
	fmt.Fprintf(&b, "Data: %s\n", r.Date)
	fmt.Fprintf(&b, "Horário: %s\n", r.Time)
	fmt.Fprintf(&b, "Valor: %s\n\n", r.PriceLabel)
	if !r.Free() {
		fmt.Fprintf(&b, "Chave PIX para pagamento: %s", r.PixKey)
	}
	return b.String()
}

// WhatsAppLink monta o wa.me; sem número do barbeiro não há link.
func WhatsAppLink(r Receipt) string {
	phone := strings.Map(func(c rune) rune {
		if unicode.IsDigit(c) {
			return c
		}
		return -1
	}, r.Whatsapp)
	if phone == "" {
		return ""
	}
	return "https://wa.me/" + phone + "?" + url.Values{"text": {WhatsAppMessage(r)}}.Encode()
}
