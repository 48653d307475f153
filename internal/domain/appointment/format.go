package appointment

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/BruksfildServices01/barber-booking-web/internal/models"
)

const (
	FreeLabel           = "Gratuito (Recompensa)"
	TimeUnavailableText = "Horário não disponível"
)

// FormatCurrency formata em BRL no padrão pt-BR: "R$ 1.234,50".
func FormatCurrency(m models.Money) string {
	cents := m.Cents()
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	p := message.NewPrinter(language.BrazilianPortuguese)
	return fmt.Sprintf("%sR$ %s,%02d", sign, p.Sprintf("%d", cents/100), cents%100)
}

// PriceLabel mostra o texto de recompensa para agendamentos gratuitos.
func PriceLabel(price models.Money, isFree bool) string {
	if isFree && price.IsZero() {
		return FreeLabel
	}
	return FormatCurrency(price)
}

// FormatTime reduz "14:30:00" para "14:30".
func FormatTime(t string) string {
	if t == "" {
		return TimeUnavailableText
	}
	parts := strings.Split(t, ":")
	if len(parts) < 2 {
		return t
	}
	return pad2(parts[0]) + ":" + pad2(parts[1])
}

func pad2(s string) string {
	if len(s) >= 2 {
		return s
	}
	return strings.Repeat("0", 2-len(s)) + s
}
