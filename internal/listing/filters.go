package listing

import (
	"net/url"
	"strings"

	"github.com/BruksfildServices01/barber-booking-web/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking-web/internal/httperr"
	"github.com/BruksfildServices01/barber-booking-web/internal/models"
)

// "all" é o sentinela de "sem filtro" para status e dia.
const All = "all"

type Filters struct {
	Status string `json:"status"`
	Name   string `json:"name"`
	Day    string `json:"day"`
}

func DefaultFilters() Filters {
	return Filters{Status: All, Day: All}
}

// normalize trata vazio como "all" e apara o nome.
func (f Filters) normalize() Filters {
	if strings.TrimSpace(f.Status) == "" {
		f.Status = All
	}
	if strings.TrimSpace(f.Day) == "" {
		f.Day = All
	}
	f.Name = strings.TrimSpace(f.Name)
	return f
}

func (f Filters) Validate() error {
	f = f.normalize()
	if f.Status != All && !appointment.Status(f.Status).Valid() {
		return invalidFilter("status")
	}
	if f.Day != All && !models.Weekday(f.Day).Valid() {
		return invalidFilter("day")
	}
	return nil
}

// FilterState separa o que está no formulário (Staged) do que foi aplicado à lista (Applied).
type FilterState struct {
	Staged  Filters `json:"staged"`
	Applied Filters `json:"applied"`
}

func NewFilterState() FilterState {
	return FilterState{Staged: DefaultFilters(), Applied: DefaultFilters()}
}

// Stage muda só o rascunho; a lista não é refeita.
func (s *FilterState) Stage(f Filters) error {
	if err := f.Validate(); err != nil {
		return err
	}
	s.Staged = f.normalize()
	return nil
}

func (s *FilterState) Apply() {
	s.Applied = s.Staged
}

func (s *FilterState) Clear() {
	s.Staged = DefaultFilters()
	s.Applied = DefaultFilters()
}

// Query monta os parâmetros a partir dos filtros aplicados; "all" e nome em branco são omitidos.
func (s FilterState) Query(view appointment.View) url.Values {
	f := s.Applied.normalize()
	q := url.Values{}
	if f.Status != All {
		q.Set("status", f.Status)
	}
	if f.Name != "" {
		q.Set(view.NameParam(), f.Name)
	}
	if f.Day != All {
		q.Set("day", f.Day)
	}
	return q
}

func invalidFilter(field string) error {
	return httperr.ErrBusinessMsg("invalid_filter", "Filtro inválido: "+field)
}
