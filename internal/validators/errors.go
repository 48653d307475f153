package validators

import (
	"sort"
	"strings"
)

// Errors junta as mensagens por campo, no mesmo formato que a API devolve.
type Errors map[string][]string

func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e[k]...)
	}
	return strings.Join(msgs, ", ")
}

func (e Errors) FieldErrors() map[string][]string {
	return e
}

// Err devolve nil quando não há erro (evita interface não-nil com mapa vazio).
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
