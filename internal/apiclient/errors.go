package apiclient

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/BruksfildServices01/barber-booking-web/internal/httperr"
)

// ErrMissingToken: chamada autenticada sem token, falha antes de qualquer I/O.
var ErrMissingToken = httperr.ErrMissingToken

// APIError é uma resposta não-2xx da API. Message vai para o usuário como veio.
type APIError struct {
	Status  int
	Message string
	Fields  map[string][]string
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) HTTPStatus() int { return e.Status }

func (e *APIError) FieldErrors() map[string][]string { return e.Fields }

// chaves que não são erro de campo
var messageKeys = map[string]bool{
	"detail":           true,
	"non_field_errors": true,
	"error":            true,
}

func newAPIError(status int, body []byte, fallback string) *APIError {
	msg, fields := extractMessage(body, fallback)
	return &APIError{Status: status, Message: msg, Fields: fields}
}

// extractMessage segue a ordem: detail, non_field_errors, error, erros por campo, fallback.
func extractMessage(body []byte, fallback string) (string, map[string][]string) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || len(raw) == 0 {
		return fallback, nil
	}

	var fields map[string][]string
	keys := make([]string, 0, len(raw))
	for k := range raw {
		if !messageKeys[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var flat []string
	for _, k := range keys {
		vals := stringsOf(raw[k])
		if len(vals) == 0 {
			continue
		}
		if fields == nil {
			fields = make(map[string][]string)
		}
		fields[k] = vals
		flat = append(flat, vals...)
	}

	for _, k := range []string{"detail", "non_field_errors", "error"} {
		if vals := stringsOf(raw[k]); len(vals) > 0 {
			return strings.Join(vals, ", "), fields
		}
	}
	if len(flat) > 0 {
		return strings.Join(flat, ", "), fields
	}
	return fallback, fields
}

func stringsOf(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s = strings.TrimSpace(s); s != "" {
			return []string{s}
		}
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		out := list[:0]
		for _, v := range list {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
		return out
	}
	return nil
}
