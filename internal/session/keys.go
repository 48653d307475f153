package session

import (
	"context"
	"errors"
	"time"
)

// StateTTL é a vida do estado de workflow/filtros guardado por sessão.
const StateTTL = 24 * time.Hour

var ErrStateNotFound = errors.New("session state not found")

// Store guarda o estado de tela por sessão (workflow de agendamento, filtros).
type Store interface {
	Load(ctx context.Context, key string, dst any) error
	Save(ctx context.Context, key string, v any) error
	Delete(ctx context.Context, keys ...string) error
}

func BookingKey(sid string) string {
	return "booking:" + sid
}

func FiltersKey(sid, view string) string {
	return "filters:" + sid + ":" + view
}
