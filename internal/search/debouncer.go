package search

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/BruksfildServices01/barber-booking-web/internal/models"
)

const DefaultDelay = 500 * time.Millisecond

// ErrSuperseded: uma busca mais nova da mesma sessão tomou o lugar desta.
var ErrSuperseded = errors.New("search superseded by a newer query")

type Lookup func(ctx context.Context, query string) ([]models.Barber, error)

type call struct {
	id     uint64
	cancel context.CancelFunc
}

// Debouncer atrasa a busca de barbeiros por chave (sessão). Só a chamada
// mais recente de cada chave entrega resultado; as anteriores são canceladas.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	seq     uint64
	pending map[string]*call
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay < 0 {
		delay = 0
	}
	return &Debouncer{
		delay:   delay,
		pending: make(map[string]*call),
	}
}

// Search espera o atraso e chama lookup. Busca em branco vai direto, sem atraso.
func (d *Debouncer) Search(ctx context.Context, key, query string, lookup Lookup) ([]models.Barber, error) {
	query = strings.TrimSpace(query)
	ctx, c := d.begin(ctx, key)
	defer d.end(key, c)

	if query != "" && d.delay > 0 {
		timer := time.NewTimer(d.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, d.reason(ctx, key, c)
		case <-timer.C:
		}
	}

	barbers, err := lookup(ctx, query)
	if !d.current(key, c) {
		return nil, ErrSuperseded
	}
	return barbers, err
}

func (d *Debouncer) begin(parent context.Context, key string) (context.Context, *call) {
	ctx, cancel := context.WithCancel(parent)

	d.mu.Lock()
	defer d.mu.Unlock()

	if prev, ok := d.pending[key]; ok {
		prev.cancel()
	}
	d.seq++
	c := &call{id: d.seq, cancel: cancel}
	d.pending[key] = c
	return ctx, c
}

func (d *Debouncer) end(key string, c *call) {
	d.mu.Lock()
	if cur, ok := d.pending[key]; ok && cur.id == c.id {
		delete(d.pending, key)
	}
	d.mu.Unlock()
	c.cancel()
}

func (d *Debouncer) current(key string, c *call) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	cur, ok := d.pending[key]
	return ok && cur.id == c.id
}

func (d *Debouncer) reason(ctx context.Context, key string, c *call) error {
	if !d.current(key, c) {
		return ErrSuperseded
	}
	return ctx.Err()
}
