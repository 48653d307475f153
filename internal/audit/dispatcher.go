package audit

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/barber-booking-web/internal/logging"
)

type Event struct {
	UserID      uint
	ProfileType string
	Action      string
	Entity      string
	EntityID    *uint
	Metadata    any
	RequestID   string
}

// Sink persiste um evento; *Logger é a implementação real.
type Sink interface {
	Log(ctx context.Context, ev Event) error
}

const writeTimeout = 5 * time.Second

// Dispatcher grava eventos fora do caminho do request. Fila cheia descarta o evento.
type Dispatcher struct {
	sink   Sink
	logger *logging.Logger
	queue  chan Event

	wg        sync.WaitGroup
	closeOnce sync.Once
}

func NewDispatcher(sink Sink, logger *logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.Default()
	}
	d := &Dispatcher{
		sink:   sink,
		logger: logger,
		queue:  make(chan Event, 100),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := d.sink.Log(ctx, ev); err != nil {
			d.logger.Error("audit write failed", "action", ev.Action, "error", err)
		}
		cancel()
	}
}

// Dispatch nunca bloqueia o request. Nil-safe para quando não há banco configurado.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		d.logger.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}

// Close esvazia a fila e espera o worker terminar.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.closeOnce.Do(func() { close(d.queue) })
	d.wg.Wait()
}
