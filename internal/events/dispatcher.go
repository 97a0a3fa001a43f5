package events

import "go.uber.org/zap"

// Sink recebe eventos já persistidos; entrega é fire-and-forget
type Sink interface {
	Deliver(ev Event) error
}

type Dispatcher struct {
	sinks  []Sink
	queue  chan Event
	logger *zap.Logger
}

func NewDispatcher(logger *zap.Logger, sinks ...Sink) *Dispatcher {
	d := &Dispatcher{
		sinks:  sinks,
		queue:  make(chan Event, 100), // buffer seguro
		logger: logger,
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		for _, sink := range d.sinks {
			if err := sink.Deliver(ev); err != nil {
				d.logger.Warn("event sink error",
					zap.String("event_id", ev.ID),
					zap.String("kind", string(ev.Kind)),
					zap.Error(err),
				)
			}
		}
	}
}

// Dispatch enfileira o evento depois que a mutação que o gerou já foi
// persistida. Fila cheia → descartamos; notificação nunca quebra a API.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.logger.Warn("event queue full, dropping event",
			zap.String("kind", string(ev.Kind)),
		)
	}
}

func (d *Dispatcher) Close() {
	close(d.queue)
}
