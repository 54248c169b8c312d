package audit

import (
	"go.uber.org/zap"

	"github.com/haircut-workshop-team/Haircut-Workshop/internal/logger"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Dispatcher decouples audit writes from request handling: events go into
// a buffered channel drained by a single worker. A full queue drops the
// event rather than stalling the request.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(auditLogger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: auditLogger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			logger.Get().Error("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		logger.Get().Warn("audit queue full, dropping event",
			zap.String("action", ev.Action))
	}
}
