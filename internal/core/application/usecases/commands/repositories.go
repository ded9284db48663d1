// Package commands contains business operations that modify order state.
// Each command validates its input at construction; each handler loads the
// order from the repository, applies one aggregate operation, records the
// resulting audit event and updates the repository.
package commands

import (
	"log/slog"
	"time"

	"pancakelab/internal/core/domain/model/orderlog"
	"pancakelab/internal/core/ports"
)

// eventRecorder appends audit events after the aggregate has been mutated.
// The mutation has already happened by the time record runs, so a failed
// append is logged and dropped instead of failing the command.
type eventRecorder struct {
	events ports.EventLog
	logger *slog.Logger
	now    func() time.Time
}

func newEventRecorder(events ports.EventLog, logger *slog.Logger) eventRecorder {
	if logger == nil {
		logger = slog.Default()
	}

	return eventRecorder{
		events: events,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// record accepts the result of an orderlog event constructor directly.
func (r eventRecorder) record(event orderlog.Event, err error) {
	if err == nil {
		err = r.events.Append(event)
	}
	if err != nil {
		r.logger.Warn("failed to record order event",
			"kind", event.Kind().String(),
			"orderId", event.OrderID().String(),
			"error", err,
		)
	}
}
