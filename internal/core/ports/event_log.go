package ports

import (
	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/orderlog"
)

// EventLog is the append-only audit trail. *orderlog.Log implements it.
type EventLog interface {
	Append(e orderlog.Event) error
	EventsForOrder(orderID kernel.UUID) []orderlog.Event
	EventsByKind(kind orderlog.Kind) []orderlog.Event
	All() []orderlog.Event

	// Since returns events from position offset onward, in append order.
	Since(offset int) []orderlog.Event
}

var _ EventLog = (*orderlog.Log)(nil)
