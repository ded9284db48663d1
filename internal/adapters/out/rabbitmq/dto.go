package rabbitmq

import (
	"time"

	"pancakelab/internal/core/domain/model/orderlog"
)

// EventDTO is the JSON body of a published audit event.
type EventDTO struct {
	OrderID    string    `json:"orderId"`
	OccurredAt time.Time `json:"occurredAt"`
	Kind       string    `json:"kind"`
	Details    string    `json:"details"`
}

func fromDomain(e orderlog.Event) EventDTO {
	return EventDTO{
		OrderID:    e.OrderID().String(),
		OccurredAt: e.OccurredAt(),
		Kind:       e.Kind().String(),
		Details:    e.Details(),
	}
}

// RoutingKey is "order.<kind>", e.g. "order.item-added".
func RoutingKey(kind orderlog.Kind) string {
	return "order." + kind.String()
}
