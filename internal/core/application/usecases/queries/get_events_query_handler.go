package queries

import (
	"context"

	"pancakelab/internal/core/domain/model/orderlog"
	"pancakelab/internal/core/ports"
)

// GetEventsQueryHandler returns audit entries in log order.
type GetEventsQueryHandler struct {
	events ports.EventLog
}

func NewGetEventsQueryHandler(events ports.EventLog) GetEventsQueryHandler {
	return GetEventsQueryHandler{events: events}
}

func (h GetEventsQueryHandler) Handle(_ context.Context, query GetEventsQuery) ([]GetEventsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var events []orderlog.Event
	switch {
	case query.orderID != nil:
		events = h.events.EventsForOrder(*query.orderID)
	case query.kind != orderlog.UnknownKind:
		events = h.events.EventsByKind(query.kind)
	default:
		events = h.events.All()
	}

	response := make([]GetEventsQueryResponse, 0, len(events))
	for _, e := range events {
		response = append(response, GetEventsQueryResponse{
			OrderID:    e.OrderID(),
			OccurredAt: e.OccurredAt(),
			Kind:       e.Kind().String(),
			Details:    e.Details(),
		})
	}
	return response, nil
}
