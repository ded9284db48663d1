package queries

import (
	"errors"
	"time"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/orderlog"
	"pancakelab/internal/pkg/guard"
)

var ErrGetEventsQueryIsNotConstructed = errors.New(
	"GetEventsQuery must be created via one of the NewGetEvents constructors",
)

// GetEventsQuery reads the audit log: everything, the events of one order, or
// the events of one kind. Events of cancelled and delivered orders stay readable.
type GetEventsQuery struct {
	orderID *kernel.UUID
	kind    orderlog.Kind
	guard   guard.ConstructorGuard
}

// NewGetAllEventsQuery selects the whole log.
func NewGetAllEventsQuery() GetEventsQuery {
	return GetEventsQuery{guard: guard.NewConstructorGuard()}
}

// NewGetOrderEventsQuery selects the events of one order.
func NewGetOrderEventsQuery(orderID kernel.UUID) (GetEventsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetEventsQuery{}, err
	}

	return GetEventsQuery{orderID: &orderID, guard: guard.NewConstructorGuard()}, nil
}

// NewGetEventsByKindQuery selects the events of one kind.
func NewGetEventsByKindQuery(kind orderlog.Kind) (GetEventsQuery, error) {
	if err := kind.Validate(); err != nil {
		return GetEventsQuery{}, err
	}

	return GetEventsQuery{kind: kind, guard: guard.NewConstructorGuard()}, nil
}

func (q GetEventsQuery) Validate() error {
	return q.guard.Validate(ErrGetEventsQueryIsNotConstructed)
}

// GetEventsQueryResponse is one audit entry.
type GetEventsQueryResponse struct {
	OrderID    kernel.UUID
	OccurredAt time.Time
	Kind       string
	Details    string
}
