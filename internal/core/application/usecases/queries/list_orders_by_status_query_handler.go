package queries

import (
	"context"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/ports"
)

// ListOrdersByStatusQueryHandler scans the active orders and keeps those in the
// requested status. The result has no particular order.
type ListOrdersByStatusQueryHandler struct {
	orderRepo ports.OrderRepository
}

func NewListOrdersByStatusQueryHandler(orderRepo ports.OrderRepository) ListOrdersByStatusQueryHandler {
	return ListOrdersByStatusQueryHandler{orderRepo: orderRepo}
}

func (h ListOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersByStatusQuery,
) ([]kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0)
	for _, o := range orders {
		if o.Status() == query.Status() {
			ids = append(ids, o.ID())
		}
	}
	return ids, nil
}
