package commands

import (
	"context"

	"pancakelab/internal/core/ports"
)

// CompleteOrderCommandHandler moves an order from New to Completed. The order
// must hold at least one pancake. No audit event is recorded.
type CompleteOrderCommandHandler struct {
	orderRepo ports.OrderRepository
}

func NewCompleteOrderCommandHandler(orderRepo ports.OrderRepository) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		orderRepo: orderRepo,
	}
}

func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.orderRepo.Find(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	return o.Complete()
}
