package commands

import (
	"context"

	"pancakelab/internal/core/ports"
)

// PrepareOrderCommandHandler moves an order from Completed to Prepared.
// No audit event is recorded.
type PrepareOrderCommandHandler struct {
	orderRepo ports.OrderRepository
}

func NewPrepareOrderCommandHandler(orderRepo ports.OrderRepository) PrepareOrderCommandHandler {
	return PrepareOrderCommandHandler{
		orderRepo: orderRepo,
	}
}

func (h *PrepareOrderCommandHandler) Handle(ctx context.Context, cmd PrepareOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.orderRepo.Find(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	return o.Prepare()
}
