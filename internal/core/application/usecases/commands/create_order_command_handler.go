package commands

import (
	"context"

	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/core/ports"
)

// CreateOrderCommandHandler opens orders in New status and stores them.
type CreateOrderCommandHandler struct {
	orderRepo ports.OrderRepository
}

func NewCreateOrderCommandHandler(orderRepo ports.OrderRepository) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orderRepo: orderRepo,
	}
}

// Handle creates the order and returns it. Only an invalid address can make it fail,
// plus whatever the repository reports.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(cmd.Address())
	if err != nil {
		return nil, err
	}

	if err = h.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}
