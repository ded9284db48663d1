package commands

import (
	"context"
	"log/slog"

	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/core/domain/model/orderlog"
	"pancakelab/internal/core/ports"
)

// DeliverOrderResult is the delivered order together with the pancake
// descriptions captured just before delivery.
type DeliverOrderResult struct {
	Order    *order.Order
	Pancakes []string
}

// DeliverOrderCommandHandler delivers a Prepared order, records the delivery
// and drops the order from the repository.
type DeliverOrderCommandHandler struct {
	orderRepo ports.OrderRepository
	recorder  eventRecorder
}

func NewDeliverOrderCommandHandler(
	orderRepo ports.OrderRepository,
	events ports.EventLog,
	logger *slog.Logger,
) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		orderRepo: orderRepo,
		recorder:  newEventRecorder(events, logger),
	}
}

func (h *DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) (DeliverOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return DeliverOrderResult{}, err
	}

	o, err := h.orderRepo.Find(ctx, cmd.OrderID())
	if err != nil {
		return DeliverOrderResult{}, err
	}

	pancakes := o.PancakeDescriptions()

	if err = o.Deliver(); err != nil {
		return DeliverOrderResult{}, err
	}

	h.recorder.record(orderlog.NewOrderDeliveredEvent(o.ID(), h.recorder.now(), len(pancakes), o.Address()))

	if err = h.orderRepo.Delete(ctx, o.ID()); err != nil {
		return DeliverOrderResult{}, err
	}

	return DeliverOrderResult{Order: o, Pancakes: pancakes}, nil
}
