package commands

import (
	"context"
	"log/slog"

	"pancakelab/internal/core/domain/model/orderlog"
	"pancakelab/internal/core/ports"
)

// CancelOrderCommandHandler cancels a New order, drops it from the repository
// and records the number of pancakes it held.
type CancelOrderCommandHandler struct {
	orderRepo ports.OrderRepository
	recorder  eventRecorder
}

func NewCancelOrderCommandHandler(
	orderRepo ports.OrderRepository,
	events ports.EventLog,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		orderRepo: orderRepo,
		recorder:  newEventRecorder(events, logger),
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.orderRepo.Find(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Cancel(); err != nil {
		return err
	}

	// items are frozen once the order left New
	itemCount := o.ItemCount()

	if err = h.orderRepo.Delete(ctx, o.ID()); err != nil {
		return err
	}

	h.recorder.record(orderlog.NewOrderCancelledEvent(o.ID(), h.recorder.now(), itemCount))
	return nil
}
