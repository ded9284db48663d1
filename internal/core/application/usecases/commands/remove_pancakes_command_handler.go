package commands

import (
	"context"
	"log/slog"

	"pancakelab/internal/core/domain/model/orderlog"
	"pancakelab/internal/core/ports"
)

// RemovePancakesResult reports what a removal actually did.
type RemovePancakesResult struct {
	Removed   int
	Remaining int
}

// RemovePancakesCommandHandler removes matching pancakes from a New order.
// Removing fewer than requested, or none, is a success and is still recorded.
type RemovePancakesCommandHandler struct {
	orderRepo ports.OrderRepository
	recorder  eventRecorder
}

func NewRemovePancakesCommandHandler(
	orderRepo ports.OrderRepository,
	events ports.EventLog,
	logger *slog.Logger,
) RemovePancakesCommandHandler {
	return RemovePancakesCommandHandler{
		orderRepo: orderRepo,
		recorder:  newEventRecorder(events, logger),
	}
}

func (h *RemovePancakesCommandHandler) Handle(
	ctx context.Context,
	cmd RemovePancakesCommand,
) (RemovePancakesResult, error) {
	if err := cmd.Validate(); err != nil {
		return RemovePancakesResult{}, err
	}

	o, err := h.orderRepo.Find(ctx, cmd.OrderID())
	if err != nil {
		return RemovePancakesResult{}, err
	}

	removed, remaining, err := o.RemoveItems(cmd.Description(), cmd.Count())
	if err != nil {
		return RemovePancakesResult{}, err
	}

	h.recorder.record(orderlog.NewItemRemovedEvent(o.ID(), h.recorder.now(), cmd.Description(), removed, remaining))

	return RemovePancakesResult{Removed: removed, Remaining: remaining}, nil
}
