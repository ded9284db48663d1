package commands

import (
	"context"
	"log/slog"

	"pancakelab/internal/core/domain/model/orderlog"
	"pancakelab/internal/core/ports"
)

// AddPancakesCommandHandler adds custom pancakes to a New order.
//
// Every pancake is built fresh and added on its own. If the order leaves New
// status midway, the pancakes already added stay and the error is returned.
// One item-added event is recorded per pancake.
type AddPancakesCommandHandler struct {
	orderRepo ports.OrderRepository
	recorder  eventRecorder
}

func NewAddPancakesCommandHandler(
	orderRepo ports.OrderRepository,
	events ports.EventLog,
	logger *slog.Logger,
) AddPancakesCommandHandler {
	return AddPancakesCommandHandler{
		orderRepo: orderRepo,
		recorder:  newEventRecorder(events, logger),
	}
}

func (h *AddPancakesCommandHandler) Handle(ctx context.Context, cmd AddPancakesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.orderRepo.Find(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	for range cmd.Count() {
		item, buildErr := cmd.BuildPancake()
		if buildErr != nil {
			return buildErr
		}

		if err = o.AddItem(item); err != nil {
			return err
		}

		h.recorder.record(orderlog.NewItemAddedEvent(o.ID(), h.recorder.now(), item.Description()))
	}

	return nil
}
