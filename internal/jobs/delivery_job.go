package jobs

import (
	"context"
	"log/slog"

	"pancakelab/internal/core/application/usecases/commands"
	"pancakelab/internal/core/application/usecases/queries"
)

// DeliveryJob delivers the orders the kitchen has prepared.
type DeliveryJob struct {
	scheduler
	listHandler    queries.ListOrdersByStatusQueryHandler
	deliverHandler commands.DeliverOrderCommandHandler
}

func NewDeliveryJob(
	listHandler queries.ListOrdersByStatusQueryHandler,
	deliverHandler commands.DeliverOrderCommandHandler,
	schedule string,
	logger *slog.Logger,
) *DeliveryJob {
	return &DeliveryJob{
		scheduler:      newScheduler("delivery_job", schedule, logger),
		listHandler:    listHandler,
		deliverHandler: deliverHandler,
	}
}

func (j *DeliveryJob) Start() error {
	return j.start(func(ctx context.Context) {
		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Delivery job failed", "error", err)
		}
	})
}

// RunOnce delivers every order currently Prepared and returns how many it delivered.
func (j *DeliveryJob) RunOnce(ctx context.Context) (int, error) {
	ids, err := j.listHandler.Handle(ctx, queries.NewListPreparedOrdersQuery())
	if err != nil {
		return 0, err
	}

	delivered := 0
	for _, id := range ids {
		cmd, cmdErr := commands.NewDeliverOrderCommand(id)
		if cmdErr != nil {
			return delivered, cmdErr
		}

		result, deliverErr := j.deliverHandler.Handle(ctx, cmd)
		if deliverErr != nil {
			if !isExpectedRace(deliverErr) {
				j.logger.ErrorContext(ctx, "Failed to deliver order", "orderId", id.String(), "error", deliverErr)
			}
			continue
		}

		address := result.Order.Address()
		j.logger.InfoContext(ctx, "Order delivered",
			"orderId", id.String(),
			"building", address.Building(),
			"room", address.Room(),
			"pancakes", len(result.Pancakes),
		)
		delivered++
	}

	return delivered, nil
}
