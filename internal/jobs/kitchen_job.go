package jobs

import (
	"context"
	"log/slog"

	"pancakelab/internal/core/application/usecases/commands"
	"pancakelab/internal/core/application/usecases/queries"
)

// KitchenJob prepares the orders customers have completed.
type KitchenJob struct {
	scheduler
	listHandler    queries.ListOrdersByStatusQueryHandler
	prepareHandler commands.PrepareOrderCommandHandler
}

func NewKitchenJob(
	listHandler queries.ListOrdersByStatusQueryHandler,
	prepareHandler commands.PrepareOrderCommandHandler,
	schedule string,
	logger *slog.Logger,
) *KitchenJob {
	return &KitchenJob{
		scheduler:      newScheduler("kitchen_job", schedule, logger),
		listHandler:    listHandler,
		prepareHandler: prepareHandler,
	}
}

func (j *KitchenJob) Start() error {
	return j.start(func(ctx context.Context) {
		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Kitchen job failed", "error", err)
		}
	})
}

// RunOnce prepares every order currently Completed and returns how many it prepared.
func (j *KitchenJob) RunOnce(ctx context.Context) (int, error) {
	ids, err := j.listHandler.Handle(ctx, queries.NewListCompletedOrdersQuery())
	if err != nil {
		return 0, err
	}

	prepared := 0
	for _, id := range ids {
		cmd, cmdErr := commands.NewPrepareOrderCommand(id)
		if cmdErr != nil {
			return prepared, cmdErr
		}

		if err = j.prepareHandler.Handle(ctx, cmd); err != nil {
			if !isExpectedRace(err) {
				j.logger.ErrorContext(ctx, "Failed to prepare order", "orderId", id.String(), "error", err)
			}
			continue
		}
		prepared++
	}

	if prepared > 0 {
		j.logger.InfoContext(ctx, "Orders prepared", "count", prepared)
	}
	return prepared, nil
}
