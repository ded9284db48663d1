package cmd

import (
	"log/slog"

	httpin "pancakelab/internal/adapters/in/http"
	"pancakelab/internal/adapters/out/memory/orderrepo"
	"pancakelab/internal/core/application/usecases/commands"
	"pancakelab/internal/core/application/usecases/queries"
	"pancakelab/internal/core/domain/model/orderlog"
	"pancakelab/internal/core/ports"
	"pancakelab/internal/jobs"
)

// CompositionRoot owns the process-wide store and event log and builds
// every handler, server and job on top of them.
type CompositionRoot struct {
	config    Config
	orderRepo *orderrepo.MemoryOrderRepository
	events    *orderlog.Log
	logger    *slog.Logger
}

func NewCompositionRoot(config Config, logger *slog.Logger) CompositionRoot {
	if logger == nil {
		logger = slog.Default()
	}

	return CompositionRoot{
		config:    config,
		orderRepo: orderrepo.NewMemoryOrderRepository(),
		events:    orderlog.NewLog(),
		logger:    logger,
	}
}

func (c *CompositionRoot) EventLog() ports.EventLog {
	return c.events
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateAddPancakesCommandHandler() commands.AddPancakesCommandHandler {
	return commands.NewAddPancakesCommandHandler(c.orderRepo, c.events, c.logger)
}

func (c *CompositionRoot) CreateRemovePancakesCommandHandler() commands.RemovePancakesCommandHandler {
	return commands.NewRemovePancakesCommandHandler(c.orderRepo, c.events, c.logger)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderRepo)
}

func (c *CompositionRoot) CreatePrepareOrderCommandHandler() commands.PrepareOrderCommandHandler {
	return commands.NewPrepareOrderCommandHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderRepo, c.events, c.logger)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderRepo, c.events, c.logger)
}

func (c *CompositionRoot) CreateViewOrderQueryHandler() queries.ViewOrderQueryHandler {
	return queries.NewViewOrderQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateListOrdersByStatusQueryHandler() queries.ListOrdersByStatusQueryHandler {
	return queries.NewListOrdersByStatusQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateGetEventsQueryHandler() queries.GetEventsQueryHandler {
	return queries.NewGetEventsQueryHandler(c.events)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateAddPancakesCommandHandler(),
		c.CreateRemovePancakesCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreatePrepareOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateDeliverOrderCommandHandler(),
		c.CreateViewOrderQueryHandler(),
		c.CreateListOrdersByStatusQueryHandler(),
		c.CreateGetEventsQueryHandler(),
	)
}

// CreateJobs builds the jobs whose schedule is configured. The relay job is
// built only when a publisher is given.
func (c *CompositionRoot) CreateJobs(publisher ports.EventPublisher) []jobs.Job {
	var result []jobs.Job

	if c.config.KitchenSchedule != "" {
		result = append(result, jobs.NewKitchenJob(
			c.CreateListOrdersByStatusQueryHandler(),
			c.CreatePrepareOrderCommandHandler(),
			c.config.KitchenSchedule,
			c.logger,
		))
	}

	if c.config.DeliverySchedule != "" {
		result = append(result, jobs.NewDeliveryJob(
			c.CreateListOrdersByStatusQueryHandler(),
			c.CreateDeliverOrderCommandHandler(),
			c.config.DeliverySchedule,
			c.logger,
		))
	}

	if c.config.EventRelaySchedule != "" && publisher != nil {
		result = append(result, jobs.NewEventRelayJob(
			c.events,
			publisher,
			c.config.EventRelaySchedule,
			c.logger,
		))
	}

	return result
}
