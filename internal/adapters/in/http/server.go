package http

import (
	"net/http"

	"pancakelab/internal/core/application/usecases/commands"
	"pancakelab/internal/core/application/usecases/queries"
	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/core/domain/model/orderlog"
	"pancakelab/internal/core/domain/model/pancake"
	"pancakelab/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	addPancakesHandler    commands.AddPancakesCommandHandler
	removePancakesHandler commands.RemovePancakesCommandHandler
	completeOrderHandler  commands.CompleteOrderCommandHandler
	prepareOrderHandler   commands.PrepareOrderCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler
	deliverOrderHandler   commands.DeliverOrderCommandHandler

	// Query handlers
	viewOrderHandler  queries.ViewOrderQueryHandler
	listOrdersHandler queries.ListOrdersByStatusQueryHandler
	getEventsHandler  queries.GetEventsQueryHandler
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addPancakesHandler commands.AddPancakesCommandHandler,
	removePancakesHandler commands.RemovePancakesCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	prepareOrderHandler commands.PrepareOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	viewOrderHandler queries.ViewOrderQueryHandler,
	listOrdersHandler queries.ListOrdersByStatusQueryHandler,
	getEventsHandler queries.GetEventsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		addPancakesHandler:    addPancakesHandler,
		removePancakesHandler: removePancakesHandler,
		completeOrderHandler:  completeOrderHandler,
		prepareOrderHandler:   prepareOrderHandler,
		cancelOrderHandler:    cancelOrderHandler,
		deliverOrderHandler:   deliverOrderHandler,
		viewOrderHandler:      viewOrderHandler,
		listOrdersHandler:     listOrdersHandler,
		getEventsHandler:      getEventsHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - opens a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(body.Building, body.Room)
	if err != nil {
		return respondError(ctx, err)
	}

	o, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(o))
}

// ListOrders handles GET /api/v1/orders?status= - lists orders waiting for the kitchen or for delivery.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	var query queries.ListOrdersByStatusQuery
	switch params.Status {
	case servers.Completed:
		query = queries.NewListCompletedOrdersQuery()
	case servers.Prepared:
		query = queries.NewListPreparedOrdersQuery()
	default:
		return errorJSON(ctx, http.StatusBadRequest, "status must be completed or prepared")
	}

	ids, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]openapi_types.UUID, len(ids))
	for i, id := range ids {
		response[i] = id.Bytes()
	}

	return ctx.JSON(http.StatusOK, response)
}

// ViewOrder handles GET /api/v1/orders/{orderId}/pancakes.
func (s *Server) ViewOrder(ctx echo.Context, orderID servers.OrderId) error {
	id, err := toKernelUUID(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewViewOrderQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	descriptions, err := s.viewOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, descriptions)
}

// AddPancakes handles POST /api/v1/orders/{orderId}/pancakes.
func (s *Server) AddPancakes(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.AddPancakesJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	id, err := toKernelUUID(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	names := make([]pancake.IngredientName, 0, len(body.Ingredients))
	for _, key := range body.Ingredients {
		name, parseErr := pancake.ParseIngredientName(string(key))
		if parseErr != nil {
			return respondError(ctx, parseErr)
		}
		names = append(names, name)
	}

	cmd, err := commands.NewAddPancakesCommand(id, names, body.Count)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.addPancakesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemovePancakes handles POST /api/v1/orders/{orderId}/pancakes/removal.
func (s *Server) RemovePancakes(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.RemovePancakesJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	id, err := toKernelUUID(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemovePancakesCommand(id, body.Description, body.Count)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.removePancakesHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Removal{
		Removed:   result.Removed,
		Remaining: result.Remaining,
	})
}

// CompleteOrder handles POST /api/v1/orders/{orderId}/complete.
func (s *Server) CompleteOrder(ctx echo.Context, orderID servers.OrderId) error {
	id, err := toKernelUUID(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PrepareOrder handles POST /api/v1/orders/{orderId}/prepare.
func (s *Server) PrepareOrder(ctx echo.Context, orderID servers.OrderId) error {
	id, err := toKernelUUID(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewPrepareOrderCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.prepareOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderID servers.OrderId) error {
	id, err := toKernelUUID(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeliverOrder handles POST /api/v1/orders/{orderId}/deliver and returns the receipt.
func (s *Server) DeliverOrder(ctx echo.Context, orderID servers.OrderId) error {
	id, err := toKernelUUID(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeliverOrderCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	address := result.Order.Address()
	return ctx.JSON(http.StatusOK, servers.Delivery{
		Id:       result.Order.ID().Bytes(),
		Building: address.Building(),
		Room:     address.Room(),
		Pancakes: result.Pancakes,
	})
}

// GetOrderEvents handles GET /api/v1/orders/{orderId}/events.
func (s *Server) GetOrderEvents(ctx echo.Context, orderID servers.OrderId) error {
	id, err := toKernelUUID(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderEventsQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.respondEvents(ctx, query)
}

// GetEvents handles GET /api/v1/events, optionally filtered by kind.
func (s *Server) GetEvents(ctx echo.Context, params servers.GetEventsParams) error {
	query := queries.NewGetAllEventsQuery()

	if params.Kind != nil {
		kind, err := orderlog.ParseKind(string(*params.Kind))
		if err != nil {
			return respondError(ctx, err)
		}

		if query, err = queries.NewGetEventsByKindQuery(kind); err != nil {
			return respondError(ctx, err)
		}
	}

	return s.respondEvents(ctx, query)
}

func (s *Server) respondEvents(ctx echo.Context, query queries.GetEventsQuery) error {
	events, err := s.getEventsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]servers.Event, len(events))
	for i, e := range events {
		response[i] = servers.Event{
			OrderId:    e.OrderID.Bytes(),
			OccurredAt: e.OccurredAt,
			Kind:       e.Kind,
			Details:    e.Details,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func toOrder(o *order.Order) servers.Order {
	address := o.Address()
	return servers.Order{
		Id:       o.ID().Bytes(),
		Status:   o.Status().String(),
		Building: address.Building(),
		Room:     address.Room(),
	}
}

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}
