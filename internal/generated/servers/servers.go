// Package servers holds the HTTP contract of the service: request and response
// types, the ServerInterface implemented by the REST adapter, its echo wiring
// and the embedded OpenAPI document they are derived from.
//
// The layout follows oapi-codegen's echo server output so that the package can
// be regenerated from openapi.yaml without touching the adapter.
package servers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for AddPancakesIngredients.
const (
	DarkChocolate AddPancakesIngredients = "dark-chocolate"
	Hazelnuts     AddPancakesIngredients = "hazelnuts"
	MilkChocolate AddPancakesIngredients = "milk-chocolate"
	WhippedCream  AddPancakesIngredients = "whipped-cream"
)

// Defines values for ListOrdersParamsStatus.
const (
	Completed ListOrdersParamsStatus = "completed"
	Prepared  ListOrdersParamsStatus = "prepared"
)

// Defines values for GetEventsParamsKind.
const (
	ItemAdded      GetEventsParamsKind = "item-added"
	ItemRemoved    GetEventsParamsKind = "item-removed"
	OrderCancelled GetEventsParamsKind = "order-cancelled"
	OrderDelivered GetEventsParamsKind = "order-delivered"
)

// AddPancakes defines model for AddPancakes.
type AddPancakes struct {
	Count       int                      `json:"count"`
	Ingredients []AddPancakesIngredients `json:"ingredients"`
}

// AddPancakesIngredients defines model for AddPancakes.Ingredients.
type AddPancakesIngredients string

// Delivery defines model for Delivery.
type Delivery struct {
	Building int                `json:"building"`
	Id       openapi_types.UUID `json:"id"`
	Pancakes []string           `json:"pancakes"`
	Room     int                `json:"room"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Event defines model for Event.
type Event struct {
	Details    string             `json:"details"`
	Kind       string             `json:"kind"`
	OccurredAt time.Time          `json:"occurredAt"`
	OrderId    openapi_types.UUID `json:"orderId"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Building int `json:"building"`
	Room     int `json:"room"`
}

// Order defines model for Order.
type Order struct {
	Building int                `json:"building"`
	Id       openapi_types.UUID `json:"id"`
	Room     int                `json:"room"`
	Status   string             `json:"status"`
}

// Removal defines model for Removal.
type Removal struct {
	Remaining int `json:"remaining"`
	Removed   int `json:"removed"`
}

// RemovePancakes defines model for RemovePancakes.
type RemovePancakes struct {
	Count       int    `json:"count"`
	Description string `json:"description"`
}

// OrderId defines model for OrderId.
type OrderId = openapi_types.UUID

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Status ListOrdersParamsStatus `form:"status" json:"status"`
}

// ListOrdersParamsStatus defines parameters for ListOrders.
type ListOrdersParamsStatus string

// GetEventsParams defines parameters for GetEvents.
type GetEventsParams struct {
	Kind *GetEventsParamsKind `form:"kind,omitempty" json:"kind,omitempty"`
}

// GetEventsParamsKind defines parameters for GetEvents.
type GetEventsParamsKind string

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// AddPancakesJSONRequestBody defines body for AddPancakes for application/json ContentType.
type AddPancakesJSONRequestBody = AddPancakes

// RemovePancakesJSONRequestBody defines body for RemovePancakes for application/json ContentType.
type RemovePancakesJSONRequestBody = RemovePancakes

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Audit trail, optionally filtered by kind
	// (GET /events)
	GetEvents(ctx echo.Context, params GetEventsParams) error
	// List identifiers of orders waiting for the kitchen or for delivery
	// (GET /orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// Open a new order
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// Cancel an order
	// (POST /orders/{orderId}/cancel)
	CancelOrder(ctx echo.Context, orderId OrderId) error
	// Close an order for changes
	// (POST /orders/{orderId}/complete)
	CompleteOrder(ctx echo.Context, orderId OrderId) error
	// Deliver a prepared order
	// (POST /orders/{orderId}/deliver)
	DeliverOrder(ctx echo.Context, orderId OrderId) error
	// Audit trail of one order
	// (GET /orders/{orderId}/events)
	GetOrderEvents(ctx echo.Context, orderId OrderId) error
	// List pancake descriptions of an order
	// (GET /orders/{orderId}/pancakes)
	ViewOrder(ctx echo.Context, orderId OrderId) error
	// Add custom pancakes to an order
	// (POST /orders/{orderId}/pancakes)
	AddPancakes(ctx echo.Context, orderId OrderId) error
	// Remove pancakes with a description from an order
	// (POST /orders/{orderId}/pancakes/removal)
	RemovePancakes(ctx echo.Context, orderId OrderId) error
	// Mark an order as prepared by the kitchen
	// (POST /orders/{orderId}/prepare)
	PrepareOrder(ctx echo.Context, orderId OrderId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetEvents converts echo context to params.
func (w *ServerInterfaceWrapper) GetEvents(ctx echo.Context) error {
	var err error

	var params GetEventsParams

	err = runtime.BindQueryParameter("form", true, false, "kind", ctx.QueryParams(), &params.Kind)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter kind: %s", err))
	}

	return w.Handler.GetEvents(ctx, params)
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var err error

	var params ListOrdersParams

	err = runtime.BindQueryParameter("form", true, true, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	return w.Handler.ListOrders(ctx, params)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// CancelOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}

	return w.Handler.CancelOrder(ctx, orderId)
}

// CompleteOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CompleteOrder(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}

	return w.Handler.CompleteOrder(ctx, orderId)
}

// DeliverOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DeliverOrder(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}

	return w.Handler.DeliverOrder(ctx, orderId)
}

// GetOrderEvents converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderEvents(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}

	return w.Handler.GetOrderEvents(ctx, orderId)
}

// ViewOrder converts echo context to params.
func (w *ServerInterfaceWrapper) ViewOrder(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}

	return w.Handler.ViewOrder(ctx, orderId)
}

// AddPancakes converts echo context to params.
func (w *ServerInterfaceWrapper) AddPancakes(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}

	return w.Handler.AddPancakes(ctx, orderId)
}

// RemovePancakes converts echo context to params.
func (w *ServerInterfaceWrapper) RemovePancakes(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}

	return w.Handler.RemovePancakes(ctx, orderId)
}

// PrepareOrder converts echo context to params.
func (w *ServerInterfaceWrapper) PrepareOrder(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}

	return w.Handler.PrepareOrder(ctx, orderId)
}

func bindOrderId(ctx echo.Context) (OrderId, error) {
	var orderId OrderId

	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return orderId, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	return orderId, nil
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths,
// so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/events", wrapper.GetEvents)
	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.POST(baseURL+"/orders/:orderId/cancel", wrapper.CancelOrder)
	router.POST(baseURL+"/orders/:orderId/complete", wrapper.CompleteOrder)
	router.POST(baseURL+"/orders/:orderId/deliver", wrapper.DeliverOrder)
	router.GET(baseURL+"/orders/:orderId/events", wrapper.GetOrderEvents)
	router.GET(baseURL+"/orders/:orderId/pancakes", wrapper.ViewOrder)
	router.POST(baseURL+"/orders/:orderId/pancakes", wrapper.AddPancakes)
	router.POST(baseURL+"/orders/:orderId/pancakes/removal", wrapper.RemovePancakes)
	router.POST(baseURL+"/orders/:orderId/prepare", wrapper.PrepareOrder)
}
