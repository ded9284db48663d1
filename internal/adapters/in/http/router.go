package http

import (
	"log/slog"
	"net/http"
	"sync"

	"pancakelab/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// BaseURL prefixes every API route.
const BaseURL = "/api/v1"

var registerSwaggerOnce sync.Once

// NewRouter builds the echo instance: the API under BaseURL with request
// validation, Swagger UI under /swagger/ and a liveness probe at /health.
func NewRouter(server servers.ServerInterface, logger *slog.Logger) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}

	validator, err := OpenAPIValidator(swagger)
	if err != nil {
		return nil, err
	}

	if err = registerSwagger(swagger); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(BaseURL, validator)
	servers.RegisterHandlers(api, server)

	return e, nil
}

// registerSwagger publishes the OpenAPI document to the Swagger UI. The
// registry is process-wide, so only the first call has an effect.
func registerSwagger(swagger *openapi3.T) error {
	doc, err := swagger.MarshalJSON()
	if err != nil {
		return err
	}

	registerSwaggerOnce.Do(func() {
		swag.Register(swag.Name, &swag.Spec{
			Version:          swagger.Info.Version,
			BasePath:         BaseURL,
			Title:            swagger.Info.Title,
			Description:      swagger.Info.Description,
			InfoInstanceName: swag.Name,
			SwaggerTemplate:  string(doc),
		})
	})
	return nil
}
