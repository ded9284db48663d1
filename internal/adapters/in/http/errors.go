package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"pancakelab/internal/generated/servers"
	"pancakelab/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps the error taxonomy onto HTTP status codes. Unclassified
// errors are internal and their text is not exposed.
func statusFor(err error) (int, string) {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrStateIsInvalid):
		return http.StatusConflict, err.Error()
	case errs.IsInvalidArgument(err):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}

func respondError(ctx echo.Context, err error) error {
	code, message := statusFor(err)
	if code >= http.StatusInternalServerError {
		// let the error handler log it
		return err
	}
	return errorJSON(ctx, code, message)
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

// ErrorHandler renders every error that reaches echo as a servers.Error body.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code, message := statusFor(err)
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "request failed",
				"method", ctx.Request().Method,
				"uri", ctx.Request().RequestURI,
				"error", err,
			)
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(code)
		} else {
			err = errorJSON(ctx, code, message)
		}
		if err != nil {
			logger.ErrorContext(ctx.Request().Context(), "failed to write error response", "error", err)
		}
	}
}
