package handler

import (
	"errors"
	"fmt"
	"log/slog"

	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	pkgerrors "github.com/pkg/errors"

	"github.com/andrewouko/umoja-informatics/internal/logger"
	"github.com/andrewouko/umoja-informatics/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// NewErrorHandler returns the app-wide error handler. Every failed request
// passes through it: it logs the failure with request context, reports
// server errors to Sentry and writes {"error": message}.
func NewErrorHandler(l *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, message := resolveError(err)

		level := slog.LevelWarn
		if status >= fiber.StatusInternalServerError {
			level = slog.LevelError
		}

		l.Log(c.UserContext(), level, "HTTP request failed",
			"error", err.Error(),
			"stack", stackOf(err),
			"status", status,
			"method", c.Method(),
			"path", c.Path(),
			"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
			"request_headers", c.GetReqHeaders(),
			"request_body", string(c.Body()),
			"request_params", routeParams(c),
		)

		if status >= fiber.StatusInternalServerError {
			if hub := sentryfiber.GetHubFromContext(c); hub != nil {
				hub.CaptureException(err)
			}
		}

		return c.Status(status).JSON(errorResponse{Error: message})
	}
}

// resolveError maps an error to its HTTP status and client-facing message.
func resolveError(err error) (int, string) {
	var appErr *model.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case model.KindValidation:
			return fiber.StatusBadRequest, appErr.Message
		case model.KindConflict:
			return fiber.StatusConflict, appErr.Message
		case model.KindNotFound:
			return fiber.StatusNotFound, appErr.Message
		case model.KindInternal:
			return fiber.StatusInternalServerError, model.NewInternalError(nil).Message
		}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
		return fiberErr.Code, fiberErr.Message
	}

	return fiber.StatusInternalServerError, model.NewInternalError(nil).Message
}

// routeParams collects path parameters of the matched route. Requests
// rejected before routing (body limit, malformed request) have none.
func routeParams(c *fiber.Ctx) map[string]string {
	names := c.Route().Params
	params := make(map[string]string, len(names))
	for _, name := range names {
		params[name] = c.Params(name)
	}
	return params
}

// stackOf formats the innermost recorded stack trace in the error chain.
func stackOf(err error) string {
	var trace pkgerrors.StackTrace
	for e := err; e != nil; e = errors.Unwrap(e) {
		if st, ok := e.(stackTracer); ok {
			trace = st.StackTrace()
		}
	}
	if trace == nil {
		return ""
	}
	return fmt.Sprintf("%+v", trace)
}
