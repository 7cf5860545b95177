package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"library/internal/core/domain/model/library"
	"library/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps use case errors to HTTP statuses.
func statusOf(err error) int {
	switch library.OutcomeOf(err) {
	case library.BookNotFound, library.MemberNotFound, library.NoActiveLoan:
		return http.StatusNotFound
	case library.BookUnavailable, library.DuplicateISBN:
		return http.StatusConflict
	case library.OK, library.Unclassified:
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as an Error body. Internal errors are logged and
// their text is not sent to the client.
func writeError(ctx echo.Context, logger *slog.Logger, err error) error {
	status := statusOf(err)

	body := Error{Code: status, Message: err.Error()}
	if outcome := library.OutcomeOf(err); outcome != library.Unclassified {
		body.Outcome = outcome.String()
	}

	if status == http.StatusInternalServerError {
		logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		body.Message = http.StatusText(status)
	}

	return ctx.JSON(status, body)
}

// errorHandler renders echo's own errors (unknown routes, bad parameters,
// malformed bodies) in the same Error shape as use case failures.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) {
			_ = writeError(ctx, logger, err)
			return
		}

		message := http.StatusText(httpErr.Code)
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}

		_ = ctx.JSON(httpErr.Code, Error{Code: httpErr.Code, Message: message})
	}
}
