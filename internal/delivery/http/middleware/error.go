package middleware

import (
	"errors"
	"fmt"

	"portfolio-backend/internal/pkg/response"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v3"
)

// AppError is returned by handlers and rendered as an error envelope by
// ErrorMiddleware. Details is shown to the client as is.
type AppError struct {
	StatusCode int
	Message    string
	Details    string
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, details string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Details: details, Cause: cause}
}

type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error("panic recovered", "method", c.Method(), "path", c.Path(), "panic", r)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, fmt.Sprint(r))
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, details := normalizeError(err)
		if status >= 500 {
			m.logger.Error("request failed", "method", c.Method(), "path", c.Path(), "status", status, "err", err)
		}
		return response.Error(c, status, msg, details)
	}
}

func normalizeError(err error) (int, string, string) {
	if err == nil {
		return fiber.StatusInternalServerError, response.MessageInternalServerError, ""
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		msg := appErr.Message
		if msg == "" {
			msg = response.DefaultMessageForStatus(status)
		}
		details := appErr.Details
		if details == "" && appErr.Cause != nil {
			details = appErr.Cause.Error()
		}
		return status, msg, details
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		return status, response.DefaultMessageForStatus(status), fiberErr.Message
	}

	return fiber.StatusInternalServerError, response.MessageInternalServerError, err.Error()
}
