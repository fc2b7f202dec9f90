package middleware

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"skill-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type AppError struct {
	StatusCode int
	Message    string
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

func NewAppError(statusCode int, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Cause: cause}
}

// ErrorMiddleware turns panics and returned errors into an error envelope.
// Details of 5xx failures are logged, never sent to the client.
type ErrorMiddleware struct {
	log *zap.SugaredLogger
}

func NewErrorMiddleware(log *zap.SugaredLogger) *ErrorMiddleware {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &ErrorMiddleware{log: log}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.log.Errorw("panic recovered",
					"panic", fmt.Sprint(r),
					"path", c.OriginalURL(),
					"request_id", c.GetRespHeader(HeaderRequestID),
					"stack", string(debug.Stack()),
				)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg := normalizeError(err)
		if status >= 500 || status == fiber.StatusRequestTimeout {
			m.log.Errorw("request failed",
				"status", status,
				"path", c.OriginalURL(),
				"request_id", c.GetRespHeader(HeaderRequestID),
				"error", err,
			)
		}
		return response.Error(c, status, msg)
	}
}

func normalizeError(err error) (int, string) {
	if errors.Is(err, context.DeadlineExceeded) {
		return fiber.StatusRequestTimeout, response.MessageRequestTimeout
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 || status >= 500 {
			return fiber.StatusInternalServerError, response.MessageInternalServerError
		}
		msg := appErr.Message
		if msg == "" {
			msg = response.DefaultMessageForStatus(status)
		}
		return status, msg
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || status >= 500 {
			return fiber.StatusInternalServerError, response.MessageInternalServerError
		}
		return status, response.DefaultMessageForStatus(status)
	}

	return fiber.StatusInternalServerError, response.MessageInternalServerError
}
