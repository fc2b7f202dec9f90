package response

import (
	"reflect"

	"github.com/gofiber/fiber/v3"
)

// Envelope is the body of every response the service writes.
type Envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
	StatusError   = "error"
)

const (
	MessageInvalidBody         = "Invalid request body."
	MessageNotFound            = "Not found."
	MessageMethodNotAllowed    = "Method not allowed."
	MessageRequestTimeout      = "Request timed out."
	MessageInternalServerError = "Internal server error."
	MessageError               = "Request could not be processed."
)

func Write(c fiber.Ctx, httpStatus int, status, message string, data any) error {
	st := normalizeStatus(httpStatus)
	return c.Status(st).JSON(Envelope{
		Status:  status,
		Data:    normalizeData(data),
		Message: normalizeMessage(message, st),
	})
}

func Success(c fiber.Ctx, message string, data any) error {
	return Write(c, fiber.StatusOK, StatusSuccess, message, data)
}

func Failure(c fiber.Ctx, message string) error {
	return Write(c, fiber.StatusOK, StatusFailure, message, nil)
}

func Error(c fiber.Ctx, httpStatus int, message string) error {
	return Write(c, httpStatus, StatusError, message, nil)
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

// normalizeData guarantees data is serialised as a JSON array.
func normalizeData(data any) any {
	if data == nil {
		return []any{}
	}
	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Slice:
		if v.IsNil() {
			return []any{}
		}
		return data
	case reflect.Array:
		return data
	default:
		return []any{data}
	}
}

func normalizeMessage(message string, status int) string {
	if message != "" {
		return message
	}
	return DefaultMessageForStatus(status)
}

func DefaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
		return MessageInvalidBody
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusMethodNotAllowed:
		return MessageMethodNotAllowed
	case fiber.StatusRequestTimeout:
		return MessageRequestTimeout
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageError
	}
}
