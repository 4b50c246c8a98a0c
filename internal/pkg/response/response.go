package response

import (
	"reflect"
	"time"

	"github.com/gofiber/fiber/v3"
)

type SuccessEnvelope struct {
	Success   bool  `json:"success"`
	Data      any   `json:"data"`
	Count     int   `json:"count"`
	Timestamp int64 `json:"timestamp"`
}

type ErrorEnvelope struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Details   string `json:"details"`
	Timestamp int64  `json:"timestamp"`
}

const (
	MessageBadRequest          = "Bad request"
	MessageNotFound            = "Not found"
	MessageConflict            = "Conflict"
	MessageInternalServerError = "Internal server error"
	MessageError               = "Error"
)

// Now is the envelope clock. Tests may replace it.
var Now = time.Now

func Success(c fiber.Ctx, status int, data any) error {
	st := normalizeStatus(status)
	return c.Status(st).JSON(SuccessEnvelope{
		Success:   true,
		Data:      data,
		Count:     Count(data),
		Timestamp: Now().UnixMilli(),
	})
}

func Error(c fiber.Ctx, status int, message string, details string) error {
	st := normalizeStatus(status)
	if message == "" {
		message = DefaultMessageForStatus(st)
	}
	return c.Status(st).JSON(ErrorEnvelope{
		Success:   false,
		Error:     message,
		Details:   details,
		Timestamp: Now().UnixMilli(),
	})
}

// Count is the length of a slice, array or map payload and 1 for anything
// else.
func Count(data any) int {
	if data == nil {
		return 1
	}
	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return v.Len()
	default:
		return 1
	}
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func DefaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusConflict:
		return MessageConflict
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageError
	}
}
