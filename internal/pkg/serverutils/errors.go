package serverutils

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// AppError carries the HTTP status and the client-facing message of a
// failure. Details holds diagnostic text; Err is kept for errors.Is/As.
type AppError struct {
	Code    int
	Message string
	Details string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func newAppError(code int, message string, err error) *AppError {
	appErr := &AppError{Code: code, Message: message, Err: err}
	if err != nil {
		appErr.Details = err.Error()
	}
	return appErr
}

func NewBadRequestError(message string, err error) *AppError {
	return newAppError(fiber.StatusBadRequest, message, err)
}

func NewNotFoundError(message string) *AppError {
	return newAppError(fiber.StatusNotFound, message, nil)
}

func NewInternalError(message string, err error) *AppError {
	return newAppError(fiber.StatusInternalServerError, message, err)
}

func NewBadGatewayError(message string, err error) *AppError {
	return newAppError(fiber.StatusBadGateway, message, err)
}

func NewServiceUnavailableError(message string, err error) *AppError {
	return newAppError(fiber.StatusServiceUnavailable, message, err)
}
