package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"soulful-home-be/internal/pkg/logger"
	"soulful-home-be/pkg/docstore"
)

// ErrorHandler writes err as the error envelope. Unknown errors become a
// 500 with their text in details.
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "internal server error"
		details := err.Error()

		var appErr *AppError
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &appErr):
			code = appErr.Code
			message = appErr.Message
			details = appErr.Details
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
			message = fiberErr.Message
			details = ""
		case errors.Is(err, docstore.ErrMalformed):
			message = "stored state is corrupted"
		case errors.Is(err, docstore.ErrNotFound):
			code = fiber.StatusNotFound
			message = "not found"
			details = ""
		}

		if code >= fiber.StatusInternalServerError && log != nil {
			log.Error("HTTP", message, map[string]interface{}{
				"path":   ctx.Path(),
				"method": ctx.Method(),
				"error":  err.Error(),
			})
		}

		return ctx.Status(code).JSON(ErrorResponseWithDetails(code, message, details))
	}
}

// ErrorHandlerMiddleware applies ErrorHandler to whatever the downstream
// handlers return, so the envelope is written before outer middleware runs.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	handle := ErrorHandler(log)
	return func(ctx *fiber.Ctx) error {
		if err := ctx.Next(); err != nil {
			return handle(ctx, err)
		}
		return nil
	}
}
