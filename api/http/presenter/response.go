package presenter

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// HTML writes an already rendered fragment.
func HTML(c *fiber.Ctx, status int, body []byte) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(body)
}

// ErrorHandler renders errors escaping the handlers in the ErrorResponse
// shape. Unexpected errors are logged and hidden behind a 500.
func ErrorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return Error(c, fe.Code, fe.Message)
		}
		log.Error("unhandled request error",
			"method", c.Method(),
			"path", c.Path(),
			"requestId", c.GetRespHeader(fiber.HeaderXRequestID),
			"err", err,
		)
		return Error(c, fiber.StatusInternalServerError, "internal error")
	}
}
