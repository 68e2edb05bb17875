package serverutils

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware recovers panics from downstream handlers and maps
// them into the standard error envelope instead of dropping the connection.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				_ = ctx.Status(fiber.StatusInternalServerError).
					JSON(ErrorResponse(500, fmt.Sprintf("internal error: %v", r)))
			}
		}()
		return ctx.Next()
	}
}
