package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dmitrijs2005/campusmatch/internal/common"
)

// statusFor maps an error returned by a handler to a status code and the
// message sent to the client. Unclassified errors are reported as
// "internal error" and only logged in full.
func statusFor(err error) (int, string) {
	var fe *fiber.Error

	switch {
	case errors.As(err, &fe):
		return fe.Code, fe.Message
	case errors.Is(err, common.ErrorValidation):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrInvalidToken):
		return fiber.StatusUnauthorized, "invalid identity token"
	case errors.Is(err, common.ErrorNotFound):
		return fiber.StatusNotFound, "not found"
	case errors.Is(err, common.ErrorConflict):
		return fiber.StatusConflict, "email already registered"
	default:
		return fiber.StatusInternalServerError, "internal error"
	}
}

func (s *HTTPServer) errorHandler(c *fiber.Ctx, err error) error {
	code, msg := statusFor(err)
	if code >= fiber.StatusInternalServerError {
		s.logger.Error(c.UserContext(), "request failed",
			"error", err, "request_id", requestIDFrom(c), "path", c.Path())
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}
