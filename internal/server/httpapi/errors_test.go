package httpapi

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/campusmatch/internal/common"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"fiber error", fiber.NewError(fiber.StatusTeapot, "short and stout"), fiber.StatusTeapot, "short and stout"},
		{"validation", fmt.Errorf("%w: name is required", common.ErrorValidation), fiber.StatusBadRequest, "validation error: name is required"},
		{"invalid token", fmt.Errorf("parse: %w", common.ErrInvalidToken), fiber.StatusUnauthorized, "invalid identity token"},
		{"not found", fmt.Errorf("error getting user 9: %w", common.ErrorNotFound), fiber.StatusNotFound, "not found"},
		{"conflict", fmt.Errorf("error creating user: %w", common.ErrorConflict), fiber.StatusConflict, "email already registered"},
		{"unclassified", errors.New("disk on fire"), fiber.StatusInternalServerError, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := statusFor(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
