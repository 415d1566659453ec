package handler

import (
	"log"

	"github.com/fadilmartias/job-board/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// paramID parses the :id route parameter. A malformed id can never match a
// row, so callers treat !ok as not found.
func paramID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// parseBody decodes and validates a JSON body into T. On failure it has
// already written the 400 response and returns ok == false.
func parseBody[T any](c *fiber.Ctx, out *T) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	if err := util.ValidateStruct(out); err != nil {
		return false, util.ValidationErrorResponse(c, err)
	}
	return true, nil
}

func notFound(c *fiber.Ctx, message string) error {
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusNotFound,
		Message: message,
	})
}

// internalError logs err and answers 500 with a generic message.
func internalError(c *fiber.Ctx, message string, err error) error {
	log.Printf("[%s %s] %s: %v", c.Method(), c.Path(), message, err)
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Message: message,
	}, err)
}
