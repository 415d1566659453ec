package middleware

import (
	"log"

	"github.com/fadilmartias/job-board/internal/service"
	"github.com/fadilmartias/job-board/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const adminIDKey = "admin_id"

// RequireAdmin rejects requests without a live admin session. Missing and
// expired sessions get the same response.
func RequireAdmin(sessions service.SessionServiceInterface) fiber.Handler {
	return func(c *fiber.Ctx) error {
		adminID, ok, err := sessions.Resolve(c)
		if err != nil {
			log.Printf("[auth] resolve session: %v", err)
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Message: "Internal Server Error",
			}, err)
		}
		if !ok {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Authentication required",
			})
		}
		c.Locals(adminIDKey, adminID)
		return c.Next()
	}
}

// AdminID returns the admin set by RequireAdmin.
func AdminID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(adminIDKey).(uuid.UUID)
	return id, ok
}
