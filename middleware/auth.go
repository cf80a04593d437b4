package middleware

import (
	"arka/models"
	"arka/session"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired creates an authentication middleware that requires a valid
// session cookie.
func AuthRequired(sessionStore *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies("session_id")
		if sessionID != "" {
			sess, err := sessionStore.Get(sessionID)
			if err == nil && sess != nil {
				c.Locals("memberID", sess.MemberID)
				c.Locals("familyID", sess.FamilyID)
				c.Locals("session", sess)
				return c.Next()
			}
			c.ClearCookie("session_id")
		}

		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Missing or invalid session",
		})
	}
}

// GetSession returns the session attached by AuthRequired.
func GetSession(c *fiber.Ctx) *models.Session {
	if sess, ok := c.Locals("session").(*models.Session); ok {
		return sess
	}
	return nil
}

// GetMemberID returns the authenticated member's id, or "" when anonymous.
func GetMemberID(c *fiber.Ctx) string {
	if memberID, ok := c.Locals("memberID").(string); ok {
		return memberID
	}
	return ""
}
