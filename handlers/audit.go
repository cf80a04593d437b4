package handlers

import (
	"arka/app"
	"arka/middleware"
	"arka/models"

	"github.com/gofiber/fiber/v2"
)

// GetAuditLog lists the family's audit trail, newest first. Owners only.
func GetAuditLog(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)
		if sess.Role != models.RoleOwner {
			return forbidden(c, "Only the family owner can view the audit log")
		}

		limit := c.QueryInt("limit", 50)
		if limit < 1 || limit > 200 {
			limit = 50
		}
		offset := c.QueryInt("offset", 0)
		if offset < 0 {
			offset = 0
		}

		entries, err := a.AuditService.List(sess.FamilyID, c.Query("entity"), limit, offset)
		if err != nil {
			return serviceError(c, err, "Failed to fetch audit log")
		}

		return success(c, fiber.Map{"entries": entries})
	}
}
