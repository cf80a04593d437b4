package handlers

import (
	"arka/app"
	"arka/middleware"
	"arka/models"

	"github.com/gofiber/fiber/v2"
)

// GrantPermission grants one or more members access to a target
func GrantPermission(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.GrantPermissionRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		sess := middleware.GetSession(c)
		permissions, err := a.PermissionService.Grant(sess, &req)
		if err != nil {
			return serviceError(c, err, "Failed to grant permission")
		}

		return created(c, fiber.Map{"permissions": permissions})
	}
}

// RevokePermission revokes an active permission
func RevokePermission(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)

		if err := a.PermissionService.Revoke(sess, c.Params("id")); err != nil {
			return serviceError(c, err, "Failed to revoke permission")
		}

		return success(c, fiber.Map{"message": "Permission revoked successfully"})
	}
}

// GetGrantedPermissions lists the permissions the member has granted
func GetGrantedPermissions(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)

		permissions, err := a.PermissionService.ListGrantedBy(sess.MemberID)
		if err != nil {
			return serviceError(c, err, "Failed to fetch permissions")
		}

		return success(c, fiber.Map{"permissions": permissions})
	}
}

// GetReceivedPermissions lists the permissions granted to the member
func GetReceivedPermissions(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)

		permissions, err := a.PermissionService.ListGrantedTo(sess.MemberID)
		if err != nil {
			return serviceError(c, err, "Failed to fetch permissions")
		}

		return success(c, fiber.Map{"permissions": permissions})
	}
}

// CheckAccess reports whether a member holds a level on a target, taking
// grants on enclosing folders, categories and spaces into account
func CheckAccess(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CheckAccessRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		allowed, err := a.PermissionService.HasAccess(req.MemberID, req.TargetType, req.TargetID, req.Level)
		if err != nil {
			return serviceError(c, err, "Failed to check access")
		}

		return success(c, fiber.Map{"allowed": allowed})
	}
}
