package handlers

import (
	"arka/app"
	"arka/middleware"
	"arka/models"

	"github.com/gofiber/fiber/v2"
)

// GetSpaces lists the spaces visible to the caller
func GetSpaces(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)

		spaces, err := a.SpaceService.List(sess)
		if err != nil {
			return serviceError(c, err, "Failed to fetch spaces")
		}

		return success(c, fiber.Map{"spaces": spaces})
	}
}

// CreateSpace creates a new space
func CreateSpace(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateSpaceRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		sess := middleware.GetSession(c)
		space, err := a.SpaceService.Create(sess, &req)
		if err != nil {
			return serviceError(c, err, "Failed to create space")
		}

		return created(c, fiber.Map{"space": space})
	}
}

// GetSpace returns one space
func GetSpace(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)

		space, err := a.SpaceService.Get(sess, c.Params("id"))
		if err != nil {
			return serviceError(c, err, "Failed to fetch space")
		}

		return success(c, fiber.Map{"space": space})
	}
}

// UpdateSpace renames or re-describes a space
func UpdateSpace(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateSpaceRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		sess := middleware.GetSession(c)
		space, err := a.SpaceService.Update(sess, c.Params("id"), &req)
		if err != nil {
			return serviceError(c, err, "Failed to update space")
		}

		return success(c, fiber.Map{"space": space})
	}
}

// DeleteSpace deletes a space and everything inside it
func DeleteSpace(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)

		if err := a.SpaceService.Delete(sess, c.Params("id")); err != nil {
			return serviceError(c, err, "Failed to delete space")
		}

		return success(c, fiber.Map{"message": "Space deleted successfully"})
	}
}

// GrantSpaceAccess grants access records to family members
func GrantSpaceAccess(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.GrantSpaceAccessRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		sess := middleware.GetSession(c)
		if err := a.SpaceService.GrantAccess(sess, c.Params("id"), &req); err != nil {
			return serviceError(c, err, "Failed to grant access")
		}

		return success(c, fiber.Map{"message": "Access granted successfully"})
	}
}

// RevokeSpaceAccess removes a member's access record
func RevokeSpaceAccess(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)

		if err := a.SpaceService.RevokeAccess(sess, c.Params("id"), c.Params("memberId")); err != nil {
			return serviceError(c, err, "Failed to revoke access")
		}

		return success(c, fiber.Map{"message": "Access revoked successfully"})
	}
}

// GetSpaceAccessList lists a space's access records
func GetSpaceAccessList(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)

		records, err := a.SpaceService.AccessList(sess, c.Params("id"))
		if err != nil {
			return serviceError(c, err, "Failed to fetch access records")
		}

		return success(c, fiber.Map{"access": records})
	}
}
