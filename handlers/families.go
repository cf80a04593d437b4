package handlers

import (
	"arka/app"
	"arka/middleware"
	"arka/models"

	"github.com/gofiber/fiber/v2"
)

// GetFamily returns the caller's family
func GetFamily(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)

		family, err := a.MemberService.GetFamily(sess.FamilyID)
		if err != nil {
			return serviceError(c, err, "Failed to fetch family")
		}

		return success(c, fiber.Map{"family": family})
	}
}

// RenameFamily renames the caller's family (owner only)
func RenameFamily(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			Name string `json:"name" validate:"required,min=2,max=100,entityname"`
		}
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		sess := middleware.GetSession(c)
		if err := a.MemberService.RenameFamily(sess, req.Name); err != nil {
			return serviceError(c, err, "Failed to rename family")
		}

		return success(c, fiber.Map{"message": "Family renamed successfully"})
	}
}

// GetMembers lists the caller's family members
func GetMembers(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)

		members, err := a.MemberService.ListMembers(sess.FamilyID)
		if err != nil {
			return serviceError(c, err, "Failed to fetch members")
		}

		return success(c, fiber.Map{"members": members})
	}
}

// AddMember adds a member to the caller's family (owner only)
func AddMember(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.AddMemberRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		sess := middleware.GetSession(c)
		member, err := a.MemberService.AddMember(sess, &req)
		if err != nil {
			return serviceError(c, err, "Failed to add member")
		}

		return created(c, fiber.Map{"member": member})
	}
}

// UpdateMember updates a member's profile
func UpdateMember(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		memberID := c.Params("id")
		if memberID == "" {
			return badRequest(c, "member ID is required")
		}

		var req models.UpdateMemberRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		sess := middleware.GetSession(c)
		member, err := a.MemberService.UpdateMember(sess, memberID, &req)
		if err != nil {
			return serviceError(c, err, "Failed to update member")
		}

		return success(c, fiber.Map{"member": member})
	}
}

// RemoveMember removes a member from the family (owner only)
func RemoveMember(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		memberID := c.Params("id")
		if memberID == "" {
			return badRequest(c, "member ID is required")
		}

		sess := middleware.GetSession(c)
		if err := a.MemberService.RemoveMember(sess, memberID); err != nil {
			return serviceError(c, err, "Failed to remove member")
		}

		return success(c, fiber.Map{"message": "Member removed successfully"})
	}
}
