package handlers

import (
	"arka/app"
	"arka/middleware"
	"arka/models"

	"github.com/gofiber/fiber/v2"
)

// CreateDelegation files a pending access request towards an owner
func CreateDelegation(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateDelegationRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		sess := middleware.GetSession(c)
		delegation, err := a.DelegationService.Create(sess, &req)
		if err != nil {
			return serviceError(c, err, "Failed to create delegation request")
		}

		return created(c, fiber.Map{"delegation": delegation})
	}
}

// GetSentDelegations lists the requests the member has filed
func GetSentDelegations(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)

		delegations, err := a.DelegationService.ListByRequester(sess.MemberID)
		if err != nil {
			return serviceError(c, err, "Failed to fetch delegation requests")
		}

		return success(c, fiber.Map{"delegations": delegations})
	}
}

// GetReceivedDelegations lists the requests addressed to the member
func GetReceivedDelegations(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)

		var (
			delegations []models.DelegationRequest
			err         error
		)
		if c.Query("status") == models.DelegationPending {
			delegations, err = a.DelegationService.ListPendingForOwner(sess.MemberID)
		} else {
			delegations, err = a.DelegationService.ListByOwner(sess.MemberID)
		}
		if err != nil {
			return serviceError(c, err, "Failed to fetch delegation requests")
		}

		return success(c, fiber.Map{"delegations": delegations})
	}
}

// ApproveDelegation approves a pending request and creates the permission
func ApproveDelegation(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)

		delegation, err := a.DelegationService.Approve(sess, c.Params("id"))
		if err != nil {
			return serviceError(c, err, "Failed to approve delegation request")
		}

		return success(c, fiber.Map{"delegation": delegation})
	}
}

// RejectDelegation rejects a pending request
func RejectDelegation(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)

		delegation, err := a.DelegationService.Reject(sess, c.Params("id"))
		if err != nil {
			return serviceError(c, err, "Failed to reject delegation request")
		}

		return success(c, fiber.Map{"delegation": delegation})
	}
}

// RevokeDelegation revokes an approved request along with its permission
func RevokeDelegation(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)

		delegation, err := a.DelegationService.Revoke(sess, c.Params("id"))
		if err != nil {
			return serviceError(c, err, "Failed to revoke delegation request")
		}

		return success(c, fiber.Map{"delegation": delegation})
	}
}
