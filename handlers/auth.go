package handlers

import (
	"arka/app"
	"arka/middleware"
	"arka/models"
	"arka/services"

	"github.com/gofiber/fiber/v2"
)

// Register creates a family along with its owner member and opens a session
func Register(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.RegisterFamilyRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		family, owner, err := a.MemberService.RegisterFamily(&req)
		if err != nil {
			return serviceError(c, err, "Failed to register family")
		}

		sess, err := a.MemberService.Login(req.Email, req.Password)
		if err != nil {
			return serviceError(c, err, "Failed to open session")
		}
		setSessionCookie(c, sess.ID)

		return created(c, fiber.Map{"family": family, "member": owner})
	}
}

// Login verifies credentials and sets the session cookie
func Login(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		sess, err := a.MemberService.Login(req.Email, req.Password)
		if err != nil {
			if err == services.ErrInvalidCredentials {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid email or password",
				})
			}
			return serviceError(c, err, "Failed to log in")
		}
		setSessionCookie(c, sess.ID)

		return success(c, fiber.Map{"session": sess})
	}
}

// Logout closes the session and clears the cookie
func Logout(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies("session_id")
		if sessionID != "" {
			a.MemberService.Logout(sessionID)
		}
		c.ClearCookie("session_id")

		return success(c, fiber.Map{"message": "Logged out"})
	}
}

// Me returns the authenticated member's session
func Me(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)
		if sess == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not logged in",
			})
		}

		return success(c, fiber.Map{"session": sess})
	}
}

func setSessionCookie(c *fiber.Ctx, sessionID string) {
	c.Cookie(&fiber.Cookie{
		Name:     "session_id",
		Value:    sessionID,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}
