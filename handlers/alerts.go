package handlers

import (
	"time"

	"arka/app"
	"arka/middleware"
	"arka/models"

	"github.com/gofiber/fiber/v2"
)

// GetAlerts lists the member's alerts
func GetAlerts(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)

		alerts, err := a.AlertService.List(sess)
		if err != nil {
			return serviceError(c, err, "Failed to fetch alerts")
		}

		return success(c, fiber.Map{"alerts": alerts})
	}
}

// GetUpcomingAlerts lists the member's active alerts due within a horizon
func GetUpcomingAlerts(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)

		days := c.QueryInt("days", 7)
		if days < 1 {
			return badRequest(c, "days must be positive")
		}

		alerts, err := a.AlertService.Upcoming(sess, time.Duration(days)*24*time.Hour)
		if err != nil {
			return serviceError(c, err, "Failed to fetch upcoming alerts")
		}

		return success(c, fiber.Map{"alerts": alerts})
	}
}

// CreateAlert schedules a new alert
func CreateAlert(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateAlertRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		sess := middleware.GetSession(c)
		alert, err := a.AlertService.Create(sess, &req)
		if err != nil {
			return serviceError(c, err, "Failed to create alert")
		}

		return created(c, fiber.Map{"alert": alert})
	}
}

// GetAlert returns one alert
func GetAlert(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)

		alert, err := a.AlertService.Get(sess, c.Params("id"))
		if err != nil {
			return serviceError(c, err, "Failed to fetch alert")
		}

		return success(c, fiber.Map{"alert": alert})
	}
}

// UpdateAlert updates an alert's schedule and content
func UpdateAlert(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateAlertRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		sess := middleware.GetSession(c)
		alert, err := a.AlertService.Update(sess, c.Params("id"), &req)
		if err != nil {
			return serviceError(c, err, "Failed to update alert")
		}

		return success(c, fiber.Map{"alert": alert})
	}
}

// DeleteAlert deletes an alert
func DeleteAlert(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)

		if err := a.AlertService.Delete(sess, c.Params("id")); err != nil {
			return serviceError(c, err, "Failed to delete alert")
		}

		return success(c, fiber.Map{"message": "Alert deleted successfully"})
	}
}
