package handlers

import (
	"arka/app"
	"arka/middleware"
	"arka/models"

	"github.com/gofiber/fiber/v2"
)

// GetCategories lists the categories of a space
func GetCategories(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		spaceID := c.Query("space")
		if spaceID == "" {
			return badRequest(c, "space is required")
		}

		sess := middleware.GetSession(c)
		categories, err := a.CategoryService.List(sess, spaceID)
		if err != nil {
			return serviceError(c, err, "Failed to fetch categories")
		}

		return success(c, fiber.Map{"categories": categories})
	}
}

// CreateCategory creates a category inside a space
func CreateCategory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		spaceID := c.Query("space")
		if spaceID == "" {
			return badRequest(c, "space is required")
		}

		var req models.CreateCategoryRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		sess := middleware.GetSession(c)
		category, err := a.CategoryService.Create(sess, spaceID, &req)
		if err != nil {
			return serviceError(c, err, "Failed to create category")
		}

		return created(c, fiber.Map{"category": category})
	}
}

// UpdateCategory renames or recolors a category
func UpdateCategory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateCategoryRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		sess := middleware.GetSession(c)
		category, err := a.CategoryService.Update(sess, c.Params("id"), &req)
		if err != nil {
			return serviceError(c, err, "Failed to update category")
		}

		return success(c, fiber.Map{"category": category})
	}
}

// DeleteCategory deletes a category; folders and files cascade
func DeleteCategory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)

		if err := a.CategoryService.Delete(sess, c.Params("id")); err != nil {
			return serviceError(c, err, "Failed to delete category")
		}

		return success(c, fiber.Map{"message": "Category deleted successfully"})
	}
}
