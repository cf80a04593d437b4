package handlers

import (
	"arka/app"
	"arka/middleware"
	"arka/models"

	"github.com/gofiber/fiber/v2"
)

// GetFolders lists direct children of a folder, or a category's roots when
// no parent is given
func GetFolders(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categoryID := c.Query("category")
		if categoryID == "" {
			return badRequest(c, "category is required")
		}

		var parentID *string
		if parent := c.Query("parent"); parent != "" {
			parentID = &parent
		}

		sess := middleware.GetSession(c)
		folders, err := a.FolderService.ListChildren(sess, categoryID, parentID)
		if err != nil {
			return serviceError(c, err, "Failed to fetch folders")
		}

		return success(c, fiber.Map{"folders": folders})
	}
}

// CreateFolder creates a folder
func CreateFolder(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateFolderRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		sess := middleware.GetSession(c)
		folder, err := a.FolderService.Create(sess, &req)
		if err != nil {
			return serviceError(c, err, "Failed to create folder")
		}

		return created(c, fiber.Map{"folder": folder})
	}
}

// GetFolderPath returns the chain from the category root to the folder
func GetFolderPath(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)

		path, err := a.FolderService.Path(sess, c.Params("id"))
		if err != nil {
			return serviceError(c, err, "Failed to fetch folder path")
		}

		return success(c, fiber.Map{"path": path})
	}
}

// RenameFolder renames a folder
func RenameFolder(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.RenameFolderRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		sess := middleware.GetSession(c)
		folder, err := a.FolderService.Rename(sess, c.Params("id"), &req)
		if err != nil {
			return serviceError(c, err, "Failed to rename folder")
		}

		return success(c, fiber.Map{"folder": folder})
	}
}

// MoveFolder reparents a folder within its category
func MoveFolder(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.MoveFolderRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		sess := middleware.GetSession(c)
		folder, err := a.FolderService.Move(sess, c.Params("id"), &req)
		if err != nil {
			return serviceError(c, err, "Failed to move folder")
		}

		return success(c, fiber.Map{"folder": folder})
	}
}

// DeleteFolder deletes a folder and its whole subtree
func DeleteFolder(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)

		if err := a.FolderService.Delete(sess, c.Params("id")); err != nil {
			return serviceError(c, err, "Failed to delete folder")
		}

		return success(c, fiber.Map{"message": "Folder deleted successfully"})
	}
}
