package handlers

import (
	"io"

	"arka/app"
	"arka/middleware"
	"arka/models"

	"github.com/gofiber/fiber/v2"
)

const maxUploadBytes = 50 << 20 // 50 MB

// GetFiles lists the files of a folder
func GetFiles(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		folderID := c.Query("folder")
		if folderID == "" {
			return badRequest(c, "folder is required")
		}

		sess := middleware.GetSession(c)
		files, err := a.FileService.ListByFolder(sess, folderID)
		if err != nil {
			return serviceError(c, err, "Failed to fetch files")
		}

		return success(c, fiber.Map{"files": files})
	}
}

// UploadFile stores a new file from a multipart form
func UploadFile(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		folderID := c.FormValue("folder_id")
		if folderID == "" {
			return badRequest(c, "folder_id is required")
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return badRequest(c, "file is required")
		}
		if fileHeader.Size > maxUploadBytes {
			return badRequest(c, "File exceeds the maximum allowed size")
		}

		src, err := fileHeader.Open()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to read uploaded file", err)
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to read uploaded file", err)
		}

		name := c.FormValue("name")
		if name == "" {
			name = fileHeader.Filename
		}
		mimeType := fileHeader.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}

		sess := middleware.GetSession(c)
		file, err := a.FileService.Upload(sess, folderID, name, mimeType, data, c.FormValue("description"))
		if err != nil {
			return serviceError(c, err, "Failed to upload file")
		}

		return created(c, fiber.Map{"file": file})
	}
}

// GetFile returns a file's metadata
func GetFile(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)

		file, err := a.FileService.Get(sess, c.Params("id"))
		if err != nil {
			return serviceError(c, err, "Failed to fetch file")
		}

		return success(c, fiber.Map{"file": file})
	}
}

// DownloadFile streams a file's content back to the client
func DownloadFile(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)

		file, data, err := a.FileService.Download(sess, c.Params("id"))
		if err != nil {
			return serviceError(c, err, "Failed to download file")
		}

		c.Set(fiber.HeaderContentType, file.MimeType)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.Name+`"`)
		return c.Send(data)
	}
}

// SearchFiles searches a space's files by name
func SearchFiles(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		spaceID := c.Query("space")
		query := c.Query("q")
		if spaceID == "" || query == "" {
			return badRequest(c, "space and q are required")
		}

		sess := middleware.GetSession(c)
		files, err := a.FileService.Search(sess, spaceID, query, c.QueryInt("limit", 50))
		if err != nil {
			return serviceError(c, err, "Failed to search files")
		}

		return success(c, fiber.Map{"files": files})
	}
}

// RenameFile renames a file
func RenameFile(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.RenameFileRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		sess := middleware.GetSession(c)
		file, err := a.FileService.Rename(sess, c.Params("id"), &req)
		if err != nil {
			return serviceError(c, err, "Failed to rename file")
		}

		return success(c, fiber.Map{"file": file})
	}
}

// MoveFile moves a file into another folder
func MoveFile(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.MoveFileRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		sess := middleware.GetSession(c)
		file, err := a.FileService.Move(sess, c.Params("id"), &req)
		if err != nil {
			return serviceError(c, err, "Failed to move file")
		}

		return success(c, fiber.Map{"file": file})
	}
}

// UpdateFile updates a file's description
func UpdateFile(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateFileRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		sess := middleware.GetSession(c)
		file, err := a.FileService.UpdateDescription(sess, c.Params("id"), &req)
		if err != nil {
			return serviceError(c, err, "Failed to update file")
		}

		return success(c, fiber.Map{"file": file})
	}
}

// DeleteFile deletes a file and its stored content
func DeleteFile(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)

		if err := a.FileService.Delete(sess, c.Params("id")); err != nil {
			return serviceError(c, err, "Failed to delete file")
		}

		return success(c, fiber.Map{"message": "File deleted successfully"})
	}
}
