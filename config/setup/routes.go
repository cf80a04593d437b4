package setup

import (
	"time"

	"arka/app"
	"arka/handlers"
	"arka/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {

	// Public routes
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })
	fiberApp.Post("/api/auth/register", handlers.Register(application))
	fiberApp.Post("/api/auth/login", handlers.Login(application))
	fiberApp.Post("/api/auth/logout", handlers.Logout(application))

	// Protected API routes
	api := fiberApp.Group("/api", middleware.AuthRequired(application.SessionStore), limiter.New(limiter.Config{
		Max:        100,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			if memberID, ok := c.Locals("memberID").(string); ok {
				return "member:" + memberID
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded for your account",
			})
		},
	}))

	api.Get("/auth/me", handlers.Me(application))

	api.Get("/family", handlers.GetFamily(application))
	api.Put("/family", handlers.RenameFamily(application))
	api.Get("/family/members", handlers.GetMembers(application))
	api.Post("/family/members", handlers.AddMember(application))
	api.Put("/family/members/:id", handlers.UpdateMember(application))
	api.Delete("/family/members/:id", handlers.RemoveMember(application))

	api.Get("/spaces", handlers.GetSpaces(application))
	api.Post("/spaces", handlers.CreateSpace(application))
	api.Get("/spaces/:id", handlers.GetSpace(application))
	api.Put("/spaces/:id", handlers.UpdateSpace(application))
	api.Delete("/spaces/:id", handlers.DeleteSpace(application))
	api.Get("/spaces/:id/access", handlers.GetSpaceAccessList(application))
	api.Post("/spaces/:id/access", handlers.GrantSpaceAccess(application))
	api.Delete("/spaces/:id/access/:memberId", handlers.RevokeSpaceAccess(application))

	api.Get("/categories", handlers.GetCategories(application))
	api.Post("/categories", handlers.CreateCategory(application))
	api.Put("/categories/:id", handlers.UpdateCategory(application))
	api.Delete("/categories/:id", handlers.DeleteCategory(application))

	api.Get("/folders", handlers.GetFolders(application))
	api.Post("/folders", handlers.CreateFolder(application))
	api.Get("/folders/:id/path", handlers.GetFolderPath(application))
	api.Put("/folders/:id", handlers.RenameFolder(application))
	api.Put("/folders/:id/move", handlers.MoveFolder(application))
	api.Delete("/folders/:id", handlers.DeleteFolder(application))

	api.Get("/files", handlers.GetFiles(application))
	api.Get("/files/search", handlers.SearchFiles(application))
	api.Post("/files", handlers.UploadFile(application))
	api.Get("/files/:id", handlers.GetFile(application))
	api.Get("/files/:id/download", handlers.DownloadFile(application))
	api.Put("/files/:id", handlers.RenameFile(application))
	api.Put("/files/:id/move", handlers.MoveFile(application))
	api.Put("/files/:id/description", handlers.UpdateFile(application))
	api.Delete("/files/:id", handlers.DeleteFile(application))

	api.Post("/permissions", handlers.GrantPermission(application))
	api.Delete("/permissions/:id", handlers.RevokePermission(application))
	api.Get("/permissions/granted", handlers.GetGrantedPermissions(application))
	api.Get("/permissions/received", handlers.GetReceivedPermissions(application))
	api.Post("/permissions/check", handlers.CheckAccess(application))

	api.Post("/delegations", handlers.CreateDelegation(application))
	api.Get("/delegations/sent", handlers.GetSentDelegations(application))
	api.Get("/delegations/received", handlers.GetReceivedDelegations(application))
	api.Post("/delegations/:id/approve", handlers.ApproveDelegation(application))
	api.Post("/delegations/:id/reject", handlers.RejectDelegation(application))
	api.Post("/delegations/:id/revoke", handlers.RevokeDelegation(application))

	api.Get("/alerts", handlers.GetAlerts(application))
	api.Get("/alerts/upcoming", handlers.GetUpcomingAlerts(application))
	api.Post("/alerts", handlers.CreateAlert(application))
	api.Get("/alerts/:id", handlers.GetAlert(application))
	api.Put("/alerts/:id", handlers.UpdateAlert(application))
	api.Delete("/alerts/:id", handlers.DeleteAlert(application))

	api.Get("/audit", handlers.GetAuditLog(application))
}
