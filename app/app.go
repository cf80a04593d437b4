package app

import (
	"arka/alerts"
	"arka/database"
	"arka/services"
	"arka/session"
	"arka/validator"
	"log/slog"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo              *database.Repository
	MemberService     *services.MemberService
	SpaceService      *services.SpaceService
	CategoryService   *services.CategoryService
	FolderService     *services.FolderService
	FileService       *services.FileService
	PermissionService *services.PermissionService
	DelegationService *services.DelegationService
	AlertService      *services.AlertService
	AuditService      *services.AuditService
	Scheduler         *alerts.Scheduler
	SessionStore      *session.Store
	Validator         *validator.Validator
	Logger            *slog.Logger
}
