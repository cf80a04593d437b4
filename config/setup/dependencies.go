package setup

import (
	"log/slog"

	"arka/alerts"
	"arka/app"
	"arka/database"
	"arka/services"
	"arka/session"
	"arka/storage"
	"arka/validator"
)

// InitDatabase initializes the SQLite database and runs migrations
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, blobPath string, logger *slog.Logger) (*app.App, error) {
	repo := database.NewRepository(db)

	blobs, err := storage.NewLocal(blobPath)
	if err != nil {
		return nil, err
	}
	logger.Info("blob store initialized", "path", blobPath)

	sessionStore := session.NewStore()
	sessionStore.StartCleanupRoutine()
	logger.Info("session store initialized")

	auditService := services.NewAuditService(repo)
	memberService := services.NewMemberService(repo, sessionStore, auditService)
	spaceService := services.NewSpaceService(repo, repo, auditService)
	categoryService := services.NewCategoryService(repo, spaceService, auditService)
	folderService := services.NewFolderService(repo, categoryService, auditService)
	fileService := services.NewFileService(repo, folderService, spaceService, blobs, auditService)
	permissionService := services.NewPermissionService(repo, repo, repo, auditService)
	delegationService := services.NewDelegationService(repo, permissionService, repo, auditService)
	alertService := services.NewAlertService(repo, auditService)

	scheduler := alerts.NewScheduler(alertService, repo, auditService)
	scheduler.Start()
	logger.Info("alert scheduler started")

	application := &app.App{
		Repo:              repo,
		MemberService:     memberService,
		SpaceService:      spaceService,
		CategoryService:   categoryService,
		FolderService:     folderService,
		FileService:       fileService,
		PermissionService: permissionService,
		DelegationService: delegationService,
		AlertService:      alertService,
		AuditService:      auditService,
		Scheduler:         scheduler,
		SessionStore:      sessionStore,
		Validator:         validator.New(),
		Logger:            logger,
	}
	logger.Info("application initialized with dependency injection")

	return application, nil
}

// Shutdown performs graceful shutdown of all services
func Shutdown(scheduler *alerts.Scheduler, db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if scheduler != nil {
		scheduler.Stop()
		logger.Info("alert scheduler stopped")
	}

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
