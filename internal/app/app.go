package app

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"careerpro_backend/internal/auth"
	"careerpro_backend/internal/config"
	"careerpro_backend/internal/email"
	"careerpro_backend/internal/handlers"
	"careerpro_backend/internal/logger"
	"careerpro_backend/internal/middleware"
	"careerpro_backend/internal/models"
	"careerpro_backend/internal/repositories"
	"careerpro_backend/internal/routes"
	"careerpro_backend/internal/services"
	"careerpro_backend/internal/storage"
	"careerpro_backend/pkg/apperrors"
)

// Run boots the server: config, logger, database, router.
func Run(configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.Server.Env)
	apperrors.SetDebug(cfg.IsDevelopment())
	auth.Configure(cfg.JWT.Secret, cfg.JWT.TTLMinutes)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	if err := seedFirstAdmin(db); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	router, err := SetupRouter(cfg, db)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("server listening", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.Database.URL), &gorm.Config{
		// Driver errors become gorm sentinels (e.g. ErrDuplicatedKey).
		TranslateError: true,
		Logger:         slogGorm.New(slogGorm.WithHandler(logger.GetLogger().Handler())),
	})
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Account{},
		&models.AuthToken{},
		&models.JobSeekerProfile{},
		&models.CvUpload{},
		&models.CompanyProfile{},
		&models.VerificationDocument{},
		&models.Job{},
		&models.Application{},
		&models.Skill{},
		&models.SeekerSkill{},
	)
}

// SetupRouter assembles the full engine against an open database. Tests
// call this directly with a sqlite handle.
func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	st, err := storage.NewStorage(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	mailer := email.NewProvider(cfg.Email)

	accountRepo := repositories.NewAccountRepository(db)
	tokenRepo := repositories.NewTokenRepository(db)
	seekerRepo := repositories.NewSeekerRepository(db)
	companyRepo := repositories.NewCompanyRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	documentRepo := repositories.NewDocumentRepository(db)
	skillRepo := repositories.NewSkillRepository(db)

	uploadService := services.NewUploadService(st, cfg.Upload.MaxSizeMB)
	authService := services.NewAuthService(accountRepo, tokenRepo, mailer)
	seekerService := services.NewSeekerService(seekerRepo, accountRepo, skillRepo, jobRepo, uploadService)
	companyService := services.NewCompanyService(companyRepo, accountRepo, jobRepo, applicationRepo, uploadService)
	jobService := services.NewJobService(jobRepo, companyRepo, applicationRepo)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo, seekerRepo)
	verificationService := services.NewVerificationService(db, documentRepo, companyRepo, accountRepo, uploadService)

	h := &handlers.AppHandlers{
		Auth:    handlers.NewAuthHandler(authService),
		Seeker:  handlers.NewSeekerHandler(seekerService, applicationService),
		Company: handlers.NewCompanyHandler(companyService, verificationService, applicationService),
		Job:     handlers.NewJobHandler(jobService, applicationService),
		Public:  handlers.NewPublicHandler(jobService, companyService),
		Admin:   handlers.NewAdminHandler(verificationService),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if local, ok := st.(*storage.LocalStorage); ok {
		r.Static("/uploads", local.BaseDir())
	}

	routes.Register(r, h, accountRepo, seekerRepo, companyRepo)
	return r, nil
}

// seedFirstAdmin creates the initial admin account when none exists.
// Credentials come from the environment so no default password ships.
func seedFirstAdmin(db *gorm.DB) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Account{}).
			Where("role = ?", models.AccountRoleAdmin).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		hash, err := auth.HashPassword(adminPassword)
		if err != nil {
			return err
		}
		admin := &models.Account{
			Email:        adminEmail,
			PasswordHash: hash,
			Role:         models.AccountRoleAdmin,
			IsVerified:   true,
		}
		if err := tx.Create(admin).Error; err != nil {
			return err
		}
		logger.Info("seeded first admin account", "email", adminEmail)
		return nil
	})
}
