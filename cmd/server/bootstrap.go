package main

import (
	"github.com/atelierhq/atelier/backend/internal/config"
	"github.com/atelierhq/atelier/backend/internal/handlers"
	"github.com/atelierhq/atelier/backend/internal/models"
	"github.com/atelierhq/atelier/backend/internal/services"
	"github.com/atelierhq/atelier/backend/internal/utils"
	"github.com/atelierhq/atelier/backend/pkg/logger"
)

// appServices holds all initialized services and handlers needed by the application.
type appServices struct {
	emailService   *services.EmailService
	captchaService *services.CaptchaService
	uploadService  *services.UploadService
	digestService  *services.DigestService
	mailQueue      services.MailQueue
	mailWorker     *services.MailWorker
	authHandler    *handlers.AuthHandler
}

// bootstrap initializes all application dependencies: database, services, schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	// Initialize database
	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate database
	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize mail queue (uses Redis if enabled, otherwise sync mode)
	mailQueue := services.InitMailQueue(cfg)
	emailService := services.NewEmailService(&cfg.SMTP, cfg.Admin.Email, mailQueue)
	if syncQueue, ok := mailQueue.(*services.SyncMailQueue); ok {
		syncQueue.SetSender(emailService.Deliver)
	}

	// Start async mail worker if Redis is enabled
	var mailWorker *services.MailWorker
	if cfg.Redis.Enabled && mailQueue.IsAsync() {
		mailWorker = services.NewMailWorker(&cfg.Redis)
		mailWorker.SetSender(emailService.Deliver)
		if err := mailWorker.Start(); err != nil {
			logger.Warn().Err(err).Msg("Failed to start mail worker, deliveries will stay queued")
		}
	}

	// Start daily contact digest scheduler
	contactService := services.NewContactService(models.GetDB(), emailService)
	digestService := services.NewDigestService(contactService, emailService, &cfg.Digest)
	if err := digestService.StartScheduler(); err != nil {
		logger.Warn().Err(err).Msg("Failed to start digest scheduler")
	}

	// Create default admin user
	authHandler := handlers.NewAuthHandler(models.GetDB(), cfg)
	if err := authHandler.CreateAdminIfNotExists(); err != nil {
		logger.Warn().Err(err).Msg("Failed to create admin user")
	}

	return &appServices{
		emailService:   emailService,
		captchaService: services.NewCaptchaService(&cfg.Captcha),
		uploadService:  services.NewUploadService(&cfg.Upload),
		digestService:  digestService,
		mailQueue:      mailQueue,
		mailWorker:     mailWorker,
		authHandler:    authHandler,
	}
}

// shutdown gracefully stops all services.
func (s *appServices) shutdown() {
	s.digestService.StopScheduler()
	logger.Info().Msg("Schedulers stopped")

	if s.mailWorker != nil {
		s.mailWorker.Stop()
	}
	if s.mailQueue != nil {
		s.mailQueue.Close()
	}
}
